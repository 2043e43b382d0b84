// Package nback - the backtracking type placer.
//
// Place builds a total ordering of item types across positions by
// depth-first construction, position 0 first. At each position it computes
// the admissible candidate types, tries them in a uniformly random order,
// and undoes the most recent placement when a deeper position runs out of
// candidates. Reaching the full length with every count at zero terminates
// the search; exhausting position 0 reports ErrUnsatisfiable.
//
// Rationale (succinct):
//  1. Stimulus resolution is interleaved with placement: a filler takes the
//     next fresh placeholder, a target/lure copies the stimulus at its
//     backward distance. Admissibility checks then compare resolved stimuli
//     directly instead of re-deriving them per check.
//  2. Admissibility is checked eagerly, before recursing:
//     - a type is a candidate only while its remaining count is positive and
//       the sequence is long enough for its backward reference;
//     - a lure must differ from the n-back stimulus once both references
//       exist (otherwise it would silently become a target);
//     - when the repeat limit is tight (the last maxRepeat items share one
//       stimulus), the next item's stimulus must break the run - fillers are
//       fresh by construction and always qualify.
//  3. Failure is an explicit result, not a thrown signal: the recursion
//     returns errPlaceExhausted and the caller iterates its next candidate.
//  4. A backtrack budget bounds the search so a pathological specification
//     fails fast with ErrSearchAborted instead of looping.
//
// Complexity:
//   - Worst case exponential in the sequence length (exact search); in
//     practice interactive shapes resolve with few undo steps.
//   - Per node: O(K) candidate scan for K distinct types + O(maxRepeat)
//     tightness check; O(L) state for the partial sequence.
package nback

import "errors"

// errPlaceExhausted is the internal "no completion below this node" result.
// It drives candidate iteration and never escapes the package: the top of
// the search maps it to ErrUnsatisfiable.
var errPlaceExhausted = errors.New("nback: branch exhausted")

// placed is one position of the partial sequence under construction.
type placed struct {
	t    ItemType
	stim int // resolved placeholder stimulus
}

// placeEngine holds the state of one Place call. Every call gets a fresh
// engine; nothing here is shared across goroutines or reused.
type placeEngine struct {
	// Configuration / policy
	level     int
	maxRepeat int
	length    int
	budget    int // backtrack budget; <0 means unlimited

	// The type multiset: kinds[i] has remaining[i] placements left.
	kinds     []ItemType
	remaining []int

	// Current search state
	items      []placed
	nextFresh  int // next placeholder identity for a filler
	backtracks int

	rng randSource
}

// randSource is the minimal randomness the engine consumes; *rand.Rand
// satisfies it. Narrow on purpose so tests can substitute a scripted source.
type randSource interface {
	Intn(n int) int
}

// newPlaceEngine prepares a fresh engine for spec with resolved options.
func newPlaceEngine(spec Spec, o Options) *placeEngine {
	kinds, remaining := spec.placeableTypes()

	return &placeEngine{
		level:     spec.level,
		maxRepeat: spec.maxRepeat,
		length:    spec.length,
		budget:    o.backtrackBudget(),
		kinds:     kinds,
		remaining: remaining,
		items:     make([]placed, 0, spec.length),
		rng:       o.rng(),
	}
}

// stimBack returns the resolved stimulus back positions before the cursor.
// The caller guarantees back <= len(items).
func (e *placeEngine) stimBack(back int) int {
	return e.items[len(e.items)-back].stim
}

// repeatTight reports whether the repeat limit currently binds: the most
// recent maxRepeat placed items all share one stimulus. maxRepeat == 0
// disables the check; a run shorter than maxRepeat can never be tight.
func (e *placeEngine) repeatTight() bool {
	if e.maxRepeat == 0 || len(e.items) < e.maxRepeat {
		return false
	}
	if e.maxRepeat == 1 {
		return true // any single trailing item is a full-length run
	}

	var (
		last = e.stimBack(1)
		i    int
	)
	for i = 2; i <= e.maxRepeat; i++ {
		if e.stimBack(i) != last {
			return false
		}
	}

	return true
}

// admissible reports whether kinds[ci] may be placed at the current position.
// Counts, reference reach, lure-vs-target distinctness, and repeat-limit
// tightness are all decided here, before any recursion.
func (e *placeEngine) admissible(ci int) bool {
	if e.remaining[ci] <= 0 {
		return false
	}
	t := e.kinds[ci]
	if t.IsFiller() {
		// Fillers are always fresh; no reference, no possible repeat.
		return true
	}

	var (
		depth = len(e.items)
		d     = t.Distance()
	)
	if depth < d {
		return false // backward reference does not exist yet
	}

	// A lure must differ from the would-be target stimulus once the n-back
	// reference exists.
	if t.IsLure() && depth >= e.level && e.stimBack(d) == e.stimBack(e.level) {
		return false
	}

	// Under a tight repeat run, the copied stimulus must break the run.
	if e.repeatTight() && e.stimBack(d) == e.stimBack(1) {
		return false
	}

	return true
}

// push commits kinds[ci] at the current position and resolves its stimulus.
func (e *placeEngine) push(ci int) {
	e.remaining[ci]--
	t := e.kinds[ci]

	var stim int
	if t.IsFiller() {
		stim = e.nextFresh
		e.nextFresh++
	} else {
		stim = e.stimBack(t.Distance())
	}
	e.items = append(e.items, placed{t: t, stim: stim})
}

// pop undoes the most recent push of kinds[ci].
func (e *placeEngine) pop(ci int) {
	e.remaining[ci]++
	last := len(e.items) - 1
	if e.items[last].t.IsFiller() {
		e.nextFresh--
	}
	e.items = e.items[:last]
}

// extend fills the current position and recurses to the next.
// Returns nil when the sequence is complete, errPlaceExhausted when no
// candidate below this node leads to a completion, or ErrSearchAborted.
func (e *placeEngine) extend() error {
	if len(e.items) == e.length {
		return nil // all counts are zero by construction
	}

	// Uniformly random candidate order at every depth on every attempt.
	order := make([]int, len(e.kinds))
	var k int
	for k = range order {
		order[k] = k
	}
	shuffleOrder(order, e.rng)

	var (
		ci  int
		err error
	)
	for _, ci = range order {
		if !e.admissible(ci) {
			continue
		}
		e.push(ci)
		err = e.extend()
		if err == nil {
			return nil
		}
		e.pop(ci)
		if !errors.Is(err, errPlaceExhausted) {
			return err // ErrSearchAborted propagates unchanged
		}
		e.backtracks++
		if e.budget >= 0 && e.backtracks > e.budget {
			return ErrSearchAborted
		}
	}

	return errPlaceExhausted
}

// shuffleOrder is Fisher–Yates over a candidate index slice using the
// engine's randSource (shuffleIntsInPlace requires a concrete *rand.Rand).
func shuffleOrder(a []int, rng randSource) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Place runs the backtracking search and returns a type ordering of length
// spec.Length() satisfying every positional constraint.
//
// Contracts:
//   - spec must come from NewSpec; the zero Spec yields an empty ordering.
//   - Each call owns fresh search state; concurrent calls never interfere.
//   - Candidate order is randomized per depth: repeated calls with the same
//     spec (and different seeds) may return different orderings.
//
// Errors:
//   - ErrUnsatisfiable when position 0 exhausts all candidates.
//   - ErrSearchAborted when the backtrack budget is exceeded.
//
// Complexity: exponential worst case; see the package header.
func Place(spec Spec, opts ...Option) ([]ItemType, error) {
	e := newPlaceEngine(spec, applyOptions(opts))

	if err := e.extend(); err != nil {
		if errors.Is(err, errPlaceExhausted) {
			return nil, ErrUnsatisfiable
		}

		return nil, err
	}

	out := make([]ItemType, len(e.items))
	var i int
	for i = range e.items {
		out[i] = e.items[i].t
	}

	return out, nil
}

// Generate is the canonical entry point: it places a type ordering for spec
// and binds it against a freshly shuffled token pool, returning a complete
// sequence of (type, stimulus) items.
//
// The randomness stream resolved from opts is consumed sequentially by the
// search and then by the pool shuffle, so a fixed seed reproduces the whole
// sequence, not just the ordering.
//
// Errors: those of Place, plus the Bind internal-consistency sentinels
// (unreachable with a validated spec).
func Generate(spec Spec, opts ...Option) (*Sequence, error) {
	o := applyOptions(opts)
	rng := o.rng() // one stream for search + pool

	types, err := Place(spec, WithRand(rng), WithMaxBacktracks(o.MaxBacktracks))
	if err != nil {
		return nil, err
	}

	return Bind(spec, types, NewTokenPool(spec.Fillers(), WithRand(rng)))
}
