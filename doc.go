// Package nback generates n-back stimulus sequences for cognitive tasks.
//
// An n-back sequence is an ordered list of stimuli built from three item
// types:
//
//   - Target — repeats the stimulus that appeared n positions earlier.
//   - Lure(d) — repeats the stimulus d positions earlier (d ≠ n) while
//     differing from the n-back stimulus.
//   - Filler — introduces a stimulus not previously used in the sequence.
//
// A sequence may mix any number of lure distances: a 3-back sequence can
// carry 1-lures, 2-lures, 4-lures and so on. An optional repeat limit bounds
// how many consecutive positions may share one stimulus.
//
// Workflow:
//
//	spec, err := nback.NewSpec(3, 5, 5, map[int]int{1: 2, 2: 4}, 0)
//	seq, err := nback.Generate(spec, nback.WithSeed(42))
//	dropped, err := seq.Rebind(words, true)
//	err = seq.WriteCSV(os.Stdout)
//
// NewSpec validates every structural feasibility rule eagerly; Place runs
// the backtracking search over item types; Bind resolves concrete stimuli
// against a shuffled TokenPool; Rebind swaps placeholder identities for
// external words. Generate chains place-and-bind in one call.
//
// Generation is single-threaded and synchronous. Each call owns its search
// state, so independent calls may run concurrently; a single *rand.Rand must
// not be shared between them.
//
// Errors are strict sentinels (ErrInvalidSpec, ErrUnsatisfiable,
// ErrSearchAborted, ErrInsufficientWords, …) wrapped with the specific
// violated rule; test with errors.Is. A failed call returns no partial
// sequence.
package nback
