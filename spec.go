// Package nback - specification validation.
//
// NewSpec is the single entry point for building a Spec. It enforces every
// structural feasibility rule eagerly, before any search runs, and derives
// the total sequence length and the multiset of item types to place.
//
// Design principles:
//   - Deterministic, side-effect free validation; only ErrInvalidSpec
//     (wrapped with the violated rule) on bad input.
//   - A Spec is immutable once returned; Place/Generate never mutate it.
package nback

import (
	"fmt"
	"sort"
)

// Spec is a validated, immutable description of one family of n-back
// sequences: the n-level, the requested counts per item type, and the
// optional consecutive-repeat limit.
//
// Build with NewSpec; the zero value is not usable.
type Spec struct {
	level     int
	targets   int
	fillers   int
	lures     map[int]int // distance -> count; private copy, never mutated
	maxRepeat int
	length    int // fillers + targets + sum of lure counts
}

// NewSpec validates the requested parameters and returns a Spec.
//
// Rules (any violation returns an error wrapping ErrInvalidSpec):
//   - level >= 1; targets, fillers and every lure count >= 0; maxRepeat >= 0.
//   - Every lure distance is >= 1 and differs from level (a lure at the
//     n-level distance would be indistinguishable from a target).
//   - fillers >= min(level, lowest lure distance): the first backward
//     reference needs that many fresh stimuli before it.
//   - For every lure distance d with count c: d + c <= total length.
//   - maxRepeat == 1 conflicts with level == 1 and with 1-distance lures
//     (both would force an immediate repeat).
//
// lures may be nil or empty. Zero-count lure entries are dropped.
//
// Complexity: O(L) where L is the number of lure distances.
func NewSpec(level, targets, fillers int, lures map[int]int, maxRepeat int) (Spec, error) {
	if level < 1 {
		return Spec{}, fmt.Errorf("n-level must be >= 1: %w", ErrInvalidSpec)
	}
	if targets < 0 || fillers < 0 {
		return Spec{}, fmt.Errorf("item counts cannot be negative: %w", ErrInvalidSpec)
	}
	if maxRepeat < 0 {
		return Spec{}, fmt.Errorf("max repeat cannot be negative: %w", ErrInvalidSpec)
	}

	// Copy and vet the lure table; zero-count entries carry no constraint.
	var (
		kept     = make(map[int]int, len(lures))
		minDist  = level // lowest backward distance in play, incl. the n-level
		lureSum  = 0
		d, c     int
		hasOne   bool // a 1-distance lure was requested
		overflow int  // max over lures of d + c
	)
	for d, c = range lures {
		if c < 0 {
			return Spec{}, fmt.Errorf("item counts cannot be negative: %w", ErrInvalidSpec)
		}
		if d < 1 {
			return Spec{}, fmt.Errorf("lure distances must be positive: %w", ErrInvalidSpec)
		}
		if d == level {
			return Spec{}, fmt.Errorf("lure distance %d equals the n-level: %w", d, ErrInvalidSpec)
		}
		if c == 0 {
			continue
		}
		kept[d] = c
		lureSum += c
		if d < minDist {
			minDist = d
		}
		if d == 1 {
			hasOne = true
		}
		if d+c > overflow {
			overflow = d + c
		}
	}

	if fillers < minDist {
		return Spec{}, fmt.Errorf("need at least %d fillers (lowest of n-level and lure distances): %w",
			minDist, ErrInvalidSpec)
	}

	var length int
	length = fillers + targets + lureSum
	if overflow > length {
		return Spec{}, fmt.Errorf("lure distance+count exceeds sequence length %d: %w", length, ErrInvalidSpec)
	}

	if maxRepeat == 1 {
		if level == 1 {
			return Spec{}, fmt.Errorf("n-level and max repeat cannot both be 1: %w", ErrInvalidSpec)
		}
		if hasOne {
			return Spec{}, fmt.Errorf("max repeat of 1 conflicts with 1-distance lures: %w", ErrInvalidSpec)
		}
	}

	return Spec{
		level:     level,
		targets:   targets,
		fillers:   fillers,
		lures:     kept,
		maxRepeat: maxRepeat,
		length:    length,
	}, nil
}

// Level returns the n-level defining targets.
func (s Spec) Level() int { return s.level }

// Targets returns the requested number of targets.
func (s Spec) Targets() int { return s.targets }

// Fillers returns the requested number of fillers. This is also the number
// of distinct stimuli a finished sequence contains.
func (s Spec) Fillers() int { return s.fillers }

// MaxRepeat returns the consecutive-repeat limit; 0 means unlimited.
func (s Spec) MaxRepeat() int { return s.maxRepeat }

// Length returns the derived total sequence length.
func (s Spec) Length() int { return s.length }

// Lures returns a copy of the lure table (distance -> count).
func (s Spec) Lures() map[int]int {
	out := make(map[int]int, len(s.lures))
	var d, c int
	for d, c = range s.lures {
		out[d] = c
	}

	return out
}

// placeableTypes returns the distinct item types of the multiset together
// with their counts, in a deterministic order: filler, target, then lures by
// ascending distance. Only types with positive counts appear. The slices are
// fresh on every call; a search owns its copy exclusively.
func (s Spec) placeableTypes() ([]ItemType, []int) {
	kinds := make([]ItemType, 0, 2+len(s.lures))
	counts := make([]int, 0, 2+len(s.lures))

	if s.fillers > 0 {
		kinds = append(kinds, Filler())
		counts = append(counts, s.fillers)
	}
	if s.targets > 0 {
		kinds = append(kinds, Target(s.level))
		counts = append(counts, s.targets)
	}

	dists := make([]int, 0, len(s.lures))
	var d int
	for d = range s.lures {
		dists = append(dists, d)
	}
	sort.Ints(dists)
	for _, d = range dists {
		kinds = append(kinds, Lure(d))
		counts = append(counts, s.lures[d])
	}

	return kinds, counts
}
