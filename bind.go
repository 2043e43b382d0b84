// Package nback - stimulus binding.
//
// Bind is purely mechanical: given a valid type ordering it walks the
// positions once, drawing a fresh pool token for every filler and copying
// the already-bound stimulus at the backward distance for every target and
// lure. It performs no search and returns no partial result on failure.
package nback

import "fmt"

// Bind assigns concrete placeholder stimuli to a type ordering and returns
// the finished sequence.
//
// Contracts:
//   - types is expected to come from Place for the same spec; Bind still
//     guards every backward reference and pool draw.
//   - pool must hold at least one token per filler in types.
//
// Errors:
//   - ErrInvalidTypeOrder when a type's distance reaches before position 0.
//   - ErrTokenPoolExhausted when a filler finds the pool empty. Both signal
//     an internal accounting defect, not a recoverable condition.
//
// Complexity: O(L) time, O(L) space for the returned sequence.
func Bind(spec Spec, types []ItemType, pool *TokenPool) (*Sequence, error) {
	items := make([]Item, len(types))

	var (
		i    int
		t    ItemType
		stim int
		err  error
	)
	for i, t = range types {
		if t.IsFiller() {
			stim, err = pool.Next()
			if err != nil {
				return nil, fmt.Errorf("filler at position %d: %w", i+1, err)
			}
		} else {
			if t.Distance() > i {
				return nil, fmt.Errorf("%s at position %d: %w", t.Label(), i+1, ErrInvalidTypeOrder)
			}
			stim = items[i-t.Distance()].Stim
		}
		items[i] = Item{Type: t, Stim: stim}
	}

	return &Sequence{spec: spec, items: items}, nil
}
