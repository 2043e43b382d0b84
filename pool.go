// Package nback - token pool and word rebinding.
//
// A TokenPool supplies one unique placeholder identity per filler, in a
// uniformly shuffled order, consumed front-to-back. Rebind later replaces
// the placeholder identities of a finished sequence with externally
// supplied words.
package nback

import "fmt"

// TokenPool is a shuffled pool of unique placeholder identities.
// It is consumed by a single Bind call and must not be shared.
type TokenPool struct {
	tokens []int
	next   int
}

// NewTokenPool returns a pool of the identities 0..fillers-1 in uniformly
// shuffled order. fillers <= 0 yields an empty pool.
//
// Complexity: O(fillers).
func NewTokenPool(fillers int, opts ...Option) *TokenPool {
	o := applyOptions(opts)

	return &TokenPool{tokens: permRange(fillers, o.rng())}
}

// Next returns the next unused identity, or ErrTokenPoolExhausted when the
// pool is empty.
func (p *TokenPool) Next() (int, error) {
	if p.next >= len(p.tokens) {
		return 0, ErrTokenPoolExhausted
	}
	tok := p.tokens[p.next]
	p.next++

	return tok, nil
}

// Remaining returns how many identities are still unused.
func (p *TokenPool) Remaining() int { return len(p.tokens) - p.next }

// Rebind replaces the sequence's placeholder identities with words.
//
// Words are consumed in order (after an optional uniform shuffle when
// randomize is true) until one distinct word per filler has been selected.
// Duplicate input words are dropped and counted, never silently ignored;
// the dropped count is returned alongside any error.
//
// Errors:
//   - ErrInsufficientWords when fewer distinct words remain than the
//     sequence has fillers; the wrapping message carries available vs.
//     needed counts.
//
// The input slice is never mutated; the shuffle works on a copy.
// On error the sequence is left untouched.
//
// Complexity: O(W + L) time for W input words and sequence length L.
func (s *Sequence) Rebind(words []string, randomize bool, opts ...Option) (dropped int, err error) {
	o := applyOptions(opts)

	pool := make([]string, len(words))
	copy(pool, words)
	if randomize {
		shuffleStringsInPlace(pool, o.rng())
	}

	var (
		need     = s.spec.fillers
		selected = make([]string, 0, need)
		seen     = make(map[string]struct{}, need)
		w        string
		ok       bool
	)
	for _, w = range pool {
		if len(selected) == need {
			break
		}
		if _, ok = seen[w]; ok {
			dropped++
			continue
		}
		seen[w] = struct{}{}
		selected = append(selected, w)
	}
	if len(selected) < need {
		return dropped, fmt.Errorf("have %d unique words, need %d: %w",
			len(selected), need, ErrInsufficientWords)
	}

	var i int
	for i = range s.items {
		s.items[i].Word = selected[s.items[i].Stim]
	}

	return dropped, nil
}
