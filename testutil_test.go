package nback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nback"
)

// verifySequence asserts every positional invariant of a finished sequence:
// exact length, exhausted type counts, target/lure backward equality, the
// lure vs. n-back difference, pairwise-distinct fillers, and the repeat limit.
func verifySequence(t *testing.T, spec nback.Spec, seq *nback.Sequence) {
	t.Helper()

	items := seq.Items()
	require.Len(t, items, spec.Length())

	var (
		level      = spec.Level()
		fillers    = 0
		targets    = 0
		lureSeen   = make(map[int]int)
		fillerStim = make(map[int]int) // stim -> first position
	)
	for i, it := range items {
		switch {
		case it.Type.IsFiller():
			fillers++
			if prev, dup := fillerStim[it.Stim]; dup {
				t.Errorf("filler stimulus %d reused at positions %d and %d", it.Stim, prev+1, i+1)
			}
			fillerStim[it.Stim] = i

		case it.Type.IsTarget():
			targets++
			require.GreaterOrEqual(t, i, level, "target before its reference exists")
			assert.Equal(t, items[i-level].Stim, it.Stim,
				"target at position %d must repeat the %d-back stimulus", i+1, level)

		default:
			d := it.Type.Distance()
			lureSeen[d]++
			require.GreaterOrEqual(t, i, d, "lure before its reference exists")
			assert.Equal(t, items[i-d].Stim, it.Stim,
				"%d-lure at position %d must repeat the %d-back stimulus", d, i+1, d)
			if i >= level {
				assert.NotEqual(t, items[i-level].Stim, it.Stim,
					"%d-lure at position %d must differ from the n-back stimulus", d, i+1)
			}
		}
	}

	assert.Equal(t, spec.Fillers(), fillers, "filler count")
	assert.Equal(t, spec.Targets(), targets, "target count")
	assert.Equal(t, spec.Lures(), nonEmpty(lureSeen), "lure counts")

	if mr := spec.MaxRepeat(); mr > 0 {
		run := 1
		for i := 1; i < len(items); i++ {
			if items[i].Stim == items[i-1].Stim {
				run++
				assert.LessOrEqual(t, run, mr,
					"repeat limit violated at position %d", i+1)
			} else {
				run = 1
			}
		}
	}
}

// nonEmpty drops zero-valued entries so map comparisons ignore absent lures.
func nonEmpty(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		if v != 0 {
			out[k] = v
		}
	}

	return out
}
