package nback_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nback"
)

func TestNewTokenPool_UniqueIdentities(t *testing.T) {
	pool := nback.NewTokenPool(5, nback.WithSeed(9))
	assert.Equal(t, 5, pool.Remaining())

	got := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		tok, err := pool.Next()
		require.NoError(t, err)
		got = append(got, tok)
	}
	assert.Equal(t, 0, pool.Remaining())

	// The pool is a permutation of 0..4.
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	_, err := pool.Next()
	assert.ErrorIs(t, err, nback.ErrTokenPoolExhausted)
}

func TestNewTokenPool_Empty(t *testing.T) {
	pool := nback.NewTokenPool(0)
	assert.Equal(t, 0, pool.Remaining())

	_, err := pool.Next()
	assert.ErrorIs(t, err, nback.ErrTokenPoolExhausted)
}

func TestRebind_AssignsDistinctWords(t *testing.T) {
	spec, err := nback.NewSpec(2, 3, 4, nil, 0)
	require.NoError(t, err)
	seq, err := nback.Generate(spec, nback.WithSeed(5))
	require.NoError(t, err)

	words := []string{"oak", "elm", "fir", "ash", "yew"}
	dropped, err := seq.Rebind(words, false)
	require.NoError(t, err)
	assert.Zero(t, dropped)

	// Equality pattern survives the rebinding.
	items := seq.Items()
	for i, it := range items {
		assert.NotEmpty(t, it.Word)
		if !it.Type.IsFiller() {
			assert.Equal(t, items[i-it.Type.Distance()].Word, it.Word)
		}
	}

	// Fillers map to pairwise distinct words.
	seen := make(map[string]bool)
	for _, it := range items {
		if it.Type.IsFiller() {
			assert.False(t, seen[it.Word], "filler word %q reused", it.Word)
			seen[it.Word] = true
		}
	}
}

func TestRebind_DropsDuplicatesWithCount(t *testing.T) {
	spec, err := nback.NewSpec(1, 2, 2, nil, 0)
	require.NoError(t, err)
	seq, err := nback.Generate(spec, nback.WithSeed(5))
	require.NoError(t, err)

	dropped, err := seq.Rebind([]string{"cat", "cat", "dog"}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped, "one duplicate must be reported, not ignored")
}

func TestRebind_InsufficientWords(t *testing.T) {
	spec, err := nback.NewSpec(1, 2, 2, nil, 0)
	require.NoError(t, err)
	seq, err := nback.Generate(spec, nback.WithSeed(5))
	require.NoError(t, err)

	dropped, err := seq.Rebind([]string{"cat", "cat"}, false)
	assert.ErrorIs(t, err, nback.ErrInsufficientWords)
	assert.Equal(t, 1, dropped)
	assert.ErrorContains(t, err, "have 1 unique words, need 2")

	// The sequence is left untouched on failure.
	for _, it := range seq.Items() {
		assert.Empty(t, it.Word)
	}
}

func TestRebind_DoesNotMutateInput(t *testing.T) {
	spec, err := nback.NewSpec(1, 2, 2, nil, 0)
	require.NoError(t, err)
	seq, err := nback.Generate(spec, nback.WithSeed(5))
	require.NoError(t, err)

	words := []string{"alpha", "beta", "gamma"}
	_, err = seq.Rebind(words, true, nback.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words, "shuffle must work on a copy")
}
