// Package nback - RNG utilities shared by the search and the token pool.
//
// This file centralizes random generation for the whole package.
//
// Goals:
//   - Determinism: same seed => identical sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; randomness is always caller-replaceable.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generate/Place call resolves
//     its own stream; never share one *rand.Rand across concurrent calls.
package nback

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// shuffleStringsInPlace performs an in-place Fisher–Yates shuffle of a.
// Same policy as shuffleIntsInPlace; used by Rebind.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleStringsInPlace(a []string, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a shuffled permutation of 0..n-1 generated from rng.
// For n<=0 it returns an empty slice. Allocation is required by contract
// (the returned permutation slice).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}
