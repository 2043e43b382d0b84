package nback

import "math/rand"

// defaultMaxBacktracks bounds the search before it reports ErrSearchAborted.
// Interactive sequence sizes (a few dozen to a few hundred positions) resolve
// in far fewer undo steps; the ceiling only exists to fail fast on a
// pathological specification that validation could not rule out.
const defaultMaxBacktracks = 1 << 20

// Option configures optional behavior of Place, Generate, NewTokenPool and
// Rebind. Use with Generate(spec, opts...).
type Option func(*Options)

// Options holds configurable parameters for sequence generation.
type Options struct {
	// Rand, if non-nil, is the randomness source consumed by the search,
	// the token pool shuffle, and Rebind. It takes precedence over Seed.
	// A *rand.Rand is not goroutine-safe; do not share one across
	// concurrent Generate calls.
	Rand *rand.Rand

	// Seed selects a deterministic stream when Rand is nil.
	// Seed == 0 selects the fixed default stream.
	Seed int64

	// MaxBacktracks is the number of undo steps allowed before the search
	// fails with ErrSearchAborted. 0 selects the package default; a negative
	// value disables the budget entirely.
	MaxBacktracks int
}

// DefaultOptions returns an Options struct with:
//   - no explicit randomness source (deterministic default stream)
//   - the default backtrack budget
func DefaultOptions() Options {
	return Options{
		Rand:          nil,
		Seed:          0,
		MaxBacktracks: 0,
	}
}

// WithRand returns an Option that installs rng as the randomness source.
// Passing nil has no effect (the seed-derived stream is retained).
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed returns an Option that selects a deterministic stream by seed.
// Ignored when WithRand supplied an explicit source. Seed 0 keeps the fixed
// default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxBacktracks returns an Option that sets the backtrack budget.
// 0 restores the package default; negative means unlimited.
func WithMaxBacktracks(n int) Option {
	return func(o *Options) {
		o.MaxBacktracks = n
	}
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// rng resolves the effective randomness source for one call.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// backtrackBudget resolves the effective budget: <0 unlimited, 0 default.
func (o Options) backtrackBudget() int {
	if o.MaxBacktracks == 0 {
		return defaultMaxBacktracks
	}

	return o.MaxBacktracks
}
