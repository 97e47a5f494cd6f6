// SPDX-License-Identifier: MIT
// Package grid: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Randomness is explicit: without WithSeed/WithRand the package-level
//     source is used and results are not reproducible.

package grid

import "math/rand"

// Defaults (single source of truth).
const (
	// DefaultValueBound is the exclusive upper bound of generated values.
	DefaultValueBound = 99

	// MinSize is the exclusive lower bound accepted by ParseSize.
	MinSize = 1

	// MaxSize is the inclusive upper bound accepted by ParseSize.
	MaxSize = 10
)

const (
	panicRandNil     = "grid: WithRand(nil)"
	panicBoundNonPos = "grid: WithBound(bound<=0)"
)

// Option customizes Generate.
type Option func(*genConfig)

// genConfig is resolved once per Generate call and passed by value.
type genConfig struct {
	rng   *rand.Rand // nil → package-level source
	bound int        // exclusive upper bound, > 0
}

// newGenConfig applies opts in order over the defaults; last wins.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:   nil,
		bound: DefaultValueBound,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// intn draws from the configured source.
func (c genConfig) intn(n int) int {
	if c.rng == nil {
		return rand.Intn(n)
	}

	return c.rng.Intn(n)
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded *rand.Rand so that Generate is reproducible.
// Use it in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBound sets the exclusive upper bound of generated values.
// Panics if bound <= 0.
func WithBound(bound int) Option {
	if bound <= 0 {
		panic(panicBoundNonPos)
	}
	return func(c *genConfig) {
		c.bound = bound
	}
}
