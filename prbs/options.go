// SPDX-License-Identifier: MIT
// Package: sysid/prbs
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless input; Generate never panics.
//   • Reproducibility is explicit: WithSeed, WithRand or WithSeeds.

package prbs

import (
	"math/rand"
)

// Option customizes a Generate call.
type Option func(*config)

// WithRand draws channel seeds from r. r is only used from the calling
// goroutine, even with WithParallel. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("prbs: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws channel seeds from a fresh source seeded with seed, making
// the whole output reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSeeds fixes the register seed of every channel, in channel order.
// Generate rejects the call unless len(seeds) equals the channel count and
// every seed has a non-zero low n bits. Panics on an empty list.
func WithSeeds(seeds ...uint64) Option {
	if len(seeds) == 0 {
		panic("prbs: WithSeeds()")
	}
	own := make([]uint64, len(seeds))
	copy(own, seeds)
	return func(c *config) {
		c.seeds = own
	}
}

// WithParallel generates channels concurrently. Output is identical to the
// sequential path.
func WithParallel() Option {
	return func(c *config) {
		c.parallel = true
	}
}
