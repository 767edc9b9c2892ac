// SPDX-License-Identifier: MIT
// Package: sysid/prbs
//
// config.go — internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for Generate knobs.
//   • newConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • rng      = nil   (draw from the process-wide math/rand source)
//   • seeds    = nil   (one random draw per channel)
//   • parallel = false (channels generated one after another)

package prbs

import (
	"math/rand"
)

// config aggregates all knobs used by Generate.
type config struct {
	// Seed source; nil means the goroutine-safe top-level math/rand functions.
	rng *rand.Rand
	// Explicit per-channel seeds; overrides rng when non-nil.
	seeds []uint64
	// Fan channels out over goroutines.
	parallel bool
}

// newConfig builds a config from defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// drawSeed returns a wide random seed whose low n bits (mask) are not all
// zero. Draws are redrawn until usable; with n ≥ 2 a redraw is needed with
// probability at most 1/4.
func (c config) drawSeed(mask uint64) uint64 {
	for {
		var s uint64
		if c.rng != nil {
			s = c.rng.Uint64()
		} else {
			s = rand.Uint64()
		}
		if s&mask != 0 {
			return s
		}
	}
}
