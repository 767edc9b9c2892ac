// Package prbs builds pseudo-random binary sequences for system-identification
// experiments, one maximal-length LFSR per input channel.
//
// 🚀 What is a PRBS?
//
//	A deterministic 0/1 sequence that approximates white noise over a finite
//	bandwidth. It is the standard excitation signal when identifying a plant:
//	rich in frequencies, bounded amplitude, reproducible.
//
// ✨ Key features:
//   - register length chosen from the requested length: the smallest n with
//     2^n − 1 ≥ length, so a sequence never repeats inside its window
//   - independent register per channel, seeded from a random source or
//     explicitly via WithSeeds
//   - degenerate (all-zero) seeds are never drawn and rejected when explicit
//   - optional per-channel parallelism (WithParallel), bit-identical output
//   - time-major Sequence with safe accessors and Levels mapping to any
//     numeric amplitude pair (e.g. −1/+1)
//
// ⚙️ Usage:
//
//	seq, err := prbs.Generate(25, 2, prbs.WithSeed(7))
//	if err != nil {
//	  // ErrInvalidArgument, ErrSequenceTooLong, ErrZeroSeed …
//	}
//	seq.RegisterLength() // 5, since 2^5 − 1 = 31 ≥ 25
//	u := prbs.Levels(seq, -1.0, 1.0)
//
// Logging:
//
//	Generation details go to the acdiag section "prbs"; enable them with
//	diag.SetConfig(&diag.Config{Debug: map[string]bool{"prbs": true}}).
//
// Performance:
//
//   - Time:   O(length·channels)
//   - Memory: O(length·channels) bytes
package prbs
