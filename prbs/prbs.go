package prbs

import (
	"fmt"
	"math/bits"

	"github.com/jaw0/acdiag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sysid/lfsr"
)

var dl = diag.Logger("prbs")

// RegisterLength returns the smallest register length n with
// 2^n − 1 ≥ length, i.e. ceil(log2(length+1)).
//
// Errors:
//   - ErrInvalidArgument if length < MinSequenceLength.
//   - lfsr.ErrUnsupportedRegisterLength if n < lfsr.MinRegisterLength
//     (a one-sample sequence would need n = 1, which has no tap entry).
//   - ErrSequenceTooLong if n would exceed lfsr.MaxRegisterLength.
//
// Complexity: O(1).
func RegisterLength(length int) (int, error) {
	if err := validateMin(MethodRegisterLength, "length", length, MinSequenceLength); err != nil {
		return 0, err
	}
	// 2^n − 1 ≥ L  ⇔  2^n > L  ⇔  n = bit length of L.
	n := bits.Len(uint(length))
	if n > lfsr.MaxRegisterLength {
		return 0, prbsErrorf(MethodRegisterLength, ErrSequenceTooLong,
			"length %d needs a %d-bit register, max is %d", length, n, lfsr.MaxRegisterLength)
	}
	if n < lfsr.MinRegisterLength {
		return 0, prbsErrorf(MethodRegisterLength, lfsr.ErrUnsupportedRegisterLength,
			"length %d needs a %d-bit register, min is %d", length, n, lfsr.MinRegisterLength)
	}

	return n, nil
}

// Generate returns a length×channels PRBS, one independent maximal-length
// LFSR per channel.
//
// Algorithm:
//  1. Validate length and channels, then pick n = RegisterLength(length).
//     The register period 2^n − 1 is ≥ length, so no channel repeats.
//  2. Resolve one seed per channel, in channel order: WithSeeds if given,
//     otherwise random draws with non-zero low n bits.
//  3. For each channel run lfsr.New(n, seed) for exactly length steps,
//     writing bits into that channel's column.
//
// All validation happens before allocation; on error no Sequence is
// returned.
//
// Errors:
//   - ErrInvalidArgument  — length < 1, channels < 1, or length·channels
//     does not fit in an int.
//   - lfsr.ErrUnsupportedRegisterLength — length needs n < lfsr.MinRegisterLength.
//   - ErrSequenceTooLong  — length needs n > lfsr.MaxRegisterLength.
//   - ErrSeedCount        — WithSeeds count differs from channels.
//   - ErrZeroSeed         — an explicit seed has zero low n bits.
//
// Complexity: O(length·channels) time and memory.
func Generate(length, channels int, opts ...Option) (*Sequence, error) {
	if err := validateMin(MethodGenerate, "length", length, MinSequenceLength); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGenerate, "channels", channels, MinChannels); err != nil {
		return nil, err
	}
	n, err := RegisterLength(length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	if err = validateShape(MethodGenerate, length, channels); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	seeds, err := resolveSeeds(cfg, n, channels)
	if err != nil {
		return nil, err
	}
	dl.Debug("length=%d channels=%d register=%d parallel=%v seeds=%#x", length, channels, n, cfg.parallel, seeds)

	seq := newSequence(length, channels, n, seeds)
	fill := func(c int) error {
		g, err := lfsr.New(n, seeds[c])
		if err != nil {
			return fmt.Errorf("%s: channel %d: %w", MethodGenerate, c, err)
		}
		seq.fillColumn(c, g)

		return nil
	}

	if cfg.parallel && channels > 1 {
		// columns are disjoint in the flat buffer; no locking needed
		var eg errgroup.Group
		for c := 0; c < channels; c++ {
			eg.Go(func() error { return fill(c) })
		}
		if err = eg.Wait(); err != nil {
			return nil, err
		}

		return seq, nil
	}

	for c := 0; c < channels; c++ {
		if err = fill(c); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// resolveSeeds returns the per-channel seeds for an n-bit register.
func resolveSeeds(cfg config, n, channels int) ([]uint64, error) {
	mask := uint64(1)<<uint(n) - 1
	if cfg.seeds != nil {
		if err := validateSeeds(MethodGenerate, cfg.seeds, channels, mask); err != nil {
			return nil, err
		}
		out := make([]uint64, channels)
		copy(out, cfg.seeds)

		return out, nil
	}

	out := make([]uint64, channels)
	for c := range out {
		out[c] = cfg.drawSeed(mask)
	}

	return out, nil
}
