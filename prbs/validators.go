package prbs

import "math"

// validateMin ensures got ≥ min, returning an ErrInvalidArgument wrapped as
// "<Method>: <name> must be ≥ <min>, got <got>" otherwise.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return prbsErrorf(method, ErrInvalidArgument, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateSeeds checks explicit seeds against the channel count and rejects
// any seed whose low n bits are zero.
// Complexity: O(len(seeds)).
func validateSeeds(method string, seeds []uint64, channels int, mask uint64) error {
	if len(seeds) != channels {
		return prbsErrorf(method, ErrSeedCount, "%d seeds for %d channels", len(seeds), channels)
	}
	for c, s := range seeds {
		if s&mask == 0 {
			return prbsErrorf(method, ErrZeroSeed, "channel %d seed %#x", c, s)
		}
	}

	return nil
}

// validateShape rejects length×channels products that overflow int.
// Both values must already be ≥ 1.
// Complexity: O(1).
func validateShape(method string, length, channels int) error {
	if length > math.MaxInt/channels {
		return prbsErrorf(method, ErrInvalidArgument, "%d×%d samples overflow int", length, channels)
	}

	return nil
}
