// SPDX-License-Identifier: MIT
// Package: sysid/prbs
//
// errors.go — sentinel errors for the prbs package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match with errors.Is.
//   • Validation happens before any allocation; failures never carry a
//     partial Sequence.
//   • Seed-related sentinels wrap ErrInvalidArgument so callers can branch
//     on the broad class or the exact cause.
//   • lfsr.ErrUnsupportedRegisterLength surfaces unchanged from lfsr.

package prbs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive length or channel count, or an
// unusable explicit seed set.
var ErrInvalidArgument = errors.New("prbs: invalid argument")

// ErrSequenceTooLong indicates that the requested length needs a register
// longer than lfsr.MaxRegisterLength.
var ErrSequenceTooLong = errors.New("prbs: sequence too long")

// ErrZeroSeed indicates an explicit seed whose low n bits are all zero; such
// a register would emit a constant-zero sequence.
var ErrZeroSeed = fmt.Errorf("prbs: degenerate zero seed: %w", ErrInvalidArgument)

// ErrSeedCount indicates that WithSeeds supplied a different number of seeds
// than channels.
var ErrSeedCount = fmt.Errorf("prbs: seed count does not match channels: %w", ErrInvalidArgument)

// ErrOutOfRange indicates a Sequence index outside its shape.
var ErrOutOfRange = errors.New("prbs: index out of range")

// prbsErrorf wraps err with method context and a formatted detail.
func prbsErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
