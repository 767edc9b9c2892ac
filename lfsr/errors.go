// SPDX-License-Identifier: MIT
// Package: sysid/lfsr
//
// errors.go — sentinel errors for the lfsr package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Detection sites attach context with %w (see lfsrErrorf).

package lfsr

import (
	"errors"
	"fmt"
)

// ErrUnsupportedRegisterLength indicates that a register length n has no
// entry in the tap table (n < MinRegisterLength or n > MaxRegisterLength).
// Usage: if errors.Is(err, ErrUnsupportedRegisterLength) { /* pick 2..34 */ }.
var ErrUnsupportedRegisterLength = errors.New("lfsr: unsupported register length")

// lfsrErrorf prefixes err with the method name and a formatted detail,
// keeping the sentinel reachable through errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func lfsrErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
