// SPDX-License-Identifier: MIT
// Package: sysid/lfsr
//
// taps.go — the maximal-length tap table.
//
// Contract:
//   • tapTable[n] lists the 1-indexed tap positions for an n-bit register.
//   • Every entry ends with n (its largest tap equals the register length).
//   • Entries encode primitive polynomials over GF(2); they are constants and
//     are never recomputed at runtime.
//   • Slots 0 and 1 are empty: the table starts at MinRegisterLength.

package lfsr

const (
	// MethodTaps is the canonical name for the Taps lookup.
	MethodTaps = "Taps"
	// MethodPeriod is the canonical name for the Period helper.
	MethodPeriod = "Period"
)

// MinRegisterLength is the shortest register with a tap table entry.
const MinRegisterLength = 2

// MaxRegisterLength is the longest register with a tap table entry.
// Complexity impact: state fits in a uint64 for every supported n.
const MaxRegisterLength = 34

// tapTable maps register length n → ordered tap positions.
var tapTable = [MaxRegisterLength + 1][]int{
	2:  {1, 2},
	3:  {1, 3},
	4:  {1, 4},
	5:  {2, 5},
	6:  {1, 6},
	7:  {3, 7},
	8:  {2, 3, 4, 8},
	9:  {4, 9},
	10: {3, 10},
	11: {2, 11},
	12: {1, 4, 6, 12},
	13: {1, 3, 4, 13},
	14: {1, 6, 10, 14},
	15: {1, 15},
	16: {1, 3, 12, 16},
	17: {3, 17},
	18: {7, 18},
	19: {1, 2, 5, 19},
	20: {3, 20},
	21: {2, 21},
	22: {1, 22},
	23: {5, 23},
	24: {1, 2, 7, 24},
	25: {3, 25},
	26: {1, 2, 6, 26},
	27: {1, 2, 5, 27},
	28: {3, 28},
	29: {2, 29},
	30: {1, 2, 23, 30},
	31: {3, 31},
	32: {1, 2, 22, 32},
	33: {13, 33},
	34: {1, 2, 27, 34},
}

// Supported reports whether n has an entry in the tap table.
// Complexity: O(1).
func Supported(n int) bool {
	return n >= MinRegisterLength && n <= MaxRegisterLength
}

// Taps returns the tap positions for an n-bit register, in ascending order.
// The returned slice is a copy; mutating it does not affect the table.
//
// Errors:
//   - ErrUnsupportedRegisterLength if n ∉ [MinRegisterLength, MaxRegisterLength].
//
// Complexity: O(len(taps)).
func Taps(n int) ([]int, error) {
	if !Supported(n) {
		return nil, lfsrErrorf(MethodTaps, ErrUnsupportedRegisterLength,
			"n must be in [%d,%d], got %d", MinRegisterLength, MaxRegisterLength, n)
	}
	out := make([]int, len(tapTable[n]))
	copy(out, tapTable[n])

	return out, nil
}

// Period returns 2^n − 1, the length of the output cycle of a maximal-length
// n-bit register started from a non-zero state.
//
// Errors:
//   - ErrUnsupportedRegisterLength if n ∉ [MinRegisterLength, MaxRegisterLength].
func Period(n int) (uint64, error) {
	if !Supported(n) {
		return 0, lfsrErrorf(MethodPeriod, ErrUnsupportedRegisterLength,
			"n must be in [%d,%d], got %d", MinRegisterLength, MaxRegisterLength, n)
	}

	return widthMask(n), nil
}

// tapMask packs 1-indexed tap positions into a bit mask (tap t → bit t-1).
func tapMask(taps []int) uint64 {
	var m uint64
	for _, t := range taps {
		m |= 1 << uint(t-1)
	}

	return m
}

// widthMask returns a mask with the n low bits set.
func widthMask(n int) uint64 {
	return 1<<uint(n) - 1
}
