package lfsr_test

import (
	"testing"

	"github.com/katalvlaran/sysid/lfsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedbackPoly returns the characteristic polynomial of the recurrence
// a[k] = ⊕ a[k-t] over taps: p(x) = x^n + Σ x^(n-t), bit i = coefficient of x^i.
func feedbackPoly(n int, taps []int) uint64 {
	p := uint64(1) << uint(n)
	for _, t := range taps {
		p |= 1 << uint(n-t)
	}

	return p
}

// mulMod multiplies a·b in GF(2)[x] / p(x); a and b have degree < n.
func mulMod(a, b, p uint64, n int) uint64 {
	var r uint64
	for i := n - 1; i >= 0; i-- {
		r <<= 1
		if r>>uint(n)&1 == 1 {
			r ^= p
		}
		if b>>uint(i)&1 == 1 {
			r ^= a
		}
	}

	return r
}

// powX returns x^e mod p(x).
func powX(e, p uint64, n int) uint64 {
	r, b := uint64(1), uint64(2)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulMod(r, b, p, n)
		}
		b = mulMod(b, b, p, n)
	}

	return r
}

// primeFactors returns the distinct prime factors of m by trial division.
func primeFactors(m uint64) []uint64 {
	var out []uint64
	for q := uint64(2); q*q <= m; q++ {
		if m%q != 0 {
			continue
		}
		out = append(out, q)
		for m%q == 0 {
			m /= q
		}
	}
	if m > 1 {
		out = append(out, m)
	}

	return out
}

// TestTaps_PrimitivePolynomials proves the maximal period for every table
// entry algebraically: x has multiplicative order exactly 2^n − 1 modulo the
// feedback polynomial, so the register cycles through all non-zero states.
// This covers the register lengths too long to walk in TestStep_MaximalPeriod.
func TestTaps_PrimitivePolynomials(t *testing.T) {
	for n := lfsr.MinRegisterLength; n <= lfsr.MaxRegisterLength; n++ {
		taps, err := lfsr.Taps(n)
		require.NoError(t, err)
		period, err := lfsr.Period(n)
		require.NoError(t, err)

		p := feedbackPoly(n, taps)
		require.Equal(t, uint64(1), p&1, "n=%d: constant term needs tap n", n)
		assert.Equal(t, uint64(1), powX(period, p, n), "n=%d: x^(2^n-1) must be 1", n)
		for _, q := range primeFactors(period) {
			assert.NotEqual(t, uint64(1), powX(period/q, p, n),
				"n=%d: order of x divides (2^n-1)/%d", n, q)
		}
	}
}

// TestTaps_PrimitiveDetectsBadTaps checks that the order test rejects a
// reducible feedback polynomial: x^4 + x^2 + 1 = (x^2 + x + 1)^2.
func TestTaps_PrimitiveDetectsBadTaps(t *testing.T) {
	p := feedbackPoly(4, []int{2, 4})
	period := uint64(15)

	primitive := powX(period, p, 4) == 1
	for _, q := range primeFactors(period) {
		if powX(period/q, p, 4) == 1 {
			primitive = false
		}
	}
	assert.False(t, primitive)
}
