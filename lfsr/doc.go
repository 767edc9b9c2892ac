// Package lfsr implements maximal-length Fibonacci linear feedback shift
// registers over GF(2) for register lengths 2..34.
//
// 🚀 What is an LFSR?
//
//	An n-bit register whose next input bit is the XOR of a few fixed
//	positions ("taps"). With a primitive tap set the register walks through
//	every non-zero state exactly once before repeating, so its output has
//	period 2^n − 1. The output approximates white noise over that window and
//	is the classic source of PRBS excitation signals.
//
// ✨ Key features:
//   - fixed, trusted tap table (TapTable) for n ∈ [MinRegisterLength, MaxRegisterLength]
//   - bit-packed register: state lives in a single uint64, width enforced by mask
//   - O(1) Step via popcount parity, O(k) bulk Read
//   - no allocation after New
//
// ⚙️ Usage:
//
//	g, err := lfsr.New(5, 1) // taps {2,5}, state [1,0,0,0,0]
//	if err != nil {
//	  // ErrUnsupportedRegisterLength
//	}
//	b0 := g.Step() // 0
//	b1 := g.Step() // 1
//
// Seeds:
//
//	The initial state is the n low-order bits of the seed, least significant
//	first. A seed whose low n bits are all zero leaves the register stuck at
//	zero forever (period 1). New accepts it; Degenerate reports it. Callers
//	that need a real PRBS must supply a non-degenerate seed.
//
// Performance:
//
//   - Time:   O(1) per Step
//   - Memory: O(1) per Generator
package lfsr
