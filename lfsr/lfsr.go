package lfsr

import (
	"fmt"
	"math/bits"
)

// MethodNew is the canonical name for the New constructor.
const MethodNew = "New"

// Generator is a Fibonacci LFSR with a bit-packed register.
//
// Layout:
//   - bit i of reg is state[i]; state[0] is the most recently inserted bit.
//   - taps is the packed tap mask (tap t ↔ bit t-1).
//   - mask keeps the register exactly n bits wide.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	n    int
	reg  uint64
	taps uint64
	mask uint64
}

var _ fmt.Stringer = (*Generator)(nil)

// New builds an n-bit generator whose initial state is the n low-order bits
// of seed, least significant bit first (state[i] = bit i of seed).
//
// A seed with zero low n bits is accepted; the resulting register never
// leaves the all-zero state. See Degenerate.
//
// Errors:
//   - ErrUnsupportedRegisterLength if n has no tap table entry.
//
// Complexity: O(len(taps)).
func New(n int, seed uint64) (*Generator, error) {
	taps, err := Taps(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNew, err)
	}
	mask := widthMask(n)

	return &Generator{
		n:    n,
		reg:  seed & mask,
		taps: tapMask(taps),
		mask: mask,
	}, nil
}

// Step computes the feedback bit from the current state, shifts it in at the
// head (dropping the tail bit) and returns it.
//
//	new   = ⊕ state[t-1] for t in taps
//	state = [new] ++ state[0:n-1]
//
// Complexity: O(1).
func (g *Generator) Step() uint8 {
	b := uint64(bits.OnesCount64(g.reg&g.taps) & 1)
	g.reg = (g.reg<<1 | b) & g.mask

	return uint8(b)
}

// Read fills dst with successive Step outputs and returns len(dst).
// Complexity: O(len(dst)).
func (g *Generator) Read(dst []uint8) int {
	for i := range dst {
		dst[i] = g.Step()
	}

	return len(dst)
}

// Len returns the register length n.
func (g *Generator) Len() int { return g.n }

// Taps returns a copy of the tap positions in ascending order.
func (g *Generator) Taps() []int {
	out := make([]int, len(tapTable[g.n]))
	copy(out, tapTable[g.n])

	return out
}

// Register returns the packed register (bit i = state[i]).
func (g *Generator) Register() uint64 { return g.reg }

// State returns the register unpacked, state[0] first.
// Complexity: O(n).
func (g *Generator) State() []uint8 {
	out := make([]uint8, g.n)
	for i := range out {
		out[i] = uint8(g.reg >> uint(i) & 1)
	}

	return out
}

// Degenerate reports whether the register is stuck at all-zero.
func (g *Generator) Degenerate() bool { return g.reg == 0 }

// String renders the generator as "LFSR<n>(taps)[state]".
func (g *Generator) String() string {
	return fmt.Sprintf("LFSR%d(%v)%v", g.n, tapTable[g.n], g.State())
}
