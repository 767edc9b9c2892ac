// SPDX-License-Identifier: MIT

// Package prbs - Sequence storage (time-major) & safe accessors.
//
// Purpose:
//   - Hold a length×channels bit matrix in one row-major buffer (offset t*cols + c).
//   - Columns are written channel by channel, rows are read time step by time step.
//   - Public accessors return ErrOutOfRange instead of panicking.
//   - A Sequence is immutable once Generate returns it; accessors hand out copies.

package prbs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sysid/lfsr"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxRow    = "Row"
	ctxColumn = "Column"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// seqErrorf wraps err with Sequence method context and the offending index.
func seqErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Sequence.%s%v: %w", method, idx, err)
}

// Sequence is a time-major PRBS matrix: Rows() time steps × Cols() channels,
// every entry 0 or 1.
type Sequence struct {
	rows, cols int      // time steps, channels
	n          int      // register length used for every channel
	data       []uint8  // row-major storage (len == rows*cols)
	seeds      []uint64 // seed of each channel, in channel order
}

var _ fmt.Stringer = (*Sequence)(nil)

// newSequence allocates a zeroed rows×cols sequence.
func newSequence(rows, cols, n int, seeds []uint64) *Sequence {
	return &Sequence{
		rows:  rows,
		cols:  cols,
		n:     n,
		data:  make([]uint8, rows*cols),
		seeds: seeds,
	}
}

// fillColumn writes rows successive outputs of g into column c.
// Distinct columns touch disjoint elements, so callers may fill them
// concurrently.
func (s *Sequence) fillColumn(c int, g *lfsr.Generator) {
	if s.cols == 1 {
		g.Read(s.data)

		return
	}
	for t, off := 0, c; t < s.rows; t, off = t+1, off+s.cols {
		s.data[off] = g.Step()
	}
}

// Rows returns the number of time steps.
func (s *Sequence) Rows() int { return s.rows }

// Cols returns the number of channels.
func (s *Sequence) Cols() int { return s.cols }

// Shape returns (rows, cols).
func (s *Sequence) Shape() (rows, cols int) { return s.rows, s.cols }

// RegisterLength returns the LFSR length n shared by all channels.
func (s *Sequence) RegisterLength() int { return s.n }

// Period returns 2^n − 1, the repetition period of every channel.
func (s *Sequence) Period() uint64 { return uint64(1)<<uint(s.n) - 1 }

// Seeds returns a copy of the per-channel seeds.
func (s *Sequence) Seeds() []uint64 {
	out := make([]uint64, len(s.seeds))
	copy(out, s.seeds)

	return out
}

// At returns the bit of channel c at time step t.
//
// Errors:
//   - ErrOutOfRange if t ∉ [0,Rows()) or c ∉ [0,Cols()).
//
// Complexity: O(1).
func (s *Sequence) At(t, c int) (uint8, error) {
	if t < 0 || t >= s.rows || c < 0 || c >= s.cols {
		return 0, seqErrorf(ctxAt, []int{t, c}, ErrOutOfRange)
	}

	return s.data[t*s.cols+c], nil
}

// Row returns a copy of all channels at time step t.
// Complexity: O(Cols()).
func (s *Sequence) Row(t int) ([]uint8, error) {
	if t < 0 || t >= s.rows {
		return nil, seqErrorf(ctxRow, []int{t}, ErrOutOfRange)
	}
	out := make([]uint8, s.cols)
	copy(out, s.data[t*s.cols:(t+1)*s.cols])

	return out, nil
}

// Column returns a copy of channel c over time.
// Complexity: O(Rows()).
func (s *Sequence) Column(c int) ([]uint8, error) {
	if c < 0 || c >= s.cols {
		return nil, seqErrorf(ctxColumn, []int{c}, ErrOutOfRange)
	}
	out := make([]uint8, s.rows)
	for t, off := 0, c; t < s.rows; t, off = t+1, off+s.cols {
		out[t] = s.data[off]
	}

	return out, nil
}

// Bits returns a deep copy indexed [time step][channel].
// Complexity: O(Rows()·Cols()).
func (s *Sequence) Bits() [][]uint8 {
	out := make([][]uint8, s.rows)
	for t := range out {
		out[t] = make([]uint8, s.cols)
		copy(out[t], s.data[t*s.cols:(t+1)*s.cols])
	}

	return out
}

// String renders one bracketed row per time step: "[0, 1]\n[1, 1]\n…".
func (s *Sequence) String() string {
	var b strings.Builder
	b.Grow(s.rows * (3*s.cols + 2))
	for t := 0; t < s.rows; t++ {
		b.WriteString(_fmtRowOpen)
		base := t * s.cols
		for c := 0; c < s.cols; c++ {
			b.WriteByte('0' + s.data[base+c])
			if c+1 < s.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
