package prbs

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type a bit can be mapped onto.
type Number interface {
	constraints.Integer | constraints.Float
}

// Levels maps s onto two amplitude levels, 0 → low and 1 → high, indexed
// [time step][channel]. Levels(s, -1.0, 1.0) gives the bipolar excitation
// most identification routines expect; Levels(s, 0.0, 1.0) gives the raw
// bits as floats.
// Complexity: O(Rows()·Cols()).
func Levels[T Number](s *Sequence, low, high T) [][]T {
	lv := [2]T{low, high}
	out := make([][]T, s.rows)
	for t := range out {
		row := make([]T, s.cols)
		base := t * s.cols
		for c := range row {
			row[c] = lv[s.data[base+c]]
		}
		out[t] = row
	}

	return out
}
