package prbs_test

import (
	"fmt"

	"github.com/katalvlaran/sysid/prbs"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate_singleChannel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	25 samples of excitation for a single-input plant.
//	2^5 − 1 = 31 ≥ 25 while 2^4 − 1 = 15 < 25, so a 5-bit register is used
//	and the sequence cannot repeat inside the window.
//
// Complexity: O(L) time, O(L) memory
func ExampleGenerate_singleChannel() {
	seq, err := prbs.Generate(25, prbs.DefaultChannels, prbs.WithSeeds(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	col, _ := seq.Column(0)
	fmt.Printf("n=%d period=%d shape=%dx%d\n", seq.RegisterLength(), seq.Period(), seq.Rows(), seq.Cols())
	fmt.Println(col)
	// Output:
	// n=5 period=31 shape=25x1
	// [0 1 0 1 1 1 0 1 1 0 0 0 1 1 1 1 1 0 0 1 1 0 1 0 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLevels_bipolar
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two-input plant, four samples, ±1 amplitude.
func ExampleLevels_bipolar() {
	seq, err := prbs.Generate(4, 2, prbs.WithSeeds(1, 0x1F))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(seq)
	for _, u := range prbs.Levels(seq, -1, 1) {
		fmt.Println(u)
	}
	// Output:
	// [1, 0]
	// [1, 1]
	// [0, 0]
	// [1, 0]
	// [1 -1]
	// [1 1]
	// [-1 -1]
	// [1 -1]
}

// ExampleGenerate_invalid shows validation before any work is done.
func ExampleGenerate_invalid() {
	_, err := prbs.Generate(0, 1)
	fmt.Println(err)
	// Output:
	// Generate: length must be ≥ 1, got 0: prbs: invalid argument
}
