// Package sysid is your in-memory source of excitation signals for
// system-identification experiments — from a trusted LFSR tap table up to
// multi-channel pseudo-random binary sequences.
//
// 🚀 What is sysid?
//
//	A small, dependency-light library that brings together:
//		• Tap table: primitive feedback polynomials for 2..34-bit registers
//		• LFSR: bit-packed Fibonacci shift register, one bit per Step
//		• PRBS: length-driven register selection, per-channel seeding,
//		  time-major output matrix
//
// ✨ Why choose sysid?
//
//   - Guaranteed period – the register is always long enough that a
//     requested window never repeats
//   - Reproducible – seed once with WithSeed or pin every channel with WithSeeds
//   - No degenerate output – all-zero registers are never drawn
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these packages:
//
//	lfsr/     — tap table, Generator (New, Step, Read)
//	prbs/     — Generate, RegisterLength, Sequence, Levels
//	cmd/prbs/ — command line printer: index column + channel columns
//
// Quick example:
//
//	seq, _ := prbs.Generate(25, 1)
//	fmt.Print(seq) // 25 rows of [0] / [1]
//
//	go get github.com/katalvlaran/sysid/prbs
package sysid
