// Package prbs defines shared constants used for validation and error context.
package prbs

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodRegisterLength is the canonical name for RegisterLength.
	MethodRegisterLength = "RegisterLength"
)

//-----------------------------------------------------------------------------
// Minimums
//-----------------------------------------------------------------------------

// MinSequenceLength is the shortest sequence Generate accepts.
const MinSequenceLength = 1

// MinChannels is the smallest channel count Generate accepts.
const MinChannels = 1

// DefaultChannels is the channel count used by single-input experiments.
const DefaultChannels = 1
