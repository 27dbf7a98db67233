package climb

import "errors"

// Sentinel errors for conditions callers are expected to branch on.
// Per-sample and per-ring problems are not errors: bad samples are
// dropped and degenerate rings skipped, each with counts reported.
var (
	// ErrSessionTooShort means fewer than MinAnalysisSamples usable samples.
	ErrSessionTooShort = errors.New("session too short for analysis")
	// ErrNoValidSamples means sanitising removed every sample.
	ErrNoValidSamples = errors.New("session has no valid samples")
	// ErrInsufficientMoves means the move set cannot support ring
	// synthesis: a start move plus at least one detected move is required.
	ErrInsufficientMoves = errors.New("insufficient moves for ring synthesis")
)
