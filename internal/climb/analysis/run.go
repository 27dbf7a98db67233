package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/crux.report/internal/climb"
)

// Run captures one analysis pass and the parameters that produced it.
// The same session and params always reproduce the same move set; the
// run ID ties logs, plots, and reports to a specific pass.
type Run struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	Params         Params        `json:"params"`
	SampleCount    int           `json:"sample_count"`    // usable samples after sanitising
	DroppedSamples int           `json:"dropped_samples"` // rejected by sanitising
	Duration       float64       `json:"duration_secs"`   // span of the usable samples
	Threshold      float64       `json:"threshold"`       // detection threshold applied
	Moves          climb.MoveSet `json:"moves"`

	// Traces retained for diagnostics; not part of the renderer contract.
	Times    []float64 `json:"-"`
	Raw      []float64 `json:"-"`
	Smoothed []float64 `json:"-"`
	Peaks    []Peak    `json:"-"`
}

// newRunID returns a fresh identifier for an analysis pass.
func newRunID() string {
	return uuid.New().String()
}
