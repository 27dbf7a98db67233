package analysis

import (
	"fmt"
	"time"

	"github.com/banshee-data/crux.report/internal/climb"
)

// AnalyzeSession runs the full signal pipeline on one session and
// returns the Run record: sanitize, smooth, detect peaks, compute move
// metrics, normalize dynamics. Analysis is aborted with no partial
// move set when the session has no usable data.
//
// The move set is deterministic in the session and params; only the
// run ID and start timestamp differ between passes.
func AnalyzeSession(session climb.Session, p Params) (*Run, error) {
	clean, dropped := session.Sanitize()
	if len(session.Samples) > 0 && len(clean.Samples) == 0 {
		opsf("analyze: aborted, no valid samples (%d dropped)", dropped)
		return nil, climb.ErrNoValidSamples
	}
	if len(clean.Samples) < climb.MinAnalysisSamples {
		opsf("analyze: aborted, %d usable samples", len(clean.Samples))
		return nil, fmt.Errorf("%w: %d usable samples, need at least %d",
			climb.ErrSessionTooShort, len(clean.Samples), climb.MinAnalysisSamples)
	}

	times := make([]float64, len(clean.Samples))
	raw := make([]float64, len(clean.Samples))
	for i, sm := range clean.Samples {
		times[i] = sm.Time
		raw[i] = sm.Magnitude
	}

	smoothed := MovingAverage(raw, p.SmoothingWindow)
	peaks := DetectPeaks(smoothed, times, p)
	moves := BuildMoves(peaks, smoothed, times, p)

	run := &Run{
		RunID:          newRunID(),
		StartedAt:      time.Now(),
		Params:         p,
		SampleCount:    len(clean.Samples),
		DroppedSamples: dropped,
		Duration:       clean.Duration(),
		Threshold:      Threshold(smoothed, p.PeakThresholdFactor),
		Moves:          moves,
		Times:          times,
		Raw:            raw,
		Smoothed:       smoothed,
		Peaks:          peaks,
	}
	diagf("analyze: run=%s samples=%d dropped=%d moves=%d crux=%d",
		run.RunID, run.SampleCount, dropped, len(moves), moves.CruxCount())
	return run, nil
}

// Analyze is the plain entry point: the move set without run
// bookkeeping.
func Analyze(session climb.Session, p Params) (climb.MoveSet, error) {
	run, err := AnalyzeSession(session, p)
	if err != nil {
		return nil, err
	}
	return run.Moves, nil
}
