package analysis

import (
	"math"

	"github.com/banshee-data/crux.report/internal/climb"
)

// CruxFactor is the multiple of the mean peak acceleration a move must
// exceed to be flagged as the crux.
const CruxFactor = 1.2

// BuildMoves computes per-move metrics for each detected peak and
// assembles the final move set: a synthetic start move followed by the
// detected moves in time order, with dynamics normalized across the
// whole set.
func BuildMoves(peaks []Peak, smoothed, times []float64, p Params) climb.MoveSet {
	startTime := 0.0
	if len(times) > 0 {
		startTime = times[0]
	}

	moves := make(climb.MoveSet, 0, len(peaks)+1)
	moves = append(moves, climb.Move{
		SequenceIndex: 0,
		Time:          startTime,
		Type:          climb.MoveStart,
	})

	if len(peaks) > 0 {
		meanPeak := 0.0
		for _, pk := range peaks {
			meanPeak += pk.Value
		}
		meanPeak /= float64(len(peaks))

		classifier := NewMoveClassifier()
		for i, pk := range peaks {
			moves = append(moves, climb.Move{
				SequenceIndex: i + 1,
				Time:          pk.Time,
				RawMagnitude:  pk.Value,
				AvgSpeed:      averageSpeed(smoothed, times, pk.Index, p.SpeedCalculationRadius),
				IsCrux:        pk.Value > meanPeak*CruxFactor,
				Type:          classifier.Classify(pk),
			})
		}
	}

	NormalizeDynamics(moves)
	return moves
}

// averageSpeed accumulates |a*dt| over a clipped window around the
// peak and divides by the window's sample count. It is a crude
// integration proxy used for relative comparison between moves, not a
// physical speed.
func averageSpeed(smoothed, times []float64, idx, radius int) float64 {
	lo := idx - radius
	if lo < 0 {
		lo = 0
	}
	hi := idx + radius
	if hi > len(smoothed) {
		hi = len(smoothed)
	}

	sum := 0.0
	count := 0
	for j := lo; j < hi && j+1 < len(times); j++ {
		sum += math.Abs(smoothed[j] * (times[j+1] - times[j]))
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
