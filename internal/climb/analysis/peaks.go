package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Peak is a local maximum in the smoothed magnitude series that
// cleared the detection threshold.
type Peak struct {
	Index      int     // sample index in the smoothed series
	Time       float64 // seconds from session start
	Value      float64 // smoothed magnitude at the peak (m/s²)
	Prominence float64 // height above the lower of the two neighbours
}

// Threshold returns the adaptive detection threshold for a smoothed
// series: the mean plus factor population standard deviations. A quiet
// session yields a low bar, a wild one a high bar, so detection adapts
// to the climber rather than using a fixed magnitude.
func Threshold(smoothed []float64, factor float64) float64 {
	if len(smoothed) == 0 {
		return 0
	}
	return stat.Mean(smoothed, nil) + stat.PopStdDev(smoothed, nil)*factor
}

// DetectPeaks finds threshold-crossing strict local maxima in the
// smoothed series. Candidates closer than MinPeakDistance index
// positions to the previously accepted peak are rejected during the
// scan. When more than MaxMoves survive, the most prominent are kept.
// The result is ordered by time. Fewer than three samples yield no
// peaks.
func DetectPeaks(smoothed, times []float64, p Params) []Peak {
	n := len(smoothed)
	if n < 3 || len(times) < n {
		return nil
	}

	threshold := Threshold(smoothed, p.PeakThresholdFactor)
	diagf("detect: threshold=%.3f over %d samples", threshold, n)

	var peaks []Peak
	for i := 1; i < n-1; i++ {
		if smoothed[i] <= smoothed[i-1] || smoothed[i] <= smoothed[i+1] || smoothed[i] <= threshold {
			continue
		}
		if len(peaks) > 0 && i-peaks[len(peaks)-1].Index < p.MinPeakDistance {
			tracef("detect: candidate at %d too close to accepted peak at %d", i, peaks[len(peaks)-1].Index)
			continue
		}
		peaks = append(peaks, Peak{
			Index:      i,
			Time:       times[i],
			Value:      smoothed[i],
			Prominence: smoothed[i] - math.Min(smoothed[i-1], smoothed[i+1]),
		})
	}

	if p.MaxMoves > 0 && len(peaks) > p.MaxMoves {
		// Keep the most prominent, then restore temporal order. Both
		// sorts are stable so ties preserve scan order.
		sort.SliceStable(peaks, func(a, b int) bool { return peaks[a].Prominence > peaks[b].Prominence })
		dropped := len(peaks) - p.MaxMoves
		peaks = peaks[:p.MaxMoves]
		sort.SliceStable(peaks, func(a, b int) bool { return peaks[a].Time < peaks[b].Time })
		diagf("detect: capped to %d peaks, dropped %d less prominent", p.MaxMoves, dropped)
	}

	return peaks
}
