package analysis

import "gonum.org/v1/gonum/stat"

// MovingAverage returns a copy of values smoothed with a centred
// moving-average window. Near the boundaries the window is clipped to
// the available samples (no padding, no wrap), so output length always
// equals input length. The input is never modified.
func MovingAverage(values []float64, window int) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if window < 1 {
		window = 1
	}
	half := window / 2
	for i := 0; i < n; i++ {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > n-1 {
			hi = n - 1
		}
		out[i] = stat.Mean(values[lo:hi+1], nil)
	}
	return out
}
