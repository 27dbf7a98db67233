package analysis

import "github.com/banshee-data/crux.report/internal/config"

// Params captures the signal-analysis configuration for one pass.
type Params struct {
	SmoothingWindow        int     // centred moving-average window, odd
	PeakThresholdFactor    float64 // standard deviations above the mean
	MinPeakDistance        int     // minimum index separation between peaks
	SpeedCalculationRadius int     // half-width of the speed proxy window
	MaxMoves               int     // cap on detected moves per session
}

// DefaultParams returns the standard analysis parameters.
func DefaultParams() Params {
	return Params{
		SmoothingWindow:        5,
		PeakThresholdFactor:    0.5,
		MinPeakDistance:        10,
		SpeedCalculationRadius: 20,
		MaxMoves:               15,
	}
}

// ParamsFromSettings derives analysis parameters from the shared
// settings record.
func ParamsFromSettings(s *config.Settings) Params {
	if s == nil {
		return DefaultParams()
	}
	return Params{
		SmoothingWindow:        s.GetSmoothingWindow(),
		PeakThresholdFactor:    s.GetPeakThresholdFactor(),
		MinPeakDistance:        s.GetMinPeakDistance(),
		SpeedCalculationRadius: s.GetSpeedCalculationRadius(),
		MaxMoves:               s.GetMaxMoves(),
	}
}
