package anim

import (
	"github.com/banshee-data/crux.report/internal/config"
)

// Change classifies what a settings transition demands of the pipeline.
type Change int

const (
	// ChangeNone means the new settings are semantically identical to the
	// old ones: no work.
	ChangeNone Change = iota
	// ChangeMaterial means only appearance settings moved: refresh colors
	// and opacity on the existing geometry, no re-sampling.
	ChangeMaterial
	// ChangeStructural means shape-affecting settings moved: discard and
	// rebuild all ring geometry.
	ChangeStructural
)

func (c Change) String() string {
	switch c {
	case ChangeNone:
		return "none"
	case ChangeMaterial:
		return "material"
	case ChangeStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// Classify compares two settings snapshots and reports the required work.
// Comparison goes through the Get* accessors, so a field explicitly set to
// its default is identical to one left unset. Structural always wins when
// both classes of field change.
func Classify(old, new *config.Settings) Change {
	if old == nil || new == nil {
		if old == nil && new == nil {
			return ChangeNone
		}
		return ChangeStructural
	}
	if structuralChanged(old, new) {
		return ChangeStructural
	}
	if materialChanged(old, new) {
		return ChangeMaterial
	}
	return ChangeNone
}

// structuralChanged reports whether any shape-affecting setting differs.
// Analysis parameters count as structural: they invalidate the move set,
// which forces a rebuild anyway.
func structuralChanged(old, new *config.Settings) bool {
	return old.GetRingCount() != new.GetRingCount() ||
		old.GetBaseRadius() != new.GetBaseRadius() ||
		old.GetRingSpacing() != new.GetRingSpacing() ||
		old.GetCurveResolution() != new.GetCurveResolution() ||
		old.GetCombinedSize() != new.GetCombinedSize() ||
		old.GetLiquidSize() != new.GetLiquidSize() ||
		old.GetDynamicsMultiplier() != new.GetDynamicsMultiplier() ||
		old.GetOrganicNoise() != new.GetOrganicNoise() ||
		old.GetDepthEffect() != new.GetDepthEffect() ||
		old.GetCruxEmphasis() != new.GetCruxEmphasis() ||
		analysisChanged(old, new)
}

// analysisChanged reports whether any signal-analysis parameter differs.
func analysisChanged(old, new *config.Settings) bool {
	return old.GetSmoothingWindow() != new.GetSmoothingWindow() ||
		old.GetPeakThresholdFactor() != new.GetPeakThresholdFactor() ||
		old.GetMinPeakDistance() != new.GetMinPeakDistance() ||
		old.GetSpeedCalculationRadius() != new.GetSpeedCalculationRadius() ||
		old.GetMaxMoves() != new.GetMaxMoves()
}

// materialChanged reports whether any appearance-only setting differs.
func materialChanged(old, new *config.Settings) bool {
	return old.GetOpacity() != new.GetOpacity() ||
		old.GetCenterFade() != new.GetCenterFade() ||
		old.GetLineOpacity() != new.GetLineOpacity() ||
		old.GetSegmentOpacity() != new.GetSegmentOpacity() ||
		old.GetAttemptOpacity() != new.GetAttemptOpacity()
}
