package analysis

import "github.com/banshee-data/crux.report/internal/climb"

// Move type thresholds (smoothed peak acceleration, m/s²)
const (
	DynoAccelMin     = 30.0 // full jumps, both feet cut loose
	DynamicAccelMin  = 20.0 // fast weight transfers
	PowerfulAccelMin = 15.0 // strong pulls and lock-offs
)

// MoveClassifier performs rule-based classification of detected moves.
// This can be replaced with a learned model in future iterations.
type MoveClassifier struct {
	ModelVersion string
}

// NewMoveClassifier creates a new move classifier.
func NewMoveClassifier() *MoveClassifier {
	return &MoveClassifier{
		ModelVersion: "magnitude-bands-v1.0",
	}
}

// Classify determines the move type from a peak's smoothed acceleration
// magnitude. Bands run static, powerful, dynamic, dyno with rising
// acceleration; magnitudes include the gravity floor, so a resting
// climber sits well inside the static band.
func (mc *MoveClassifier) Classify(peak Peak) climb.MoveType {
	switch {
	case peak.Value > DynoAccelMin:
		return climb.MoveDyno
	case peak.Value > DynamicAccelMin:
		return climb.MoveDynamic
	case peak.Value > PowerfulAccelMin:
		return climb.MovePowerful
	default:
		return climb.MoveStatic
	}
}
