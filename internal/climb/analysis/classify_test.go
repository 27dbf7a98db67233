package analysis

import (
	"testing"

	"github.com/banshee-data/crux.report/internal/climb"
)

func TestMoveClassifierBands(t *testing.T) {
	classifier := NewMoveClassifier()

	testCases := []struct {
		name  string
		value float64
		want  climb.MoveType
	}{
		{"resting_magnitude", 9.8, climb.MoveStatic},
		{"slow_reach", 14.9, climb.MoveStatic},
		{"powerful_band_floor", 15.0, climb.MoveStatic}, // thresholds are strict
		{"powerful_pull", 17.3, climb.MovePowerful},
		{"dynamic_band_floor", 20.0, climb.MovePowerful},
		{"fast_transfer", 26.0, climb.MoveDynamic},
		{"dyno_band_floor", 30.0, climb.MoveDynamic},
		{"full_jump", 39.7, climb.MoveDyno},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Classify(Peak{Value: tc.value})
			if got != tc.want {
				t.Errorf("Classify(%v) = %s, want %s", tc.value, got, tc.want)
			}
		})
	}
}

func TestMoveClassifierModelVersion(t *testing.T) {
	if v := NewMoveClassifier().ModelVersion; v == "" {
		t.Error("classifier must carry a model version for run records")
	}
}
