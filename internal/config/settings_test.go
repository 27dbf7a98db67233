package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	// Defaults are set via pointers
	if cfg.SmoothingWindow == nil || *cfg.SmoothingWindow != 5 {
		t.Errorf("Expected SmoothingWindow 5, got %v", cfg.SmoothingWindow)
	}
	if cfg.PeakThresholdFactor == nil || *cfg.PeakThresholdFactor != 0.5 {
		t.Errorf("Expected PeakThresholdFactor 0.5, got %v", cfg.PeakThresholdFactor)
	}
	if cfg.RingCount == nil || *cfg.RingCount != 28 {
		t.Errorf("Expected RingCount 28, got %v", cfg.RingCount)
	}
	if cfg.CurveResolution == nil || *cfg.CurveResolution != 240 {
		t.Errorf("Expected CurveResolution 240, got %v", cfg.CurveResolution)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
}

func TestEmptySettingsGetters(t *testing.T) {
	cfg := EmptySettings()

	// Getter methods fall back to defaults when fields are nil
	if cfg.GetSmoothingWindow() != 5 {
		t.Errorf("GetSmoothingWindow() = %d, want 5", cfg.GetSmoothingWindow())
	}
	if cfg.GetPeakThresholdFactor() != 0.5 {
		t.Errorf("GetPeakThresholdFactor() = %f, want 0.5", cfg.GetPeakThresholdFactor())
	}
	if cfg.GetMinPeakDistance() != 10 {
		t.Errorf("GetMinPeakDistance() = %d, want 10", cfg.GetMinPeakDistance())
	}
	if cfg.GetSpeedCalculationRadius() != 20 {
		t.Errorf("GetSpeedCalculationRadius() = %d, want 20", cfg.GetSpeedCalculationRadius())
	}
	if cfg.GetMaxMoves() != 15 {
		t.Errorf("GetMaxMoves() = %d, want 15", cfg.GetMaxMoves())
	}
	if cfg.GetRingCount() != 28 {
		t.Errorf("GetRingCount() = %d, want 28", cfg.GetRingCount())
	}
	if cfg.GetBaseRadius() != 2.5 {
		t.Errorf("GetBaseRadius() = %f, want 2.5", cfg.GetBaseRadius())
	}
	if cfg.GetRingSpacing() != 0.08 {
		t.Errorf("GetRingSpacing() = %f, want 0.08", cfg.GetRingSpacing())
	}
	if cfg.GetDynamicsMultiplier() != 5.0 {
		t.Errorf("GetDynamicsMultiplier() = %f, want 5.0", cfg.GetDynamicsMultiplier())
	}
	if cfg.GetOrganicNoise() != 0.5 {
		t.Errorf("GetOrganicNoise() = %f, want 0.5", cfg.GetOrganicNoise())
	}
	if cfg.GetCruxEmphasis() != 5.0 {
		t.Errorf("GetCruxEmphasis() = %f, want 5.0", cfg.GetCruxEmphasis())
	}
	if cfg.GetDepthEffect() != 1.5 {
		t.Errorf("GetDepthEffect() = %f, want 1.5", cfg.GetDepthEffect())
	}
	if cfg.GetLiquidSize() != 2.0 {
		t.Errorf("GetLiquidSize() = %f, want 2.0", cfg.GetLiquidSize())
	}
	if cfg.GetCurveResolution() != 240 {
		t.Errorf("GetCurveResolution() = %d, want 240", cfg.GetCurveResolution())
	}
	if cfg.GetCombinedSize() != 1.0 {
		t.Errorf("GetCombinedSize() = %f, want 1.0", cfg.GetCombinedSize())
	}
	if cfg.GetOpacity() != 0.9 {
		t.Errorf("GetOpacity() = %f, want 0.9", cfg.GetOpacity())
	}
	if cfg.GetCenterFade() != 0.5 {
		t.Errorf("GetCenterFade() = %f, want 0.5", cfg.GetCenterFade())
	}
	if cfg.GetLineOpacity() != 1.0 {
		t.Errorf("GetLineOpacity() = %f, want 1.0", cfg.GetLineOpacity())
	}
	if cfg.GetSegmentOpacity() != 0.35 {
		t.Errorf("GetSegmentOpacity() = %f, want 0.35", cfg.GetSegmentOpacity())
	}
	if cfg.GetAttemptOpacity() != 0.6 {
		t.Errorf("GetAttemptOpacity() = %f, want 0.6", cfg.GetAttemptOpacity())
	}
}

func TestLoadSettings(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_settings.json")

	// Partial config: unspecified fields must fall back to defaults
	testJSON := `{
  "smoothing_window": 7,
  "peak_threshold_factor": 0.8,
  "ring_count": 12,
  "opacity": 0.5
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test settings: %v", err)
	}

	cfg, err := LoadSettings(configPath)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if cfg.GetSmoothingWindow() != 7 {
		t.Errorf("GetSmoothingWindow() = %d, want 7", cfg.GetSmoothingWindow())
	}
	if cfg.GetPeakThresholdFactor() != 0.8 {
		t.Errorf("GetPeakThresholdFactor() = %f, want 0.8", cfg.GetPeakThresholdFactor())
	}
	if cfg.GetRingCount() != 12 {
		t.Errorf("GetRingCount() = %d, want 12", cfg.GetRingCount())
	}
	if cfg.GetOpacity() != 0.5 {
		t.Errorf("GetOpacity() = %f, want 0.5", cfg.GetOpacity())
	}

	// Unspecified fields stay nil and fall back
	if cfg.MaxMoves != nil {
		t.Errorf("MaxMoves should be nil for a partial config")
	}
	if cfg.GetMaxMoves() != 15 {
		t.Errorf("GetMaxMoves() = %d, want default 15", cfg.GetMaxMoves())
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	_, err := LoadSettings("/nonexistent/path/to/settings.json")
	if err == nil {
		t.Error("Expected error when loading missing file, got nil")
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	testCases := []struct {
		name    string
		content string
	}{
		{"malformed_json", `{"smoothing_window": `},
		{"even_window", `{"smoothing_window": 4}`},
		{"zero_ring_count", `{"ring_count": 0}`},
		{"negative_base_radius", `{"base_radius": -1.0}`},
		{"opacity_above_one", `{"opacity": 1.5}`},
		{"tiny_curve_resolution", `{"curve_resolution": 2}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tc.name+".json")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write test settings: %v", err)
			}
			if _, err := LoadSettings(path); err == nil {
				t.Errorf("Expected error for %s, got nil", tc.name)
			}
		})
	}
}

func TestLoadSettingsWrongExtension(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("Expected error for non-json extension, got nil")
	}
}

func TestSettingsClone(t *testing.T) {
	cfg := DefaultSettings()
	clone := cfg.Clone()

	*clone.RingCount = 99
	if *cfg.RingCount != 28 {
		t.Errorf("mutating a clone changed the original: RingCount = %d", *cfg.RingCount)
	}

	if got := (*Settings)(nil).Clone(); got != nil {
		t.Errorf("Clone of nil should be nil")
	}
}

func TestValidateRejectsEvenWindow(t *testing.T) {
	cfg := DefaultSettings()
	*cfg.SmoothingWindow = 6
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for even smoothing window")
	}
}
