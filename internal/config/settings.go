package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSettingsPath is the path to the canonical settings defaults file.
// This is the single source of truth for all default tuning values.
const DefaultSettingsPath = "config/settings.defaults.json"

// Settings is the flat configuration record for the analysis and
// synthesis pipeline. The schema is shared between startup
// configuration and runtime updates, so every field is a pointer:
// fields omitted from JSON fall back to the documented defaults via
// the Get* accessors.
type Settings struct {
	// Signal analysis params
	SmoothingWindow        *int     `json:"smoothing_window,omitempty"`
	PeakThresholdFactor    *float64 `json:"peak_threshold_factor,omitempty"`
	MinPeakDistance        *int     `json:"min_peak_distance,omitempty"`
	SpeedCalculationRadius *int     `json:"speed_calculation_radius,omitempty"`
	MaxMoves               *int     `json:"max_moves,omitempty"`

	// Ring structure params
	RingCount          *int     `json:"ring_count,omitempty"`
	BaseRadius         *float64 `json:"base_radius,omitempty"`
	RingSpacing        *float64 `json:"ring_spacing,omitempty"`
	DynamicsMultiplier *float64 `json:"dynamics_multiplier,omitempty"`
	OrganicNoise       *float64 `json:"organic_noise,omitempty"`
	CruxEmphasis       *float64 `json:"crux_emphasis,omitempty"`
	DepthEffect        *float64 `json:"depth_effect,omitempty"`
	LiquidSize         *float64 `json:"liquid_size,omitempty"`
	CurveResolution    *int     `json:"curve_resolution,omitempty"`
	CombinedSize       *float64 `json:"combined_size,omitempty"`

	// Material params (no geometry rebuild required)
	Opacity        *float64 `json:"opacity,omitempty"`
	CenterFade     *float64 `json:"center_fade,omitempty"`
	LineOpacity    *float64 `json:"line_opacity,omitempty"`
	SegmentOpacity *float64 `json:"segment_opacity,omitempty"`
	AttemptOpacity *float64 `json:"attempt_opacity,omitempty"`
}

// Pointer helpers for building Settings literals in code. Tests and tools
// override individual fields with these.
func Float64(v float64) *float64 { return &v }
func Int(v int) *int             { return &v }

// EmptySettings returns Settings with all fields set to nil.
// Use LoadSettings to load actual values from a file.
func EmptySettings() *Settings {
	return &Settings{}
}

// DefaultSettings returns Settings with every field populated with the
// documented default. Tests and tools start from this and override the
// fields under study.
func DefaultSettings() *Settings {
	return &Settings{
		SmoothingWindow:        Int(5),
		PeakThresholdFactor:    Float64(0.5),
		MinPeakDistance:        Int(10),
		SpeedCalculationRadius: Int(20),
		MaxMoves:               Int(15),

		RingCount:          Int(28),
		BaseRadius:         Float64(2.5),
		RingSpacing:        Float64(0.08),
		DynamicsMultiplier: Float64(5.0),
		OrganicNoise:       Float64(0.5),
		CruxEmphasis:       Float64(5.0),
		DepthEffect:        Float64(1.5),
		LiquidSize:         Float64(2.0),
		CurveResolution:    Int(240),
		CombinedSize:       Float64(1.0),

		Opacity:        Float64(0.9),
		CenterFade:     Float64(0.5),
		LineOpacity:    Float64(1.0),
		SegmentOpacity: Float64(0.35),
		AttemptOpacity: Float64(0.6),
	}
}

// Clone returns a deep copy. Settings travel between the caller and the
// update controller, and the controller must keep its own snapshot.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{}
	data, err := json.Marshal(s)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Settings{}
	}
	return out
}

// LoadSettings loads Settings from a JSON file.
// The file is validated to ensure it has a .json extension and is under
// the max file size. Fields omitted from the JSON file retain their
// default values, so partial configs are safe.
func LoadSettings(path string) (*Settings, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("settings file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("settings file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Parse JSON into empty settings. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptySettings()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultSettings loads the canonical defaults from DefaultSettingsPath.
// It searches for the file in the current directory and common parent
// directories. Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultSettings() *Settings {
	// Try paths from current dir up to repo root
	candidates := []string{
		DefaultSettingsPath,
		"../../" + DefaultSettingsPath,    // from internal/config/
		"../../../" + DefaultSettingsPath, // from internal/climb/analysis/
		"../../../../" + DefaultSettingsPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadSettings(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultSettingsPath + " - run tests from repository root")
}

// Validate checks that the configured values are usable.
func (s *Settings) Validate() error {
	if s.SmoothingWindow != nil {
		if *s.SmoothingWindow < 1 {
			return fmt.Errorf("smoothing_window must be at least 1, got %d", *s.SmoothingWindow)
		}
		if *s.SmoothingWindow%2 == 0 {
			return fmt.Errorf("smoothing_window must be odd, got %d", *s.SmoothingWindow)
		}
	}
	if s.MinPeakDistance != nil && *s.MinPeakDistance < 1 {
		return fmt.Errorf("min_peak_distance must be at least 1, got %d", *s.MinPeakDistance)
	}
	if s.SpeedCalculationRadius != nil && *s.SpeedCalculationRadius < 1 {
		return fmt.Errorf("speed_calculation_radius must be at least 1, got %d", *s.SpeedCalculationRadius)
	}
	if s.MaxMoves != nil && *s.MaxMoves < 1 {
		return fmt.Errorf("max_moves must be at least 1, got %d", *s.MaxMoves)
	}
	if s.RingCount != nil {
		if *s.RingCount < 1 || *s.RingCount > 256 {
			return fmt.Errorf("ring_count must be between 1 and 256, got %d", *s.RingCount)
		}
	}
	if s.BaseRadius != nil && *s.BaseRadius <= 0 {
		return fmt.Errorf("base_radius must be positive, got %f", *s.BaseRadius)
	}
	if s.RingSpacing != nil && *s.RingSpacing < 0 {
		return fmt.Errorf("ring_spacing must be non-negative, got %f", *s.RingSpacing)
	}
	if s.DynamicsMultiplier != nil && *s.DynamicsMultiplier < 0 {
		return fmt.Errorf("dynamics_multiplier must be non-negative, got %f", *s.DynamicsMultiplier)
	}
	if s.OrganicNoise != nil && *s.OrganicNoise < 0 {
		return fmt.Errorf("organic_noise must be non-negative, got %f", *s.OrganicNoise)
	}
	if s.CruxEmphasis != nil && *s.CruxEmphasis < 0 {
		return fmt.Errorf("crux_emphasis must be non-negative, got %f", *s.CruxEmphasis)
	}
	if s.DepthEffect != nil && *s.DepthEffect < 0 {
		return fmt.Errorf("depth_effect must be non-negative, got %f", *s.DepthEffect)
	}
	if s.LiquidSize != nil && *s.LiquidSize < 0 {
		return fmt.Errorf("liquid_size must be non-negative, got %f", *s.LiquidSize)
	}
	if s.CurveResolution != nil {
		if *s.CurveResolution < 3 || *s.CurveResolution > 4096 {
			return fmt.Errorf("curve_resolution must be between 3 and 4096, got %d", *s.CurveResolution)
		}
	}
	if s.CombinedSize != nil && *s.CombinedSize <= 0 {
		return fmt.Errorf("combined_size must be positive, got %f", *s.CombinedSize)
	}
	for name, v := range map[string]*float64{
		"opacity":         s.Opacity,
		"center_fade":     s.CenterFade,
		"line_opacity":    s.LineOpacity,
		"segment_opacity": s.SegmentOpacity,
		"attempt_opacity": s.AttemptOpacity,
	} {
		if v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("%s must be between 0 and 1, got %f", name, *v)
		}
	}
	return nil
}

// GetSmoothingWindow returns the smoothing_window value or the default.
func (s *Settings) GetSmoothingWindow() int {
	if s.SmoothingWindow == nil {
		return 5 // default
	}
	return *s.SmoothingWindow
}

// GetPeakThresholdFactor returns the peak_threshold_factor value or the default.
func (s *Settings) GetPeakThresholdFactor() float64 {
	if s.PeakThresholdFactor == nil {
		return 0.5 // default
	}
	return *s.PeakThresholdFactor
}

// GetMinPeakDistance returns the min_peak_distance value or the default.
func (s *Settings) GetMinPeakDistance() int {
	if s.MinPeakDistance == nil {
		return 10 // default
	}
	return *s.MinPeakDistance
}

// GetSpeedCalculationRadius returns the speed_calculation_radius value or the default.
func (s *Settings) GetSpeedCalculationRadius() int {
	if s.SpeedCalculationRadius == nil {
		return 20 // default
	}
	return *s.SpeedCalculationRadius
}

// GetMaxMoves returns the max_moves value or the default.
func (s *Settings) GetMaxMoves() int {
	if s.MaxMoves == nil {
		return 15 // default
	}
	return *s.MaxMoves
}

// GetRingCount returns the ring_count value or the default.
func (s *Settings) GetRingCount() int {
	if s.RingCount == nil {
		return 28 // default
	}
	return *s.RingCount
}

// GetBaseRadius returns the base_radius value or the default.
func (s *Settings) GetBaseRadius() float64 {
	if s.BaseRadius == nil {
		return 2.5 // default
	}
	return *s.BaseRadius
}

// GetRingSpacing returns the ring_spacing value or the default.
func (s *Settings) GetRingSpacing() float64 {
	if s.RingSpacing == nil {
		return 0.08 // default
	}
	return *s.RingSpacing
}

// GetDynamicsMultiplier returns the dynamics_multiplier value or the default.
func (s *Settings) GetDynamicsMultiplier() float64 {
	if s.DynamicsMultiplier == nil {
		return 5.0 // default
	}
	return *s.DynamicsMultiplier
}

// GetOrganicNoise returns the organic_noise value or the default.
func (s *Settings) GetOrganicNoise() float64 {
	if s.OrganicNoise == nil {
		return 0.5 // default
	}
	return *s.OrganicNoise
}

// GetCruxEmphasis returns the crux_emphasis value or the default.
func (s *Settings) GetCruxEmphasis() float64 {
	if s.CruxEmphasis == nil {
		return 5.0 // default
	}
	return *s.CruxEmphasis
}

// GetDepthEffect returns the depth_effect value or the default.
func (s *Settings) GetDepthEffect() float64 {
	if s.DepthEffect == nil {
		return 1.5 // default
	}
	return *s.DepthEffect
}

// GetLiquidSize returns the liquid_size value or the default.
func (s *Settings) GetLiquidSize() float64 {
	if s.LiquidSize == nil {
		return 2.0 // default
	}
	return *s.LiquidSize
}

// GetCurveResolution returns the curve_resolution value or the default.
func (s *Settings) GetCurveResolution() int {
	if s.CurveResolution == nil {
		return 240 // default
	}
	return *s.CurveResolution
}

// GetCombinedSize returns the combined_size value or the default.
func (s *Settings) GetCombinedSize() float64 {
	if s.CombinedSize == nil {
		return 1.0 // default
	}
	return *s.CombinedSize
}

// GetOpacity returns the opacity value or the default.
func (s *Settings) GetOpacity() float64 {
	if s.Opacity == nil {
		return 0.9 // default
	}
	return *s.Opacity
}

// GetCenterFade returns the center_fade value or the default.
func (s *Settings) GetCenterFade() float64 {
	if s.CenterFade == nil {
		return 0.5 // default
	}
	return *s.CenterFade
}

// GetLineOpacity returns the line_opacity value or the default.
func (s *Settings) GetLineOpacity() float64 {
	if s.LineOpacity == nil {
		return 1.0 // default
	}
	return *s.LineOpacity
}

// GetSegmentOpacity returns the segment_opacity value or the default.
func (s *Settings) GetSegmentOpacity() float64 {
	if s.SegmentOpacity == nil {
		return 0.35 // default
	}
	return *s.SegmentOpacity
}

// GetAttemptOpacity returns the attempt_opacity value or the default.
func (s *Settings) GetAttemptOpacity() float64 {
	if s.AttemptOpacity == nil {
		return 0.6 // default
	}
	return *s.AttemptOpacity
}
