package climb

import (
	"math"
	"math/rand"
)

// SyntheticBump describes one simulated move: a gaussian acceleration
// bump on top of the resting floor.
type SyntheticBump struct {
	Time   float64 // bump centre, seconds
	Height float64 // amplitude above the floor, m/s²
	Width  float64 // gaussian sigma, seconds
}

// SyntheticConfig controls the synthetic session generator.
type SyntheticConfig struct {
	Duration   float64 // seconds
	SampleRate float64 // Hz
	Floor      float64 // resting magnitude, normally gravity
	Noise      float64 // uniform noise amplitude around the floor
	Seed       int64
	Bumps      []SyntheticBump
}

// DefaultSyntheticConfig returns a session shaped like a short boulder:
// four moves of varied intensity over forty seconds.
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Duration:   40,
		SampleRate: 50,
		Floor:      9.8,
		Noise:      0.1,
		Seed:       1,
		Bumps: []SyntheticBump{
			{Time: 6, Height: 7, Width: 0.5},
			{Time: 14, Height: 31, Width: 0.3},
			{Time: 24, Height: 13, Width: 0.35},
			{Time: 33, Height: 22, Width: 0.4},
		},
	}
}

// SyntheticSession generates a deterministic artificial recording from
// cfg. The same config always yields the same samples, which keeps
// fixtures reproducible across tests and tools.
func SyntheticSession(cfg SyntheticConfig) Session {
	if cfg.Duration <= 0 {
		cfg.Duration = 40
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 50
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	n := int(cfg.Duration * cfg.SampleRate)
	dt := 1 / cfg.SampleRate
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		mag := cfg.Floor + (rng.Float64()*2-1)*cfg.Noise
		for _, b := range cfg.Bumps {
			if b.Width <= 0 {
				continue
			}
			d := t - b.Time
			mag += b.Height * math.Exp(-d*d/(2*b.Width*b.Width))
		}
		if mag < 0 {
			mag = 0
		}
		samples = append(samples, Sample{Time: t, Magnitude: mag})
	}
	return Session{Samples: samples}
}
