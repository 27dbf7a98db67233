package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/crux.report/internal/climb"
)

func flatSession(n int, magnitude float64) climb.Session {
	samples := make([]climb.Sample, n)
	for i := range samples {
		samples[i] = climb.Sample{Time: float64(i) * 0.02, Magnitude: magnitude}
	}
	return climb.Session{Samples: samples}
}

// threeBumpSession is the canonical fixture: well-separated gaussian
// bumps of heights 15, 30, and 12 m/s² over a 9.8 noise floor.
func threeBumpSession() climb.Session {
	return climb.SyntheticSession(climb.SyntheticConfig{
		Duration:   40,
		SampleRate: 50,
		Floor:      9.8,
		Noise:      0.1,
		Seed:       42,
		Bumps: []climb.SyntheticBump{
			{Time: 10, Height: 15, Width: 0.3},
			{Time: 20, Height: 30, Width: 0.3},
			{Time: 30, Height: 12, Width: 0.3},
		},
	})
}

func TestAnalyzeFlatSessionOnlyStartMove(t *testing.T) {
	// Gravity-only recording: no detected moves, just the synthetic
	// start entry.
	moves, err := Analyze(flatSession(100, 9.8), DefaultParams())
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("move set has %d entries, want 1", len(moves))
	}
	if moves[0].Type != climb.MoveStart {
		t.Errorf("sole move is %s, want start", moves[0].Type)
	}
}

func TestAnalyzeThreeBumps(t *testing.T) {
	run, err := AnalyzeSession(threeBumpSession(), DefaultParams())
	if err != nil {
		t.Fatalf("AnalyzeSession returned error: %v", err)
	}

	moves := run.Moves
	if len(moves) != 4 {
		t.Fatalf("move set has %d entries, want start + 3 detected", len(moves))
	}
	if issues := moves.Check(); len(issues) != 0 {
		t.Fatalf("move set invariant violations: %v", issues)
	}

	real := moves.RealMoves()
	for i := 1; i < len(real); i++ {
		if real[i].Time <= real[i-1].Time {
			t.Errorf("moves not in time order at %d", i)
		}
	}

	// Peaks should land near the bump centres at t = 10, 20, 30.
	wantTimes := []float64{10, 20, 30}
	for i, mv := range real {
		if d := mv.Time - wantTimes[i]; d < -0.5 || d > 0.5 {
			t.Errorf("move %d at t=%.2f, want near %.0f", i+1, mv.Time, wantTimes[i])
		}
	}

	// Only the height-30 bump clears 1.2x the mean peak acceleration.
	if real[0].IsCrux || !real[1].IsCrux || real[2].IsCrux {
		t.Errorf("crux flags = [%v %v %v], want [false true false]",
			real[0].IsCrux, real[1].IsCrux, real[2].IsCrux)
	}
	if real[1].Type != climb.MoveDyno {
		t.Errorf("height-30 bump classified %s, want dyno", real[1].Type)
	}

	if run.Threshold <= 9.8 {
		t.Errorf("threshold %.2f not above the gravity floor", run.Threshold)
	}
	if run.SampleCount != 2000 {
		t.Errorf("SampleCount = %d, want 2000", run.SampleCount)
	}
	if run.RunID == "" {
		t.Error("run has no ID")
	}
	if len(run.Peaks) != 3 {
		t.Errorf("run retained %d peaks, want 3", len(run.Peaks))
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	session := threeBumpSession()
	p := DefaultParams()

	first, err := AnalyzeSession(session, p)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := AnalyzeSession(session, p)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if diff := cmp.Diff(first.Moves, second.Moves); diff != "" {
		t.Errorf("move sets differ between identical passes (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Smoothed, second.Smoothed); diff != "" {
		t.Errorf("smoothed traces differ between identical passes:\n%s", diff)
	}
	if first.RunID == second.RunID {
		t.Errorf("run IDs must be unique per pass")
	}
}

func TestAnalyzeDataErrors(t *testing.T) {
	testCases := []struct {
		name    string
		session climb.Session
		wantErr error
	}{
		{"empty_session", climb.Session{}, climb.ErrSessionTooShort},
		{"two_samples", flatSession(2, 9.8), climb.ErrSessionTooShort},
		{
			"all_invalid_rows",
			climb.Session{Samples: []climb.Sample{{Time: 0, Magnitude: -1}, {Time: 1, Magnitude: -2}}},
			climb.ErrNoValidSamples,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			moves, err := Analyze(tc.session, DefaultParams())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
			if moves != nil {
				t.Errorf("got a partial move set %v, want none", moves)
			}
		})
	}
}

func TestAnalyzeSurvivesIsolatedBadSamples(t *testing.T) {
	session := threeBumpSession()
	session.Samples[700].Magnitude = -5 // corrupt one row between bumps

	run, err := AnalyzeSession(session, DefaultParams())
	if err != nil {
		t.Fatalf("AnalyzeSession returned error: %v", err)
	}
	if run.DroppedSamples != 1 {
		t.Errorf("DroppedSamples = %d, want 1", run.DroppedSamples)
	}
	if len(run.Moves) != 4 {
		t.Errorf("move set has %d entries, want 4 despite the bad sample", len(run.Moves))
	}
}
