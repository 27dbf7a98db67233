package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/climb/analysis"
	"github.com/banshee-data/crux.report/internal/climb/geometry"
)

// analyzedRun runs the real pipeline over the default synthetic session
// so plots exercise the same shapes the CLI produces.
func analyzedRun(t *testing.T) (*analysis.Run, climb.Session) {
	t.Helper()
	session := climb.SyntheticSession(climb.DefaultSyntheticConfig())
	run, err := analysis.AnalyzeSession(session, analysis.DefaultParams())
	if err != nil {
		t.Fatalf("AnalyzeSession failed: %v", err)
	}
	return run, session
}

func builtRingSet(t *testing.T) *geometry.RingSet {
	t.Helper()
	run, _ := analyzedRun(t)
	rs, err := geometry.Synthesize(run.Moves, nil)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	return rs
}

func TestPlotSession_WritesPNG(t *testing.T) {
	run, session := analyzedRun(t)
	path := filepath.Join(t.TempDir(), "session.png")

	if err := PlotSession(run, session, path); err != nil {
		t.Fatalf("PlotSession failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty plot file")
	}
}

func TestPlotSession_NilRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.png")
	if err := PlotSession(nil, climb.Session{}, path); err == nil {
		t.Error("expected error for nil run")
	}
}

func TestPlotSession_EmptyPath(t *testing.T) {
	run, session := analyzedRun(t)
	if err := PlotSession(run, session, ""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestPlotSession_RejectsNonPNGPath(t *testing.T) {
	run, session := analyzedRun(t)
	path := filepath.Join(t.TempDir(), "session.txt")

	if err := PlotSession(run, session, path); err == nil {
		t.Error("expected error for non-png path")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at rejected path, stat err = %v", err)
	}
}

func TestPlotSession_CreatesNestedDirectory(t *testing.T) {
	run, session := analyzedRun(t)
	path := filepath.Join(t.TempDir(), "nested", "plots", "session.png")

	if err := PlotSession(run, session, path); err != nil {
		t.Fatalf("PlotSession failed: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory, got file")
	}
}

func TestPlotRingProfile_WritesPNG(t *testing.T) {
	rs := builtRingSet(t)
	path := filepath.Join(t.TempDir(), "rings.png")

	if err := PlotRingProfile(rs, path); err != nil {
		t.Fatalf("PlotRingProfile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty plot file")
	}
}

func TestPlotRingProfile_NoRings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rings.png")

	if err := PlotRingProfile(nil, path); err == nil {
		t.Error("expected error for nil ring set")
	}
	if err := PlotRingProfile(&geometry.RingSet{}, path); err == nil {
		t.Error("expected error for empty ring set")
	}
}

func TestRingPalette(t *testing.T) {
	if got := ringPalette(0); got != nil {
		t.Errorf("expected nil palette for n=0, got %v", got)
	}

	colors := ringPalette(8)
	if len(colors) != 8 {
		t.Fatalf("expected 8 colors, got %d", len(colors))
	}
	seen := make(map[string]bool)
	for _, c := range colors {
		r, g, b, a := c.RGBA()
		if a == 0 {
			t.Error("expected opaque colors")
		}
		key := fmt.Sprintf("%d-%d-%d", r, g, b)
		if seen[key] {
			t.Errorf("expected distinct colors, %s repeated", key)
		}
		seen[key] = true
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("expected truncated id, got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("expected short id unchanged, got %q", got)
	}
}
