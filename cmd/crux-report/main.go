// Command crux-report analyzes one climbing session recording, reports
// the detected moves, and builds the ring geometry a renderer would
// draw for them. Optional flags export a diagnostic PNG plot and an
// interactive HTML chart for both.
//
// The input is a time,magnitude CSV (seconds, m/s²), one sample per
// row; -synthetic generates a session instead for a quick smoke run.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/climb/analysis"
	"github.com/banshee-data/crux.report/internal/climb/geometry"
	"github.com/banshee-data/crux.report/internal/climb/monitor"
	"github.com/banshee-data/crux.report/internal/config"
	"github.com/banshee-data/crux.report/internal/units"
	"github.com/banshee-data/crux.report/internal/version"
)

// Config holds the parsed command line.
type Config struct {
	Input     string
	Synthetic bool
	Settings  string
	PlotPath  string
	HTMLPath  string
	Rings     int
	Units     string
	Trace     bool
	Version   bool
}

func main() {
	cfg := parseFlags()

	if cfg.Version {
		fmt.Printf("crux-report %s\n", version.String())
		return
	}

	if cfg.Input == "" && !cfg.Synthetic {
		log.Fatal("either -input or -synthetic is required")
	}
	if cfg.Input != "" && cfg.Synthetic {
		log.Fatal("-input and -synthetic are mutually exclusive")
	}
	if !units.IsValid(cfg.Units) {
		log.Fatalf("invalid units %q (valid: %s)", cfg.Units, units.GetValidUnitsString())
	}

	setupLogging(cfg.Trace)

	settings := loadSettings(cfg)

	session, source, err := loadSession(cfg)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	log.Printf("session %s: %d samples over %.1fs", source, len(session.Samples), session.Duration())

	run, err := analysis.AnalyzeSession(session, analysis.ParamsFromSettings(settings))
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	rs, err := geometry.Synthesize(run.Moves, settings)
	if err != nil {
		if !errors.Is(err, climb.ErrInsufficientMoves) {
			log.Fatalf("geometry failed: %v", err)
		}
		log.Printf("Warning: %v; skipping geometry", err)
		rs = nil
	}

	printSummary(run, rs, cfg.Units)

	if cfg.PlotPath != "" {
		exportPlots(cfg.PlotPath, run, session, rs)
	}
	if cfg.HTMLPath != "" {
		exportCharts(cfg.HTMLPath, run, session, rs)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Input, "input", "", "Path to a time,magnitude session CSV")
	flag.BoolVar(&cfg.Synthetic, "synthetic", false, "Analyze a generated synthetic session instead of a file")
	flag.StringVar(&cfg.Settings, "config", "", "Path to a settings JSON file (embedded defaults otherwise)")
	flag.StringVar(&cfg.PlotPath, "plot", "", "Write a session analysis PNG (ring profile written beside it)")
	flag.StringVar(&cfg.HTMLPath, "html", "", "Write an interactive session chart HTML (ring chart beside it)")
	flag.IntVar(&cfg.Rings, "rings", 0, "Override the configured ring count (0 keeps the setting)")
	flag.StringVar(&cfg.Units, "units", units.MPS2, "Display units for acceleration: mps2, g, fps2")
	flag.BoolVar(&cfg.Trace, "trace", false, "Enable trace logging to stderr")
	flag.BoolVar(&cfg.Version, "version", false, "Print build identification and exit")

	flag.Parse()

	return cfg
}

// setupLogging routes the ops and diag streams of every package to
// stderr; trace streams only when -trace is set.
func setupLogging(trace bool) {
	var traceW io.Writer
	if trace {
		traceW = os.Stderr
	}
	climb.SetLogWriters(os.Stderr, os.Stderr, traceW)
	analysis.SetLogWriters(os.Stderr, os.Stderr, traceW)
	geometry.SetLogWriters(os.Stderr, os.Stderr, traceW)
	monitor.SetLogWriters(os.Stderr, os.Stderr, traceW)
}

func loadSettings(cfg Config) *config.Settings {
	var s *config.Settings
	if cfg.Settings == "" {
		s = config.DefaultSettings()
	} else {
		loaded, err := config.LoadSettings(cfg.Settings)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		s = loaded
	}

	if cfg.Rings > 0 {
		s.RingCount = config.Int(cfg.Rings)
	}
	if err := s.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	return s
}

func loadSession(cfg Config) (climb.Session, string, error) {
	if cfg.Synthetic {
		return climb.SyntheticSession(climb.DefaultSyntheticConfig()), "synthetic", nil
	}
	session, err := readSessionCSV(cfg.Input)
	return session, cfg.Input, err
}

// readSessionCSV parses a time,magnitude CSV. A header row is
// tolerated; any other unparseable row fails with its line number so a
// bad export cannot silently skew analysis.
func readSessionCSV(path string) (climb.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return climb.Session{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var session climb.Session
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return climb.Session{}, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		if line == 1 && !isNumeric(record[0]) {
			continue
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return climb.Session{}, fmt.Errorf("line %d: bad time %q", line, record[0])
		}
		m, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return climb.Session{}, fmt.Errorf("line %d: bad magnitude %q", line, record[1])
		}
		session.Samples = append(session.Samples, climb.Sample{Time: t, Magnitude: m})
	}
	return session, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// printSummary logs the run and geometry results in the configured
// acceleration units.
func printSummary(run *analysis.Run, rs *geometry.RingSet, unit string) {
	label := units.Label(unit)

	log.Printf("=== Session Analysis ===")
	log.Printf("Run: %s", run.RunID)
	log.Printf("Samples: %d used, %d dropped", run.SampleCount, run.DroppedSamples)
	log.Printf("Duration: %.1fs", run.Duration)
	log.Printf("Threshold: %.2f %s", units.ConvertAcceleration(run.Threshold, unit), label)

	crux := 0
	byType := make(map[climb.MoveType]int)
	for _, m := range run.Moves {
		if m.IsCrux {
			crux++
		}
		byType[m.Type]++
	}
	log.Printf("Moves: %d (start + %d detected), crux: %d", len(run.Moves), len(run.Moves)-1, crux)
	for _, mt := range climb.ValidMoveTypes {
		if n := byType[mt]; n > 0 {
			log.Printf("  %-8s %d", mt, n)
		}
	}

	log.Printf("--- Moves ---")
	for _, m := range run.Moves {
		mark := " "
		if m.IsCrux {
			mark = "*"
		}
		log.Printf("%s %2d  t=%6.2fs  %7.2f %s  dyn=%.2f  %s",
			mark, m.SequenceIndex, m.Time,
			units.ConvertAcceleration(m.RawMagnitude, unit), label, m.Dynamics, m.Type)
	}

	if rs == nil {
		return
	}
	log.Printf("=== Ring Geometry ===")
	log.Printf("Rings: %d built, %d skipped of %d", rs.RingsBuilt, rs.RingsSkipped, rs.RingCount)
	if len(rs.Rings) > 0 {
		log.Printf("Vertices per ring: %d", len(rs.Rings[0].Points))
	}
}

// exportPlots writes the session PNG at path and, when geometry was
// built, the ring profile beside it with a -rings suffix.
func exportPlots(path string, run *analysis.Run, session climb.Session, rs *geometry.RingSet) {
	if err := monitor.PlotSession(run, session, path); err != nil {
		log.Printf("Warning: session plot: %v", err)
	} else {
		log.Printf("Session plot written to: %s", path)
	}

	if rs == nil {
		return
	}
	ringPath := strings.TrimSuffix(path, ".png") + "-rings.png"
	if err := monitor.PlotRingProfile(rs, ringPath); err != nil {
		log.Printf("Warning: ring profile: %v", err)
	} else {
		log.Printf("Ring profile written to: %s", ringPath)
	}
}

// exportCharts writes the session HTML chart at path and, when geometry
// was built, the ring chart beside it with a -rings suffix.
func exportCharts(path string, run *analysis.Run, session climb.Session, rs *geometry.RingSet) {
	if err := writeChart(path, func(w io.Writer) error {
		return monitor.WriteSessionChart(w, run, session)
	}); err != nil {
		log.Printf("Warning: session chart: %v", err)
	} else {
		log.Printf("Session chart written to: %s", path)
	}

	if rs == nil {
		return
	}
	ringPath := strings.TrimSuffix(path, ".html") + "-rings.html"
	if err := writeChart(ringPath, func(w io.Writer) error {
		return monitor.WriteRingChart(w, rs)
	}); err != nil {
		log.Printf("Warning: ring chart: %v", err)
	} else {
		log.Printf("Ring chart written to: %s", ringPath)
	}
}

func writeChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}
