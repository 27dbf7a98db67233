package monitor

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/climb/analysis"
	"github.com/banshee-data/crux.report/internal/climb/geometry"
)

// Trace and marker colors shared by the PNG plots.
var (
	rawTraceColor    = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	smoothTraceColor = color.RGBA{R: 64, G: 120, B: 192, A: 255}
	thresholdColor   = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	peakMarkerColor  = color.RGBA{R: 235, G: 150, B: 40, A: 255}
	cruxMarkerColor  = color.RGBA{R: 210, G: 40, B: 40, A: 255}
)

// PlotSession writes a PNG showing one analysis pass over its session:
// the raw magnitude trace, the smoothed trace, the detection threshold,
// and markers for every retained peak and crux move.
func PlotSession(run *analysis.Run, session climb.Session, path string) error {
	if run == nil {
		return fmt.Errorf("nil run")
	}
	out, err := preparePlotPath(path)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Session analysis (run %s)", shortID(run.RunID))
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Acceleration (m/s²)"

	// Raw trace straight from the session; skip samples the analyzer
	// would have dropped so one bad row cannot wreck the y-range.
	rawPts := make(plotter.XYs, 0, len(session.Samples))
	for _, s := range session.Samples {
		if s.Magnitude <= 0 || math.IsNaN(s.Magnitude) || math.IsInf(s.Magnitude, 0) {
			continue
		}
		rawPts = append(rawPts, plotter.XY{X: s.Time, Y: s.Magnitude})
	}

	smoothPts := make(plotter.XYs, 0, len(run.Smoothed))
	for i, v := range run.Smoothed {
		if i >= len(run.Times) {
			break
		}
		smoothPts = append(smoothPts, plotter.XY{X: run.Times[i], Y: v})
	}

	if len(rawPts) == 0 && len(smoothPts) == 0 {
		return fmt.Errorf("run %s has no trace data", shortID(run.RunID))
	}

	if len(rawPts) > 0 {
		rawLine, err := plotter.NewLine(rawPts)
		if err != nil {
			return err
		}
		rawLine.Color = rawTraceColor
		rawLine.Width = vg.Points(0.5)
		p.Add(rawLine)
		p.Legend.Add("raw", rawLine)
	}

	if len(smoothPts) > 0 {
		smoothLine, err := plotter.NewLine(smoothPts)
		if err != nil {
			return err
		}
		smoothLine.Color = smoothTraceColor
		smoothLine.Width = vg.Points(1.5)
		p.Add(smoothLine)
		p.Legend.Add("smoothed", smoothLine)
	}

	// Threshold rule across the full time span.
	if t0, t1, ok := traceSpan(run, rawPts); ok {
		rulePts := plotter.XYs{{X: t0, Y: run.Threshold}, {X: t1, Y: run.Threshold}}
		rule, err := plotter.NewLine(rulePts)
		if err != nil {
			return err
		}
		rule.Color = thresholdColor
		rule.Width = vg.Points(1)
		rule.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(rule)
		p.Legend.Add("threshold", rule)
	}

	if len(run.Peaks) > 0 {
		peakPts := make(plotter.XYs, 0, len(run.Peaks))
		for _, pk := range run.Peaks {
			peakPts = append(peakPts, plotter.XY{X: pk.Time, Y: pk.Value})
		}
		peaks, err := plotter.NewScatter(peakPts)
		if err != nil {
			return err
		}
		peaks.GlyphStyle.Color = peakMarkerColor
		peaks.GlyphStyle.Radius = vg.Points(3)
		p.Add(peaks)
		p.Legend.Add("peaks", peaks)
	}

	cruxPts := make(plotter.XYs, 0, len(run.Moves))
	for _, m := range run.Moves {
		if m.IsCrux {
			cruxPts = append(cruxPts, plotter.XY{X: m.Time, Y: m.RawMagnitude})
		}
	}
	if len(cruxPts) > 0 {
		crux, err := plotter.NewScatter(cruxPts)
		if err != nil {
			return err
		}
		crux.GlyphStyle.Color = cruxMarkerColor
		crux.GlyphStyle.Radius = vg.Points(5)
		crux.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(crux)
		p.Legend.Add("crux", crux)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, out); err != nil {
		return fmt.Errorf("save session plot: %w", err)
	}

	diagf("session plot: raw=%d smoothed=%d peaks=%d crux=%d",
		len(rawPts), len(smoothPts), len(run.Peaks), len(cruxPts))
	opsf("wrote session plot %s", out)
	return nil
}

// PlotRingProfile writes a PNG of radius against ring position for every
// built ring, one line per ring, innermost first. Flat lines mean quiet
// rings; the bulges show where dynamics and crux emphasis land.
func PlotRingProfile(rs *geometry.RingSet, path string) error {
	if rs == nil || len(rs.Rings) == 0 {
		return fmt.Errorf("no rings to plot")
	}
	out, err := preparePlotPath(path)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Ring radius profile (%d rings, %d moves)", len(rs.Rings), rs.MoveCount)
	p.X.Label.Text = "Ring position (turns)"
	p.Y.Label.Text = "Radius"

	colors := ringPalette(len(rs.Rings))
	for i, ring := range rs.Rings {
		n := len(ring.Points)
		if n == 0 {
			continue
		}
		pts := make(plotter.XYs, 0, n+1)
		for j := 0; j < n; j++ {
			pts = append(pts, plotter.XY{X: float64(j) / float64(n), Y: ring.Radius(j)})
		}
		// Repeat the first vertex at x=1 so the closed ring reads as a loop.
		pts = append(pts, plotter.XY{X: 1, Y: pts[0].Y})

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("ring %d: %w", ring.RingIndex, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("ring %02d", ring.RingIndex), line)
		tracef("ring %02d profile: %d vertices", ring.RingIndex, n)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, out); err != nil {
		return fmt.Errorf("save ring profile: %w", err)
	}

	opsf("wrote ring profile %s (%d rings)", out, len(rs.Rings))
	return nil
}

// traceSpan returns the time range covered by the run's smoothed trace,
// falling back to the raw points when the run carries no trace.
func traceSpan(run *analysis.Run, rawPts plotter.XYs) (t0, t1 float64, ok bool) {
	if len(run.Times) > 1 {
		return run.Times[0], run.Times[len(run.Times)-1], true
	}
	if len(rawPts) > 1 {
		return rawPts[0].X, rawPts[len(rawPts)-1].X, true
	}
	return 0, 0, false
}

// preparePlotPath validates a requested output path and makes sure its
// parent directory exists. Only .png targets are accepted so a typo'd
// path cannot clobber an unrelated file.
func preparePlotPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty plot path")
	}
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".png" {
		return "", fmt.Errorf("plot path must have .png extension, got %q", ext)
	}
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create plot directory: %w", err)
		}
	}
	return cleanPath, nil
}

// shortID trims a run identifier to its leading group for titles.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ringPalette walks the hue wheel so adjacent rings render in clearly
// separated colors regardless of ring count.
func ringPalette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = hslColor(float64(i)/float64(n), 0.65, 0.45)
	}
	return out
}

// hslColor converts an HSL triple (h, s, l in [0,1]) to an opaque RGBA.
func hslColor(h, s, l float64) color.Color {
	if s == 0 {
		v := uint8(l * 255)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
	q := l * (1 + s)
	if l >= 0.5 {
		q = l + s - l*s
	}
	p := 2*l - q
	channel := func(t float64) uint8 {
		t -= math.Floor(t)
		var v float64
		switch {
		case t < 1.0/6.0:
			v = p + (q-p)*6*t
		case t < 0.5:
			v = q
		case t < 2.0/3.0:
			v = p + (q-p)*(2.0/3.0-t)*6
		default:
			v = p
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: channel(h + 1.0/3.0), G: channel(h), B: channel(h - 1.0/3.0), A: 255}
}
