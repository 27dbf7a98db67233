package monitor

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/climb/analysis"
	"github.com/banshee-data/crux.report/internal/climb/geometry"
)

// maxChartPoints caps how many values are serialized into one HTML
// chart; longer inputs are downsampled by stride to keep the page
// responsive in a browser.
const maxChartPoints = 4000

// chartRamp colors the visual-map dimension from low (cool) to high (hot).
var chartRamp = []string{"#3b5bab", "#6a6ab8", "#9a68a8", "#c65c80", "#e04e50", "#f04028"}

// WriteSessionChart renders an interactive HTML view of one analysis
// pass to w: raw and smoothed traces with the threshold as a line chart,
// plus detected moves as a scatter colored by dynamics.
func WriteSessionChart(w io.Writer, run *analysis.Run, session climb.Session) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}
	if run == nil {
		return fmt.Errorf("nil run")
	}

	n := len(run.Times)
	if n == 0 {
		return fmt.Errorf("run %s has no trace data", shortID(run.RunID))
	}

	stride := 1
	if n > maxChartPoints {
		stride = int(math.Ceil(float64(n) / float64(maxChartPoints)))
	}

	xs := make([]string, 0, n/stride+1)
	rawSeries := make([]opts.LineData, 0, n/stride+1)
	smoothSeries := make([]opts.LineData, 0, n/stride+1)
	thresholdSeries := make([]opts.LineData, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		xs = append(xs, strconv.FormatFloat(run.Times[i], 'f', 2, 64))
		if i < len(run.Raw) {
			rawSeries = append(rawSeries, opts.LineData{Value: run.Raw[i]})
		}
		if i < len(run.Smoothed) {
			smoothSeries = append(smoothSeries, opts.LineData{Value: run.Smoothed[i]})
		}
		thresholdSeries = append(thresholdSeries, opts.LineData{Value: run.Threshold})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Session analysis", Theme: "dark", Width: "1400px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Session acceleration",
			Subtitle: fmt.Sprintf("run=%s recorded=%d used=%d duration=%.1fs threshold=%.2f",
				shortID(run.RunID), len(session.Samples), run.SampleCount, session.Duration(), run.Threshold),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m/s²"}),
	)
	line.SetXAxis(xs).
		AddSeries("raw", rawSeries).
		AddSeries("smoothed", smoothSeries).
		AddSeries("threshold", thresholdSeries)

	// Moves as a scatter on value axes, colored by dynamics; crux moves
	// get their own series with a larger symbol.
	moveData := make([]opts.ScatterData, 0, len(run.Moves))
	cruxData := make([]opts.ScatterData, 0, 2)
	maxTime, maxMag := 0.0, 0.0
	for _, m := range run.Moves {
		if m.Time > maxTime {
			maxTime = m.Time
		}
		if m.RawMagnitude > maxMag {
			maxMag = m.RawMagnitude
		}
		d := opts.ScatterData{Value: []interface{}{m.Time, m.RawMagnitude, m.Dynamics}}
		if m.IsCrux {
			cruxData = append(cruxData, d)
		} else {
			moveData = append(moveData, d)
		}
	}
	xPad := maxTime * 1.05
	if xPad == 0 {
		xPad = 1.0
	}
	yPad := maxMag * 1.05
	if yPad == 0 {
		yPad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1400px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Detected moves",
			Subtitle: fmt.Sprintf("moves=%d crux=%d", len(run.Moves), len(cruxData)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: xPad, Name: "Time (s)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: yPad, Name: "m/s²", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: chartRamp},
		}),
	)
	scatter.AddSeries("moves", moveData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	if len(cruxData) > 0 {
		scatter.AddSeries("crux", cruxData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}))
	}

	page := components.NewPage()
	page.AddCharts(line, scatter)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render session chart: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write session chart: %w", err)
	}

	diagf("session chart: points=%d stride=%d moves=%d", len(xs), stride, len(run.Moves))
	opsf("rendered session chart (%d bytes)", buf.Len())
	return nil
}

// WriteRingChart renders the ring set to w as an interactive top-down
// scatter: every vertex projected onto the XY plane, colored by height.
func WriteRingChart(w io.Writer, rs *geometry.RingSet) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}
	if rs == nil || len(rs.Rings) == 0 {
		return fmt.Errorf("no rings to chart")
	}

	total := 0
	for _, ring := range rs.Rings {
		total += len(ring.Points)
	}
	if total == 0 {
		return fmt.Errorf("ring set has no vertices")
	}

	// Downsample by stride to stay within maxChartPoints.
	stride := 1
	if total > maxChartPoints {
		stride = int(math.Ceil(float64(total) / float64(maxChartPoints)))
	}

	data := make([]opts.ScatterData, 0, total/stride+1)
	maxAbs := 0.0
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	idx := 0
	for _, ring := range rs.Rings {
		for _, v := range ring.Points {
			use := idx%stride == 0
			idx++
			if !use {
				continue
			}
			if a := math.Abs(v.X); a > maxAbs {
				maxAbs = a
			}
			if a := math.Abs(v.Y); a > maxAbs {
				maxAbs = a
			}
			if v.Z < minZ {
				minZ = v.Z
			}
			if v.Z > maxZ {
				maxZ = v.Z
			}
			data = append(data, opts.ScatterData{Value: []interface{}{v.X, v.Y, v.Z}})
		}
	}

	// Pad so edge vertices stay visible, and force symmetric axes so the
	// rings render round rather than squashed.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxZ <= minZ {
		maxZ = minZ + 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Ring geometry", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Ring geometry (top down)",
			Subtitle: fmt.Sprintf("rings=%d built=%d skipped=%d stride=%d", rs.RingCount, rs.RingsBuilt, rs.RingsSkipped, stride),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minZ),
			Max:        float32(maxZ),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: chartRamp},
		}),
	)
	scatter.AddSeries("vertices", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return fmt.Errorf("render ring chart: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write ring chart: %w", err)
	}

	diagf("ring chart: vertices=%d of %d stride=%d", len(data), total, stride)
	opsf("rendered ring chart (%d bytes)", buf.Len())
	return nil
}
