// Command gen-session writes a synthetic climbing session as a
// time,magnitude CSV for exercising the analysis pipeline.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/crux.report/internal/climb"
)

func main() {
	output := flag.String("o", "session.csv", "output path")
	duration := flag.Float64("duration", 40, "session length in seconds")
	rate := flag.Float64("rate", 50, "sample rate in Hz")
	floor := flag.Float64("floor", 9.8, "resting magnitude in m/s²")
	noise := flag.Float64("noise", 0.1, "noise amplitude around the floor")
	seed := flag.Int64("seed", 42, "random seed")
	bumps := flag.String("bumps", "10:15:0.3,20:30:0.3,30:12:0.3", "comma-separated bumps as time:height:width")
	flag.Parse()

	cfg := climb.SyntheticConfig{
		Duration:   *duration,
		SampleRate: *rate,
		Floor:      *floor,
		Noise:      *noise,
		Seed:       *seed,
	}
	parsed, err := parseBumps(*bumps)
	if err != nil {
		log.Fatalf("bad -bumps: %v", err)
	}
	cfg.Bumps = parsed

	session := climb.SyntheticSession(cfg)

	if err := writeSessionCSV(session, *output); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("✓ Created: %s (%d samples, %d bumps)", *output, len(session.Samples), len(cfg.Bumps))
}

// parseBumps decodes a comma-separated list of time:height:width triples.
func parseBumps(spec string) ([]climb.SyntheticBump, error) {
	if spec == "" {
		return nil, nil
	}
	var out []climb.SyntheticBump
	for _, part := range strings.Split(spec, ",") {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%q: want time:height:width", part)
		}
		vals := make([]float64, 3)
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", part, err)
			}
			vals[i] = v
		}
		out = append(out, climb.SyntheticBump{Time: vals[0], Height: vals[1], Width: vals[2]})
	}
	return out, nil
}

func writeSessionCSV(session climb.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "magnitude"}); err != nil {
		return err
	}
	for _, s := range session.Samples {
		row := []string{
			fmt.Sprintf("%.6f", s.Time),
			fmt.Sprintf("%.6f", s.Magnitude),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
