package climb

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// MinAnalysisSamples is the smallest session peak detection can
// meaningfully run on.
const MinAnalysisSamples = 3

// Sample is a single accelerometer reading: elapsed session time in
// seconds and total acceleration magnitude in m/s².
type Sample struct {
	Time      float64 `json:"time"`
	Magnitude float64 `json:"magnitude"`
}

// Session is one climbing attempt's accelerometer recording, ordered by
// time. Sessions are replaced wholesale on new recordings and never
// mutated in place; Fingerprint identifies a recording cheaply.
type Session struct {
	Samples []Sample `json:"samples"`
}

// Duration returns the time span covered by the session in seconds.
func (s Session) Duration() float64 {
	if len(s.Samples) < 2 {
		return 0
	}
	return s.Samples[len(s.Samples)-1].Time - s.Samples[0].Time
}

// Sanitize returns a copy of the session without unusable samples:
// non-finite times or magnitudes, negative magnitudes, and samples
// whose time runs backwards (equal timestamps are tolerated). The
// dropped count is returned so callers can report data quality.
func (s Session) Sanitize() (Session, int) {
	out := make([]Sample, 0, len(s.Samples))
	dropped := 0
	lastTime := math.Inf(-1)
	for _, sm := range s.Samples {
		if !isFinite(sm.Time) || !isFinite(sm.Magnitude) || sm.Magnitude < 0 || sm.Time < lastTime {
			dropped++
			continue
		}
		lastTime = sm.Time
		out = append(out, sm)
	}
	if dropped > 0 {
		opsf("sanitize: dropped %d of %d samples", dropped, len(s.Samples))
	}
	return Session{Samples: out}, dropped
}

// Fingerprint returns a stable hex digest of the sample data. The
// update controller uses it to detect recording replacement without
// holding on to the previous session.
func (s Session) Fingerprint() string {
	h := sha1.New()
	var buf [16]byte
	for _, sm := range s.Samples {
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(sm.Time))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(sm.Magnitude))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
