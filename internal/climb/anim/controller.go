package anim

import (
	"time"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/climb/analysis"
	"github.com/banshee-data/crux.report/internal/climb/geometry"
	"github.com/banshee-data/crux.report/internal/config"
	"github.com/banshee-data/crux.report/internal/timeutil"
)

// UpdateResult reports what one Update call did and the state it left.
type UpdateResult struct {
	Change     Change
	Reanalyzed bool
	Rebuilt    bool
	Run        *analysis.Run     // current analysis record
	RingSet    *geometry.RingSet // current baseline, nil when unrenderable
	Generation uint64
}

// Controller owns the pipeline state between renderer callbacks: the last
// settings snapshot, the fingerprint of the last analyzed session, the
// current analysis run, and the baseline geometry that per-frame
// displacement works from. It is single-threaded by contract.
type Controller struct {
	clock timeutil.Clock
	start time.Time

	settings    *config.Settings
	fingerprint string
	run         *analysis.Run
	baseline    *geometry.RingSet
	generation  uint64
}

// NewController returns a controller reading time from clock. A nil clock
// uses the real one.
func NewController(clock timeutil.Clock) *Controller {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Controller{clock: clock, start: clock.Now()}
}

// Update reconciles the controller with the given session and settings,
// doing the least work the transition allows: nothing, a material refresh
// on existing geometry, or re-analysis and a structural rebuild.
//
// A failed analysis leaves all controller state untouched, so the previous
// geometry keeps rendering while the caller reports the data problem. An
// insufficient move set (nothing detected) updates the analysis state but
// clears the baseline; the error tells the caller why there is nothing to
// draw.
func (c *Controller) Update(session climb.Session, settings *config.Settings) (UpdateResult, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	change := Classify(c.settings, settings)
	fingerprint := session.Fingerprint()

	reanalyze := c.run == nil ||
		fingerprint != c.fingerprint ||
		(c.settings != nil && analysisChanged(c.settings, settings))

	reanalyzed := false
	movesChanged := false
	if reanalyze {
		run, err := analysis.AnalyzeSession(session, analysis.ParamsFromSettings(settings))
		if err != nil {
			opsf("update: analysis failed, keeping previous state: %v", err)
			return UpdateResult{
				Change:     change,
				Run:        c.run,
				RingSet:    c.baseline,
				Generation: c.generation,
			}, err
		}
		reanalyzed = true
		movesChanged = c.run == nil || !run.Moves.SameShape(c.run.Moves)
		c.run = run
		c.fingerprint = fingerprint
	}

	rebuilt := false
	if movesChanged || change == ChangeStructural {
		rs, err := geometry.Synthesize(c.run.Moves, settings)
		if err != nil {
			c.baseline = nil
			c.generation++
			c.settings = settings.Clone()
			opsf("update: baseline cleared: %v", err)
			return UpdateResult{
				Change:     change,
				Reanalyzed: reanalyzed,
				Run:        c.run,
				Generation: c.generation,
			}, err
		}
		c.baseline = rs
		c.generation++
		rebuilt = true
	} else if change == ChangeMaterial && c.baseline != nil {
		c.baseline.ApplyMaterial(settings)
	}

	c.settings = settings.Clone()
	diagf("update: change=%s reanalyzed=%t rebuilt=%t generation=%d",
		change, reanalyzed, rebuilt, c.generation)
	return UpdateResult{
		Change:     change,
		Reanalyzed: reanalyzed,
		Rebuilt:    rebuilt,
		Run:        c.run,
		RingSet:    c.baseline,
		Generation: c.generation,
	}, nil
}

// Frame returns the displaced geometry for the current clock time, or nil
// when there is no baseline to animate.
func (c *Controller) Frame() *geometry.RingSet {
	if c.baseline == nil {
		return nil
	}
	elapsed := c.clock.Since(c.start).Seconds()
	tracef("frame: t=%.3fs generation=%d", elapsed, c.generation)
	return Displace(c.baseline, elapsed)
}

// FrameFor is Frame gated on a generation stamp: a queued callback still
// holding the stamp of replaced geometry gets nil and drops its frame.
func (c *Controller) FrameFor(generation uint64) *geometry.RingSet {
	if generation != c.generation {
		return nil
	}
	return c.Frame()
}

// Generation identifies the current baseline. It changes on every rebuild,
// including rebuilds that cleared the baseline.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Baseline exposes the unperturbed geometry, nil when none exists.
func (c *Controller) Baseline() *geometry.RingSet {
	return c.baseline
}

// Run exposes the current analysis record, nil before the first Update.
func (c *Controller) Run() *analysis.Run {
	return c.run
}
