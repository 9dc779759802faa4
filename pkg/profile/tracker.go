package profile

import (
	"io"
	"log"
	"time"

	"github.com/golangdaddy/highway/pkg/clock"
)

// Tracker is a scene.Presenter that folds each finished session into a
// profile and saves it.
type Tracker struct {
	Profile *Profile
	Path    string // empty keeps the profile in memory

	clock    clock.Clock
	logger   *log.Logger
	started  time.Time
	distance float64
	money    int
	fines    int
}

// NewTracker tracks runs into p, saving to path after each one.
func NewTracker(p *Profile, path string, c clock.Clock, logger *log.Logger) *Tracker {
	if c == nil {
		c = clock.Real{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{Profile: p, Path: path, clock: c, logger: logger, started: c.Now()}
}

func (t *Tracker) ReportDistance(v float64) { t.distance = v }
func (t *Tracker) ReportMoney(v int)        { t.money = v }
func (t *Tracker) ReportFine(string)        { t.fines++ }
func (t *Tracker) ReportSpeed(float64)      {}
func (t *Tracker) ReportSteering(float64)   {}

func (t *Tracker) ReportRestart() {
	t.started = t.clock.Now()
	t.distance, t.money, t.fines = 0, 0, 0
}

func (t *Tracker) ReportGameOver() {
	now := t.clock.Now()
	run := Run{Distance: t.distance, Money: t.money, Fines: t.fines, Duration: now.Sub(t.started)}
	if t.Profile.Record(run, now) {
		t.logger.Printf("New best distance for %s: %.0f", t.Profile.Name, run.Distance)
	}
	if t.Path == "" {
		return
	}
	if err := t.Profile.SaveToFile(t.Path); err != nil {
		t.logger.Printf("Failed to save profile: %v", err)
	}
}
