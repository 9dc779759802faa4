package traffic

import (
	"time"

	"github.com/golangdaddy/highway/pkg/collision"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/scene"
)

// Light is a roadside traffic light with a stop line across the road.
// Red and green alternate on a timer; a player waiting at red is let
// through after a courtesy delay.
type Light struct {
	ID               uint64
	Z                float64
	Red              bool
	ViolationChecked bool
	CycleDeadline    time.Time
	WaitingForGreen  bool
	WaitingSince     time.Time // zero while not waiting
	StopLinePrevZ    float64
	StopLineCurZ     float64

	offset     float64
	handle     scene.Handle
	lineHandle scene.Handle
}

// NewLight creates a light at z whose first toggle is one cycle after now.
func NewLight(id uint64, z float64, red bool, now time.Time, cfg config.Lights) *Light {
	l := &Light{
		ID:            id,
		Z:             z,
		Red:           red,
		CycleDeadline: now.Add(cfg.Cycle()),
		offset:        cfg.StopLineOffset,
	}
	l.StopLineCurZ = l.stopLineZ()
	l.StopLinePrevZ = l.StopLineCurZ
	return l
}

func (l *Light) stopLineZ() float64 { return l.Z + l.offset }

// Advance moves the light by dz and shifts the stop line history.
func (l *Light) Advance(dz float64) {
	l.StopLinePrevZ = l.StopLineCurZ
	l.Z += dz
	l.StopLineCurZ = l.stopLineZ()
}

// CheckViolation evaluates the stop line crossing for a player at playerZ.
// The first crossing marks the light checked whatever its colour; the
// returned bool is true only when that crossing happened on red.
func (l *Light) CheckViolation(playerZ float64) bool {
	if l.ViolationChecked {
		return false
	}
	if !collision.CrossedStopLine(l.StopLinePrevZ, l.StopLineCurZ, playerZ) {
		return false
	}
	l.ViolationChecked = true
	return l.Red
}

// Update runs the red/green state machine and reports whether the colour
// changed this tick.
func (l *Light) Update(now time.Time, playerZ, speed float64, cfg config.Lights) bool {
	if !now.Before(l.CycleDeadline) {
		l.Red = !l.Red
		l.CycleDeadline = now.Add(cfg.Cycle())
		l.stopWaiting()
		return true
	}

	if !l.Red {
		l.stopWaiting()
		return false
	}

	gap := playerZ - l.StopLineCurZ
	waiting := gap > 0 && gap <= cfg.CourtesyDistance && speed < cfg.StationarySpeed
	if !waiting {
		l.stopWaiting()
		return false
	}
	if !l.WaitingForGreen {
		l.WaitingForGreen = true
		l.WaitingSince = now
		return false
	}
	if now.Sub(l.WaitingSince) >= cfg.CourtesyWait() {
		l.Red = false
		l.CycleDeadline = now.Add(cfg.Cycle())
		l.stopWaiting()
		return true
	}
	return false
}

func (l *Light) stopWaiting() {
	l.WaitingForGreen = false
	l.WaitingSince = time.Time{}
}
