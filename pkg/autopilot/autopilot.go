// Package autopilot drives a session without a human: a lane-clearance
// pilot for soak runs and a scripted input loader for reproducible ones.
package autopilot

import (
	"math"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/input"
)

// Lane is what the pilot sees of one lane ahead of the player.
type Lane struct {
	Index     int
	Clearance float64 // distance to the nearest obstacle ahead, +Inf if none
}

// Pilot keeps the throttle open, changes lane away from traffic and stops
// for red lights.
type Pilot struct {
	Lookahead float64 // how far ahead obstacles are considered
	Danger    float64 // clearance below which the pilot changes lane

	cfg      config.Config
	throttle bool
	braking  bool
}

// New returns a pilot for sessions running cfg.
func New(cfg config.Config) *Pilot {
	return &Pilot{Lookahead: 45, Danger: 14, cfg: cfg}
}

// Lanes returns the clearance of every lane, in lane order.
func (p *Pilot) Lanes(s game.Snapshot) []Lane {
	playerZ := p.cfg.Player.Z
	lanes := make([]Lane, len(p.cfg.Player.LaneOffsets))
	for i := range lanes {
		lanes[i] = Lane{Index: i, Clearance: math.Inf(1)}
	}
	// obstacles still overlapping the player count as zero clearance
	tail := p.cfg.Geometry.Player.D
	for _, o := range s.Obstacles {
		ahead := playerZ - o.Z
		if ahead < -tail || ahead > p.Lookahead || o.Lane < 0 || o.Lane >= len(lanes) {
			continue
		}
		ahead = math.Max(ahead, 0)
		if ahead < lanes[o.Lane].Clearance {
			lanes[o.Lane].Clearance = ahead
		}
	}
	return lanes
}

// stoppingDistance is how far the car rolls under the foot brake.
func (p *Pilot) stoppingDistance(speed float64) float64 {
	rate := p.cfg.Player.BrakeRate
	if rate <= 0 {
		return math.Inf(1)
	}
	return speed * speed / (2 * rate)
}

// redAhead reports whether a red stop line is close enough to brake for.
func (p *Pilot) redAhead(s game.Snapshot) bool {
	front := p.cfg.Player.Z - p.cfg.Geometry.Player.D/2
	reach := p.stoppingDistance(s.Speed) + 4
	for _, l := range s.Traffic {
		if !l.Red || l.ViolationChecked {
			continue
		}
		ahead := front - (l.Z + p.cfg.Lights.StopLineOffset)
		if ahead > 0 && ahead < reach {
			return true
		}
	}
	return false
}

// Decide returns the input events for the next tick. A finished session
// gets none; restarting is up to the caller.
func (p *Pilot) Decide(s game.Snapshot) []input.Event {
	if !s.Running {
		p.throttle, p.braking = false, false
		return nil
	}
	var out []input.Event

	lanes := p.Lanes(s)
	blocked := false
	if s.Lane >= 0 && s.Lane < len(lanes) && lanes[s.Lane].Clearance < p.Danger {
		best := s.Lane
		for _, n := range []int{s.Lane - 1, s.Lane + 1} {
			if n >= 0 && n < len(lanes) && lanes[n].Clearance > lanes[best].Clearance {
				best = n
			}
		}
		switch {
		case best < s.Lane:
			out = append(out, input.Press(input.SteerLeft), input.Release(input.SteerLeft))
		case best > s.Lane:
			out = append(out, input.Press(input.SteerRight), input.Release(input.SteerRight))
		default:
			blocked = true
		}
	}

	brake := blocked || p.redAhead(s)
	if brake != p.braking {
		p.braking = brake
		out = append(out, input.Event{Kind: input.Brake, Released: !brake})
	}
	if throttle := !brake; throttle != p.throttle {
		p.throttle = throttle
		out = append(out, input.Event{Kind: input.Accelerate, Released: !throttle})
	}
	return out
}

// Reset forgets the pedal state, for use after a restart.
func (p *Pilot) Reset() {
	p.throttle, p.braking = false, false
}
