// Package vehicle models the player car: lane, speed and pedals.
package vehicle

import (
	"math"

	"github.com/golangdaddy/highway/pkg/config"
)

// Player is the driven car. Speed is in world units per tick.
type Player struct {
	Lane          int
	Speed         float64
	SteeringAngle float64 // cosmetic, degrees
	Throttle      bool
	Braking       bool
	Handbrake     bool
	Lights        bool

	cfg config.Player
}

// NewPlayer creates a player at rest state for a fresh session.
func NewPlayer(cfg config.Player) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset puts the player back in the start lane at the base road speed.
func (p *Player) Reset() {
	p.Lane = p.cfg.StartLane
	p.Speed = p.cfg.BaseSpeed
	p.SteeringAngle = 0
	p.Throttle = false
	p.Braking = false
	p.Handbrake = false
	p.Lights = false
}

// X returns the lateral offset of the current lane.
func (p *Player) X() float64 { return p.cfg.LaneOffsets[p.Lane] }

// Z returns the fixed longitudinal position of the player.
func (p *Player) Z() float64 { return p.cfg.Z }

// Y returns the ride height of the player.
func (p *Player) Y() float64 { return p.cfg.Y }

// MaxSpeed is the distance-dependent speed ceiling.
func (p *Player) MaxSpeed(distance float64) float64 {
	return MaxSpeed(p.cfg, distance)
}

// MaxSpeed grows linearly with distance travelled, bounded by the cap
// when one is configured.
func MaxSpeed(cfg config.Player, distance float64) float64 {
	ceiling := cfg.BaseMaxSpeed + cfg.MaxSpeedPerUnit*math.Max(distance, 0)
	if cfg.MaxSpeedCap > 0 && ceiling > cfg.MaxSpeedCap {
		ceiling = cfg.MaxSpeedCap
	}
	return ceiling
}

// Update integrates one tick of speed. Handbrake beats brake beats
// throttle; with no input the car creeps up towards the ceiling.
func (p *Player) Update(distance float64) {
	switch {
	case p.Handbrake:
		p.Speed -= p.cfg.HandbrakeRate
	case p.Braking:
		p.Speed -= p.cfg.BrakeRate
	case p.Throttle:
		p.Speed += p.cfg.AccelerationRate
	default:
		p.Speed += p.cfg.IdleAcceleration
	}
	p.Speed = clamp(p.Speed, 0, p.MaxSpeed(distance))
}

// Steer snaps one lane in dir (-1 left, +1 right) and sets the steering
// indicator. It reports whether the lane changed; at the road edge the
// indicator still turns.
func (p *Player) Steer(dir int) bool {
	switch {
	case dir < 0:
		p.SteeringAngle = -p.cfg.SteeringAngle
	case dir > 0:
		p.SteeringAngle = p.cfg.SteeringAngle
	default:
		return false
	}
	next := p.Lane + dir
	if next < 0 || next >= len(p.cfg.LaneOffsets) {
		return false
	}
	p.Lane = next
	return true
}

// ReleaseSteer centres the steering indicator.
func (p *Player) ReleaseSteer() {
	p.SteeringAngle = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
