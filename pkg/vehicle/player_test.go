package vehicle

import (
	"math"
	"testing"

	"github.com/golangdaddy/highway/pkg/config"
)

func TestHandbrakeStopsInTwelveTicks(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Player)
	p.Speed = 0.4
	p.Handbrake = true
	want := int(math.Ceil(0.4 / 0.035))
	for i := 1; i <= want; i++ {
		p.Update(0)
		if p.Speed < 0 {
			t.Fatalf("speed went negative at tick %d: %f", i, p.Speed)
		}
		if i < want && p.Speed == 0 {
			t.Fatalf("stopped early at tick %d", i)
		}
	}
	if p.Speed != 0 {
		t.Fatalf("expected stop after %d ticks, speed %f", want, p.Speed)
	}
	p.Update(0)
	if p.Speed != 0 {
		t.Fatalf("handbrake should hold at zero, got %f", p.Speed)
	}
}

func TestHandbrakeOverridesIdleAndThrottle(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Player)
	p.Speed = 0.2
	p.Throttle = true
	p.Handbrake = true
	p.Update(0)
	if math.Abs(p.Speed-0.165) > 1e-9 {
		t.Fatalf("speed = %f, want 0.165", p.Speed)
	}
}

func TestSpeedStaysWithinCeiling(t *testing.T) {
	cfg := config.DefaultConfig().Player
	p := NewPlayer(cfg)
	p.Throttle = true
	distance := 0.0
	for i := 0; i < 5000; i++ {
		p.Update(distance)
		if p.Speed < 0 || p.Speed > p.MaxSpeed(distance)+1e-12 {
			t.Fatalf("tick %d: speed %f outside [0, %f]", i, p.Speed, p.MaxSpeed(distance))
		}
		distance += p.Speed * cfg.DistancePerSpeed
	}
	p.Throttle = false
	p.Braking = true
	for i := 0; i < 200; i++ {
		p.Update(distance)
		if p.Speed < 0 {
			t.Fatalf("braking drove speed negative: %f", p.Speed)
		}
	}
	if p.Speed != 0 {
		t.Fatalf("sustained braking should stop the car, got %f", p.Speed)
	}
}

func TestIdleCreepsTowardsCeiling(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Player)
	before := p.Speed
	p.Update(0)
	if p.Speed <= before {
		t.Fatalf("idle should accelerate: %f -> %f", before, p.Speed)
	}
}

func TestMaxSpeedGrowsWithDistance(t *testing.T) {
	cfg := config.DefaultConfig().Player
	if got := MaxSpeed(cfg, 0); got != cfg.BaseMaxSpeed {
		t.Fatalf("ceiling at 0 = %f", got)
	}
	if got := MaxSpeed(cfg, 40000); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("ceiling at 40000 = %f, want 0.7", got)
	}
	if got := MaxSpeed(cfg, 1e9); got != cfg.MaxSpeedCap {
		t.Fatalf("ceiling should cap at %f, got %f", cfg.MaxSpeedCap, got)
	}
}

func TestSteerSnapsAndBounds(t *testing.T) {
	p := NewPlayer(config.DefaultConfig().Player)
	if !p.Steer(-1) || p.Lane != 0 || p.X() != -3 {
		t.Fatalf("expected lane 0 at x=-3, got lane %d x=%f", p.Lane, p.X())
	}
	if p.SteeringAngle != -45 {
		t.Fatalf("steering = %f", p.SteeringAngle)
	}
	if p.Steer(-1) {
		t.Fatal("cannot steer past the left edge")
	}
	if p.Lane != 0 {
		t.Fatalf("lane = %d", p.Lane)
	}
	p.Steer(1)
	if p.SteeringAngle != 45 {
		t.Fatalf("opposite steer should flip the indicator, got %f", p.SteeringAngle)
	}
	p.ReleaseSteer()
	if p.SteeringAngle != 0 {
		t.Fatal("release should centre the indicator")
	}
	p.Steer(1)
	p.Steer(1)
	if p.Lane != 2 {
		t.Fatalf("lane = %d, want 2", p.Lane)
	}
}
