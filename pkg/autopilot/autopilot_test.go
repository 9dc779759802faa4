package autopilot

import (
	"math"
	"reflect"
	"testing"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/input"
)

func running(lane int, speed float64) game.Snapshot {
	return game.Snapshot{Running: true, Lane: lane, Speed: speed}
}

func TestLanesClearance(t *testing.T) {
	p := New(config.DefaultConfig())
	s := running(1, 0.2)
	s.Obstacles = []game.EntityState{
		{Lane: 0, Z: 10},  // behind the player
		{Lane: 1, Z: 6},   // overlapping
		{Lane: 2, Z: -15}, // 20 ahead
		{Lane: 2, Z: -30},
		{Lane: 2, Z: -80}, // beyond lookahead
	}
	lanes := p.Lanes(s)
	if !math.IsInf(lanes[0].Clearance, 1) {
		t.Errorf("lane 0 clearance = %f, want +Inf", lanes[0].Clearance)
	}
	if lanes[1].Clearance != 0 {
		t.Errorf("lane 1 clearance = %f, want 0", lanes[1].Clearance)
	}
	if lanes[2].Clearance != 20 {
		t.Errorf("lane 2 clearance = %f, want 20", lanes[2].Clearance)
	}
}

func TestDecideSteersToClearestNeighbour(t *testing.T) {
	p := New(config.DefaultConfig())
	s := running(1, 0.3)
	s.Obstacles = []game.EntityState{{Lane: 1, Z: -3}, {Lane: 2, Z: -20}}
	got := p.Decide(s)
	want := []input.Event{
		input.Press(input.SteerLeft), input.Release(input.SteerLeft),
		input.Press(input.Accelerate),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// pedals are edge triggered
	s.Obstacles = nil
	if got := p.Decide(s); len(got) != 0 {
		t.Fatalf("steady state should emit nothing, got %v", got)
	}
}

func TestDecideBrakesWhenBoxedIn(t *testing.T) {
	p := New(config.DefaultConfig())
	s := running(1, 0.3)
	s.Obstacles = []game.EntityState{{Lane: 0, Z: -3}, {Lane: 1, Z: -3}, {Lane: 2, Z: -3}}
	got := p.Decide(s)
	if !reflect.DeepEqual(got, []input.Event{input.Press(input.Brake)}) {
		t.Fatalf("got %v, want brake press", got)
	}
}

func TestDecideStopsForRedLight(t *testing.T) {
	p := New(config.DefaultConfig())
	s := running(1, 0.3)
	p.Decide(s)

	s.Traffic = []game.LightState{{Z: -2, Red: true}}
	got := p.Decide(s)
	want := []input.Event{input.Press(input.Brake), input.Release(input.Accelerate)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("red: got %v, want %v", got, want)
	}

	s.Traffic[0].Red = false
	got = p.Decide(s)
	want = []input.Event{input.Release(input.Brake), input.Press(input.Accelerate)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("green: got %v, want %v", got, want)
	}
}

func TestDecideIgnoresPassedOrDistantLights(t *testing.T) {
	p := New(config.DefaultConfig())
	s := running(1, 0.3)
	s.Traffic = []game.LightState{
		{Z: -2, Red: true, ViolationChecked: true},
		{Z: -60, Red: true},
		{Z: 8, Red: true},
	}
	got := p.Decide(s)
	if !reflect.DeepEqual(got, []input.Event{input.Press(input.Accelerate)}) {
		t.Fatalf("got %v, want only throttle", got)
	}
}

func TestDecideIdleWhenOver(t *testing.T) {
	p := New(config.DefaultConfig())
	p.Decide(running(1, 0.3))
	if got := p.Decide(game.Snapshot{Running: false}); got != nil {
		t.Fatalf("finished session should get no input, got %v", got)
	}
	// pedal state was dropped, so the next run presses the throttle again
	if got := p.Decide(running(1, 0.1)); !reflect.DeepEqual(got, []input.Event{input.Press(input.Accelerate)}) {
		t.Fatalf("got %v after restart", got)
	}
}
