package game

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/rng"
	"github.com/golangdaddy/highway/pkg/scene"
)

var epoch = time.Unix(1_700_000_000, 0)

// quietConfig disables light spawning so tests place entities themselves.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Lights.SpawnDistance = 1e12
	return cfg
}

func newSession(t *testing.T, cfg config.Config) (*Session, *scene.Recorder) {
	t.Helper()
	rec := scene.NewRecorder()
	s, err := New(Options{Config: cfg, Sink: rec, Presenter: rec}, epoch)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, rec
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player.StartLane = 7
	if _, err := New(Options{Config: cfg}, epoch); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	if !s.Running || s.Distance != 0 || s.Money != 0 || s.Player.Lane != 1 {
		t.Fatalf("unexpected initial state: %+v", s.Snapshot())
	}
	if s.Player.Speed != 0.1 {
		t.Fatalf("initial speed = %f, want 0.1", s.Player.Speed)
	}
	if rec.Count(scene.KindPlayer) != 1 {
		t.Fatalf("player not placed")
	}
	if rec.Count(scene.KindLaneMarking) != 40 {
		t.Fatalf("expected 40 lane markings, got %d", rec.Count(scene.KindLaneMarking))
	}
}

func TestRedLightFinedOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.IdleAcceleration = 0
	s, rec := newSession(t, cfg)
	s.Player.Speed = 0.3

	l := s.Registry.AddLight(-0.2-cfg.Lights.StopLineOffset, true, epoch)
	for i := 0; i < 30; i++ {
		s.Tick(epoch)
	}
	if s.Money != -20 {
		t.Fatalf("money = %d, want -20", s.Money)
	}
	if len(rec.Fines) != 1 {
		t.Fatalf("expected one fine notice, got %v", rec.Fines)
	}
	if !l.ViolationChecked {
		t.Fatal("light should be marked checked")
	}
	if !s.Running {
		t.Fatal("a fine must not end the game")
	}

	// drag the stop line back across the player
	l.StopLinePrevZ, l.StopLineCurZ = 4, 5.5
	s.checkLights(epoch)
	if s.Money != -20 || len(rec.Fines) != 1 {
		t.Fatalf("second crossing fined again: money=%d fines=%v", s.Money, rec.Fines)
	}
}

func TestGreenLightNotFined(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.IdleAcceleration = 0
	s, _ := newSession(t, cfg)
	s.Player.Speed = 0.3

	l := s.Registry.AddLight(-1.7, false, epoch)
	for i := 0; i < 30; i++ {
		s.Tick(epoch)
	}
	if s.Money != 0 {
		t.Fatalf("money = %d, want 0", s.Money)
	}
	if !l.ViolationChecked {
		t.Fatal("green crossing should still consume the check")
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	c := s.Registry.AddCoin(1, 5)
	s.Tick(epoch)

	if s.Money != 1 || rec.Money != 1 {
		t.Fatalf("money = %d (reported %d), want 1", s.Money, rec.Money)
	}
	if len(s.Registry.Coins) != 0 || rec.Count(scene.KindCoin) != 0 {
		t.Fatal("collected coin still live")
	}
	if s.Collect(c) {
		t.Fatal("coin collected twice")
	}
	if s.Money != 1 {
		t.Fatalf("money = %d after second collect", s.Money)
	}
}

func TestCoinInOtherLaneIgnored(t *testing.T) {
	s, _ := newSession(t, quietConfig())
	s.Registry.AddCoin(0, 5)
	s.Tick(epoch)
	if s.Money != 0 || len(s.Registry.Coins) != 1 {
		t.Fatalf("coin in another lane was collected")
	}
}

func TestCollisionEndsGame(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	s.Registry.AddCoin(1, 5)
	s.Registry.AddObstacle(1, 4, 0)
	s.Tick(epoch)

	if s.Running {
		t.Fatal("collision should stop the session")
	}
	if rec.GameOvers != 1 {
		t.Fatalf("game over reported %d times", rec.GameOvers)
	}
	if s.Money != 0 || s.Distance != 0 {
		t.Fatalf("state changed after the collision: money=%d distance=%f", s.Money, s.Distance)
	}

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick(epoch.Add(time.Duration(i) * time.Second))
	}
	s.Handle(input.Press(input.SteerLeft))
	s.Handle(input.Press(input.Accelerate))
	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("session changed while over:\n%+v\n%+v", before, after)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	s.Registry.AddObstacle(1, 4, 0)
	s.Tick(epoch)

	s.Handle(input.Press(input.Restart))
	if !s.Running {
		t.Fatal("restart should resume the session")
	}
	if len(s.Registry.Obstacles) != 0 || rec.Count(scene.KindObstacle) != 0 {
		t.Fatal("obstacles survived the restart")
	}
	if rec.Restarts != 2 {
		t.Fatalf("restart reported %d times, want 2 including start", rec.Restarts)
	}
	if rec.Distance != 0 || rec.Money != 0 {
		t.Fatalf("restart should report zeroed score, got %f/%d", rec.Distance, rec.Money)
	}
}

func TestRestartIdempotent(t *testing.T) {
	s, rec := newSession(t, config.DefaultConfig())
	now := epoch
	for i := 0; i < 2000; i++ {
		now = now.Add(16 * time.Millisecond)
		if i%50 == 0 {
			s.Handle(input.Press(input.SteerRight))
		}
		s.Tick(now)
	}

	s.Reset(now)
	first := s.Snapshot()
	firstScene := liveScene(rec)
	s.Reset(now)
	second := s.Snapshot()
	secondScene := liveScene(rec)

	if first.SessionID == second.SessionID {
		t.Fatal("each reset should start a new session id")
	}
	first.SessionID, second.SessionID = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reset not idempotent:\n%+v\n%+v", first, second)
	}
	if first.Distance != 0 || first.Money != 0 || first.Lane != 1 || len(first.Obstacles)+len(first.Coins)+len(first.Traffic) != 0 {
		t.Fatalf("reset state not initial: %+v", first)
	}
	if !reflect.DeepEqual(firstScene, secondScene) {
		t.Fatal("scenery differs between resets")
	}
}

type placement struct {
	Kind scene.Kind
	Pos  scene.Vec3
}

func liveScene(rec *scene.Recorder) map[placement]int {
	out := make(map[placement]int)
	for _, p := range rec.Live {
		out[placement{p.Kind, p.Pos}]++
	}
	return out
}

func TestSpeedStaysInBounds(t *testing.T) {
	s, _ := newSession(t, config.DefaultConfig())
	r := rng.New(99)
	kinds := []input.Kind{input.SteerLeft, input.SteerRight, input.Accelerate, input.Brake, input.HandbrakeOn, input.HandbrakeOff, input.ToggleLights}

	now := epoch
	for i := 0; i < 20000; i++ {
		now = now.Add(16 * time.Millisecond)
		if r.IntN(4) == 0 {
			e := input.Event{Kind: kinds[r.IntN(len(kinds))], Released: r.Bool()}
			s.Handle(e)
		}
		s.Tick(now)
		if s.Player.Speed < 0 || s.Player.Speed > s.MaxSpeed() {
			t.Fatalf("tick %d: speed %f outside [0, %f]", i, s.Player.Speed, s.MaxSpeed())
		}
		if s.Player.Lane < 0 || s.Player.Lane > 2 {
			t.Fatalf("tick %d: lane %d", i, s.Player.Lane)
		}
		if !s.Running {
			s.Reset(now)
		}
	}
}

func TestHandbrakeInputStopsCar(t *testing.T) {
	s, _ := newSession(t, quietConfig())
	s.Player.Speed = 0.4
	s.Handle(input.Press(input.HandbrakeOn))
	for i := 0; i < 12; i++ {
		s.Tick(epoch)
	}
	if s.Player.Speed != 0 {
		t.Fatalf("speed = %f after 12 ticks of handbrake", s.Player.Speed)
	}
	distance := s.Distance
	s.Tick(epoch)
	if s.Distance != distance {
		t.Fatal("distance grew while stopped")
	}

	s.Handle(input.Press(input.HandbrakeOff))
	s.Tick(epoch)
	if s.Player.Speed <= 0 {
		t.Fatal("idle creep should resume after releasing the handbrake")
	}
}

func TestSteeringInput(t *testing.T) {
	s, rec := newSession(t, quietConfig())

	s.Handle(input.Press(input.SteerLeft))
	if s.Player.Lane != 0 || rec.Steering != -45 {
		t.Fatalf("lane=%d steering=%f after steer left", s.Player.Lane, rec.Steering)
	}
	s.Handle(input.Press(input.SteerLeft))
	if s.Player.Lane != 0 || rec.Steering != -45 {
		t.Fatalf("lane should stay at the edge, got %d", s.Player.Lane)
	}
	s.Handle(input.Release(input.SteerLeft))
	if rec.Steering != 0 {
		t.Fatalf("steering = %f after release", rec.Steering)
	}

	var player *scene.Placed
	for _, p := range rec.Live {
		if p.Kind == scene.KindPlayer {
			player = p
		}
	}
	if player == nil || player.Pos.X != -3 {
		t.Fatalf("player not moved to lane 0: %+v", player)
	}
}

func TestBrakeAndLightsRestyle(t *testing.T) {
	s, rec := newSession(t, quietConfig())
	s.Handle(input.Press(input.Brake))
	s.Handle(input.Press(input.ToggleLights))
	for _, p := range rec.Live {
		if p.Kind == scene.KindPlayer && (!p.Attrs.Braking || !p.Attrs.Lights) {
			t.Fatalf("player attrs not restyled: %+v", p.Attrs)
		}
	}
	s.Handle(input.Release(input.Brake))
	s.Handle(input.Release(input.ToggleLights))
	if s.Player.Braking || !s.Player.Lights {
		t.Fatalf("braking=%v lights=%v", s.Player.Braking, s.Player.Lights)
	}
}

func TestDistanceAndSpeedReports(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.IdleAcceleration = 0
	s, rec := newSession(t, cfg)
	s.Player.Speed = 0.25
	for i := 0; i < 4; i++ {
		s.Tick(epoch)
	}
	if s.Distance != 10 {
		t.Fatalf("distance = %f, want 10", s.Distance)
	}
	if rec.Distance != 10 || rec.Speed != 25 {
		t.Fatalf("reported distance=%f speed=%f", rec.Distance, rec.Speed)
	}
}

func TestAtMostOneLightInNearField(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.MaxObstacles = 0
	s, _ := newSession(t, cfg)
	s.Handle(input.Press(input.Accelerate))

	now := epoch
	spawned := 0
	seen := map[uint64]bool{}
	for tick := 0; tick < 20000; tick++ {
		now = now.Add(time.Second / 60)
		s.Tick(now)
		near := 0
		for _, l := range s.Registry.Lights {
			if !seen[l.ID] {
				seen[l.ID] = true
				spawned++
			}
			if l.Z > cfg.Lights.NearFieldZ {
				near++
			}
		}
		if near > 1 {
			t.Fatalf("tick %d: %d lights in the near field", tick, near)
		}
	}
	if !s.Running {
		t.Fatal("session ended without obstacles")
	}
	if spawned < 5 {
		t.Fatalf("only %d lights spawned, run too short to cover overlaps", spawned)
	}
}
