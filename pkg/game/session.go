package game

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/highway/pkg/collision"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/rng"
	"github.com/golangdaddy/highway/pkg/road"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/spawn"
	"github.com/golangdaddy/highway/pkg/traffic"
	"github.com/golangdaddy/highway/pkg/vehicle"
)

// playerID is the scene id of the player car; entity ids start at 1.
const playerID = 0

// Options wires a session to its collaborators. Nil sinks discard.
type Options struct {
	Config    config.Config
	Sink      scene.Sink
	Presenter scene.Presenter
	Logger    *log.Logger
}

// Session is one playthrough: the player, the scrolling world, the live
// entities and the score. All mutation happens in Tick, Handle and Reset,
// which the host calls from a single goroutine.
type Session struct {
	ID       uuid.UUID
	Player   *vehicle.Player
	World    *road.World
	Registry *traffic.Registry

	Distance float64
	Money    int
	Running  bool
	Ticks    uint64

	cfg       config.Config
	sink      scene.Sink
	presenter scene.Presenter
	logger    *log.Logger
	rng       *rng.RNG
	spawner   *spawn.Spawner

	playerHandle scene.Handle
	now          time.Time
}

// New validates the configuration and starts a session at now.
func New(opts Options, now time.Time) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	if opts.Sink == nil {
		opts.Sink = &scene.Discard{}
	}
	if opts.Presenter == nil {
		opts.Presenter = &scene.Discard{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	r := rng.New(opts.Config.Seed)
	s := &Session{
		Player:    vehicle.NewPlayer(opts.Config.Player),
		World:     road.NewWorld(opts.Config.World, opts.Sink, opts.Config.Seed),
		Registry:  traffic.NewRegistry(opts.Config, opts.Sink),
		cfg:       opts.Config,
		sink:      opts.Sink,
		presenter: opts.Presenter,
		logger:    opts.Logger,
		rng:       r,
		spawner:   spawn.New(opts.Config, r),
	}
	s.playerHandle = s.sink.Place(playerID, scene.KindPlayer, s.playerPos(), s.playerAttrs())
	s.Reset(now)
	return s, nil
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.Config { return s.cfg }

// Reset clears every entity, rebuilds the scenery and zeroes the score in
// one step. Nothing observes a half-reset session.
func (s *Session) Reset(now time.Time) {
	s.now = now
	s.Registry.Clear()
	s.World.Reset()
	s.Player.Reset()
	s.spawner.Reset(now)

	s.Distance = 0
	s.Money = 0
	s.Ticks = 0
	s.Running = true
	s.ID = uuid.New()

	s.sink.Move(s.playerHandle, s.playerPos())
	s.sink.Restyle(s.playerHandle, s.playerAttrs())

	s.presenter.ReportRestart()
	s.report()
	s.presenter.ReportSteering(0)
	s.logger.Printf("session %s started (seed %d)", s.ID, s.cfg.Seed)
}

// Handle applies one input event. While the game is over only Restart is
// accepted.
func (s *Session) Handle(e input.Event) {
	if !s.Running && e.Kind != input.Restart {
		return
	}
	p := s.Player
	switch e.Kind {
	case input.SteerLeft, input.SteerRight:
		dir := -1
		if e.Kind == input.SteerRight {
			dir = 1
		}
		if e.Released {
			p.ReleaseSteer()
		} else if p.Steer(dir) {
			s.sink.Move(s.playerHandle, s.playerPos())
		}
		s.presenter.ReportSteering(p.SteeringAngle)
	case input.Accelerate:
		p.Throttle = !e.Released
	case input.Brake:
		p.Braking = !e.Released
	case input.HandbrakeOn:
		p.Handbrake = true
	case input.HandbrakeOff:
		p.Handbrake = false
	case input.ToggleLights:
		if !e.Released {
			p.Lights = !p.Lights
		}
	case input.Restart:
		if !e.Released {
			s.Reset(s.now)
		}
		return
	}
	s.sink.Restyle(s.playerHandle, s.playerAttrs())
}

// Tick runs one simulation step at now.
func (s *Session) Tick(now time.Time) {
	s.now = now
	if !s.Running {
		return
	}
	s.Ticks++

	s.Player.Update(s.Distance)
	speed := s.Player.Speed

	s.World.Advance(speed)
	s.spawner.Update(now, s.Distance, s.Registry)
	s.Registry.Advance(speed)

	playerBox := s.playerBox()
	for _, o := range s.Registry.Obstacles {
		if playerBox.Intersects(collision.Around(s.Registry.ObstaclePos(o), s.cfg.Geometry.Obstacle)) {
			s.gameOver()
			return
		}
	}
	s.collectCoins(playerBox)
	s.checkLights(now)

	s.Distance += speed * s.cfg.Player.DistancePerSpeed
	s.report()
}

func (s *Session) collectCoins(playerBox collision.AABB) {
	var hit []*traffic.Coin
	for _, c := range s.Registry.Coins {
		if playerBox.Intersects(collision.Around(s.Registry.CoinPos(c), s.cfg.Geometry.Coin)) {
			hit = append(hit, c)
		}
	}
	for _, c := range hit {
		s.Collect(c)
	}
}

// Collect credits a coin and removes it. A coin that is no longer live
// is ignored and the return value is false.
func (s *Session) Collect(c *traffic.Coin) bool {
	if !s.Registry.RemoveCoin(c) {
		return false
	}
	s.Money++
	return true
}

func (s *Session) checkLights(now time.Time) {
	playerZ := s.Player.Z()
	for _, l := range s.Registry.Lights {
		if l.CheckViolation(playerZ) {
			s.Money -= s.cfg.Lights.Fine
			s.presenter.ReportFine(fmt.Sprintf("Red light! -%d", s.cfg.Lights.Fine))
			s.logger.Printf("session %s: red light %d crossed, money now %d", s.ID, l.ID, s.Money)
		}
		if l.Update(now, playerZ, s.Player.Speed, s.cfg.Lights) {
			s.Registry.RestyleLight(l)
		}
	}
}

func (s *Session) gameOver() {
	s.Running = false
	s.Player.Throttle = false
	s.Player.Braking = false
	s.presenter.ReportGameOver()
	s.logger.Printf("session %s over: distance %d, money %d", s.ID, int(s.Distance), s.Money)
}

func (s *Session) report() {
	s.presenter.ReportDistance(math.Floor(s.Distance))
	s.presenter.ReportSpeed(math.Floor(s.Player.Speed * s.cfg.Player.SpeedDisplayScale))
	s.presenter.ReportMoney(s.Money)
}

func (s *Session) playerPos() scene.Vec3 {
	return scene.Vec3{X: s.Player.X(), Y: s.Player.Y(), Z: s.Player.Z()}
}

func (s *Session) playerAttrs() scene.Attributes {
	p := s.Player
	return scene.Attributes{
		Lane:          p.Lane,
		Braking:       p.Braking || p.Handbrake,
		Lights:        p.Lights,
		SteeringAngle: p.SteeringAngle,
	}
}

func (s *Session) playerBox() collision.AABB {
	return collision.Around(s.playerPos(), s.cfg.Geometry.Player)
}

// MaxSpeed is the current speed ceiling.
func (s *Session) MaxSpeed() float64 {
	return s.Player.MaxSpeed(s.Distance)
}
