package spawn

import (
	"math"
	"time"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/rng"
	"github.com/golangdaddy/highway/pkg/traffic"
)

// Interval returns the obstacle spawn interval for the distance travelled:
// a straight line from the initial interval down to the floor at the ramp
// distance, flat afterwards.
func Interval(cfg config.Spawn, distance float64) time.Duration {
	t := math.Min(math.Max(distance, 0)/cfg.ObstacleRampDistance, 1)
	initial := float64(cfg.ObstacleIntervalInitialMS)
	floor := float64(cfg.ObstacleIntervalFloorMS)
	ms := initial - (initial-floor)*t
	return time.Duration(ms * float64(time.Millisecond))
}

// Spawner paces obstacles, coins and traffic lights into a registry.
type Spawner struct {
	cfg config.Config
	rng *rng.RNG

	lastObstacle  time.Time
	lastCoin      time.Time
	lightDistance float64
}

// New creates a spawner drawing randomness from r.
func New(cfg config.Config, r *rng.RNG) *Spawner {
	return &Spawner{cfg: cfg, rng: r}
}

// Reset restarts every spawn timer from now.
func (s *Spawner) Reset(now time.Time) {
	s.lastObstacle = now
	s.lastCoin = now
	s.lightDistance = 0
}

// Update spawns whatever is due this tick.
func (s *Spawner) Update(now time.Time, distance float64, reg *traffic.Registry) {
	if now.Sub(s.lastObstacle) > Interval(s.cfg.Spawn, distance) && len(reg.Obstacles) < s.cfg.Spawn.MaxObstacles {
		s.spawnObstacle(reg)
		s.lastObstacle = now
	}
	if now.Sub(s.lastCoin) > s.cfg.Spawn.CoinInterval() {
		reg.AddCoin(s.rng.IntN(s.lanes()), s.cfg.Spawn.SpawnZ)
		s.lastCoin = now
	}
	if s.lightDue(distance, reg) {
		s.spawnLight(now, reg)
		s.lightDistance = distance
	}
}

func (s *Spawner) lanes() int { return len(s.cfg.Player.LaneOffsets) }

// laneGap returns the distance from z to the closest obstacle in lane.
func laneGap(reg *traffic.Registry, lane int, z float64) float64 {
	gap := math.Inf(1)
	for _, o := range reg.Obstacles {
		if o.Lane == lane {
			gap = math.Min(gap, math.Abs(o.Z-z))
		}
	}
	return gap
}

func (s *Spawner) spawnObstacle(reg *traffic.Registry) *traffic.Obstacle {
	c := s.cfg.Spawn
	z := c.SpawnZ
	lane := s.rng.IntN(s.lanes())
	best, bestGap := lane, laneGap(reg, lane, z)

	for try := 0; bestGap < c.ObstacleMinGap && try < c.LaneRetries; try++ {
		// pick one of the other lanes
		lane = (lane + 1 + s.rng.IntN(s.lanes()-1)) % s.lanes()
		if gap := laneGap(reg, lane, z); gap > bestGap {
			best, bestGap = lane, gap
		}
	}

	if bestGap < c.ObstacleMinGap {
		for _, o := range reg.Obstacles {
			if o.Lane == best {
				z = math.Min(z, o.Z-c.ObstacleMinGap)
			}
		}
	}
	return reg.AddObstacle(best, z, s.rng.Range(c.RelativeSpeedMin, c.RelativeSpeedMax))
}

// lightDue checks the distance threshold, the near-field gate and the cap.
func (s *Spawner) lightDue(distance float64, reg *traffic.Registry) bool {
	lc := s.cfg.Lights
	if distance-s.lightDistance <= lc.SpawnDistance {
		return false
	}
	if len(reg.Lights) >= lc.MaxLights {
		return false
	}
	if nearest, ok := reg.NearestLightZ(); ok && nearest > lc.NearFieldZ {
		return false
	}
	return true
}

// lightGap is the spacing kept behind the farthest light. Lights share one
// speed, so a gap wider than the near field (from its edge to the light
// exit plane) keeps a second light out until the first is removed.
func (s *Spawner) lightGap() float64 {
	lc := s.cfg.Lights
	exit := s.cfg.Player.Z + lc.RemovalMargin
	return math.Max(lc.MinGap, exit-lc.NearFieldZ+1)
}

func (s *Spawner) spawnLight(now time.Time, reg *traffic.Registry) *traffic.Light {
	lc := s.cfg.Lights
	z := lc.SpawnZ
	if farthest, ok := reg.FarthestLightZ(); ok {
		z = math.Min(z, farthest-s.lightGap())
	}
	var red bool
	switch lc.ForceInitialState {
	case "red":
		red = true
	case "green":
		red = false
	default:
		red = s.rng.Bool()
	}
	return reg.AddLight(z, red, now)
}
