package traffic

import (
	"time"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/scene"
)

// Registry owns the live obstacles, coins and traffic lights and keeps the
// scene sink in step with them.
type Registry struct {
	cfg    config.Config
	sink   scene.Sink
	nextID uint64

	Obstacles []*Obstacle
	Coins     []*Coin
	Lights    []*Light
}

// NewRegistry creates an empty registry placing entities on sink.
func NewRegistry(cfg config.Config, sink scene.Sink) *Registry {
	return &Registry{cfg: cfg, sink: sink}
}

func (r *Registry) id() uint64 {
	r.nextID++
	return r.nextID
}

// LaneX returns the lateral offset of lane.
func (r *Registry) LaneX(lane int) float64 {
	return r.cfg.Player.LaneOffsets[lane]
}

// ObstaclePos returns the world-space centre of o.
func (r *Registry) ObstaclePos(o *Obstacle) scene.Vec3 {
	return scene.Vec3{X: r.LaneX(o.Lane), Y: r.cfg.Geometry.Obstacle.H / 2, Z: o.Z}
}

// CoinPos returns the world-space centre of c.
func (r *Registry) CoinPos(c *Coin) scene.Vec3 {
	return scene.Vec3{X: r.LaneX(c.Lane), Y: r.cfg.Geometry.Coin.H / 2, Z: c.Z}
}

func (r *Registry) lightPos(l *Light) scene.Vec3 {
	return scene.Vec3{X: r.cfg.Lights.X, Z: l.Z}
}

func (r *Registry) stopLinePos(l *Light) scene.Vec3 {
	return scene.Vec3{Y: 0.01, Z: l.StopLineCurZ}
}

// AddObstacle places a new obstacle.
func (r *Registry) AddObstacle(lane int, z, relativeSpeed float64) *Obstacle {
	o := &Obstacle{ID: r.id(), Lane: lane, Z: z, RelativeSpeed: relativeSpeed}
	o.handle = r.sink.Place(o.ID, scene.KindObstacle, r.ObstaclePos(o), scene.Attributes{Lane: lane, Variant: int(o.ID % 8)})
	r.Obstacles = append(r.Obstacles, o)
	return o
}

// AddCoin places a new coin.
func (r *Registry) AddCoin(lane int, z float64) *Coin {
	c := &Coin{ID: r.id(), Lane: lane, Z: z}
	c.handle = r.sink.Place(c.ID, scene.KindCoin, r.CoinPos(c), scene.Attributes{Lane: lane})
	r.Coins = append(r.Coins, c)
	return c
}

// AddLight places a new traffic light and its stop line.
func (r *Registry) AddLight(z float64, red bool, now time.Time) *Light {
	l := NewLight(r.id(), z, red, now, r.cfg.Lights)
	attrs := scene.Attributes{Red: red}
	l.handle = r.sink.Place(l.ID, scene.KindTrafficLight, r.lightPos(l), attrs)
	l.lineHandle = r.sink.Place(l.ID, scene.KindStopLine, r.stopLinePos(l), attrs)
	r.Lights = append(r.Lights, l)
	return l
}

// RestyleLight pushes the light's colour to the sink.
func (r *Registry) RestyleLight(l *Light) {
	attrs := scene.Attributes{Red: l.Red}
	r.sink.Restyle(l.handle, attrs)
	r.sink.Restyle(l.lineHandle, attrs)
}

// Advance moves every entity by the road speed (obstacles add their own
// offset) and drops whatever passed its exit plane. Obstacle removal never
// implies a collision.
func (r *Registry) Advance(speed float64) {
	exit := r.cfg.World.RemovalZ()

	kept := r.Obstacles[:0]
	for _, o := range r.Obstacles {
		o.Z += speed + o.RelativeSpeed
		if o.Z > exit {
			r.sink.Remove(o.handle)
			continue
		}
		r.sink.Move(o.handle, r.ObstaclePos(o))
		kept = append(kept, o)
	}
	clear(r.Obstacles[len(kept):])
	r.Obstacles = kept

	coins := r.Coins[:0]
	for _, c := range r.Coins {
		c.Z += speed
		if c.Z > exit {
			r.sink.Remove(c.handle)
			continue
		}
		r.sink.Move(c.handle, r.CoinPos(c))
		coins = append(coins, c)
	}
	clear(r.Coins[len(coins):])
	r.Coins = coins

	lightExit := r.cfg.Player.Z + r.cfg.Lights.RemovalMargin
	lights := r.Lights[:0]
	for _, l := range r.Lights {
		l.Advance(speed)
		if l.Z > lightExit {
			r.sink.Remove(l.handle)
			r.sink.Remove(l.lineHandle)
			continue
		}
		r.sink.Move(l.handle, r.lightPos(l))
		r.sink.Move(l.lineHandle, r.stopLinePos(l))
		lights = append(lights, l)
	}
	clear(r.Lights[len(lights):])
	r.Lights = lights
}

// RemoveCoin drops a collected coin. It reports false when the coin is no
// longer live, so a coin can only ever be collected once.
func (r *Registry) RemoveCoin(c *Coin) bool {
	for i, live := range r.Coins {
		if live == c {
			r.sink.Remove(c.handle)
			r.Coins = append(r.Coins[:i], r.Coins[i+1:]...)
			return true
		}
	}
	return false
}

// NearestLightZ returns the Z of the light closest to the camera and
// whether any light exists.
func (r *Registry) NearestLightZ() (float64, bool) {
	if len(r.Lights) == 0 {
		return 0, false
	}
	z := r.Lights[0].Z
	for _, l := range r.Lights[1:] {
		z = max(z, l.Z)
	}
	return z, true
}

// FarthestLightZ returns the Z of the light farthest ahead.
func (r *Registry) FarthestLightZ() (float64, bool) {
	if len(r.Lights) == 0 {
		return 0, false
	}
	z := r.Lights[0].Z
	for _, l := range r.Lights[1:] {
		z = min(z, l.Z)
	}
	return z, true
}

// Clear removes every entity from the sink and empties the collections.
func (r *Registry) Clear() {
	for _, o := range r.Obstacles {
		r.sink.Remove(o.handle)
	}
	for _, c := range r.Coins {
		r.sink.Remove(c.handle)
	}
	for _, l := range r.Lights {
		r.sink.Remove(l.handle)
		r.sink.Remove(l.lineHandle)
	}
	r.Obstacles = nil
	r.Coins = nil
	r.Lights = nil
}
