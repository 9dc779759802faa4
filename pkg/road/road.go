package road

import (
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/rng"
	"github.com/golangdaddy/highway/pkg/scene"
)

// Decoration is a ground-relative piece of scenery that scrolls with the road.
type Decoration struct {
	Kind    scene.Kind
	Pos     scene.Vec3
	Wrap    float64 // distance moved back once past the recycle plane
	Variant int

	handle scene.Handle
}

// World scrolls the road plane, lane markings and roadside scenery. It has no
// gameplay consequence but defines the frame: Z grows towards the camera.
type World struct {
	cfg   config.World
	sink  scene.Sink
	seed  int64
	items []*Decoration
}

// NewWorld builds the decorative world and places it on the sink.
func NewWorld(cfg config.World, sink scene.Sink, seed int64) *World {
	w := &World{cfg: cfg, sink: sink, seed: seed}
	w.Reset()
	return w
}

// Reset removes every decoration and rebuilds the initial layout. Scenery
// is seeded so every restart produces the same roadside.
func (w *World) Reset() {
	for _, d := range w.items {
		w.sink.Remove(d.handle)
	}
	w.items = w.items[:0]

	r := rng.New(w.seed)
	c := w.cfg

	w.add(scene.KindRoad, scene.Vec3{Z: c.RoadStartZ}, c.RoadWrapLength, 0)

	for i := 0; i < c.MarkingCount; i++ {
		z := c.MarkingStartZ + float64(i)*c.MarkingSpacing
		w.add(scene.KindLaneMarking, scene.Vec3{X: -c.MarkingX, Y: 0.01, Z: z}, c.WrapLength, 0)
		w.add(scene.KindLaneMarking, scene.Vec3{X: c.MarkingX, Y: 0.01, Z: z}, c.WrapLength, 0)
	}

	spread := func(count int, fn func(i int, z float64)) {
		if count <= 0 {
			return
		}
		spacing := c.WrapLength / float64(count)
		for i := 0; i < count; i++ {
			fn(i, c.RecycleZ-float64(i+1)*spacing)
		}
	}

	spread(c.PoleCount, func(_ int, z float64) {
		w.add(scene.KindLightPole, scene.Vec3{X: -c.PoleX, Y: 2.5, Z: z}, c.WrapLength, 0)
		w.add(scene.KindLightPole, scene.Vec3{X: c.PoleX, Y: 2.5, Z: z}, c.WrapLength, 0)
	})
	spread(c.TreeCount, func(_ int, z float64) {
		for _, side := range []float64{-1, 1} {
			x := side * r.Range(c.TreeMinX, c.TreeMaxX)
			w.add(scene.KindTree, scene.Vec3{X: x, Z: z + r.Range(-2, 2)}, c.WrapLength, r.IntN(3))
		}
	})
	spread(c.MountainCount, func(_ int, z float64) {
		for _, side := range []float64{-1, 1} {
			x := side * (c.MountainX + r.Range(0, 15))
			w.add(scene.KindMountain, scene.Vec3{X: x, Z: z}, c.WrapLength, r.IntN(2))
		}
	})
}

func (w *World) add(kind scene.Kind, pos scene.Vec3, wrap float64, variant int) {
	d := &Decoration{Kind: kind, Pos: pos, Wrap: wrap, Variant: variant}
	w.recycle(d)
	d.handle = w.sink.Place(0, kind, d.Pos, scene.Attributes{Variant: variant})
	w.items = append(w.items, d)
}

func (w *World) recycle(d *Decoration) {
	for d.Pos.Z > w.cfg.RecycleZ {
		d.Pos.Z -= d.Wrap
	}
}

// Advance moves every decoration towards the camera by dz and wraps any that
// passed the recycle plane back behind the world, keeping their spacing.
func (w *World) Advance(dz float64) {
	if dz == 0 {
		return
	}
	for _, d := range w.items {
		d.Pos.Z += dz
		w.recycle(d)
		w.sink.Move(d.handle, d.Pos)
	}
}

// Decorations returns a copy of the current layout.
func (w *World) Decorations() []Decoration {
	out := make([]Decoration, len(w.items))
	for i, d := range w.items {
		out[i] = *d
	}
	return out
}
