// Package render draws a session with ebiten: a projected road scene plus
// a heads-up display.
package render

import (
	"sort"

	"github.com/golangdaddy/highway/pkg/render/camera"
	"github.com/golangdaddy/highway/pkg/scene"
)

type item struct {
	id    uint64
	kind  scene.Kind
	pos   scene.Vec3
	attrs scene.Attributes
	depth float64
}

// Scene implements scene.Sink by keeping a drawable copy of every placed
// entity. Update and Draw run on the same goroutine in ebiten, so no
// locking is needed.
type Scene struct {
	next  scene.Handle
	items map[scene.Handle]*item
	order []*item
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{items: make(map[scene.Handle]*item)}
}

func (s *Scene) Place(id uint64, kind scene.Kind, pos scene.Vec3, attrs scene.Attributes) scene.Handle {
	s.next++
	s.items[s.next] = &item{id: id, kind: kind, pos: pos, attrs: attrs}
	return s.next
}

func (s *Scene) Move(h scene.Handle, pos scene.Vec3) {
	if it, ok := s.items[h]; ok {
		it.pos = pos
	}
}

func (s *Scene) Restyle(h scene.Handle, attrs scene.Attributes) {
	if it, ok := s.items[h]; ok {
		it.attrs = attrs
	}
}

func (s *Scene) Remove(h scene.Handle) {
	delete(s.items, h)
}

// Len returns the number of live entities.
func (s *Scene) Len() int { return len(s.items) }

func ground(k scene.Kind) bool {
	return k == scene.KindRoad || k == scene.KindLaneMarking || k == scene.KindStopLine
}

// sorted returns the items in painter's order: ground markings first, then
// everything else from far to near.
func (s *Scene) sorted(cam *camera.Camera) []*item {
	s.order = s.order[:0]
	for _, it := range s.items {
		it.depth = cam.Depth(it.pos)
		s.order = append(s.order, it)
	}
	sort.Slice(s.order, func(i, j int) bool {
		a, b := s.order[i], s.order[j]
		if ga, gb := ground(a.kind), ground(b.kind); ga != gb {
			return ga
		}
		if a.kind == scene.KindRoad || b.kind == scene.KindRoad {
			return a.kind == scene.KindRoad && b.kind != scene.KindRoad
		}
		if a.depth != b.depth {
			return a.depth > b.depth
		}
		return a.id < b.id
	})
	return s.order
}
