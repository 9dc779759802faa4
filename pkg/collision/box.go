package collision

import (
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/scene"
)

// AABB is an axis-aligned bounding volume.
type AABB struct {
	Min, Max scene.Vec3
}

// Around builds a box of the given nominal size centred on pos.
func Around(pos scene.Vec3, size config.Box) AABB {
	hw, hh, hd := size.W/2, size.H/2, size.D/2
	return AABB{
		Min: scene.Vec3{X: pos.X - hw, Y: pos.Y - hh, Z: pos.Z - hd},
		Max: scene.Vec3{X: pos.X + hw, Y: pos.Y + hh, Z: pos.Z + hd},
	}
}

// Intersects reports whether the ranges overlap on all three axes.
// Touching faces count as an intersection.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// CrossedStopLine reports whether a stop line that moved from prev to cur
// this tick passed the player: prev < playerZ <= cur. Speed plays no part.
func CrossedStopLine(prev, cur, playerZ float64) bool {
	return prev < playerZ && playerZ <= cur
}
