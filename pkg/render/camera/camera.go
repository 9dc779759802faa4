// Package camera projects world coordinates onto the screen.
package camera

import (
	"math"

	"github.com/golangdaddy/highway/pkg/scene"
)

// Camera is a pinhole camera looking from Eye at Target with Y up.
type Camera struct {
	Eye    scene.Vec3
	Target scene.Vec3
	FOV    float64 // vertical, degrees
	Near   float64
	Width  float64
	Height float64

	right, up, forward scene.Vec3
	focal              float64
}

// Chase returns the road camera: above and behind the player, looking at
// the origin.
func Chase(width, height float64) *Camera {
	return New(scene.Vec3{Y: 5, Z: 10}, scene.Vec3{}, 75, width, height)
}

// New builds a camera for a width x height viewport.
func New(eye, target scene.Vec3, fov, width, height float64) *Camera {
	c := &Camera{Eye: eye, Target: target, FOV: fov, Near: 0.1, Width: width, Height: height}
	c.forward = normalize(sub(target, eye))
	c.right = normalize(cross(c.forward, scene.Vec3{Y: 1}))
	c.up = cross(c.right, c.forward)
	c.focal = (height / 2) / math.Tan(fov*math.Pi/360)
	return c
}

// Project maps p to screen pixels. depth is the distance along the view
// axis; ok is false when p is behind the near plane.
func (c *Camera) Project(p scene.Vec3) (x, y, depth float64, ok bool) {
	d := sub(p, c.Eye)
	depth = dot(d, c.forward)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	k := c.focal / depth
	return c.Width/2 + dot(d, c.right)*k, c.Height/2 - dot(d, c.up)*k, depth, true
}

// Scale returns how many pixels one world unit spans at depth.
func (c *Camera) Scale(depth float64) float64 {
	if depth < c.Near {
		return 0
	}
	return c.focal / depth
}

// Depth returns the view-axis distance of p.
func (c *Camera) Depth(p scene.Vec3) float64 {
	return dot(sub(p, c.Eye), c.forward)
}

func sub(a, b scene.Vec3) scene.Vec3 { return scene.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }

func dot(a, b scene.Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b scene.Vec3) scene.Vec3 {
	return scene.Vec3{X: a.Y*b.Z - a.Z*b.Y, Y: a.Z*b.X - a.X*b.Z, Z: a.X*b.Y - a.Y*b.X}
}

func normalize(v scene.Vec3) scene.Vec3 {
	l := math.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return scene.Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
