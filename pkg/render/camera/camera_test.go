package camera

import (
	"math"
	"testing"

	"github.com/golangdaddy/highway/pkg/scene"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTargetProjectsToCentre(t *testing.T) {
	c := Chase(1024, 600)
	x, y, depth, ok := c.Project(scene.Vec3{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if !near(x, 512) || !near(y, 300) {
		t.Fatalf("origin at (%f, %f), want centre", x, y)
	}
	if !near(depth, math.Sqrt(125)) {
		t.Fatalf("depth = %f", depth)
	}
}

func TestLanesAndDistance(t *testing.T) {
	c := Chase(1024, 600)
	lx, _, _, _ := c.Project(scene.Vec3{X: -3})
	rx, _, _, _ := c.Project(scene.Vec3{X: 3})
	if !(lx < 512 && rx > 512) || !near(512-lx, rx-512) {
		t.Fatalf("lanes not symmetric: %f %f", lx, rx)
	}

	_, nearY, nearDepth, _ := c.Project(scene.Vec3{Z: 5})
	_, farY, farDepth, _ := c.Project(scene.Vec3{Z: -50})
	if farY >= nearY {
		t.Fatalf("far road should sit higher on screen: far=%f near=%f", farY, nearY)
	}
	if c.Scale(farDepth) >= c.Scale(nearDepth) {
		t.Fatal("far objects should be drawn smaller")
	}
}

func TestBehindCameraRejected(t *testing.T) {
	c := Chase(1024, 600)
	if _, _, _, ok := c.Project(scene.Vec3{Y: 5, Z: 15}); ok {
		t.Fatal("point behind the camera should not project")
	}
	if c.Scale(-1) != 0 {
		t.Fatal("scale behind the camera should be zero")
	}
}
