package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/render/camera"
	"github.com/golangdaddy/highway/pkg/scene"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type point struct{ x, y float64 }

// fillPolygon draws a convex polygon as a triangle fan.
func fillPolygon(dst *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.x),
			DstY:   float32(p.y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// project maps every world point, failing if any is behind the camera.
func project(cam *camera.Camera, ws ...scene.Vec3) ([]point, bool) {
	out := make([]point, len(ws))
	for i, w := range ws {
		x, y, _, ok := cam.Project(w)
		if !ok {
			return nil, false
		}
		out[i] = point{x, y}
	}
	return out, true
}

// flatQuad fills a ground rectangle at height y.
func flatQuad(dst *ebiten.Image, cam *camera.Camera, x0, x1, z0, z1, y float64, clr color.Color) {
	pts, ok := project(cam,
		scene.Vec3{X: x0, Y: y, Z: z0},
		scene.Vec3{X: x1, Y: y, Z: z0},
		scene.Vec3{X: x1, Y: y, Z: z1},
		scene.Vec3{X: x0, Y: y, Z: z1},
	)
	if ok {
		fillPolygon(dst, pts, clr)
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// box draws the faces of an axis-aligned box that can face the camera:
// the top, the face towards the camera and the side facing the road centre.
func box(dst *ebiten.Image, cam *camera.Camera, centre scene.Vec3, size config.Box, clr color.RGBA) bool {
	x0, x1 := centre.X-size.W/2, centre.X+size.W/2
	y0, y1 := centre.Y-size.H/2, centre.Y+size.H/2
	z0, z1 := centre.Z-size.D/2, centre.Z+size.D/2
	c := func(x, y, z float64) scene.Vec3 { return scene.Vec3{X: x, Y: y, Z: z} }

	var faces [][]scene.Vec3
	switch {
	case cam.Eye.X < x0:
		faces = append(faces, []scene.Vec3{c(x0, y0, z0), c(x0, y0, z1), c(x0, y1, z1), c(x0, y1, z0)})
	case cam.Eye.X > x1:
		faces = append(faces, []scene.Vec3{c(x1, y0, z0), c(x1, y0, z1), c(x1, y1, z1), c(x1, y1, z0)})
	}
	if cam.Eye.Z > z1 {
		faces = append(faces, []scene.Vec3{c(x0, y0, z1), c(x1, y0, z1), c(x1, y1, z1), c(x0, y1, z1)})
	}
	if cam.Eye.Y > y1 {
		faces = append(faces, []scene.Vec3{c(x0, y1, z0), c(x1, y1, z0), c(x1, y1, z1), c(x0, y1, z1)})
	}

	projected := make([][]point, len(faces))
	for i, f := range faces {
		pts, ok := project(cam, f...)
		if !ok {
			return false
		}
		projected[i] = pts
	}
	shades := []float64{0.6, 0.8, 1}
	for i, pts := range projected {
		fillPolygon(dst, pts, shade(clr, shades[len(shades)-len(projected)+i]))
	}
	return true
}
