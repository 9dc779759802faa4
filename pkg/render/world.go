package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/render/camera"
	"github.com/golangdaddy/highway/pkg/scene"
)

const (
	roadHalfWidth = 5
	roadFarZ      = -200
	roadNearZ     = 9
	rumbleLength  = 2.5
)

var (
	skyColor      = color.RGBA{112, 197, 206, 255}
	grassColor    = color.RGBA{46, 120, 46, 255}
	asphaltColor  = color.RGBA{51, 51, 51, 255}
	markingColor  = color.RGBA{240, 240, 240, 255}
	rumbleRed     = color.RGBA{200, 40, 40, 255}
	poleColor     = color.RGBA{136, 136, 136, 255}
	bulbColor     = color.RGBA{255, 255, 0, 255}
	trunkColor    = color.RGBA{96, 64, 32, 255}
	coinColor     = color.RGBA{255, 215, 0, 255}
	coinEdge      = color.RGBA{190, 150, 0, 255}
	redLamp       = color.RGBA{255, 30, 30, 255}
	greenLamp     = color.RGBA{40, 230, 60, 255}
	lightHousing  = color.RGBA{30, 30, 30, 255}
	playerColor   = color.RGBA{220, 20, 20, 255}
	windowColor   = color.RGBA{100, 180, 220, 255}
	beamColor     = color.RGBA{120, 120, 60, 90}
	brakeOn       = color.RGBA{255, 0, 0, 255}
	brakeOff      = color.RGBA{110, 0, 0, 255}
	trafficColors = []color.RGBA{
		{40, 90, 200, 255}, {230, 230, 230, 255}, {240, 160, 20, 255}, {30, 150, 90, 255},
		{120, 60, 160, 255}, {200, 200, 60, 255}, {60, 60, 70, 255}, {160, 40, 80, 255},
	}
	treeColors     = []color.RGBA{{30, 110, 40, 255}, {50, 140, 50, 255}, {25, 90, 60, 255}}
	mountainColors = []color.RGBA{{92, 110, 96, 255}, {110, 100, 92, 255}}
)

// World draws the placed scene through a camera.
type World struct {
	Scene    *Scene
	Camera   *camera.Camera
	Geometry config.Geometry
	Lights   config.Lights

	backdrop *ebiten.Image
	horizon  float64
}

// NewWorld binds a scene to the chase camera for a width x height screen.
func NewWorld(s *Scene, cfg config.Config, width, height int, backdrop *ebiten.Image) *World {
	cam := camera.Chase(float64(width), float64(height))
	_, horizon, _, _ := cam.Project(scene.Vec3{Z: -5000})
	return &World{Scene: s, Camera: cam, Geometry: cfg.Geometry, Lights: cfg.Lights, backdrop: backdrop, horizon: horizon}
}

// Draw paints sky, ground and every entity far to near.
func (w *World) Draw(screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	screen.Fill(skyColor)
	if w.backdrop != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(width)/float64(w.backdrop.Bounds().Dx()), 1)
		op.GeoM.Translate(0, w.horizon-float64(w.backdrop.Bounds().Dy()))
		screen.DrawImage(w.backdrop, op)
	}
	vector.DrawFilledRect(screen, 0, float32(w.horizon), width, height-float32(w.horizon), grassColor, false)

	for _, it := range w.Scene.sorted(w.Camera) {
		w.drawItem(screen, it)
	}
}

func (w *World) drawItem(screen *ebiten.Image, it *item) {
	cam := w.Camera
	switch it.kind {
	case scene.KindRoad:
		w.drawRoad(screen, it.pos.Z)
	case scene.KindLaneMarking:
		flatQuad(screen, cam, it.pos.X-0.05, it.pos.X+0.05, it.pos.Z-2, it.pos.Z+2, it.pos.Y, markingColor)
	case scene.KindStopLine:
		clr := color.Color(markingColor)
		if it.attrs.Red {
			clr = redLamp
		}
		flatQuad(screen, cam, -roadHalfWidth, roadHalfWidth, it.pos.Z-0.2, it.pos.Z+0.2, 0.02, clr)
	case scene.KindLightPole:
		w.drawPole(screen, it.pos)
	case scene.KindTree:
		w.drawTree(screen, it.pos, it.attrs.Variant)
	case scene.KindMountain:
		w.drawMountain(screen, it.pos, it.attrs.Variant)
	case scene.KindTrafficLight:
		w.drawTrafficLight(screen, it.pos, it.attrs.Red)
	case scene.KindCoin:
		w.drawCoin(screen, it.pos)
	case scene.KindObstacle:
		w.drawCar(screen, it.pos, w.Geometry.Obstacle, trafficColors[it.attrs.Variant%len(trafficColors)], scene.Attributes{})
	case scene.KindPlayer:
		if it.attrs.Lights {
			flatQuad(screen, cam, it.pos.X-0.6, it.pos.X+0.6, it.pos.Z-14, it.pos.Z-1, 0.01, beamColor)
		}
		w.drawCar(screen, it.pos, w.Geometry.Player, playerColor, it.attrs)
	}
}

// drawRoad paints the asphalt band and rumble strips. z is the scrolled road
// plane position, which only drives the strip phase.
func (w *World) drawRoad(screen *ebiten.Image, z float64) {
	cam := w.Camera
	flatQuad(screen, cam, -roadHalfWidth, roadHalfWidth, roadFarZ, roadNearZ, 0, asphaltColor)
	phase := math.Mod(z, 2*rumbleLength)
	for s := float64(roadFarZ) + phase; s < roadNearZ; s += 2 * rumbleLength {
		end := math.Min(s+rumbleLength, roadNearZ)
		flatQuad(screen, cam, -roadHalfWidth, -roadHalfWidth+0.3, s, end, 0.005, rumbleRed)
		flatQuad(screen, cam, roadHalfWidth-0.3, roadHalfWidth, s, end, 0.005, rumbleRed)
	}
}

func (w *World) line(screen *ebiten.Image, a, b scene.Vec3, thickness float64, clr color.Color) (point, float64, bool) {
	ax, ay, depth, ok := w.Camera.Project(a)
	if !ok {
		return point{}, 0, false
	}
	bx, by, _, ok := w.Camera.Project(b)
	if !ok {
		return point{}, 0, false
	}
	scale := w.Camera.Scale(depth)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), float32(math.Max(thickness*scale, 1)), clr, true)
	return point{bx, by}, scale, true
}

func (w *World) drawPole(screen *ebiten.Image, p scene.Vec3) {
	top, scale, ok := w.line(screen, scene.Vec3{X: p.X, Z: p.Z}, scene.Vec3{X: p.X, Y: 5, Z: p.Z}, 0.2, poleColor)
	if ok {
		vector.DrawFilledCircle(screen, float32(top.x), float32(top.y), float32(math.Max(0.3*scale, 1)), bulbColor, true)
	}
}

func (w *World) drawTree(screen *ebiten.Image, p scene.Vec3, variant int) {
	size := 1 + 0.3*float64(variant)
	if _, _, ok := w.line(screen, scene.Vec3{X: p.X, Z: p.Z}, scene.Vec3{X: p.X, Y: 1.5 * size, Z: p.Z}, 0.3, trunkColor); !ok {
		return
	}
	pts, ok := project(w.Camera,
		scene.Vec3{X: p.X - 1.5*size, Y: 1.2 * size, Z: p.Z},
		scene.Vec3{X: p.X + 1.5*size, Y: 1.2 * size, Z: p.Z},
		scene.Vec3{X: p.X, Y: 5 * size, Z: p.Z},
	)
	if ok {
		fillPolygon(screen, pts, treeColors[variant%len(treeColors)])
	}
}

func (w *World) drawMountain(screen *ebiten.Image, p scene.Vec3, variant int) {
	height := 15 + 5*float64(variant)
	pts, ok := project(w.Camera,
		scene.Vec3{X: p.X - 18, Z: p.Z},
		scene.Vec3{X: p.X + 18, Z: p.Z},
		scene.Vec3{X: p.X, Y: height, Z: p.Z},
	)
	if ok {
		fillPolygon(screen, pts, mountainColors[variant%len(mountainColors)])
	}
}

func (w *World) drawTrafficLight(screen *ebiten.Image, p scene.Vec3, red bool) {
	if _, _, ok := w.line(screen, scene.Vec3{X: p.X, Z: p.Z}, scene.Vec3{X: p.X, Y: 4, Z: p.Z}, 0.15, poleColor); !ok {
		return
	}
	head := scene.Vec3{X: p.X, Y: 4.6, Z: p.Z}
	if !box(screen, w.Camera, head, config.Box{W: 0.5, H: 1.2, D: 0.3}, lightHousing) {
		return
	}
	lamp, y := greenLamp, 4.3
	if red {
		lamp, y = redLamp, 4.9
	}
	x, sy, depth, ok := w.Camera.Project(scene.Vec3{X: p.X, Y: y, Z: p.Z + 0.16})
	if ok {
		vector.DrawFilledCircle(screen, float32(x), float32(sy), float32(math.Max(0.18*w.Camera.Scale(depth), 1.5)), lamp, true)
	}
}

func (w *World) drawCoin(screen *ebiten.Image, p scene.Vec3) {
	x, y, depth, ok := w.Camera.Project(p)
	if !ok {
		return
	}
	r := float32(math.Max(0.25*w.Camera.Scale(depth), 1))
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, coinColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), r, float32(math.Max(float64(r)/6, 1)), coinEdge, true)
}

// drawCar draws a body box sitting on the road with a cabin on top and
// tail lights on the face towards the camera.
func (w *World) drawCar(screen *ebiten.Image, p scene.Vec3, size config.Box, clr color.RGBA, attrs scene.Attributes) {
	bodyH := size.H * 0.55
	body := scene.Vec3{X: p.X, Y: bodyH / 2, Z: p.Z}
	if !box(screen, w.Camera, body, config.Box{W: size.W, H: bodyH, D: size.D}, clr) {
		return
	}
	cabinH := size.H - bodyH
	cabin := scene.Vec3{X: p.X, Y: bodyH + cabinH/2, Z: p.Z + size.D*0.1}
	box(screen, w.Camera, cabin, config.Box{W: size.W * 0.8, H: cabinH, D: size.D * 0.5}, windowColor)

	tail := brakeOff
	if attrs.Braking {
		tail = brakeOn
	}
	rear := p.Z + size.D/2 + 0.01
	for _, side := range []float64{-1, 1} {
		x := p.X + side*size.W*0.3
		pts, ok := project(w.Camera,
			scene.Vec3{X: x - 0.12, Y: bodyH * 0.5, Z: rear},
			scene.Vec3{X: x + 0.12, Y: bodyH * 0.5, Z: rear},
			scene.Vec3{X: x + 0.12, Y: bodyH * 0.8, Z: rear},
			scene.Vec3{X: x - 0.12, Y: bodyH * 0.8, Z: rear},
		)
		if ok {
			fillPolygon(screen, pts, tail)
		}
	}
}
