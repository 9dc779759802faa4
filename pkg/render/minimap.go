package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/scene"
)

// Minimap draws a top-down view of the road ahead of the player.
type Minimap struct {
	Scene *Scene
	FarZ  float64
	NearZ float64
	Scale float64 // pixels per world unit
}

// NewMinimap covers the spawn horizon down to just behind the player.
func NewMinimap(s *Scene) *Minimap {
	return &Minimap{Scene: s, FarZ: -60, NearZ: 10, Scale: 3}
}

// Draw paints the map with its top-left corner at x, y.
func (m *Minimap) Draw(screen *ebiten.Image, x, y float64) {
	width := 2 * roadHalfWidth * m.Scale
	height := (m.NearZ - m.FarZ) * m.Scale
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	toScreen := func(p scene.Vec3) (float64, float64, bool) {
		if p.Z < m.FarZ || p.Z > m.NearZ || p.X < -roadHalfWidth || p.X > roadHalfWidth {
			return 0, 0, false
		}
		return x + (p.X+roadHalfWidth)*m.Scale, y + (p.Z-m.FarZ)*m.Scale, true
	}

	for _, it := range m.Scene.items {
		switch it.kind {
		case scene.KindLaneMarking:
			if sx, sy, ok := toScreen(it.pos); ok {
				vector.DrawFilledRect(screen, float32(sx), float32(sy-m.Scale), 1, float32(2*m.Scale), color.RGBA{200, 200, 200, 255}, false)
			}
		case scene.KindStopLine:
			if _, sy, ok := toScreen(scene.Vec3{Z: it.pos.Z}); ok {
				clr := greenLamp
				if it.attrs.Red {
					clr = redLamp
				}
				vector.DrawFilledRect(screen, float32(x), float32(sy), float32(width), 2, clr, false)
			}
		case scene.KindCoin:
			if sx, sy, ok := toScreen(it.pos); ok {
				vector.DrawFilledCircle(screen, float32(sx), float32(sy), 2, coinColor, false)
			}
		case scene.KindObstacle:
			if sx, sy, ok := toScreen(it.pos); ok {
				m.drawCar(screen, sx, sy, trafficColors[it.attrs.Variant%len(trafficColors)], false)
			}
		case scene.KindPlayer:
			if sx, sy, ok := toScreen(it.pos); ok {
				m.drawCar(screen, sx, sy, playerColor, it.attrs.Braking)
			}
		}
	}
}

// drawCar renders a top-down car centred on x, y with the bonnet facing up.
func (m *Minimap) drawCar(screen *ebiten.Image, x, y float64, body color.RGBA, braking bool) {
	w, h := float32(m.Scale), float32(2*m.Scale)
	left, top := float32(x)-w/2, float32(y)-h/2

	vector.DrawFilledRect(screen, left, top, w, h, body, false)
	vector.StrokeRect(screen, left, top, w, h, 1, color.RGBA{20, 20, 20, 255}, false)

	// windshield
	vector.DrawFilledRect(screen, left+w*0.2, top+1, w*0.6, h*0.2, color.RGBA{150, 200, 255, 200}, false)

	// wheels
	wheel := color.RGBA{30, 30, 30, 255}
	ww, wh := w*0.2, h*0.16
	vector.DrawFilledRect(screen, left-ww/2, top+h*0.1, ww, wh, wheel, false)
	vector.DrawFilledRect(screen, left+w-ww/2, top+h*0.1, ww, wh, wheel, false)
	vector.DrawFilledRect(screen, left-ww/2, top+h*0.74, ww, wh, wheel, false)
	vector.DrawFilledRect(screen, left+w-ww/2, top+h*0.74, ww, wh, wheel, false)

	if braking {
		vector.DrawFilledRect(screen, left, top+h-1, w, 1, brakeOn, false)
	}
}
