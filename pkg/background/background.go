// Package background paints the static horizon behind the road.
package background

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/rng"
)

// Generator creates horizon textures.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateHorizon creates a strip of distant hills with a tree line along
// its bottom edge. The bottom row sits on the horizon; everything above is
// transparent where the sky shows through.
func (g *Generator) GenerateHorizon(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	r := rng.New(seed)

	// two ridge layers, far and pale first
	for layer, c := range []color.RGBA{{150, 180, 190, 255}, {100, 140, 120, 255}} {
		amp := float64(g.Height) * (0.55 - 0.2*float64(layer))
		f1 := r.Range(0.004, 0.01)
		f2 := r.Range(0.015, 0.03)
		off := r.Range(0, 100)
		for x := 0; x < g.Width; x++ {
			fx := float64(x)
			h := amp * (0.6 + 0.3*math.Sin(fx*f1+off) + 0.1*math.Sin(fx*f2+off*2))
			for y := g.Height - int(h); y < g.Height; y++ {
				if y >= 0 {
					img.Set(x, y, c)
				}
			}
		}
	}

	// tree line
	for x := 0; x < g.Width; x += 3 + r.IntN(6) {
		if r.Float64() < 0.3 {
			g.drawTree(img, x, g.Height-1, r)
		} else {
			g.drawBush(img, x, g.Height-1, r)
		}
	}
	return img
}

// drawTree draws a small pine standing on y.
func (g *Generator) drawTree(img *ebiten.Image, x, y int, r *rng.RNG) {
	height := 10 + r.IntN(8)
	width := 6 + r.IntN(4)
	c := color.RGBA{
		uint8(20 + r.IntN(30)),
		uint8(80 + r.IntN(50)),
		uint8(20 + r.IntN(30)),
		255,
	}
	for ly := 0; ly < height; ly++ {
		rowW := width * (height - ly) / height
		for lx := -rowW / 2; lx <= rowW/2; lx++ {
			g.set(img, x+lx, y-ly, c)
		}
	}
}

// drawBush draws a half disc resting on y.
func (g *Generator) drawBush(img *ebiten.Image, x, y int, r *rng.RNG) {
	radius := 2 + r.IntN(4)
	c := color.RGBA{
		uint8(40 + r.IntN(30)),
		uint8(100 + r.IntN(40)),
		uint8(40 + r.IntN(30)),
		255,
	}
	for dy := -radius; dy <= 0; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.Set(x, y, c)
	}
}
