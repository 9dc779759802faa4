package render

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var face = text.NewGoXFace(bitmapfont.Face)

// TextWidth returns the width of s drawn at scale.
func TextWidth(s string, scale float64) float64 {
	return text.Advance(s, face) * scale
}

// DrawText draws s with its top-left corner at x, y.
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawCentredText draws s horizontally centred on cx.
func DrawCentredText(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	DrawText(dst, s, cx-TextWidth(s, scale)/2, y, scale, clr)
}
