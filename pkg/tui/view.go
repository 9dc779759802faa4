// Package tui plays a session in a terminal as a top-down lane view.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/scene"
)

type cell struct {
	kind  scene.Kind
	pos   scene.Vec3
	attrs scene.Attributes
}

// View implements scene.Sink and scene.Presenter and renders onto a
// tcell screen. Z from FarZ to NearZ maps to rows top to bottom.
type View struct {
	FarZ  float64
	NearZ float64

	next  scene.Handle
	cells map[scene.Handle]*cell

	distance float64
	speed    float64
	money    int
	steering float64
	fine     string
	fineTTL  int
	over     bool
}

// fineTicks is how many frames a fine notice stays on the status line.
const fineTicks = 120

// NewView returns an empty view covering the spawn horizon.
func NewView() *View {
	return &View{FarZ: -50, NearZ: 8, cells: make(map[scene.Handle]*cell)}
}

func (v *View) Place(id uint64, kind scene.Kind, pos scene.Vec3, attrs scene.Attributes) scene.Handle {
	v.next++
	v.cells[v.next] = &cell{kind: kind, pos: pos, attrs: attrs}
	return v.next
}

func (v *View) Move(h scene.Handle, pos scene.Vec3) {
	if c, ok := v.cells[h]; ok {
		c.pos = pos
	}
}

func (v *View) Restyle(h scene.Handle, attrs scene.Attributes) {
	if c, ok := v.cells[h]; ok {
		c.attrs = attrs
	}
}

func (v *View) Remove(h scene.Handle) { delete(v.cells, h) }

func (v *View) ReportDistance(value float64) { v.distance = value }
func (v *View) ReportSpeed(value float64)    { v.speed = value }
func (v *View) ReportMoney(value int)        { v.money = value }
func (v *View) ReportSteering(deg float64)   { v.steering = deg }
func (v *View) ReportGameOver()              { v.over = true }

func (v *View) ReportFine(msg string) {
	v.fine = msg
	v.fineTTL = fineTicks
}

func (v *View) ReportRestart() {
	v.over = false
	v.fine = ""
	v.fineTTL = 0
}

var (
	roadStyle     = tcell.StyleDefault.Background(tcell.ColorBlack)
	grassStyle    = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	edgeStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	markStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
	trafficStyle  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
	coinStyle     = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorBlack).Bold(true)
	redStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	greenStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	fineStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	gameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
)

// columns per world unit across the road
const colsPerUnit = 3

// layout returns the left column of the road and a world-to-cell mapper.
func (v *View) layout(width, height int) (int, func(x, z float64) (int, int, bool)) {
	rows := height - 2
	roadCols := 10 * colsPerUnit
	left := (width - roadCols) / 2
	return left, func(x, z float64) (int, int, bool) {
		if z < v.FarZ || z > v.NearZ || rows <= 0 {
			return 0, 0, false
		}
		col := left + int(math.Round((x+5)*colsPerUnit))
		row := int((z - v.FarZ) / (v.NearZ - v.FarZ) * float64(rows-1))
		return col, row, col >= 0 && col < width
	}
}

func put(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

// Draw renders the road, the entities and the status lines.
func (v *View) Draw(s tcell.Screen) {
	width, height := s.Size()
	s.Clear()
	left, at := v.layout(width, height)
	roadCols := 10 * colsPerUnit

	for y := 0; y < height-2; y++ {
		for x := 0; x < width; x++ {
			style := grassStyle
			if x >= left && x <= left+roadCols {
				style = roadStyle
			}
			s.SetContent(x, y, ' ', nil, style)
		}
		s.SetContent(left-1, y, '│', nil, edgeStyle)
		s.SetContent(left+roadCols+1, y, '│', nil, edgeStyle)
	}

	// ground first so vehicles draw over it
	for _, pass := range []bool{true, false} {
		for _, c := range v.cells {
			isGround := c.kind == scene.KindLaneMarking || c.kind == scene.KindStopLine
			if isGround != pass {
				continue
			}
			v.drawCell(s, c, left, roadCols, at)
		}
	}

	status := fmt.Sprintf(" Distance %d  Speed %3.0f km/h  Money %d  Steer %+.0f", int(v.distance), v.speed, v.money, v.steering)
	put(s, 0, height-2, status, statusStyle)
	if v.fineTTL > 0 {
		v.fineTTL--
		put(s, 0, height-1, " "+v.fine+" ", fineStyle)
	} else {
		put(s, 0, height-1, " arrows drive, space handbrake, l lights, r restart, q quit", statusStyle)
	}
	if v.over {
		msg := " GAME OVER  press r to restart "
		put(s, (width-len(msg))/2, (height-2)/2, msg, gameOverStyle)
	}
}

func (v *View) drawCell(s tcell.Screen, c *cell, left, roadCols int, at func(x, z float64) (int, int, bool)) {
	switch c.kind {
	case scene.KindLaneMarking:
		if x, y, ok := at(c.pos.X, c.pos.Z); ok {
			s.SetContent(x, y, '┊', nil, markStyle)
		}
	case scene.KindStopLine:
		if _, y, ok := at(0, c.pos.Z); ok {
			style := greenStyle
			if c.attrs.Red {
				style = redStyle
			}
			for x := left; x <= left+roadCols; x++ {
				s.SetContent(x, y, '═', nil, style)
			}
		}
	case scene.KindTrafficLight:
		if _, y, ok := at(0, c.pos.Z); ok {
			glyph, style := 'G', greenStyle
			if c.attrs.Red {
				glyph, style = 'R', redStyle
			}
			s.SetContent(left+roadCols+2, y, glyph, nil, style.Bold(true))
		}
	case scene.KindCoin:
		if x, y, ok := at(c.pos.X, c.pos.Z); ok {
			s.SetContent(x, y, '●', nil, coinStyle)
		}
	case scene.KindObstacle:
		if x, y, ok := at(c.pos.X, c.pos.Z); ok {
			s.SetContent(x, y, '▣', nil, trafficStyle)
		}
	case scene.KindPlayer:
		if x, y, ok := at(c.pos.X, c.pos.Z); ok {
			glyph := '▲'
			if c.attrs.Braking {
				glyph = '▼'
			}
			s.SetContent(x, y, glyph, nil, playerStyle)
			if c.attrs.Lights && y > 0 {
				s.SetContent(x, y-1, '¦', nil, coinStyle)
			}
		}
	}
}
