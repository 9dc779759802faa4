package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/render"
)

var controls = []string{
	"LEFT / RIGHT  change lane",
	"UP / DOWN     throttle / brake",
	"SPACE         handbrake",
	"L             headlights",
	"R             restart",
	"ESC           quit",
}

// TitleScreen shows the controls and waits for the player to start.
type TitleScreen struct {
	clock          clock.Clock
	startTime      float64
	best           float64
	onStartPressed func()
}

// NewTitleScreen builds a title screen that calls onStartPressed on
// a start key or click. best is shown when positive.
func NewTitleScreen(c clock.Clock, best float64, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		clock:          c,
		startTime:      seconds(c),
		best:           best,
		onStartPressed: onStartPressed,
	}
}

func seconds(c clock.Clock) float64 {
	return float64(c.Now().UnixNano()) / 1e9
}

// Update quits on Esc and starts on any start key or click.
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw paints the pulsing title over the controls list.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := seconds(ts.clock) - ts.startTime
	centerX := width / 2
	centerY := height / 3

	// pulse between 1.0 and 1.1
	titleScale := 8.0 * (1 + 0.1*math.Sin(elapsed*2))
	brightness := math.Min(1, 1+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{uint8(255 * brightness), uint8(200 * brightness), uint8(50 * brightness), 255}
	render.DrawCentredText(screen, "HIGHWAY", centerX, centerY-40, titleScale, titleColor)
	render.DrawCentredText(screen, "Endless Lane Driving", centerX, centerY+80, 2, color.RGBA{180, 180, 200, 255})

	for i, line := range controls {
		render.DrawText(screen, line, centerX-130, centerY+130+float64(i)*18, 1, color.RGBA{160, 170, 190, 255})
	}

	if ts.best > 0 {
		render.DrawCentredText(screen, fmt.Sprintf("Best distance %d", int(ts.best)), centerX, height-110, 1.5, color.RGBA{255, 215, 0, 255})
	}

	// blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		render.DrawCentredText(screen, "Press ENTER or SPACE to Start", centerX, height-70, 1.5, color.RGBA{150, 200, 255, 255})
	}

	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height/6), float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height*5/6), float32(width), 2, lineColor, false)
}
