package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/highway/pkg/clock"
)

// fineToast is how long a fine notice stays on screen.
const fineToast = 2 * time.Second

// HUD implements scene.Presenter and draws the overlay: speedometer,
// distance, money, fine notices, the steering wheel and the game-over
// banner.
type HUD struct {
	Distance float64
	Speed    float64
	Money    int
	Steering float64
	GameOver bool

	maxSpeed  float64
	clock     clock.Clock
	fine      string
	fineSince time.Time
}

// NewHUD creates a HUD whose gauge tops out at maxSpeed km/h.
func NewHUD(maxSpeed float64, c clock.Clock) *HUD {
	if c == nil {
		c = clock.Real{}
	}
	return &HUD{maxSpeed: maxSpeed, clock: c}
}

func (h *HUD) ReportDistance(v float64)   { h.Distance = v }
func (h *HUD) ReportSpeed(v float64)      { h.Speed = v }
func (h *HUD) ReportMoney(v int)          { h.Money = v }
func (h *HUD) ReportSteering(deg float64) { h.Steering = deg }
func (h *HUD) ReportGameOver()            { h.GameOver = true }

func (h *HUD) ReportFine(msg string) {
	h.fine = msg
	h.fineSince = h.clock.Now()
}

func (h *HUD) ReportRestart() {
	h.GameOver = false
	h.fine = ""
}

// Fine returns the fine notice currently on screen, if any.
func (h *HUD) Fine() string {
	if h.fine == "" || h.clock.Now().Sub(h.fineSince) > fineToast {
		return ""
	}
	return h.fine
}

// Draw renders the overlay.
func (h *HUD) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	ht := float64(screen.Bounds().Dy())

	h.drawSpeedometer(screen, 20, 20)

	DrawText(screen, fmt.Sprintf("Distance: %d", int(h.Distance)), w-220, 24, 2, color.White)
	money := color.RGBA{255, 215, 0, 255}
	if h.Money < 0 {
		money = color.RGBA{255, 90, 90, 255}
	}
	DrawText(screen, fmt.Sprintf("$ %d", h.Money), w-220, 56, 2, money)

	if msg := h.Fine(); msg != "" {
		vector.DrawFilledRect(screen, float32(w/2-180), 90, 360, 44, color.RGBA{120, 0, 0, 200}, false)
		DrawCentredText(screen, msg, w/2, 98, 2, color.White)
	}

	h.drawSteeringIndicator(screen, w-80, ht-80)

	if h.GameOver {
		vector.DrawFilledRect(screen, 0, float32(ht/2-80), float32(w), 160, color.RGBA{0, 0, 0, 180}, false)
		DrawCentredText(screen, "GAME OVER", w/2, ht/2-60, 5, color.RGBA{255, 80, 80, 255})
		DrawCentredText(screen, fmt.Sprintf("Distance %d   Money %d", int(h.Distance), h.Money), w/2, ht/2+10, 2, color.White)
		DrawCentredText(screen, "Press R to restart", w/2, ht/2+45, 1.5, color.RGBA{150, 200, 255, 255})
	}
}

// drawSpeedometer draws the speed readout box with its gauge bar.
func (h *HUD) drawSpeedometer(screen *ebiten.Image, x, y float64) {
	width, height := 180.0, 120.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	speedText := fmt.Sprintf("%.0f", h.Speed)
	var speedColor color.RGBA
	switch {
	case h.Speed < 50:
		speedColor = color.RGBA{100, 255, 100, 255}
	case h.Speed < 80:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	DrawCentredText(screen, speedText, x+width/2, y+20, 3, speedColor)
	DrawCentredText(screen, "km/h", x+width/2, y+65, 1.5, color.RGBA{200, 200, 200, 255})

	h.drawSpeedGauge(screen, x+10, y+height-25, width-20, 15)
}

// drawSpeedGauge draws a horizontal bar going green to yellow to red.
func (h *HUD) drawSpeedGauge(screen *ebiten.Image, x, y, width, height float64) {
	pct := 0.0
	if h.maxSpeed > 0 {
		pct = math.Min(h.Speed/h.maxSpeed, 1)
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	var bar color.RGBA
	if pct < 0.5 {
		ratio := pct / 0.5
		bar = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	} else {
		ratio := (pct - 0.5) / 0.5
		bar = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
	}
	if filled := width * pct; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), bar, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// drawSteeringIndicator draws a wheel whose spoke follows the steering angle.
func (h *HUD) drawSteeringIndicator(screen *ebiten.Image, cx, cy float64) {
	const radius = 30.0
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 4, color.RGBA{100, 100, 100, 255}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 4, color.RGBA{200, 200, 200, 255}, true)

	indicator := color.RGBA{50, 255, 50, 255}
	if h.Steering != 0 {
		indicator = color.RGBA{255, 50, 50, 255}
	}
	angle := h.Steering * math.Pi / 180
	length := radius - 5
	ex := cx + length*math.Sin(angle)
	ey := cy - length*math.Cos(angle)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(ex), float32(ey), 4, indicator, true)

	DrawText(screen, fmt.Sprintf("Steering: %.0f", h.Steering), cx-70, cy+38, 1, color.White)
}
