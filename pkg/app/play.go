package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/render"
)

// binding maps a key to the intents it sends on press and on release.
type binding struct {
	key       ebiten.Key
	press     input.Event
	release   input.Event
	onRelease bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, input.Press(input.SteerLeft), input.Release(input.SteerLeft), true},
	{ebiten.KeyArrowRight, input.Press(input.SteerRight), input.Release(input.SteerRight), true},
	{ebiten.KeyA, input.Press(input.SteerLeft), input.Release(input.SteerLeft), true},
	{ebiten.KeyD, input.Press(input.SteerRight), input.Release(input.SteerRight), true},
	{ebiten.KeyArrowUp, input.Press(input.Accelerate), input.Release(input.Accelerate), true},
	{ebiten.KeyArrowDown, input.Press(input.Brake), input.Release(input.Brake), true},
	{ebiten.KeySpace, input.Press(input.HandbrakeOn), input.Press(input.HandbrakeOff), true},
	{ebiten.KeyL, input.Press(input.ToggleLights), input.Event{}, false},
	{ebiten.KeyR, input.Press(input.Restart), input.Event{}, false},
}

// PlayScreen runs the session one tick per ebiten update.
type PlayScreen struct {
	session *game.Session
	world   *render.World
	hud     *render.HUD
	minimap *render.Minimap
	clock   clock.Clock
	queue   input.Queue
}

// Update handles gameplay logic
func (ps *PlayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			ps.queue.Push(b.press)
		}
		if b.onRelease && inpututil.IsKeyJustReleased(b.key) {
			ps.queue.Push(b.release)
		}
	}
	if !ps.session.Running && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ps.queue.Push(input.Press(input.Restart))
	}

	for _, e := range ps.queue.Drain() {
		ps.session.Handle(e)
	}
	ps.session.Tick(ps.clock.Now())
	return nil
}

// Draw renders the gameplay screen
func (ps *PlayScreen) Draw(screen *ebiten.Image) {
	ps.world.Draw(screen)
	ps.minimap.Draw(screen, 20, 160)
	ps.hud.Draw(screen)
}
