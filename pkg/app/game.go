// Package app hosts a session in an ebiten window.
package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/background"
	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/render"
	"github.com/golangdaddy/highway/pkg/scene"
)

// Logical screen size.
const (
	ScreenWidth  = 1024
	ScreenHeight = 600
)

// Screen is one state of the window: title or play.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configures the desktop game.
type Options struct {
	Config config.Config
	// Presenter receives reports alongside the HUD, e.g. audio cues.
	Presenter scene.Presenter
	Logger    *log.Logger
	Clock     clock.Clock
	// Best is the profile's best distance, shown on the title screen.
	Best float64
}

// Game implements ebiten.Game by delegating to the current screen.
type Game struct {
	opts          Options
	currentScreen Screen
}

// NewGame creates a new game instance starting at the title screen.
func NewGame(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{opts: opts}
	g.currentScreen = NewTitleScreen(g.opts.Clock, g.opts.Best, func() {
		if err := g.startGameplay(); err != nil {
			g.opts.Logger.Printf("Failed to start session: %v", err)
		}
	})
	return g
}

func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

// startGameplay builds the renderer and a fresh session.
func (g *Game) startGameplay() error {
	cfg := g.opts.Config
	sc := render.NewScene()
	hud := render.NewHUD(cfg.Player.MaxSpeedCap*cfg.Player.SpeedDisplayScale, g.opts.Clock)

	presenters := scene.Presenters{hud}
	if g.opts.Presenter != nil {
		presenters = append(presenters, g.opts.Presenter)
	}
	session, err := game.New(game.Options{
		Config:    cfg,
		Sink:      sc,
		Presenter: presenters,
		Logger:    g.opts.Logger,
	}, g.opts.Clock.Now())
	if err != nil {
		return fmt.Errorf("failed to start gameplay: %w", err)
	}

	horizon := background.NewGenerator(ScreenWidth, 90).GenerateHorizon(cfg.Seed)
	g.currentScreen = &PlayScreen{
		session: session,
		world:   render.NewWorld(sc, cfg, ScreenWidth, ScreenHeight, horizon),
		hud:     hud,
		minimap: render.NewMinimap(sc),
		clock:   g.opts.Clock,
	}
	return nil
}
