package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/game"
)

// Runner drives a session from a tcell screen.
type Runner struct {
	Screen  tcell.Screen
	Session *game.Session
	View    *View
	Keys    *Keys
	Clock   clock.Clock
	TPS     int
}

// Run polls terminal events on a goroutine and ticks the session at a fixed
// rate until the context ends or the player quits.
func (r *Runner) Run(ctx context.Context) error {
	if r.Clock == nil {
		r.Clock = clock.Real{}
	}
	if r.Keys == nil {
		r.Keys = NewKeys()
	}
	steps := clock.NewFixedStep(r.Clock, r.TPS)
	ticker := time.NewTicker(steps.Step())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if r.handle(ev) {
				return nil
			}
		case <-ticker.C:
			for n := steps.Due(); n > 0; n-- {
				r.step()
			}
			r.View.Draw(r.Screen)
			r.Screen.Show()
		}
	}
}

// handle applies one terminal event and reports whether to quit.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		evs, quit := r.Keys.Key(ev)
		if quit {
			return true
		}
		for _, e := range evs {
			r.Session.Handle(e)
		}
	case *tcell.EventResize:
		r.Screen.Sync()
	}
	return false
}

func (r *Runner) step() {
	for _, e := range r.Keys.Tick() {
		r.Session.Handle(e)
	}
	r.Session.Tick(r.Clock.Now())
}
