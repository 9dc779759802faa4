// Command highway-tui plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/audio"
	"github.com/golangdaddy/highway/pkg/audio/speakerout"
	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/profile"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/tui"
)

func main() {
	launch := config.NewLaunch()
	launch.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	cfg, err := launch.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	// the terminal owns stdout and stderr while running
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "highway ", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	view := tui.NewView()
	presenters := scene.Presenters{view}
	if launch.Profile != "" {
		p, err := profile.LoadOrNew(launch.Profile, launch.Player, time.Now())
		if err != nil {
			screen.Fini()
			log.Fatal(err)
		}
		presenters = append(presenters, profile.NewTracker(p, launch.Profile, nil, logger))
	}
	if !launch.Mute {
		cues := audio.NewCues(audio.DefaultSampleRate, 0.6)
		if err := speakerout.Start(cues); err != nil {
			logger.Printf("Audio disabled: %v", err)
		} else {
			defer speakerout.Stop()
			presenters = append(presenters, cues)
		}
	}

	c := clock.Real{}
	session, err := game.New(game.Options{
		Config:    cfg,
		Sink:      view,
		Presenter: presenters,
		Logger:    logger,
	}, c.Now())
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &tui.Runner{
		Screen:  screen,
		Session: session,
		View:    view,
		Keys:    tui.NewKeys(),
		Clock:   c,
		TPS:     launch.TPS,
	}
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("Run ended: %v", err)
	}
	logger.Printf("Session %s finished: distance %.0f, money %d", session.ID, session.Distance, session.Money)
}
