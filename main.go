package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highway/pkg/app"
	"github.com/golangdaddy/highway/pkg/audio"
	"github.com/golangdaddy/highway/pkg/audio/speakerout"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/profile"
	"github.com/golangdaddy/highway/pkg/scene"
)

func main() {
	launch := config.NewLaunch()
	launch.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := launch.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Starting highway (seed %d, %d tps)", cfg.Seed, launch.TPS)

	opts := app.Options{Config: cfg}
	var presenters scene.Presenters
	if launch.Profile != "" {
		p, err := profile.LoadOrNew(launch.Profile, launch.Player, time.Now())
		if err != nil {
			log.Fatal(err)
		}
		opts.Best = p.BestDistance
		presenters = append(presenters, profile.NewTracker(p, launch.Profile, nil, log.Default()))
	}
	if !launch.Mute {
		cues := audio.NewCues(audio.DefaultSampleRate, 0.6)
		if err := speakerout.Start(cues); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer speakerout.Stop()
			presenters = append(presenters, cues)
		}
	}
	if len(presenters) > 0 {
		opts.Presenter = presenters
	}

	ebiten.SetWindowSize(app.ScreenWidth*launch.Scale, app.ScreenHeight*launch.Scale)
	ebiten.SetWindowTitle("Highway")
	ebiten.SetTPS(launch.TPS)
	if err := ebiten.RunGame(app.NewGame(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
