// Command highway-sim runs sessions headless on a manual clock, driven by
// the autopilot or a script, and optionally records a msgpack trace.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/golangdaddy/highway/pkg/autopilot"
	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/trace"
)

// Summary is printed as JSON when the run ends.
type Summary struct {
	Seed      int64    `json:"seed"`
	Ticks     uint64   `json:"ticks"`
	Sessions  int      `json:"sessions"`
	GameOvers int      `json:"game_overs"`
	Fines     int      `json:"fines"`
	Distance  float64  `json:"distance"`
	Money     int      `json:"money"`
	Best      float64  `json:"best_distance"`
	Live      int      `json:"live_entities"`
	Snapshots int      `json:"snapshots,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

func main() {
	launch := config.NewLaunch()
	launch.Bind(flag.CommandLine)
	ticks := flag.Uint64("ticks", 36000, "number of ticks to simulate")
	restarts := flag.Int("restarts", 0, "restart after game over this many times")
	tracePath := flag.String("trace", "", "write a msgpack trace to this file")
	scriptPath := flag.String("script", "", "drive the session from this input script instead of the autopilot")
	quiet := flag.Bool("quiet", false, "suppress log output")
	flag.Parse()

	logger := log.New(os.Stderr, "highway-sim ", log.LstdFlags)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	cfg, err := launch.Resolve()
	if err != nil {
		logger.Fatal(err)
	}

	var script *autopilot.Script
	if *scriptPath != "" {
		if script, err = autopilot.LoadScript(*scriptPath); err != nil {
			logger.Fatal(err)
		}
		logger.Printf("Loaded %d scripted steps from %s", script.Len(), *scriptPath)
	}

	rec := scene.NewRecorder()
	c := clock.NewManual(time.Unix(0, 0))
	session, err := game.New(game.Options{Config: cfg, Sink: rec, Presenter: rec, Logger: logger}, c.Now())
	if err != nil {
		logger.Fatal(err)
	}

	var tw *trace.Writer
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		if tw, err = trace.NewWriter(f, session.ID.String(), cfg); err != nil {
			logger.Fatal(err)
		}
	}

	pilot := autopilot.New(cfg)
	step := clock.NewFixedStep(c, launch.TPS).Step()
	sum := Summary{Seed: cfg.Seed, Sessions: 1}

	for tick := uint64(0); tick < *ticks; tick++ {
		var events []input.Event
		if script != nil {
			events = script.Due(tick)
		} else {
			events = pilot.Decide(session.Snapshot())
		}
		for _, e := range events {
			session.Handle(e)
		}

		session.Tick(c.Advance(step))
		sum.Ticks++

		if tw != nil {
			if err := tw.Write(session.Snapshot()); err != nil {
				sum.Errors = append(sum.Errors, err.Error())
				tw = nil
			}
		}

		if !session.Running {
			sum.Best = max(sum.Best, session.Distance)
			if sum.Sessions > *restarts {
				break
			}
			session.Handle(input.Press(input.Restart))
			pilot.Reset()
			sum.Sessions++
		}
	}

	sum.GameOvers = rec.GameOvers
	sum.Fines = len(rec.Fines)
	sum.Distance = session.Distance
	sum.Money = session.Money
	sum.Best = max(sum.Best, session.Distance)
	sum.Live = len(rec.Live)
	if tw != nil {
		sum.Snapshots = tw.Count()
	}

	out, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Println(string(out))
}
