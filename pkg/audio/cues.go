// Package audio turns session reports into sound. Cues are synthesised
// on the fly and mixed into one streamer a playback device can pull from.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// DefaultSampleRate is used when none is given.
const DefaultSampleRate = beep.SampleRate(44100)

// Cues implements scene.Presenter with sound effects: a chime per coin,
// a buzz per fine, a crash on game over and a blip on restart, over an
// engine hum tracking the reported speed.
type Cues struct {
	rate   beep.SampleRate
	volume float64

	// Locker guards the mixer against the playback goroutine. It defaults
	// to a private mutex; speakerout swaps in the speaker lock.
	Locker sync.Locker

	mixer  *beep.Mixer
	engine *engine
	hum    *beep.Ctrl

	money   int
	running bool
}

// NewCues creates a cue mixer at rate with a master volume in [0, 1].
func NewCues(rate beep.SampleRate, volume float64) *Cues {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	e := &engine{rate: rate, freq: 40}
	c := &Cues{
		rate:    rate,
		volume:  volume,
		Locker:  &sync.Mutex{},
		mixer:   &beep.Mixer{},
		engine:  e,
		running: true,
	}
	c.hum = &beep.Ctrl{Streamer: gain(e, volume*0.15)}
	c.mixer.Add(c.hum)
	return c
}

// SampleRate returns the rate cues are synthesised at.
func (c *Cues) SampleRate() beep.SampleRate { return c.rate }

// Streamer returns the mixed output.
func (c *Cues) Streamer() beep.Streamer { return c.mixer }

// Active returns the number of streamers in the mix, engine included.
func (c *Cues) Active() int {
	c.Locker.Lock()
	defer c.Locker.Unlock()
	return c.mixer.Len()
}

func (c *Cues) play(level float64, s beep.Streamer) {
	c.Locker.Lock()
	defer c.Locker.Unlock()
	c.mixer.Add(gain(s, c.volume*level))
}

func (c *Cues) ReportDistance(float64) {}

func (c *Cues) ReportSteering(float64) {}

// ReportSpeed retunes the engine; value is the displayed km/h.
func (c *Cues) ReportSpeed(value float64) {
	c.Locker.Lock()
	defer c.Locker.Unlock()
	c.engine.freq = 40 + value*1.2
}

// ReportMoney chimes whenever the balance goes up.
func (c *Cues) ReportMoney(value int) {
	up := value > c.money
	c.money = value
	if up && c.running {
		c.play(0.5, beep.Seq(
			Tone(c.rate, Sine, 988, 988, 70*time.Millisecond),
			Tone(c.rate, Sine, 1319, 1319, 160*time.Millisecond),
		))
	}
}

func (c *Cues) ReportFine(string) {
	c.play(0.6, Tone(c.rate, Square, 180, 120, 350*time.Millisecond))
}

func (c *Cues) ReportGameOver() {
	c.running = false
	c.Locker.Lock()
	c.hum.Paused = true
	c.Locker.Unlock()
	c.play(0.8, Tone(c.rate, Noise, 0, 0, 700*time.Millisecond))
}

func (c *Cues) ReportRestart() {
	c.money = 0
	c.running = true
	c.Locker.Lock()
	c.hum.Paused = false
	c.Locker.Unlock()
	c.play(0.4, Tone(c.rate, Square, 440, 880, 150*time.Millisecond))
}
