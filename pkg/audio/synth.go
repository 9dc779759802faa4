package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// tone is a fixed-length oscillator with a linear pitch glide and a
// linear fade out over its last quarter.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64
	phase    float64
	pos      int
	length   int
	noise    uint32
}

// Tone returns a streamer playing wave for d, gliding from one frequency
// to another.
func Tone(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration) beep.Streamer {
	return &tone{rate: rate, wave: wave, from: from, to: to, length: rate.N(d), noise: 0x2545f491}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2*t.phase - 1
		case Noise:
			// xorshift keeps cues reproducible
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			v = float64(t.noise)/math.MaxUint32*2 - 1
		}
		if progress > 0.75 {
			v *= (1 - progress) * 4
		}
		samples[i][0], samples[i][1] = v, v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// engine is an endless hum whose pitch follows the car speed.
type engine struct {
	rate  beep.SampleRate
	freq  float64
	phase float64
}

func (e *engine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := 0.6*math.Sin(2*math.Pi*e.phase) + 0.4*(2*e.phase-1)
		samples[i][0], samples[i][1] = v, v
		e.phase += e.freq / float64(e.rate)
		e.phase -= math.Floor(e.phase)
	}
	return len(samples), true
}

func (e *engine) Err() error { return nil }

// gain scales s linearly; zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
