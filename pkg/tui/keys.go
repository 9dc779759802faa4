package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/highway/pkg/input"
)

// Terminals report key presses (and auto-repeat) but never releases, so
// held intents are released after a number of ticks without a repeat.
const (
	throttleHold = 20
	steerHold    = 10
)

// Keys turns terminal key events into input events.
type Keys struct {
	held      map[input.Kind]int
	handbrake bool
}

// NewKeys returns a mapper with nothing held.
func NewKeys() *Keys {
	return &Keys{held: make(map[input.Kind]int)}
}

// Key maps one key event. quit is true for Esc, Ctrl-C and q. Restart
// also drops every held key.
func (k *Keys) Key(ev *tcell.EventKey) (events []input.Event, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		return k.hold(input.SteerLeft, steerHold), false
	case tcell.KeyRight:
		return k.hold(input.SteerRight, steerHold), false
	case tcell.KeyUp:
		return k.hold(input.Accelerate, throttleHold), false
	case tcell.KeyDown:
		return k.hold(input.Brake, throttleHold), false
	case tcell.KeyEnter:
		k.Reset()
		return []input.Event{input.Press(input.Restart)}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return nil, true
	case ' ':
		k.handbrake = !k.handbrake
		if k.handbrake {
			return []input.Event{input.Press(input.HandbrakeOn)}, false
		}
		return []input.Event{input.Press(input.HandbrakeOff)}, false
	case 'l', 'L':
		return []input.Event{input.Press(input.ToggleLights)}, false
	case 'r', 'R':
		k.Reset()
		return []input.Event{input.Press(input.Restart)}, false
	case 'a', 'A':
		return k.hold(input.SteerLeft, steerHold), false
	case 'd', 'D':
		return k.hold(input.SteerRight, steerHold), false
	case 'w', 'W':
		return k.hold(input.Accelerate, throttleHold), false
	case 's', 'S':
		return k.hold(input.Brake, throttleHold), false
	}
	return nil, false
}

// hold presses kind and keeps it held for ticks. Steering fires on every
// repeat since each press changes lane; throttle and brake only on the
// first press.
func (k *Keys) hold(kind input.Kind, ticks int) []input.Event {
	_, already := k.held[kind]
	k.held[kind] = ticks
	if already && kind != input.SteerLeft && kind != input.SteerRight {
		return nil
	}
	return []input.Event{input.Press(kind)}
}

// Tick ages held intents and returns releases for the ones that expired.
func (k *Keys) Tick() []input.Event {
	var out []input.Event
	for _, kind := range []input.Kind{input.SteerLeft, input.SteerRight, input.Accelerate, input.Brake} {
		left, ok := k.held[kind]
		if !ok {
			continue
		}
		if left <= 1 {
			delete(k.held, kind)
			out = append(out, input.Release(kind))
			continue
		}
		k.held[kind] = left - 1
	}
	return out
}

// Reset forgets every held key.
func (k *Keys) Reset() {
	clear(k.held)
	k.handbrake = false
}
