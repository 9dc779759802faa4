package input

// Kind is a discrete player intent.
type Kind int

const (
	SteerLeft Kind = iota
	SteerRight
	Accelerate
	Brake
	HandbrakeOn
	HandbrakeOff
	ToggleLights
	Restart
)

func (k Kind) String() string {
	switch k {
	case SteerLeft:
		return "steer_left"
	case SteerRight:
		return "steer_right"
	case Accelerate:
		return "accelerate"
	case Brake:
		return "brake"
	case HandbrakeOn:
		return "handbrake_on"
	case HandbrakeOff:
		return "handbrake_off"
	case ToggleLights:
		return "toggle_lights"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, bool) {
	for k := SteerLeft; k <= Restart; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Event is a key press or release mapped to an intent. Released only
// matters for steering, throttle and brake.
type Event struct {
	Kind     Kind
	Released bool
}

// Press builds a press event.
func Press(k Kind) Event { return Event{Kind: k} }

// Release builds a release event.
func Release(k Kind) Event { return Event{Kind: k, Released: true} }

// Queue buffers events produced by a frontend until the next tick drains them.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }
