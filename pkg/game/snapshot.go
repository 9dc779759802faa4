package game

// EntityState is the serialisable view of an obstacle or coin.
type EntityState struct {
	ID            uint64  `msgpack:"id" json:"id"`
	Lane          int     `msgpack:"lane" json:"lane"`
	Z             float64 `msgpack:"z" json:"z"`
	RelativeSpeed float64 `msgpack:"rel,omitempty" json:"rel,omitempty"`
}

// LightState is the serialisable view of a traffic light.
type LightState struct {
	ID               uint64  `msgpack:"id" json:"id"`
	Z                float64 `msgpack:"z" json:"z"`
	Red              bool    `msgpack:"red" json:"red"`
	ViolationChecked bool    `msgpack:"checked" json:"checked"`
	WaitingForGreen  bool    `msgpack:"waiting" json:"waiting"`
}

// Snapshot is a point-in-time copy of everything a session tick can change.
type Snapshot struct {
	SessionID string        `msgpack:"session" json:"session"`
	Tick      uint64        `msgpack:"tick" json:"tick"`
	Running   bool          `msgpack:"running" json:"running"`
	Distance  float64       `msgpack:"distance" json:"distance"`
	Money     int           `msgpack:"money" json:"money"`
	Speed     float64       `msgpack:"speed" json:"speed"`
	MaxSpeed  float64       `msgpack:"max_speed" json:"max_speed"`
	Lane      int           `msgpack:"lane" json:"lane"`
	Steering  float64       `msgpack:"steering" json:"steering"`
	Braking   bool          `msgpack:"braking" json:"braking"`
	Handbrake bool          `msgpack:"handbrake" json:"handbrake"`
	Lights    bool          `msgpack:"lights" json:"lights"`
	Obstacles []EntityState `msgpack:"obstacles" json:"obstacles"`
	Coins     []EntityState `msgpack:"coins" json:"coins"`
	Traffic   []LightState  `msgpack:"traffic" json:"traffic"`
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	p := s.Player
	snap := Snapshot{
		SessionID: s.ID.String(),
		Tick:      s.Ticks,
		Running:   s.Running,
		Distance:  s.Distance,
		Money:     s.Money,
		Speed:     p.Speed,
		MaxSpeed:  s.MaxSpeed(),
		Lane:      p.Lane,
		Steering:  p.SteeringAngle,
		Braking:   p.Braking,
		Handbrake: p.Handbrake,
		Lights:    p.Lights,
	}
	for _, o := range s.Registry.Obstacles {
		snap.Obstacles = append(snap.Obstacles, EntityState{ID: o.ID, Lane: o.Lane, Z: o.Z, RelativeSpeed: o.RelativeSpeed})
	}
	for _, c := range s.Registry.Coins {
		snap.Coins = append(snap.Coins, EntityState{ID: c.ID, Lane: c.Lane, Z: c.Z})
	}
	for _, l := range s.Registry.Lights {
		snap.Traffic = append(snap.Traffic, LightState{
			ID:               l.ID,
			Z:                l.Z,
			Red:              l.Red,
			ViolationChecked: l.ViolationChecked,
			WaitingForGreen:  l.WaitingForGreen,
		})
	}
	return snap
}
