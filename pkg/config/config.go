package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Player holds the speed model tunables. Rates are per tick.
type Player struct {
	LaneOffsets       []float64 `json:"lane_offsets"`
	StartLane         int       `json:"start_lane"`
	Z                 float64   `json:"z"`
	Y                 float64   `json:"y"`
	BaseSpeed         float64   `json:"base_speed"`
	BaseMaxSpeed      float64   `json:"base_max_speed"`
	MaxSpeedPerUnit   float64   `json:"max_speed_per_unit"`
	MaxSpeedCap       float64   `json:"max_speed_cap"`
	AccelerationRate  float64   `json:"acceleration_rate"`
	BrakeRate         float64   `json:"brake_rate"`
	HandbrakeRate     float64   `json:"handbrake_rate"`
	IdleAcceleration  float64   `json:"idle_acceleration"`
	SteeringAngle     float64   `json:"steering_angle"`
	DistancePerSpeed  float64   `json:"distance_per_speed"`
	SpeedDisplayScale float64   `json:"speed_display_scale"`
}

// Spawn holds obstacle and coin pacing.
type Spawn struct {
	ObstacleIntervalInitialMS int     `json:"obstacle_interval_initial_ms"`
	ObstacleIntervalFloorMS   int     `json:"obstacle_interval_floor_ms"`
	ObstacleRampDistance      float64 `json:"obstacle_ramp_distance"`
	MaxObstacles              int     `json:"max_obstacles"`
	ObstacleMinGap            float64 `json:"obstacle_min_gap"`
	LaneRetries               int     `json:"lane_retries"`
	RelativeSpeedMin          float64 `json:"relative_speed_min"`
	RelativeSpeedMax          float64 `json:"relative_speed_max"`
	CoinIntervalMS            int     `json:"coin_interval_ms"`
	SpawnZ                    float64 `json:"spawn_z"`
}

// Lights holds traffic light spawning and cycling tunables.
type Lights struct {
	SpawnDistance     float64 `json:"spawn_distance"`
	NearFieldZ        float64 `json:"near_field_z"`
	MaxLights         int     `json:"max_lights"`
	SpawnZ            float64 `json:"spawn_z"`
	MinGap            float64 `json:"min_gap"`
	X                 float64 `json:"x"`
	StopLineOffset    float64 `json:"stop_line_offset"`
	CycleMS           int     `json:"cycle_ms"`
	CourtesyWaitMS    int     `json:"courtesy_wait_ms"`
	CourtesyDistance  float64 `json:"courtesy_distance"`
	StationarySpeed   float64 `json:"stationary_speed"`
	Fine              int     `json:"fine"`
	RemovalMargin     float64 `json:"removal_margin"`
	ForceInitialState string  `json:"force_initial_state,omitempty"`
}

// World holds the scroll model and camera frame.
type World struct {
	CameraZ        float64 `json:"camera_z"`
	RemovalMargin  float64 `json:"removal_margin"`
	RecycleZ       float64 `json:"recycle_z"`
	WrapLength     float64 `json:"wrap_length"`
	RoadStartZ     float64 `json:"road_start_z"`
	RoadWrapLength float64 `json:"road_wrap_length"`
	MarkingCount   int     `json:"marking_count"`
	MarkingSpacing float64 `json:"marking_spacing"`
	MarkingStartZ  float64 `json:"marking_start_z"`
	MarkingX       float64 `json:"marking_x"`
	PoleCount      int     `json:"pole_count"`
	PoleX          float64 `json:"pole_x"`
	TreeCount      int     `json:"tree_count"`
	TreeMinX       float64 `json:"tree_min_x"`
	TreeMaxX       float64 `json:"tree_max_x"`
	MountainCount  int     `json:"mountain_count"`
	MountainX      float64 `json:"mountain_x"`
}

// Box is a nominal axis-aligned extent (width on X, height on Y, depth on Z).
type Box struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	D float64 `json:"d"`
}

// Geometry holds the nominal bounding boxes per entity kind.
type Geometry struct {
	Player   Box `json:"player"`
	Obstacle Box `json:"obstacle"`
	Coin     Box `json:"coin"`
}

// Config aggregates every tunable of a game session.
type Config struct {
	Seed     int64    `json:"seed"`
	Player   Player   `json:"player"`
	Spawn    Spawn    `json:"spawn"`
	Lights   Lights   `json:"lights"`
	World    World    `json:"world"`
	Geometry Geometry `json:"geometry"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Player: Player{
			LaneOffsets:       []float64{-3, 0, 3},
			StartLane:         1,
			Z:                 5,
			Y:                 0.25,
			BaseSpeed:         0.1,
			BaseMaxSpeed:      0.5,
			MaxSpeedPerUnit:   0.000005,
			MaxSpeedCap:       1.0,
			AccelerationRate:  0.005,
			BrakeRate:         0.01,
			HandbrakeRate:     0.035,
			IdleAcceleration:  0.0005,
			SteeringAngle:     45,
			DistancePerSpeed:  10,
			SpeedDisplayScale: 100,
		},
		Spawn: Spawn{
			ObstacleIntervalInitialMS: 2000,
			ObstacleIntervalFloorMS:   400,
			ObstacleRampDistance:      60000,
			MaxObstacles:              10,
			ObstacleMinGap:            12,
			LaneRetries:               3,
			RelativeSpeedMin:          -0.05,
			RelativeSpeedMax:          0.05,
			CoinIntervalMS:            1000,
			SpawnZ:                    -50,
		},
		Lights: Lights{
			SpawnDistance:    180,
			NearFieldZ:       -70,
			MaxLights:        2,
			SpawnZ:           -90,
			MinGap:           60,
			X:                5,
			StopLineOffset:   1.5,
			CycleMS:          6000,
			CourtesyWaitMS:   1200,
			CourtesyDistance: 8,
			StationarySpeed:  0.02,
			Fine:             20,
			RemovalMargin:    10,
		},
		World: World{
			CameraZ:        10,
			RemovalMargin:  5,
			RecycleZ:       10,
			WrapLength:     100,
			RoadStartZ:     -40,
			RoadWrapLength: 50,
			MarkingCount:   20,
			MarkingSpacing: 5,
			MarkingStartZ:  -45,
			MarkingX:       1.5,
			PoleCount:      5,
			PoleX:          7,
			TreeCount:      10,
			TreeMinX:       9,
			TreeMaxX:       18,
			MountainCount:  4,
			MountainX:      40,
		},
		Geometry: Geometry{
			Player:   Box{W: 1, H: 1, D: 2},
			Obstacle: Box{W: 1, H: 1, D: 2},
			Coin:     Box{W: 0.5, H: 0.5, D: 0.1},
		},
	}
}

// CoinInterval returns the coin spawn interval.
func (s Spawn) CoinInterval() time.Duration {
	return time.Duration(s.CoinIntervalMS) * time.Millisecond
}

// Cycle returns the automatic red/green toggle period.
func (l Lights) Cycle() time.Duration {
	return time.Duration(l.CycleMS) * time.Millisecond
}

// CourtesyWait returns how long a stopped player waits before a forced green.
func (l Lights) CourtesyWait() time.Duration {
	return time.Duration(l.CourtesyWaitMS) * time.Millisecond
}

// RemovalZ is the camera-relative exit plane for obstacles and coins.
func (w World) RemovalZ() float64 {
	return w.CameraZ + w.RemovalMargin
}

// Validate reports the first inconsistency found in the configuration.
func (c Config) Validate() error {
	if len(c.Player.LaneOffsets) == 0 {
		return fmt.Errorf("%w: no lanes", ErrInvalid)
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= len(c.Player.LaneOffsets) {
		return fmt.Errorf("%w: start lane %d out of range", ErrInvalid, c.Player.StartLane)
	}
	if c.Player.BaseMaxSpeed <= 0 {
		return fmt.Errorf("%w: base max speed must be positive", ErrInvalid)
	}
	if c.Player.MaxSpeedCap > 0 && c.Player.MaxSpeedCap < c.Player.BaseMaxSpeed {
		return fmt.Errorf("%w: max speed cap below base max speed", ErrInvalid)
	}
	if c.Player.BaseSpeed < 0 || c.Player.BaseSpeed > c.Player.BaseMaxSpeed {
		return fmt.Errorf("%w: base speed %.3f outside [0, %.3f]", ErrInvalid, c.Player.BaseSpeed, c.Player.BaseMaxSpeed)
	}
	if c.Spawn.ObstacleIntervalFloorMS <= 0 || c.Spawn.ObstacleIntervalInitialMS < c.Spawn.ObstacleIntervalFloorMS {
		return fmt.Errorf("%w: obstacle interval %d -> %d ms", ErrInvalid, c.Spawn.ObstacleIntervalInitialMS, c.Spawn.ObstacleIntervalFloorMS)
	}
	if c.Spawn.ObstacleRampDistance <= 0 {
		return fmt.Errorf("%w: obstacle ramp distance must be positive", ErrInvalid)
	}
	if c.Spawn.RelativeSpeedMax < c.Spawn.RelativeSpeedMin {
		return fmt.Errorf("%w: relative speed range inverted", ErrInvalid)
	}
	if c.Spawn.CoinIntervalMS <= 0 || c.Lights.CycleMS <= 0 {
		return fmt.Errorf("%w: timers must be positive", ErrInvalid)
	}
	switch c.Lights.ForceInitialState {
	case "", "red", "green":
	default:
		return fmt.Errorf("%w: force_initial_state %q", ErrInvalid, c.Lights.ForceInitialState)
	}
	if c.World.WrapLength <= 0 || c.World.RoadWrapLength <= 0 {
		return fmt.Errorf("%w: wrap lengths must be positive", ErrInvalid)
	}
	return nil
}

// SaveToFile writes the configuration as indented JSON.
func (c Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads a JSON configuration. Missing fields keep their defaults.
func LoadFromFile(filename string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
