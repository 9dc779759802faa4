package config

import "strconv"

// FromMap applies flag-style key/value overrides on top of DefaultConfig.
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floats := map[string]*float64{
		"base_speed":         &c.Player.BaseSpeed,
		"base_max_speed":     &c.Player.BaseMaxSpeed,
		"max_speed_per_unit": &c.Player.MaxSpeedPerUnit,
		"max_speed_cap":      &c.Player.MaxSpeedCap,
		"acceleration_rate":  &c.Player.AccelerationRate,
		"brake_rate":         &c.Player.BrakeRate,
		"handbrake_rate":     &c.Player.HandbrakeRate,
		"idle_acceleration":  &c.Player.IdleAcceleration,
		"obstacle_min_gap":   &c.Spawn.ObstacleMinGap,
		"relative_speed_min": &c.Spawn.RelativeSpeedMin,
		"relative_speed_max": &c.Spawn.RelativeSpeedMax,
		"light_distance":     &c.Lights.SpawnDistance,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			// only the lower relative speed bound may be negative
			if parsed < 0 && key != "relative_speed_min" {
				continue
			}
			*dst = parsed
		}
	}
	ints := map[string]*int{
		"obstacle_interval_ms":       &c.Spawn.ObstacleIntervalInitialMS,
		"obstacle_interval_floor_ms": &c.Spawn.ObstacleIntervalFloorMS,
		"max_obstacles":              &c.Spawn.MaxObstacles,
		"coin_interval_ms":           &c.Spawn.CoinIntervalMS,
		"light_cycle_ms":             &c.Lights.CycleMS,
		"courtesy_wait_ms":           &c.Lights.CourtesyWaitMS,
		"max_lights":                 &c.Lights.MaxLights,
		"fine":                       &c.Lights.Fine,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["light_state"]; ok && (v == "red" || v == "green" || v == "") {
		c.Lights.ForceInitialState = v
	}
}
