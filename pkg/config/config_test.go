package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"start lane":      func(c *Config) { c.Player.StartLane = 3 },
		"no lanes":        func(c *Config) { c.Player.LaneOffsets = nil },
		"interval order":  func(c *Config) { c.Spawn.ObstacleIntervalFloorMS = 5000 },
		"speed range":     func(c *Config) { c.Spawn.RelativeSpeedMin = 1 },
		"light state":     func(c *Config) { c.Lights.ForceInitialState = "amber" },
		"base over limit": func(c *Config) { c.Player.BaseSpeed = 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"seed":               "7",
		"fine":               "35",
		"max_obstacles":      "4",
		"relative_speed_min": "-0.2",
		"brake_rate":         "-1",
		"light_state":        "red",
		"coin_interval_ms":   "nope",
	})
	if c.Seed != 7 {
		t.Fatalf("seed = %d, want 7", c.Seed)
	}
	if c.Lights.Fine != 35 || c.Spawn.MaxObstacles != 4 {
		t.Fatalf("int overrides not applied: fine=%d max=%d", c.Lights.Fine, c.Spawn.MaxObstacles)
	}
	if c.Spawn.RelativeSpeedMin != -0.2 {
		t.Fatalf("relative_speed_min = %f, want -0.2", c.Spawn.RelativeSpeedMin)
	}
	if c.Player.BrakeRate != DefaultConfig().Player.BrakeRate {
		t.Fatalf("negative brake rate should be ignored, got %f", c.Player.BrakeRate)
	}
	if c.Spawn.CoinIntervalMS != 1000 {
		t.Fatalf("unparsable coin interval should keep default, got %d", c.Spawn.CoinIntervalMS)
	}
	if c.Lights.ForceInitialState != "red" {
		t.Fatalf("light_state = %q", c.Lights.ForceInitialState)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	c := DefaultConfig()
	c.Lights.Fine = 50
	c.Spawn.MaxObstacles = 6
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Lights.Fine != 50 || loaded.Spawn.MaxObstacles != 6 {
		t.Fatalf("loaded config lost overrides: %+v", loaded.Lights)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"lights":{"fine":5}}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Lights.Fine != 5 {
		t.Fatalf("fine = %d, want 5", c.Lights.Fine)
	}
	if c.Lights.CycleMS != 6000 {
		t.Fatalf("cycle should keep default 6000, got %d", c.Lights.CycleMS)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"player":{"start_lane":9}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLaunchResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	c := DefaultConfig()
	c.Lights.Fine = 15
	c.Seed = 3
	if err := c.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	l := NewLaunch()
	l.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-set", "max_lights=1", "-set", "garbage", "-seed", "11", "-mute"}); err != nil {
		t.Fatal(err)
	}
	got, err := l.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Lights.Fine != 15 || got.Lights.MaxLights != 1 || got.Seed != 11 {
		t.Fatalf("resolved config wrong: fine=%d lights=%d seed=%d", got.Lights.Fine, got.Lights.MaxLights, got.Seed)
	}
	if !l.Mute || l.TPS != 60 {
		t.Fatalf("launch flags wrong: %+v", l)
	}
}

func TestLaunchResolveRejectsTPS(t *testing.T) {
	for _, tps := range []int{0, -30} {
		l := NewLaunch()
		l.TPS = tps
		if _, err := l.Resolve(); !errors.Is(err, ErrInvalid) {
			t.Errorf("tps %d: expected ErrInvalid, got %v", tps, err)
		}
	}
}

func TestLaunchResolveRejectsOverride(t *testing.T) {
	l := NewLaunch()
	l.Overrides = KVList{"obstacle_interval_floor_ms=9000"}
	if _, err := l.Resolve(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
