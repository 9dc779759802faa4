// Package profile keeps a player's lifetime stats between runs.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/highway/pkg/rng"
)

// Profile is the persisted record of every finished run.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Created    time.Time `json:"created"`
	LastPlayed time.Time `json:"last_played"`
	PlayTime   float64   `json:"play_time"` // hours

	Runs          int     `json:"runs"`
	BestDistance  float64 `json:"best_distance"`
	TotalDistance float64 `json:"total_distance"`
	BestMoney     int     `json:"best_money"`
	TotalMoney    int     `json:"total_money"`
	Fines         int     `json:"fines"`
}

// Run is the outcome of one finished session.
type Run struct {
	Distance float64
	Money    int
	Fines    int
	Duration time.Duration
}

// NewProfile creates an empty profile.
func NewProfile(name string, now time.Time) *Profile {
	return &Profile{
		ID:         uuid.NewString(),
		Name:       name,
		Created:    now,
		LastPlayed: now,
	}
}

// Record adds a finished run and reports whether it set a new best distance.
func (p *Profile) Record(r Run, now time.Time) bool {
	p.Runs++
	p.LastPlayed = now
	p.PlayTime += r.Duration.Hours()
	p.TotalDistance += r.Distance
	p.TotalMoney += r.Money
	p.Fines += r.Fines
	if r.Money > p.BestMoney {
		p.BestMoney = r.Money
	}
	if r.Distance > p.BestDistance {
		p.BestDistance = r.Distance
		return true
	}
	return false
}

// SaveToFile writes the profile as indented JSON.
func (p *Profile) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads a profile written by SaveToFile.
func LoadFromFile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}
	return &p, nil
}

// LoadOrNew loads the profile at filename, or starts a new one if the file
// does not exist yet. An empty name picks a random one.
func LoadOrNew(filename, name string, now time.Time) (*Profile, error) {
	p, err := LoadFromFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		if name == "" {
			name = RandomName(rng.New(now.UnixNano()))
		}
		return NewProfile(name, now), nil
	}
	return p, err
}
