package config

import (
	"flag"
	"fmt"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Entries without '=' are skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Launch holds the command-line parameters shared by every frontend.
type Launch struct {
	Path      string
	Seed      int64
	TPS       int
	Scale     int
	Mute      bool
	Profile   string
	Player    string
	Overrides KVList
}

// NewLaunch returns launch parameters with sensible defaults.
func NewLaunch() *Launch {
	return &Launch{TPS: 60, Scale: 1}
}

// Bind attaches the parameters to the provided FlagSet.
func (l *Launch) Bind(fs *flag.FlagSet) {
	fs.StringVar(&l.Path, "config", l.Path, "JSON tuning file")
	fs.Int64Var(&l.Seed, "seed", l.Seed, "seed for spawning and scenery (0 keeps the configured seed)")
	fs.IntVar(&l.TPS, "tps", l.TPS, "ticks per second")
	fs.IntVar(&l.Scale, "scale", l.Scale, "window scale multiplier")
	fs.BoolVar(&l.Mute, "mute", l.Mute, "disable audio")
	fs.StringVar(&l.Profile, "profile", l.Profile, "JSON file keeping lifetime stats (empty disables)")
	fs.StringVar(&l.Player, "player", l.Player, "name for a new profile (random if empty)")
	fs.Var(&l.Overrides, "set", "tuning override in key=value form (repeatable)")
}

// Resolve builds the session configuration: defaults, then the tuning
// file, then -set overrides, then -seed.
func (l *Launch) Resolve() (Config, error) {
	c := DefaultConfig()
	if l.TPS <= 0 {
		return c, fmt.Errorf("%w: tps %d must be positive", ErrInvalid, l.TPS)
	}
	if l.Path != "" {
		loaded, err := LoadFromFile(l.Path)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	c.Apply(l.Overrides.Map())
	if l.Seed != 0 {
		c.Seed = l.Seed
	}
	return c, c.Validate()
}
