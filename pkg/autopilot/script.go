package autopilot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/golangdaddy/highway/pkg/input"
)

// Step is one scripted event fired before the given tick runs.
type Step struct {
	Tick  uint64
	Event input.Event
}

// Script is a tick-ordered list of steps.
type Script struct {
	steps []Step
	next  int
}

// ParseScript reads one step per line:
//
//	<tick> <event> [release]
//
// where event is an input name such as accelerate or steer_left. Blank
// lines and lines starting with # are skipped.
func ParseScript(r io.Reader) (*Script, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: expected \"<tick> <event> [release]\", got %q", lineNo, line)
		}
		tick, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid tick %q: %w", lineNo, fields[0], err)
		}
		kind, ok := input.ParseKind(fields[1])
		if !ok {
			return nil, fmt.Errorf("line %d: unknown event %q", lineNo, fields[1])
		}
		ev := input.Press(kind)
		if len(fields) == 3 {
			if fields[2] != "release" {
				return nil, fmt.Errorf("line %d: unexpected %q", lineNo, fields[2])
			}
			ev = input.Release(kind)
		}
		steps = append(steps, Step{Tick: tick, Event: ev})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	return &Script{steps: steps}, nil
}

// LoadScript parses the script file at path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

// Due returns the steps scheduled at or before tick that have not fired yet.
func (s *Script) Due(tick uint64) []input.Event {
	var out []input.Event
	for s.next < len(s.steps) && s.steps[s.next].Tick <= tick {
		out = append(out, s.steps[s.next].Event)
		s.next++
	}
	return out
}

// Done reports whether every step has fired.
func (s *Script) Done() bool { return s.next >= len(s.steps) }

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }
