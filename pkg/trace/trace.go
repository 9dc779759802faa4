// Package trace records a session tick by tick as a msgpack stream: one
// header followed by one snapshot per tick.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
)

// Version is bumped whenever the snapshot layout changes.
const Version = 1

// ErrVersion is returned when a stream was written by another layout.
var ErrVersion = errors.New("unsupported trace version")

// Header opens every trace.
type Header struct {
	Version   int           `msgpack:"version"`
	SessionID string        `msgpack:"session"`
	Seed      int64         `msgpack:"seed"`
	Config    config.Config `msgpack:"config"`
}

// Writer appends snapshots to an underlying stream.
type Writer struct {
	enc   *msgpack.Encoder
	count int
}

// NewWriter writes the header and returns a writer for the snapshots.
func NewWriter(w io.Writer, sessionID string, cfg config.Config) (*Writer, error) {
	enc := msgpack.NewEncoder(w)
	h := Header{Version: Version, SessionID: sessionID, Seed: cfg.Seed, Config: cfg}
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("failed to write trace header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Write appends one snapshot.
func (w *Writer) Write(s game.Snapshot) error {
	if err := w.enc.Encode(&s); err != nil {
		return fmt.Errorf("failed to write snapshot %d: %w", w.count, err)
	}
	w.count++
	return nil
}

// Count returns the number of snapshots written.
func (w *Writer) Count() int { return w.count }

// Reader replays a trace.
type Reader struct {
	dec    *msgpack.Decoder
	Header Header
}

// NewReader reads and checks the header.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(r)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to read trace header: %w", err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return &Reader{dec: dec, Header: h}, nil
}

// Next returns the next snapshot, or io.EOF once the stream is exhausted.
func (r *Reader) Next() (game.Snapshot, error) {
	var s game.Snapshot
	if err := r.dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, io.EOF
		}
		return s, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return s, nil
}
