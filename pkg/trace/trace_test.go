package trace

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
)

func TestWriteAndReplay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 1234
	now := time.Unix(0, 0)
	s, err := game.New(game.Options{Config: cfg}, now)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, s.ID.String(), cfg)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	var want []game.Snapshot
	for i := 0; i < 300; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Tick(now)
		snap := s.Snapshot()
		want = append(want, snap)
		if err := w.Write(snap); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if w.Count() != 300 {
		t.Fatalf("count = %d", w.Count())
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	if r.Header.Seed != 1234 || r.Header.SessionID != s.ID.String() {
		t.Fatalf("bad header: %+v", r.Header)
	}
	if r.Header.Config.Lights.Fine != cfg.Lights.Fine {
		t.Fatalf("config not carried in header")
	}

	var got []game.Snapshot
	for {
		snap, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, snap)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("replayed %d snapshots that differ from the %d written", len(got), len(want))
	}
}

func TestReaderRejectsVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&Header{Version: Version + 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReader(&buf); !errors.Is(err, ErrVersion) {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestReaderEmptyStream(t *testing.T) {
	if _, err := NewReader(&bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an empty stream")
	}
}
