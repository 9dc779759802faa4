package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golangdaddy/highway/pkg/clock"
	"github.com/golangdaddy/highway/pkg/scene"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

var _ scene.Presenter = (*Tracker)(nil)

func TestRecordTracksBest(t *testing.T) {
	p := NewProfile("ana", epoch)
	if !p.Record(Run{Distance: 500, Money: 3, Fines: 1, Duration: time.Hour}, epoch) {
		t.Fatal("first run should be a best")
	}
	if p.Record(Run{Distance: 200, Money: 9}, epoch.Add(time.Minute)) {
		t.Fatal("shorter run should not be a best")
	}
	if p.Runs != 2 || p.BestDistance != 500 || p.TotalDistance != 700 {
		t.Fatalf("distance stats wrong: %+v", p)
	}
	if p.BestMoney != 9 || p.TotalMoney != 12 || p.Fines != 1 || p.PlayTime != 1 {
		t.Fatalf("money stats wrong: %+v", p)
	}
	if !p.LastPlayed.Equal(epoch.Add(time.Minute)) {
		t.Fatalf("last played = %v", p.LastPlayed)
	}
}

func TestLoadOrNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	p, err := LoadOrNew(path, "ana", epoch)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "ana" || p.ID == "" || p.Runs != 0 {
		t.Fatalf("unexpected new profile: %+v", p)
	}
	p.Record(Run{Distance: 42}, epoch)
	if err := p.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadOrNew(path, "someone else", epoch)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != p.ID || loaded.Name != "ana" || loaded.BestDistance != 42 {
		t.Fatalf("loaded profile differs: %+v", loaded)
	}

	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrNew(path, "ana", epoch); err == nil {
		t.Fatal("corrupt profile should fail")
	}
}

func TestTrackerRecordsEachRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	c := clock.NewManual(epoch)
	tr := NewTracker(NewProfile("ana", epoch), path, c, nil)

	tr.ReportRestart()
	tr.ReportDistance(120)
	tr.ReportMoney(4)
	tr.ReportFine("Red light! -20")
	tr.ReportMoney(-16)
	c.Advance(30 * time.Second)
	tr.ReportGameOver()

	tr.ReportRestart()
	tr.ReportDistance(80)
	tr.ReportGameOver()

	p := tr.Profile
	if p.Runs != 2 || p.BestDistance != 120 || p.TotalDistance != 200 {
		t.Fatalf("runs not recorded: %+v", p)
	}
	if p.Fines != 1 || p.TotalMoney != -16 {
		t.Fatalf("fines or money wrong: %+v", p)
	}

	saved, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Runs != 2 {
		t.Fatalf("saved runs = %d, want 2", saved.Runs)
	}
}

func TestNewProfileGetsRandomName(t *testing.T) {
	p, err := LoadOrNew(filepath.Join(t.TempDir(), "p.json"), "", epoch)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range driverNames {
		found = found || n == p.Name
	}
	if !found {
		t.Fatalf("name %q not from the pool", p.Name)
	}
}
