package scene

import "testing"

func TestRecorderLifecycle(t *testing.T) {
	r := NewRecorder()
	h := r.Place(7, KindCoin, Vec3{Z: -50}, Attributes{Lane: 2})
	r.Move(h, Vec3{Z: -49})
	if got := r.Live[h].Pos.Z; got != -49 {
		t.Fatalf("moved z = %f", got)
	}
	r.Restyle(h, Attributes{Lane: 1})
	if r.Live[h].Attrs.Lane != 1 {
		t.Fatal("restyle not recorded")
	}
	if r.Count(KindCoin) != 1 {
		t.Fatalf("count = %d", r.Count(KindCoin))
	}
	r.Remove(h)
	r.Remove(h)
	if r.Removed != 1 || len(r.Live) != 0 {
		t.Fatalf("removed=%d live=%d", r.Removed, len(r.Live))
	}
}

func TestPresentersFanOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	ps := Presenters{a, b}
	ps.ReportMoney(3)
	ps.ReportFine("red light")
	ps.ReportGameOver()
	for i, r := range []*Recorder{a, b} {
		if r.Money != 3 || len(r.Fines) != 1 || r.GameOvers != 1 {
			t.Fatalf("presenter %d missed reports: %+v", i, r)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindTrafficLight.String() != "traffic_light" {
		t.Fatalf("got %q", KindTrafficLight.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatal("out of range kind should be unknown")
	}
}
