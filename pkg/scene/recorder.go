package scene

// Placed is the recorder's view of a live entity.
type Placed struct {
	ID    uint64
	Kind  Kind
	Pos   Vec3
	Attrs Attributes
}

// Recorder keeps the live scene and every presentation report in memory.
// It backs tests and the headless simulator.
type Recorder struct {
	next    Handle
	Live    map[Handle]*Placed
	Removed int

	Distance  float64
	Speed     float64
	Money     int
	Steering  float64
	Fines     []string
	GameOvers int
	Restarts  int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Live: make(map[Handle]*Placed)}
}

func (r *Recorder) Place(id uint64, kind Kind, pos Vec3, attrs Attributes) Handle {
	r.next++
	r.Live[r.next] = &Placed{ID: id, Kind: kind, Pos: pos, Attrs: attrs}
	return r.next
}

func (r *Recorder) Move(h Handle, pos Vec3) {
	if p, ok := r.Live[h]; ok {
		p.Pos = pos
	}
}

func (r *Recorder) Restyle(h Handle, attrs Attributes) {
	if p, ok := r.Live[h]; ok {
		p.Attrs = attrs
	}
}

func (r *Recorder) Remove(h Handle) {
	if _, ok := r.Live[h]; ok {
		delete(r.Live, h)
		r.Removed++
	}
}

// Count returns the number of live entities of the given kind.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, p := range r.Live {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) ReportDistance(v float64)   { r.Distance = v }
func (r *Recorder) ReportSpeed(v float64)      { r.Speed = v }
func (r *Recorder) ReportMoney(v int)          { r.Money = v }
func (r *Recorder) ReportFine(msg string)      { r.Fines = append(r.Fines, msg) }
func (r *Recorder) ReportSteering(deg float64) { r.Steering = deg }
func (r *Recorder) ReportGameOver()            { r.GameOvers++ }
func (r *Recorder) ReportRestart()             { r.Restarts++ }
