package scene

// Discard drops every call. Handles are still unique so callers can track them.
type Discard struct {
	next Handle
}

func (d *Discard) Place(uint64, Kind, Vec3, Attributes) Handle {
	d.next++
	return d.next
}
func (d *Discard) Move(Handle, Vec3)          {}
func (d *Discard) Restyle(Handle, Attributes) {}
func (d *Discard) Remove(Handle)              {}

func (d *Discard) ReportDistance(float64) {}
func (d *Discard) ReportSpeed(float64)    {}
func (d *Discard) ReportMoney(int)        {}
func (d *Discard) ReportFine(string)      {}
func (d *Discard) ReportSteering(float64) {}
func (d *Discard) ReportGameOver()        {}
func (d *Discard) ReportRestart()         {}

// Presenters fans reports out to several presenters in order.
type Presenters []Presenter

func (ps Presenters) ReportDistance(v float64) {
	for _, p := range ps {
		p.ReportDistance(v)
	}
}

func (ps Presenters) ReportSpeed(v float64) {
	for _, p := range ps {
		p.ReportSpeed(v)
	}
}

func (ps Presenters) ReportMoney(v int) {
	for _, p := range ps {
		p.ReportMoney(v)
	}
}

func (ps Presenters) ReportFine(msg string) {
	for _, p := range ps {
		p.ReportFine(msg)
	}
}

func (ps Presenters) ReportSteering(deg float64) {
	for _, p := range ps {
		p.ReportSteering(deg)
	}
}

func (ps Presenters) ReportGameOver() {
	for _, p := range ps {
		p.ReportGameOver()
	}
}

func (ps Presenters) ReportRestart() {
	for _, p := range ps {
		p.ReportRestart()
	}
}
