package scene

// Kind identifies what a placed visual entity represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindCoin
	KindTrafficLight
	KindStopLine
	KindRoad
	KindLaneMarking
	KindLightPole
	KindTree
	KindMountain
)

var kindNames = [...]string{
	"player", "obstacle", "coin", "traffic_light", "stop_line",
	"road", "lane_marking", "light_pole", "tree", "mountain",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Vec3 is a world-space position. Z is the direction of travel; more
// negative is farther ahead of the player.
type Vec3 struct {
	X, Y, Z float64
}

// Handle is the sink-assigned reference to a placed entity.
type Handle uint64

// Attributes carry the non-positional state a renderer may style by.
type Attributes struct {
	Lane          int
	Red           bool
	Braking       bool
	Lights        bool
	SteeringAngle float64
	Variant       int
}

// Sink receives placement of visual entities. The core never builds
// geometry itself.
type Sink interface {
	Place(id uint64, kind Kind, pos Vec3, attrs Attributes) Handle
	Move(h Handle, pos Vec3)
	Restyle(h Handle, attrs Attributes)
	Remove(h Handle)
}

// Presenter receives score, speed and event reports.
type Presenter interface {
	ReportDistance(value float64)
	ReportSpeed(value float64)
	ReportMoney(value int)
	ReportFine(message string)
	ReportSteering(degrees float64)
	ReportGameOver()
	ReportRestart()
}
