package traffic

import "github.com/golangdaddy/highway/pkg/scene"

// Obstacle is a traffic car. RelativeSpeed is drawn once at spawn and added
// to the road speed every tick; negative values model slower traffic.
type Obstacle struct {
	ID            uint64
	Lane          int
	Z             float64
	RelativeSpeed float64

	handle scene.Handle
}

// Coin is a collectible worth one unit of money.
type Coin struct {
	ID   uint64
	Lane int
	Z    float64

	handle scene.Handle
}
