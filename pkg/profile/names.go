package profile

import "github.com/golangdaddy/highway/pkg/rng"

var driverNames = []string{
	"James", "Mary", "Robert", "Patricia", "Michael", "Jennifer", "David",
	"Linda", "Thomas", "Sarah", "Daniel", "Emily", "Andrew", "Laura",
	"Kevin", "Rachel", "Samuel", "Helen", "Frank", "Ruth", "Jack", "Anna",
}

// RandomName picks a display name for a new profile.
func RandomName(r *rng.RNG) string {
	return driverNames[r.IntN(len(driverNames))]
}
