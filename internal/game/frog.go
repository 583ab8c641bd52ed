package game

import "github.com/froggyhop/froggyhop/internal/world"

// FrogBody is the frog's position component.
type FrogBody struct {
	Current world.Vec3
	Target  world.Vec3
	Start   world.Vec3 // where the current hop took off
}

// Hop is the frog's animation component. PadID is the pad being hopped to,
// or -1 for a hop into open water.
type Hop struct {
	Progress float64
	Active   bool
	PadID    int
}

// spawnPosition is where the frog sits on the spawn pad.
func spawnPosition() world.Vec3 {
	return world.Vec3{Y: RestHeight}
}
