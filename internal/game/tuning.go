package game

import "time"

// Hop motion
const (
	HopSpeed       = 3.0 // progress per second; a hop lasts about 1/3 s
	RestHeight     = 0.5 // frog height when sitting on a pad
	ArcHeight      = 1.5 // extra height at the top of a hop
	WaterHeight    = -0.5
	WaterHopLength = 2.0 // how far past the frog a missed hop lands
)

// Targeting
const (
	MinForward     = 0.5 // minimum projection onto the hop direction
	MaxLateral     = 2.0 // max distance from the direction axis
	MinHopDistance = 0.5 // closer pads count as the one we're standing on
	MaxHopDistance = 4.0
)

// Outcome timers
const (
	SinkDelay      = 300 * time.Millisecond // landing on an unsafe pad until it starts sinking
	SinkLifeDelay  = 500 * time.Millisecond // sinking until the life is lost
	WaterFallDelay = 600 * time.Millisecond
)

// Scoring
const (
	PointsPerPad  = 10
	StartingLives = 3
	StartingLevel = 1
)
