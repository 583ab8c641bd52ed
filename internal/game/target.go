package game

import (
	"math"

	"github.com/froggyhop/froggyhop/internal/world"
)

// FindTarget picks the pad a hop from `from` in direction dir lands on: the
// nearest pad that lies ahead, close to the direction axis and within hop
// range. It returns nil when the hop would end in open water. The returned
// pointer refers into the board.
func FindTarget(b *world.Board, from world.Vec3, dir Direction) *world.LilyPad {
	dx, dz := dir.Vector()

	var nearest *world.LilyPad
	nearestDist := math.Inf(1)

	for i := range b.Pads {
		p := &b.Pads[i]
		relX := p.Position.X - from.X
		relZ := p.Position.Z - from.Z

		if relX*dx+relZ*dz < MinForward {
			continue
		}
		if math.Abs(relX*-dz+relZ*dx) > MaxLateral {
			continue
		}
		dist := math.Hypot(relX, relZ)
		if dist < MinHopDistance || dist > MaxHopDistance {
			continue
		}
		if dist < nearestDist {
			nearestDist = dist
			nearest = p
		}
	}
	return nearest
}
