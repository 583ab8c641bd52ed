package world

import "math/rand/v2"

// NewRand returns a seeded PCG source, the same seed always yielding the same
// boards.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))
}

// GenerateBoard lays out a fresh pond: the spawn pad at the origin, then a
// square grid of cells each holding a jittered pad with probability
// PadChance. No path from spawn to any pad is guaranteed.
func GenerateBoard(rng *rand.Rand) *Board {
	b := NewBoard("pond")
	id := SpawnPadID + 1

	for z := -GridRadius; z <= GridRadius; z++ {
		for x := -GridRadius; x <= GridRadius; x++ {
			if x == 0 && z == 0 {
				continue
			}
			if rng.Float64() >= PadChance {
				continue
			}
			offX := (rng.Float64()*2 - 1) * PadJitter
			offZ := (rng.Float64()*2 - 1) * PadJitter
			b.Pads = append(b.Pads, LilyPad{
				ID:       id,
				Position: Vec3{X: float64(x)*CellSpacing + offX, Z: float64(z)*CellSpacing + offZ},
				Size:     MinPadSize + rng.Float64()*(MaxPadSize-MinPadSize),
				Safe:     rng.Float64() >= UnsafeChance,
			})
			id++
		}
	}
	return b
}
