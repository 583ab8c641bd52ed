package game

import (
	"testing"

	"github.com/froggyhop/froggyhop/internal/world"
)

func boardWith(pads ...world.LilyPad) *world.Board {
	b := world.NewBoard("test")
	b.Pads = append(b.Pads, pads...)
	return b
}

func pad(id int, x, z float64) world.LilyPad {
	return world.LilyPad{ID: id, Position: world.Vec3{X: x, Z: z}, Size: 1, Safe: true}
}

func TestFindTargetPicksNearestAhead(t *testing.T) {
	b := boardWith(pad(1, 0, -3.5), pad(2, 0.5, -2), pad(3, 0, 2))
	got := FindTarget(b, world.Vec3{Y: RestHeight}, DirUp)
	if got == nil || got.ID != 2 {
		t.Fatalf("FindTarget up = %v, want pad 2", got)
	}
	got = FindTarget(b, world.Vec3{Y: RestHeight}, DirDown)
	if got == nil || got.ID != 3 {
		t.Fatalf("FindTarget down = %v, want pad 3", got)
	}
	if got := FindTarget(b, world.Vec3{Y: RestHeight}, DirLeft); got != nil {
		t.Fatalf("FindTarget left = pad %d, want nil", got.ID)
	}
}

func TestFindTargetBounds(t *testing.T) {
	tests := []struct {
		name string
		x, z float64
		want bool
	}{
		{"in range", 0, -2, true},
		{"behind", 0, 2, false},
		{"not far enough ahead", 2, -0.49, false},
		{"forward at threshold", 1.9, -0.5, true},
		{"too far sideways", 2.01, -3, false},
		{"sideways at limit", 2, -3, true},
		{"too close", 0, -0.49, false},
		{"too far", 0, -4.01, false},
		{"at max range", 0, -4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(pad(1, tt.x, tt.z))
			got := FindTarget(b, world.Vec3{}, DirUp)
			if (got != nil) != tt.want {
				t.Fatalf("FindTarget with pad at (%v, %v) = %v, want found=%v", tt.x, tt.z, got, tt.want)
			}
		})
	}
}

func TestFindTargetIgnoresCurrentPad(t *testing.T) {
	b := boardWith(pad(1, 2.5, 0))
	from := b.Pad(1).Position.AtHeight(RestHeight)
	got := FindTarget(b, from, DirLeft)
	if got == nil || got.ID != world.SpawnPadID {
		t.Fatalf("FindTarget = %v, want spawn pad", got)
	}
}

func TestFindTargetIsPure(t *testing.T) {
	b := world.GenerateBoard(world.NewRand(3))
	from := world.Vec3{Y: RestHeight}
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		first := FindTarget(b, from, d)
		for i := 0; i < 5; i++ {
			if again := FindTarget(b, from, d); again != first {
				t.Fatalf("%s: FindTarget changed between calls: %v then %v", d, first, again)
			}
		}
	}
}

func TestFindTargetTieGoesToFirst(t *testing.T) {
	b := boardWith(pad(1, -1, -2), pad(2, 1, -2))
	got := FindTarget(b, world.Vec3{}, DirUp)
	if got == nil || got.ID != 1 {
		t.Fatalf("FindTarget = %v, want pad 1", got)
	}
}
