package world

import (
	"errors"
	"fmt"
)

// LilyPad is a single landing spot on the pond.
type LilyPad struct {
	ID       int
	Position Vec3
	Size     float64 // radius
	Safe     bool
	Sinking  bool

	// Depth below the water plane while sinking. Cosmetic only.
	Depth float64
}

// Visible reports whether the pad is still drawn. A sinking pad disappears
// once it has gone deeper than SinkHideDepth.
func (p *LilyPad) Visible() bool {
	return !p.Sinking || p.Depth <= SinkHideDepth
}

// Board is the ordered set of pads for one session. The first pad is always
// the safe spawn pad at the origin.
type Board struct {
	Name string
	Pads []LilyPad
}

// NewBoard creates a board holding only the spawn pad.
func NewBoard(name string) *Board {
	return &Board{
		Name: name,
		Pads: []LilyPad{{ID: SpawnPadID, Size: SpawnPadSize, Safe: true}},
	}
}

// Spawn returns the spawn pad.
func (b *Board) Spawn() *LilyPad {
	return b.Pad(SpawnPadID)
}

// Pad returns the pad with the given id, or nil.
func (b *Board) Pad(id int) *LilyPad {
	for i := range b.Pads {
		if b.Pads[i].ID == id {
			return &b.Pads[i]
		}
	}
	return nil
}

// MarkSinking flips a pad into the sinking state. It returns false if the pad
// does not exist or is already sinking.
func (b *Board) MarkSinking(id int) bool {
	p := b.Pad(id)
	if p == nil || p.Sinking {
		return false
	}
	p.Sinking = true
	return true
}

// Advance moves every sinking pad further under water by dt seconds.
func (b *Board) Advance(dt float64) {
	for i := range b.Pads {
		p := &b.Pads[i]
		if !p.Sinking || p.Depth > SinkHideDepth {
			continue
		}
		p.Depth += dt * SinkRate * SinkDepthRate
	}
}

// VisibleCount returns how many pads are still drawn.
func (b *Board) VisibleCount() int {
	n := 0
	for i := range b.Pads {
		if b.Pads[i].Visible() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so a loaded layout can be replayed.
func (b *Board) Clone() *Board {
	pads := make([]LilyPad, len(b.Pads))
	copy(pads, b.Pads)
	return &Board{Name: b.Name, Pads: pads}
}

var (
	ErrNoSpawn       = errors.New("no pad at origin")
	ErrSpawnUnsafe   = errors.New("spawn pad is not safe")
	ErrDuplicateID   = errors.New("duplicate pad id")
	ErrMultipleSpawn = errors.New("more than one pad at origin")
)

// Validate checks the structural invariants every board must hold.
func (b *Board) Validate() error {
	seen := make(map[int]bool, len(b.Pads))
	spawns := 0
	for _, p := range b.Pads {
		if seen[p.ID] {
			return fmt.Errorf("pad %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
		if p.Position.X == 0 && p.Position.Z == 0 {
			spawns++
			if !p.Safe {
				return ErrSpawnUnsafe
			}
		}
	}
	switch {
	case spawns == 0:
		return ErrNoSpawn
	case spawns > 1:
		return ErrMultipleSpawn
	}
	return nil
}
