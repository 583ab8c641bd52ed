package world

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PondLayout is the JSON-serializable definition of a hand-authored pond.
// The spawn pad is implicit and must not be listed.
type PondLayout struct {
	Name string   `json:"name"`
	Pads []PadDef `json:"pads"`
}

// PadDef places one pad on the water plane.
type PadDef struct {
	X    float64  `json:"x"`
	Z    float64  `json:"z"`
	Size *float64 `json:"size,omitempty"` // default 1.0
	Safe *bool    `json:"safe,omitempty"` // default true
}

const defaultPadSize = 1.0

// LoadPondLayout parses a PondLayout from JSON bytes.
func LoadPondLayout(data []byte) (*PondLayout, error) {
	var layout PondLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse pond layout: %w", err)
	}
	if layout.Name == "" {
		return nil, errors.New("pond layout has no name")
	}
	for i, p := range layout.Pads {
		if p.X == 0 && p.Z == 0 {
			return nil, fmt.Errorf("pad %d: origin is reserved for the spawn pad", i)
		}
		if p.Size != nil && *p.Size <= 0 {
			return nil, fmt.Errorf("pad %d: size %.2f must be positive", i, *p.Size)
		}
	}
	return &layout, nil
}

// ToBoard converts a layout into a Board. Ids follow file order after the
// spawn pad.
func (l *PondLayout) ToBoard() *Board {
	b := NewBoard(l.Name)
	for i, def := range l.Pads {
		size := defaultPadSize
		if def.Size != nil {
			size = *def.Size
		}
		safe := true
		if def.Safe != nil {
			safe = *def.Safe
		}
		b.Pads = append(b.Pads, LilyPad{
			ID:       SpawnPadID + 1 + i,
			Position: Vec3{X: def.X, Z: def.Z},
			Size:     size,
			Safe:     safe,
		})
	}
	return b
}

// LoadBoard parses JSON bytes straight into a Board.
func LoadBoard(data []byte) (*Board, error) {
	layout, err := LoadPondLayout(data)
	if err != nil {
		return nil, err
	}
	return layout.ToBoard(), nil
}
