package render

import (
	"image"

	"github.com/froggyhop/froggyhop/internal/game"
)

// Button is one on-screen directional button.
type Button struct {
	Dir  game.Direction
	Rect image.Rectangle
}

// ButtonLayout places the four hop buttons in the bottom-right corner of a
// w x h pixel screen: left, then up over down, then right.
func ButtonLayout(w, h, size, margin int) []Button {
	gap := size / 8
	right := w - margin
	bottom := h - margin
	midY := bottom - size - gap/2 - size/2

	rx := right - size
	cx := rx - gap - size
	lx := cx - gap - size

	sq := func(x, y int) image.Rectangle { return image.Rect(x, y, x+size, y+size) }
	return []Button{
		{Dir: game.DirLeft, Rect: sq(lx, midY)},
		{Dir: game.DirUp, Rect: sq(cx, bottom-2*size-gap)},
		{Dir: game.DirDown, Rect: sq(cx, bottom-size)},
		{Dir: game.DirRight, Rect: sq(rx, midY)},
	}
}

// HitTest returns the direction of the button under pixel (x, y).
func HitTest(buttons []Button, x, y int) (game.Direction, bool) {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.Rect) {
			return b.Dir, true
		}
	}
	return 0, false
}
