package gfx

import (
	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawButtons paints the on-screen hop buttons with an arrow in each.
func DrawButtons(screen *ebiten.Image, buttons []render.Button) {
	bg := render.Palette[render.ColorNight]
	bg.A = 200
	fg := render.Palette[render.ColorText]

	for _, b := range buttons {
		x := float32(b.Rect.Min.X)
		y := float32(b.Rect.Min.Y)
		w := float32(b.Rect.Dx())
		h := float32(b.Rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 2, fg, false)

		cx, cy := x+w/2, y+h/2
		dx, dz := b.Dir.Vector()
		ax, ay := float32(dx), float32(dz)
		arm := w * 0.3
		tipX, tipY := cx+ax*arm, cy+ay*arm
		vector.StrokeLine(screen, cx-ax*arm, cy-ay*arm, tipX, tipY, 3, fg, true)

		// arrow head: two strokes back from the tip, perpendicular spread
		px, py := -ay, ax
		head := arm * 0.6
		vector.StrokeLine(screen, tipX, tipY, tipX-ax*head+px*head, tipY-ay*head+py*head, 3, fg, true)
		vector.StrokeLine(screen, tipX, tipY, tipX-ax*head-px*head, tipY-ay*head-py*head, 3, fg, true)
	}
}
