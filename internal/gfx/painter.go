package gfx

import (
	"image/color"
	"math"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const frogRadius = 0.45

// PondPainter draws a snapshot as shapes, looking down on the pond with the
// frog's height shown as an offset above its shadow.
type PondPainter struct {
	// CenterX, CenterY is the pixel showing the world origin.
	CenterX, CenterY float32
	// Scale is pixels per world unit.
	Scale float32
}

// FitPainter centers the pond in a w x h pixel area below top.
func FitPainter(w, h, top int) PondPainter {
	avail := h - top
	side := w
	if avail < side {
		side = avail
	}
	return PondPainter{
		CenterX: float32(w) / 2,
		CenterY: float32(top) + float32(avail)/2,
		Scale:   float32(side) / float32(2*render.PondExtent),
	}
}

func (p PondPainter) project(x, z float64) (float32, float32) {
	return p.CenterX + float32(x)*p.Scale, p.CenterY + float32(z)*p.Scale
}

// Draw paints water, pads and the frog.
func (p PondPainter) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	screen.Fill(render.Palette[render.ColorWater])

	for i := range snap.Pads {
		p.drawPad(screen, &snap.Pads[i])
	}
	p.drawFrog(screen, &snap.Frog)
}

func (p PondPainter) drawPad(screen *ebiten.Image, pad *game.PadView) {
	cx, cy := p.project(pad.Position.X, pad.Position.Z)
	r := float32(render.PadRadius(&pad.LilyPad)) * p.Scale
	if r <= 0 {
		return
	}

	var fill color.RGBA
	switch {
	case pad.Sinking:
		fill = render.Palette[render.ColorPadSinking]
	case pad.Visited:
		fill = render.Palette[render.ColorPadVisited]
	case !pad.Safe:
		fill = render.Palette[render.ColorPadUnsafe]
	default:
		fill = render.Palette[render.ColorPad]
	}
	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)

	if pad.Sinking {
		vector.StrokeCircle(screen, cx, cy, r+2, 2, render.Palette[render.ColorRipple], true)
		return
	}
	if !pad.Safe {
		vector.DrawFilledCircle(screen, cx, cy, r*0.2, faded(render.Palette[render.ColorWarning], 0.6), true)
	}
}

func (p PondPainter) drawFrog(screen *ebiten.Image, f *game.FrogView) {
	cx, cy := p.project(f.Position.X, f.Position.Z)
	r := frogRadius * p.Scale

	if f.Position.Y < 0 {
		vector.DrawFilledCircle(screen, cx, cy, r*0.8, render.Palette[render.ColorFrogDark], true)
		vector.StrokeCircle(screen, cx, cy, r*1.3, 2, render.Palette[render.ColorRipple], true)
		return
	}

	lift := float32(math.Max(0, f.Position.Y-game.RestHeight)) * p.Scale
	shadow := render.Palette[render.ColorShadow]
	shadow.A = 160
	vector.DrawFilledCircle(screen, cx, cy, r*0.9, shadow, true)

	fy := cy - lift
	vector.DrawFilledCircle(screen, cx, fy, r, render.Palette[render.ColorFrog], true)
	// eyes
	eye := r * 0.3
	vector.DrawFilledCircle(screen, cx-r*0.45, fy-r*0.6, eye, render.Palette[render.ColorText], true)
	vector.DrawFilledCircle(screen, cx+r*0.45, fy-r*0.6, eye, render.Palette[render.ColorText], true)
}

// faded scales a colour to opacity a, keeping it premultiplied.
func faded(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
