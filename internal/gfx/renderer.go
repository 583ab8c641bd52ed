package gfx

import (
	"image/color"

	"github.com/froggyhop/froggyhop/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// GridRenderer draws a render.CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell size.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders buf over screen. Cells with a ColorNone background leave the
// screen showing through.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *render.CellBuffer) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != render.ColorNone {
				var op ebiten.DrawImageOptions
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(render.Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}
			r.DrawGlyph(screen, cell.Glyph, cell.FG, px, py)
		}
	}
}

// DrawGlyph renders a single glyph at pixel coordinates.
func (r *GridRenderer) DrawGlyph(screen *ebiten.Image, glyph rune, fg uint8, px, py float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(r.CellW)/GlyphWidth, float64(r.CellH)/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(render.Palette[fg])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}
