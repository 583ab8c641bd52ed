package render

import (
	"math"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/world"
)

// PondExtent is the half-width in world units a view must show to fit every
// pad a board can hold.
const PondExtent = world.GridRadius*world.CellSpacing + world.PadJitter + world.MaxPadSize*PadRadiusScale

// PadRadiusScale converts a pad's size into its drawn radius, so the largest
// pads stay clear of their grid neighbours.
const PadRadiusScale = 0.5

// PadRadius is the on-screen radius of p in world units, shrinking as it sinks.
func PadRadius(p *world.LilyPad) float64 {
	return p.Size * PadRadiusScale * SinkScale(p.Depth)
}

// View maps the pond's x/z plane onto buffer cells. Cells are usually taller
// than wide, so the two axes scale separately.
type View struct {
	CenterCol, CenterRow int     // cell showing the world origin
	UnitsPerCol          float64 // world units per column
	UnitsPerRow          float64 // world units per row
}

// FitView returns a view centered in a cols x rows area starting at row top
// that shows the whole pond. aspect is cell height divided by cell width.
func FitView(cols, rows, top int, aspect float64) View {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	perCol := 2 * PondExtent / float64(cols)
	perRow := 2 * PondExtent / float64(rows)
	// keep pads round on screen
	if perRow < perCol*aspect {
		perRow = perCol * aspect
	} else {
		perCol = perRow / aspect
	}
	return View{
		CenterCol:   cols / 2,
		CenterRow:   top + rows/2,
		UnitsPerCol: perCol,
		UnitsPerRow: perRow,
	}
}

// CellAt returns the cell showing world point (x, z).
func (v View) CellAt(x, z float64) (col, row int) {
	col = v.CenterCol + int(math.Round(x/v.UnitsPerCol))
	row = v.CenterRow + int(math.Round(z/v.UnitsPerRow))
	return col, row
}

// WorldAt returns the world x/z at the center of a cell.
func (v View) WorldAt(col, row int) (x, z float64) {
	return float64(col-v.CenterCol) * v.UnitsPerCol, float64(row-v.CenterRow) * v.UnitsPerRow
}

// RenderPond draws water, pads and the frog from a snapshot.
func RenderPond(buf *CellBuffer, snap *game.Snapshot, v View) {
	for row := 0; row < buf.Rows; row++ {
		for col := 0; col < buf.Cols; col++ {
			x, z := v.WorldAt(col, row)
			glyph, fg, bg := waterVisuals(col, row)
			if p := padAt(snap.Pads, x, z); p != nil {
				glyph, fg, bg = padVisuals(p)
			}
			buf.Set(col, row, glyph, fg, bg)
		}
	}

	// warning markers sit at each unsafe pad's center
	for i := range snap.Pads {
		p := &snap.Pads[i]
		if p.Safe || p.Sinking {
			continue
		}
		col, row := v.CellAt(p.Position.X, p.Position.Z)
		buf.Set(col, row, '*', ColorWarning, buf.Get(col, row).BG)
	}

	renderFrog(buf, &snap.Frog, v)
}

// padAt returns the topmost pad covering (x, z). Later pads draw over earlier
// ones, matching board order.
func padAt(pads []game.PadView, x, z float64) *game.PadView {
	var hit *game.PadView
	for i := range pads {
		p := &pads[i]
		r := PadRadius(&p.LilyPad)
		dx := x - p.Position.X
		dz := z - p.Position.Z
		if dx*dx+dz*dz <= r*r {
			hit = p
		}
	}
	return hit
}

// SinkScale shrinks a pad as it sinks, reaching zero at twice the hide depth.
func SinkScale(depth float64) float64 {
	return math.Max(0, 1-depth/(2*world.SinkHideDepth))
}

func waterVisuals(col, row int) (rune, uint8, uint8) {
	if (col+row*3)%11 == 0 {
		return '~', ColorRipple, ColorWater
	}
	return ' ', ColorText, ColorWater
}

func padVisuals(p *game.PadView) (rune, uint8, uint8) {
	switch {
	case p.Sinking:
		return '~', ColorRipple, ColorPadSinking
	case p.Visited:
		return ' ', ColorText, ColorPadVisited
	case !p.Safe:
		return ' ', ColorText, ColorPadUnsafe
	default:
		return ' ', ColorText, ColorPad
	}
}

// renderFrog draws the frog lifted above its shadow by its hop height.
func renderFrog(buf *CellBuffer, f *game.FrogView, v View) {
	col, row := v.CellAt(f.Position.X, f.Position.Z)
	under := buf.Get(col, row).BG

	if f.Position.Y < 0 {
		buf.Set(col, row, 'o', ColorFrogDark, under)
		return
	}

	lift := int(math.Round((f.Position.Y - game.RestHeight) / v.UnitsPerRow))
	if lift > 0 {
		buf.Set(col, row, '.', ColorShadow, under)
	}
	top := row - lift
	buf.Set(col, top, '@', ColorFrog, buf.Get(col, top).BG)
}
