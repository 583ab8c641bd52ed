package render

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph rune
	FG    uint8 // palette index
	BG    uint8 // palette index, ColorNone for transparent
}

var blank = Cell{Glyph: ' ', FG: ColorText, BG: ColorNone}

// CellBuffer is a 2D grid of character cells shared by every front end.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Resize changes the buffer dimensions and clears it.
func (b *CellBuffer) Resize(cols, rows int) {
	if cols == b.Cols && rows == b.Rows {
		b.Clear()
		return
	}
	b.Cols, b.Rows = cols, rows
	b.Cells = make([]Cell, cols*rows)
	b.Clear()
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph rune, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return blank
}

// Clear resets all cells to transparent blanks.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// Fill paints a rectangle with one cell.
func (b *CellBuffer) Fill(x, y, w, h int, glyph rune, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// WriteString writes s starting at (x, y), one rune per cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		b.Set(x+offset, y, ch, fg, bg)
		offset++
	}
}

// WriteCentered writes s horizontally centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	n := 0
	for range s {
		n++
	}
	b.WriteString((b.Cols-n)/2, y, s, fg, bg)
}

// String returns the glyphs row by row, for tests and debugging.
func (b *CellBuffer) String() string {
	out := make([]rune, 0, (b.Cols+1)*b.Rows)
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			out = append(out, b.Cells[y*b.Cols+x].Glyph)
		}
		out = append(out, '\n')
	}
	return string(out)
}
