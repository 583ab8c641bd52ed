package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
)

// extraGlyphs are drawn by hand because basicfont only covers ASCII.
var extraGlyphs = []rune{'♥'}

// FontAtlas holds white glyph images, tinted at draw time.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs map[rune]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 plus the pond
// glyphs into one texture and caches a sub-image per rune.
func NewFontAtlas() *FontAtlas {
	runes := atlasRunes()

	rows := (len(runes) + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))
	face := basicfont.Face7x13

	for i, r := range runes {
		cx := (i % atlasCols) * GlyphWidth
		cy := (i / atlasCols) * GlyphHeight
		switch r {
		case '♥':
			drawHeart(img, cx, cy)
		default:
			drawFontGlyph(img, face, cx, cy, r)
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg, glyphs: make(map[rune]*ebiten.Image, len(runes))}
	for i, r := range runes {
		x := (i % atlasCols) * GlyphWidth
		y := (i / atlasCols) * GlyphHeight
		a.glyphs[r] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// atlasRunes is every rune the atlas holds, in texture order.
func atlasRunes() []rune {
	runes := make([]rune, 0, 95+len(extraGlyphs))
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return append(runes, extraGlyphs...)
}

// Glyph returns the image for r, falling back to '?'.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs['?']
}

// drawFontGlyph centers a 7x13 basicfont glyph in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawHeart fills the union of two circles and a downward triangle.
func drawHeart(img *image.NRGBA, cellX, cellY int) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			left := (fx-5)*(fx-5)+(fy-6)*(fy-6) <= 9
			right := (fx-11)*(fx-11)+(fy-6)*(fy-6) <= 9
			tip := fy >= 6 && fy <= 14 && fx >= 2+(fy-6) && fx <= 14-(fy-6)
			if left || right || tip {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
