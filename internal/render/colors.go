package render

import "image/color"

// Pond palette indices. ColorNone leaves whatever is underneath visible.
const (
	ColorNone       = 0
	ColorNight      = 1
	ColorWater      = 2
	ColorRipple     = 3
	ColorPad        = 4
	ColorPadUnsafe  = 5
	ColorPadVisited = 6
	ColorPadSinking = 7
	ColorWarning    = 8
	ColorFrog       = 9
	ColorFrogDark   = 10
	ColorShadow     = 11
	ColorText       = 12
	ColorTextDim    = 13
	ColorTitle      = 14
	ColorDanger     = 15
)

// Palette maps the indices above to colours.
var Palette = [16]color.RGBA{
	{0, 0, 0, 0},         // none
	{13, 31, 45, 255},    // night sky
	{13, 47, 63, 255},    // water
	{26, 90, 90, 255},    // ripple
	{74, 124, 89, 255},   // pad
	{90, 108, 73, 255},   // unsafe pad
	{93, 154, 109, 255},  // visited pad
	{45, 74, 58, 255},    // sinking pad
	{247, 127, 0, 255},   // warning orange
	{124, 181, 24, 255},  // frog
	{90, 138, 18, 255},   // frog underwater
	{10, 31, 42, 255},    // shadow
	{245, 240, 225, 255}, // text
	{140, 150, 150, 255}, // dim text
	{247, 215, 71, 255},  // title yellow
	{230, 70, 60, 255},   // danger red
}
