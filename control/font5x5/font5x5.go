// Package font5x5 is a font that fits on a 5x5 LED matrix.
package font5x5

import (
	"image"

	"golang.org/x/image/font/basicfont"
)

// Glyph height and width, in pixels.
const (
	Width  = 5
	Height = 5
)

// Face draws text one pixel row per LED row, with one blank column between glyphs.
var Face = &basicfont.Face{
	Advance: Width + 1,
	Width:   Width,
	Height:  Height,
	Ascent:  Height,
	Descent: 0,
	Mask:    Mask5x5,
	Ranges: []basicfont.Range{
		{Low: '\u0020', High: '\u007f', Offset: 0},
		{Low: '\ufffd', High: '\ufffe', Offset: 95},
	},
}

// Mask5x5 holds every glyph, stacked vertically in the order of glyphs.
var Mask5x5 = buildMask()

func buildMask() *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, Width, Height*len(glyphs)))
	for i, g := range glyphs {
		for y, row := range g.rows {
			for x := 0; x < Width; x++ {
				if row&(1<<(Width-1-x)) != 0 {
					m.Pix[m.PixOffset(x, i*Height+y)] = 0xff
				}
			}
		}
	}
	return m
}

// glyphs are in Face.Ranges order.  Each row is 5 bits; the high bit is the leftmost column.
var glyphs = []struct {
	r    rune
	rows [Height]uint8
}{
	{' ', [Height]uint8{0x00, 0x00, 0x00, 0x00, 0x00}},
	{'!', [Height]uint8{0x04, 0x04, 0x04, 0x00, 0x04}},
	{'"', [Height]uint8{0x0a, 0x0a, 0x00, 0x00, 0x00}},
	{'#', [Height]uint8{0x0a, 0x1f, 0x0a, 0x1f, 0x0a}},
	{'$', [Height]uint8{0x0f, 0x14, 0x0e, 0x05, 0x1e}},
	{'%', [Height]uint8{0x19, 0x1a, 0x04, 0x0b, 0x13}},
	{'&', [Height]uint8{0x0c, 0x12, 0x0c, 0x12, 0x0d}},
	{'\'', [Height]uint8{0x04, 0x04, 0x00, 0x00, 0x00}},
	{'(', [Height]uint8{0x02, 0x04, 0x04, 0x04, 0x02}},
	{')', [Height]uint8{0x08, 0x04, 0x04, 0x04, 0x08}},
	{'*', [Height]uint8{0x00, 0x0a, 0x04, 0x0a, 0x00}},
	{'+', [Height]uint8{0x00, 0x04, 0x0e, 0x04, 0x00}},
	{',', [Height]uint8{0x00, 0x00, 0x00, 0x04, 0x08}},
	{'-', [Height]uint8{0x00, 0x00, 0x0e, 0x00, 0x00}},
	{'.', [Height]uint8{0x00, 0x00, 0x00, 0x00, 0x04}},
	{'/', [Height]uint8{0x01, 0x02, 0x04, 0x08, 0x10}},
	{'0', [Height]uint8{0x0c, 0x12, 0x12, 0x12, 0x0c}},
	{'1', [Height]uint8{0x04, 0x0c, 0x04, 0x04, 0x0e}},
	{'2', [Height]uint8{0x1c, 0x02, 0x0c, 0x10, 0x1e}},
	{'3', [Height]uint8{0x1e, 0x02, 0x04, 0x12, 0x0c}},
	{'4', [Height]uint8{0x06, 0x0a, 0x12, 0x1f, 0x02}},
	{'5', [Height]uint8{0x1f, 0x10, 0x1e, 0x01, 0x1e}},
	{'6', [Height]uint8{0x02, 0x04, 0x0e, 0x11, 0x0e}},
	{'7', [Height]uint8{0x1f, 0x02, 0x04, 0x08, 0x10}},
	{'8', [Height]uint8{0x0e, 0x11, 0x0e, 0x11, 0x0e}},
	{'9', [Height]uint8{0x0e, 0x11, 0x0e, 0x04, 0x08}},
	{':', [Height]uint8{0x00, 0x08, 0x00, 0x08, 0x00}},
	{';', [Height]uint8{0x00, 0x04, 0x00, 0x04, 0x08}},
	{'<', [Height]uint8{0x02, 0x04, 0x08, 0x04, 0x02}},
	{'=', [Height]uint8{0x00, 0x0e, 0x00, 0x0e, 0x00}},
	{'>', [Height]uint8{0x08, 0x04, 0x02, 0x04, 0x08}},
	{'?', [Height]uint8{0x0e, 0x01, 0x06, 0x00, 0x04}},
	{'@', [Height]uint8{0x0e, 0x11, 0x15, 0x13, 0x0c}},
	{'A', [Height]uint8{0x0c, 0x12, 0x1e, 0x12, 0x12}},
	{'B', [Height]uint8{0x1c, 0x12, 0x1c, 0x12, 0x1c}},
	{'C', [Height]uint8{0x0e, 0x10, 0x10, 0x10, 0x0e}},
	{'D', [Height]uint8{0x1c, 0x12, 0x12, 0x12, 0x1c}},
	{'E', [Height]uint8{0x1e, 0x10, 0x1c, 0x10, 0x1e}},
	{'F', [Height]uint8{0x1e, 0x10, 0x1c, 0x10, 0x10}},
	{'G', [Height]uint8{0x0e, 0x10, 0x13, 0x11, 0x0e}},
	{'H', [Height]uint8{0x12, 0x12, 0x1e, 0x12, 0x12}},
	{'I', [Height]uint8{0x1c, 0x08, 0x08, 0x08, 0x1c}},
	{'J', [Height]uint8{0x1f, 0x02, 0x02, 0x12, 0x0c}},
	{'K', [Height]uint8{0x12, 0x14, 0x18, 0x14, 0x12}},
	{'L', [Height]uint8{0x10, 0x10, 0x10, 0x10, 0x1e}},
	{'M', [Height]uint8{0x11, 0x1b, 0x15, 0x11, 0x11}},
	{'N', [Height]uint8{0x11, 0x19, 0x15, 0x13, 0x11}},
	{'O', [Height]uint8{0x0c, 0x12, 0x12, 0x12, 0x0c}},
	{'P', [Height]uint8{0x1c, 0x12, 0x1c, 0x10, 0x10}},
	{'Q', [Height]uint8{0x0c, 0x12, 0x12, 0x0c, 0x03}},
	{'R', [Height]uint8{0x1c, 0x12, 0x1c, 0x14, 0x12}},
	{'S', [Height]uint8{0x0e, 0x10, 0x0c, 0x02, 0x1c}},
	{'T', [Height]uint8{0x1f, 0x04, 0x04, 0x04, 0x04}},
	{'U', [Height]uint8{0x12, 0x12, 0x12, 0x12, 0x0c}},
	{'V', [Height]uint8{0x11, 0x11, 0x11, 0x0a, 0x04}},
	{'W', [Height]uint8{0x11, 0x11, 0x15, 0x1b, 0x11}},
	{'X', [Height]uint8{0x12, 0x12, 0x0c, 0x12, 0x12}},
	{'Y', [Height]uint8{0x11, 0x0a, 0x04, 0x04, 0x04}},
	{'Z', [Height]uint8{0x1e, 0x04, 0x08, 0x10, 0x1e}},
	{'[', [Height]uint8{0x0e, 0x08, 0x08, 0x08, 0x0e}},
	{'\\', [Height]uint8{0x10, 0x08, 0x04, 0x02, 0x01}},
	{']', [Height]uint8{0x0e, 0x02, 0x02, 0x02, 0x0e}},
	{'^', [Height]uint8{0x04, 0x0a, 0x00, 0x00, 0x00}},
	{'_', [Height]uint8{0x00, 0x00, 0x00, 0x00, 0x1f}},
	{'`', [Height]uint8{0x08, 0x04, 0x00, 0x00, 0x00}},
	{'a', [Height]uint8{0x00, 0x0e, 0x12, 0x12, 0x0f}},
	{'b', [Height]uint8{0x10, 0x10, 0x1c, 0x12, 0x1c}},
	{'c', [Height]uint8{0x00, 0x0e, 0x10, 0x10, 0x0e}},
	{'d', [Height]uint8{0x02, 0x02, 0x0e, 0x12, 0x0e}},
	{'e', [Height]uint8{0x0c, 0x12, 0x1c, 0x10, 0x0e}},
	{'f', [Height]uint8{0x06, 0x08, 0x1c, 0x08, 0x08}},
	{'g', [Height]uint8{0x0e, 0x12, 0x0e, 0x02, 0x0c}},
	{'h', [Height]uint8{0x10, 0x10, 0x1c, 0x12, 0x12}},
	{'i', [Height]uint8{0x08, 0x00, 0x08, 0x08, 0x08}},
	{'j', [Height]uint8{0x02, 0x00, 0x02, 0x12, 0x0c}},
	{'k', [Height]uint8{0x10, 0x14, 0x18, 0x14, 0x12}},
	{'l', [Height]uint8{0x08, 0x08, 0x08, 0x08, 0x06}},
	{'m', [Height]uint8{0x00, 0x1a, 0x15, 0x11, 0x11}},
	{'n', [Height]uint8{0x00, 0x1c, 0x12, 0x12, 0x12}},
	{'o', [Height]uint8{0x00, 0x0c, 0x12, 0x12, 0x0c}},
	{'p', [Height]uint8{0x00, 0x1c, 0x12, 0x1c, 0x10}},
	{'q', [Height]uint8{0x00, 0x0e, 0x12, 0x0e, 0x02}},
	{'r', [Height]uint8{0x00, 0x0e, 0x10, 0x10, 0x10}},
	{'s', [Height]uint8{0x00, 0x06, 0x08, 0x04, 0x18}},
	{'t', [Height]uint8{0x08, 0x08, 0x0e, 0x08, 0x06}},
	{'u', [Height]uint8{0x00, 0x12, 0x12, 0x12, 0x0e}},
	{'v', [Height]uint8{0x00, 0x11, 0x11, 0x0a, 0x04}},
	{'w', [Height]uint8{0x00, 0x11, 0x11, 0x15, 0x1b}},
	{'x', [Height]uint8{0x00, 0x12, 0x0c, 0x0c, 0x12}},
	{'y', [Height]uint8{0x00, 0x11, 0x0a, 0x04, 0x18}},
	{'z', [Height]uint8{0x00, 0x1e, 0x04, 0x08, 0x1e}},
	{'{', [Height]uint8{0x06, 0x04, 0x0c, 0x04, 0x06}},
	{'|', [Height]uint8{0x08, 0x08, 0x08, 0x08, 0x08}},
	{'}', [Height]uint8{0x18, 0x08, 0x0c, 0x08, 0x18}},
	{'~', [Height]uint8{0x00, 0x00, 0x08, 0x15, 0x02}},
	{'\ufffd', [Height]uint8{0x1f, 0x11, 0x11, 0x11, 0x1f}},
}
