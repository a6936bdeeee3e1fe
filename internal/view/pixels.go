package view

import (
	"image/color"

	"skirmish/internal/combat"
)

// Palette maps combat.CellXxx values to colours.
var Palette = []color.RGBA{
	combat.CellFloor:  {R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
	combat.CellWall:   {R: 0x70, G: 0x70, B: 0x70, A: 0xff},
	combat.CellElf:    {R: 0x3c, G: 0xc8, B: 0x5a, A: 0xff},
	combat.CellGoblin: {R: 0xd2, G: 0x3c, B: 0x32, A: 0xff},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
