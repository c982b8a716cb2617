package canvas

// dot bits of a braille cell, indexed [column][row] inside the 2x4 grid
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a grid of cells, each an 8-dot braille mask.
type brailleBuf struct {
	w, h int // in cells
	m    [][]uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setDot sets a dot at dot coords (2x4 per cell). Out of range dots are dropped.
func (b *brailleBuf) setDot(dx, dy int) bool {
	if dx < 0 || dy < 0 {
		return false
	}
	cx, cy := dx/2, dy/4
	if cx >= b.w || cy >= b.h {
		return false
	}
	b.m[cy][cx] |= brailleBits[dx%2][dy%4]
	return true
}

func (b *brailleBuf) rune(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}
