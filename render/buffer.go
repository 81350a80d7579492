package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

// CellSetter is the subset of tcell.Screen the buffer writes to
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Buffer is a pixel compositor flushed to the terminal two pixels per cell
// Pixel rows are twice the cell rows: even rows map to the half-block foreground,
// odd rows to the background
type Buffer struct {
	pix    []RGB
	cols   int
	rows   int
	width  int
	height int
	bg     RGB
}

// NewBuffer creates a buffer covering cols x rows terminal cells
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{bg: RGBBackground}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(cols, rows int) {
	cols, rows = max(0, cols), max(0, rows)
	size := cols * rows * 2
	if cap(b.pix) < size {
		b.pix = make([]RGB, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.cols, b.rows = cols, rows
	b.width, b.height = cols, rows*2
	b.Clear()
}

// Clear resets all pixels to the background using exponential copy
func (b *Buffer) Clear() {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = b.bg
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// Size returns the pixel dimensions
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Cells returns the terminal cell dimensions
func (b *Buffer) Cells() (cols, rows int) {
	return b.cols, b.rows
}

// inBounds returns true if in pixel bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y), black outside the buffer
func (b *Buffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.pix[y*b.width+x]
}

// Plot adds c to the pixel at (x, y)
func (b *Buffer) Plot(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Add(b.pix[idx], c)
}

// PlotScreen screen-blends c into the pixel at (x, y)
func (b *Buffer) PlotScreen(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Screen(b.pix[idx], c, alpha)
}

// Flush writes every cell as an upper half block: fg carries the top pixel, bg the bottom
func (b *Buffer) Flush(screen CellSetter) {
	for row := 0; row < b.rows; row++ {
		top := b.pix[row*2*b.width : (row*2+1)*b.width]
		bottom := b.pix[(row*2+1)*b.width : (row*2+2)*b.width]
		for col := 0; col < b.cols; col++ {
			style := tcell.StyleDefault.Foreground(top[col].TCell()).Background(bottom[col].TCell())
			screen.SetContent(col, row, parameter.HalfBlock, nil, style)
		}
	}
}
