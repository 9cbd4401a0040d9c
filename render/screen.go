package render

import "github.com/gdamore/tcell/v2"

// HalfBlock draws the upper pixel as foreground and the lower as background
const HalfBlock = '▀'

// RasterSize returns the raster dimensions backing a cols×rows cell area
func RasterSize(cols, rows int) (int, int) {
	return max(cols, 0), max(rows, 0) * 2
}

// Flush writes r into screen as half-block cells, the first raster row lands on cell row top
// Cells outside the screen are skipped
func Flush(screen tcell.Screen, r *Raster, top int) {
	cols, rows := screen.Size()
	for y := 0; y*2 < r.height; y++ {
		row := top + y
		if row < 0 || row >= rows {
			continue
		}
		for x := 0; x < r.width && x < cols; x++ {
			upper := r.Pixel(x, y*2)
			lower := r.Pixel(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(TcellColor(upper)).
				Background(TcellColor(lower))
			screen.SetContent(x, row, HalfBlock, nil, style)
		}
	}
}

// DrawText writes a single line of text, clipped at the right edge
func DrawText(screen tcell.Screen, x, y int, text string, fg, bg RGB) {
	cols, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
	for _, ch := range text {
		if x >= cols {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// FillRow paints a whole cell row with bg
func FillRow(screen tcell.Screen, y int, bg RGB) {
	cols, _ := screen.Size()
	style := tcell.StyleDefault.Background(TcellColor(bg))
	for x := 0; x < cols; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// TcellColor converts to a 24-bit tcell color
func TcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
