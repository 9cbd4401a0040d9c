package render

import "github.com/lixenwraith/blob/vmath"

// Canvas is the drawing surface the blob renders onto, all coordinates in pixels
// Implemented by the software Raster (terminal host) and the ebiten host
type Canvas interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)
	Clear(c RGB)

	FillCircle(center vmath.Vec2, radius float64, c RGBA)
	StrokeCircle(center vmath.Vec2, radius, width float64, c RGBA)

	// FillPath fills the closed path with the even-odd rule
	FillPath(p *Path, c RGBA)
	StrokePath(p *Path, width float64, c RGBA)

	Line(a, b vmath.Vec2, width float64, c RGBA)
	FillRect(x, y, w, h float64, c RGBA)
}
