package render

import (
	"math"
	"slices"

	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

// Raster is a software Canvas over an RGB pixel grid
// Pixels are sampled at their centers; shapes smaller than a pixel still mark the pixel they sit in
type Raster struct {
	pixels []RGB
	width  int
	height int

	// mask collects stroke coverage so overlapping segments blend once
	mask []bool
	// xs is scratch for scanline crossings
	xs []float64
}

// NewRaster creates a raster of the given size cleared to black
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(r.pixels) < size {
		r.pixels = make([]RGB, size)
		r.mask = make([]bool, size)
	} else {
		r.pixels = r.pixels[:size]
		r.mask = r.mask[:size]
	}
	r.width = width
	r.height = height
	r.Clear(RGBBlack)
}

// Size returns the raster dimensions in pixels
func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

// Clear fills every pixel with c using exponential copy
func (r *Raster) Clear(c RGB) {
	if len(r.pixels) == 0 {
		return
	}
	r.pixels[0] = c
	for filled := 1; filled < len(r.pixels); filled *= 2 {
		copy(r.pixels[filled:], r.pixels[:filled])
	}
}

// Pixel returns the color at (x, y), black when out of bounds
func (r *Raster) Pixel(x, y int) RGB {
	if !r.inBounds(x, y) {
		return RGBBlack
	}
	return r.pixels[y*r.width+x]
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

func (r *Raster) blend(x, y int, c RGBA) {
	if !r.inBounds(x, y) {
		return
	}
	i := y*r.width + x
	r.pixels[i] = r.pixels[i].Over(c)
}

// dot marks the pixel containing p, used when a shape covers no pixel center
func (r *Raster) dot(p vmath.Vec2, c RGBA) {
	r.blend(int(math.Floor(p.X)), int(math.Floor(p.Y)), c)
}

// span returns the pixel index range whose centers fall in [lo, hi], clamped to [0, limit)
func span(lo, hi float64, limit int) (int, int) {
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Floor(hi - 0.5))
	return max(first, 0), min(last, limit-1)
}

// FillCircle fills every pixel whose center lies inside the circle
func (r *Raster) FillCircle(center vmath.Vec2, radius float64, c RGBA) {
	x0, x1 := span(center.X-radius, center.X+radius, r.width)
	y0, y1 := span(center.Y-radius, center.Y+radius, r.height)

	rSq := radius * radius
	hit := false
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= rSq {
				r.blend(x, y, c)
				hit = true
			}
		}
	}
	if !hit {
		r.dot(center, c)
	}
}

// StrokeCircle draws a ring of the given width centered on the circle
func (r *Raster) StrokeCircle(center vmath.Vec2, radius, width float64, c RGBA) {
	hw := max(width/2, 0.5)
	outer := radius + hw
	inner := max(radius-hw, 0)

	x0, x1 := span(center.X-outer, center.X+outer, r.width)
	y0, y1 := span(center.Y-outer, center.Y+outer, r.height)

	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= outer && d >= inner {
				r.blend(x, y, c)
			}
		}
	}
}

// FillPath fills the flattened path with the even-odd rule
func (r *Raster) FillPath(p *Path, c RGBA) {
	if p.Empty() {
		return
	}
	r.fillPolygon(p.Flatten(parameter.FlattenTolerance), c)
}

// fillPolygon scanlines poly at each row's pixel center, filling between crossing pairs
func (r *Raster) fillPolygon(poly []vmath.Vec2, c RGBA) {
	if len(poly) < 3 {
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	y0, y1 := span(minY, maxY, r.height)

	hit := false
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		r.xs = r.xs[:0]
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			// Half-open rule so shared vertices count once
			if (a.Y <= yc && b.Y > yc) || (b.Y <= yc && a.Y > yc) {
				t := (yc - a.Y) / (b.Y - a.Y)
				r.xs = append(r.xs, a.X+t*(b.X-a.X))
			}
		}
		slices.Sort(r.xs)

		for i := 0; i+1 < len(r.xs); i += 2 {
			x0, x1 := span(r.xs[i], r.xs[i+1], r.width)
			for x := x0; x <= x1; x++ {
				r.blend(x, y, c)
				hit = true
			}
		}
	}

	if !hit {
		r.dot(vmath.Centroid(poly), c)
	}
}

// StrokePath outlines the flattened closed path
func (r *Raster) StrokePath(p *Path, width float64, c RGBA) {
	if p.Empty() {
		return
	}
	poly := p.Flatten(parameter.FlattenTolerance)
	hw := max(width/2, 0.5)
	for i := range poly {
		r.markSegment(poly[i], poly[(i+1)%len(poly)], hw)
	}
	r.flushMask(c)
}

// Line draws a segment with round caps
func (r *Raster) Line(a, b vmath.Vec2, width float64, c RGBA) {
	r.markSegment(a, b, max(width/2, 0.5))
	r.flushMask(c)
}

// FillRect fills pixels whose centers lie in [x, x+w] × [y, y+h]
func (r *Raster) FillRect(x, y, w, h float64, c RGBA) {
	px0, px1 := span(x, x+w, r.width)
	py0, py1 := span(y, y+h, r.height)
	if px0 > px1 || py0 > py1 {
		r.dot(vmath.V2(x+w/2, y+h/2), c)
		return
	}
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			r.blend(px, py, c)
		}
	}
}

// markSegment sets mask pixels within hw of segment ab
func (r *Raster) markSegment(a, b vmath.Vec2, hw float64) {
	x0, x1 := span(min(a.X, b.X)-hw, max(a.X, b.X)+hw, r.width)
	y0, y1 := span(min(a.Y, b.Y)-hw, max(a.Y, b.Y)+hw, r.height)

	hwSq := hw * hw
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := vmath.V2(float64(x)+0.5, float64(y)+0.5)
			if distSqToSegment(p, a, b) <= hwSq {
				r.mask[y*r.width+x] = true
			}
		}
	}
}

// flushMask blends c into every marked pixel and clears the mask
func (r *Raster) flushMask(c RGBA) {
	for i, marked := range r.mask {
		if marked {
			r.pixels[i] = r.pixels[i].Over(c)
			r.mask[i] = false
		}
	}
}

func distSqToSegment(p, a, b vmath.Vec2) float64 {
	ab := vmath.V2Sub(b, a)
	lenSq := vmath.V2MagSq(ab)
	if lenSq == 0 {
		return vmath.V2MagSq(vmath.V2Sub(p, a))
	}
	t := vmath.V2Dot(vmath.V2Sub(p, a), ab) / lenSq
	t = min(max(t, 0), 1)
	closest := vmath.V2Add(a, vmath.V2Scale(ab, t))
	return vmath.V2MagSq(vmath.V2Sub(p, closest))
}
