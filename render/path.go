package render

import "github.com/lixenwraith/blob/vmath"

// Path is a closed outline: a start point followed by cubic Bezier segments
type Path struct {
	start    vmath.Vec2
	cursor   vmath.Vec2
	segments []vmath.Cubic
}

// NewPath returns an empty path
func NewPath() *Path {
	return &Path{}
}

// PathFromCurves chains curves end to start, nil when curves is empty
func PathFromCurves(curves []vmath.Cubic) *Path {
	if len(curves) == 0 {
		return nil
	}
	p := &Path{segments: make([]vmath.Cubic, 0, len(curves))}
	p.MoveTo(curves[0].Start)
	for _, c := range curves {
		p.CubicTo(c.C1, c.C2, c.End)
	}
	return p
}

// SplinePath builds the closed smoothed outline through points, nil for fewer than 3 points
func SplinePath(points []vmath.Vec2, curvature float64) *Path {
	return PathFromCurves(vmath.SplineCurves(points, curvature))
}

// MoveTo starts a new outline at pt, discarding earlier segments
func (p *Path) MoveTo(pt vmath.Vec2) {
	p.start = pt
	p.cursor = pt
	p.segments = p.segments[:0]
}

// CubicTo appends a Bezier segment from the current point to end
func (p *Path) CubicTo(c1, c2, end vmath.Vec2) {
	p.segments = append(p.segments, vmath.Cubic{Start: p.cursor, C1: c1, C2: c2, End: end})
	p.cursor = end
}

// Start returns the first point of the outline
func (p *Path) Start() vmath.Vec2 {
	return p.start
}

// Segments returns the cubic segments in drawing order
func (p *Path) Segments() []vmath.Cubic {
	return p.segments
}

// Empty reports whether the path has nothing to draw
func (p *Path) Empty() bool {
	return p == nil || len(p.segments) == 0
}

// Translate returns a copy of the path offset by d
func (p *Path) Translate(d vmath.Vec2) *Path {
	out := &Path{
		start:    vmath.V2Add(p.start, d),
		cursor:   vmath.V2Add(p.cursor, d),
		segments: make([]vmath.Cubic, len(p.segments)),
	}
	for i, c := range p.segments {
		out.segments[i] = vmath.Cubic{
			Start: vmath.V2Add(c.Start, d),
			C1:    vmath.V2Add(c.C1, d),
			C2:    vmath.V2Add(c.C2, d),
			End:   vmath.V2Add(c.End, d),
		}
	}
	return out
}

// Flatten approximates the outline as a polygon, tolerance is the target chord length
// The closing point is not repeated
func (p *Path) Flatten(tolerance float64) []vmath.Vec2 {
	if p.Empty() {
		return nil
	}

	poly := make([]vmath.Vec2, 0, len(p.segments)*8+1)
	poly = append(poly, p.start)
	for _, c := range p.segments {
		poly = vmath.FlattenCubic(poly, c, vmath.CubicSegments(c, tolerance))
	}

	if len(poly) > 1 && poly[len(poly)-1] == poly[0] {
		poly = poly[:len(poly)-1]
	}
	return poly
}
