package vmath

// Cubic is one cubic Bezier segment from Start to End
type Cubic struct {
	Start, C1, C2, End Vec2
}

// Knot holds the two tangent handles of a spline knot
// In sits on the side of the previous knot, Out on the side of the next
type Knot struct {
	Point   Vec2
	In, Out Vec2
}

// SplineKnots computes Catmull-Rom style tangent handles for a closed knot sequence
// Handles lie on the chord between the knot's neighbors, offset by t*d01/(d01+d12)
// Returns nil for fewer than 3 points
func SplineKnots(points []Vec2, t float64) []Knot {
	n := len(points)
	if n < 3 {
		return nil
	}

	knots := make([]Knot, n)
	for i := 0; i < n; i++ {
		p0 := points[(i+n-1)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		in, out := controlPoints(p0, p1, p2, t)
		knots[i] = Knot{Point: p1, In: in, Out: out}
	}
	return knots
}

// SplineCurves fits a closed, tangent-continuous cubic Bezier spline through points
// Curve i runs from knot i to knot i+1 (wrapping), len(result) == len(points)
func SplineCurves(points []Vec2, t float64) []Cubic {
	knots := SplineKnots(points, t)
	if knots == nil {
		return nil
	}

	n := len(knots)
	curves := make([]Cubic, n)
	for i := 0; i < n; i++ {
		a, b := knots[i], knots[(i+1)%n]
		curves[i] = Cubic{Start: a.Point, C1: a.Out, C2: b.In, End: b.Point}
	}
	return curves
}

// controlPoints returns the (in, out) handles of p1 given neighbors p0 and p2
// Both handles use the same offset fraction so they stay symmetric about p1
func controlPoints(p0, p1, p2 Vec2, t float64) (Vec2, Vec2) {
	d01 := V2Dist(p0, p1)
	d12 := V2Dist(p1, p2)

	var fa float64
	if sum := d01 + d12; sum != 0 {
		fa = t * d01 / sum
	}

	chord := V2Scale(V2Sub(p0, p2), fa)
	return V2Add(p1, chord), V2Sub(p1, chord)
}

// CubicPoint evaluates a cubic Bezier at parameter u in [0,1]
func CubicPoint(c Cubic, u float64) Vec2 {
	mu := 1 - u
	a := mu * mu * mu
	b := 3 * mu * mu * u
	d := 3 * mu * u * u
	e := u * u * u
	return Vec2{
		X: a*c.Start.X + b*c.C1.X + d*c.C2.X + e*c.End.X,
		Y: a*c.Start.Y + b*c.C1.Y + d*c.C2.Y + e*c.End.Y,
	}
}

// FlattenCubic appends segments sample points of c to dst, excluding c.Start
// Callers emit the start point once and chain curves end-to-start
func FlattenCubic(dst []Vec2, c Cubic, segments int) []Vec2 {
	if segments < 1 {
		segments = 1
	}
	step := 1 / float64(segments)
	for i := 1; i <= segments; i++ {
		dst = append(dst, CubicPoint(c, float64(i)*step))
	}
	return dst
}

// CubicSegments picks a flattening resolution from the control polygon length
// tolerance is the approximate chord length per segment in the same units as c
func CubicSegments(c Cubic, tolerance float64) int {
	length := V2Dist(c.Start, c.C1) + V2Dist(c.C1, c.C2) + V2Dist(c.C2, c.End)
	if tolerance <= 0 {
		return 8
	}
	n := int(length/tolerance) + 1
	return max(2, min(n, 64))
}
