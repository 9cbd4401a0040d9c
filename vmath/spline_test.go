package vmath

import (
	"math"
	"testing"
)

func TestSplineCurvesClosedLoop(t *testing.T) {
	pts := []Vec2{V2(0, 0), V2(4, 0), V2(5, 3), V2(2, 6), V2(-1, 3)}
	curves := SplineCurves(pts, 0.2)

	if len(curves) != len(pts) {
		t.Fatalf("Expected %d curves, got %d", len(pts), len(curves))
	}
	for i, c := range curves {
		if c.Start != pts[i] {
			t.Errorf("Curve %d: expected start %v, got %v", i, pts[i], c.Start)
		}
		if want := pts[(i+1)%len(pts)]; c.End != want {
			t.Errorf("Curve %d: expected end %v, got %v", i, want, c.End)
		}
	}
}

// TestSplineTangentContinuity verifies handles around each knot are collinear and opposed
func TestSplineTangentContinuity(t *testing.T) {
	pts := []Vec2{V2(0, 0), V2(4, 1), V2(6, 5), V2(1, 7)}
	curves := SplineCurves(pts, 0.6)
	n := len(curves)

	for i := 0; i < n; i++ {
		prev := curves[(i+n-1)%n]
		next := curves[i]
		knot := next.Start

		in := V2Sub(prev.C2, knot)
		out := V2Sub(next.C1, knot)

		if cross := in.X*out.Y - in.Y*out.X; math.Abs(cross) > 1e-9 {
			t.Errorf("Knot %d: handles not collinear, cross=%g", i, cross)
		}
		if V2Dot(in, out) > 0 {
			t.Errorf("Knot %d: handles on the same side", i)
		}
	}
}

func TestSplineKnotsSquare(t *testing.T) {
	square := []Vec2{V2(0, 0), V2(1, 0), V2(1, 1), V2(0, 1)}
	tc := 0.4
	knots := SplineKnots(square, tc)

	// Knot (1,0): neighbors (0,0) and (1,1), equal distances so fa = t/2
	k := knots[1]
	wantIn := V2(1-tc/2, -tc/2)
	wantOut := V2(1+tc/2, tc/2)
	if !approxVec(k.In, wantIn) {
		t.Errorf("Expected in handle %v, got %v", wantIn, k.In)
	}
	if !approxVec(k.Out, wantOut) {
		t.Errorf("Expected out handle %v, got %v", wantOut, k.Out)
	}
}

func TestSplineZeroCurvatureIsPolygon(t *testing.T) {
	pts := []Vec2{V2(0, 0), V2(3, 0), V2(0, 3)}
	for i, c := range SplineCurves(pts, 0) {
		if c.C1 != c.Start || c.C2 != c.End {
			t.Errorf("Curve %d: expected handles on knots, got %+v", i, c)
		}
	}
}

func TestSplineDegenerate(t *testing.T) {
	if got := SplineCurves([]Vec2{V2(0, 0), V2(1, 1)}, 0.2); got != nil {
		t.Errorf("Expected nil for two points, got %v", got)
	}

	// Coincident neighbors must not produce NaN handles
	same := []Vec2{V2(1, 1), V2(1, 1), V2(1, 1)}
	for _, c := range SplineCurves(same, 0.5) {
		if math.IsNaN(c.C1.X) || math.IsNaN(c.C2.Y) {
			t.Fatalf("NaN handle for coincident knots: %+v", c)
		}
	}
}

func TestCubicFlatten(t *testing.T) {
	c := Cubic{Start: V2(0, 0), C1: V2(1, 2), C2: V2(3, 2), End: V2(4, 0)}

	if got := CubicPoint(c, 0); got != c.Start {
		t.Errorf("Expected start at u=0, got %v", got)
	}
	if got := CubicPoint(c, 1); !approxVec(got, c.End) {
		t.Errorf("Expected end at u=1, got %v", got)
	}
	if got := CubicPoint(c, 0.5); !approxVec(got, V2(2, 1.5)) {
		t.Errorf("Expected midpoint (2,1.5), got %v", got)
	}

	pts := FlattenCubic(nil, c, 8)
	if len(pts) != 8 {
		t.Fatalf("Expected 8 samples, got %d", len(pts))
	}
	if !approxVec(pts[len(pts)-1], c.End) {
		t.Errorf("Expected last sample at end, got %v", pts[len(pts)-1])
	}

	if n := CubicSegments(c, 0.5); n < 2 || n > 64 {
		t.Errorf("Expected segment count within [2,64], got %d", n)
	}
}
