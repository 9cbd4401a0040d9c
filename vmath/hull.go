package vmath

import (
	"slices"
)

// ComputeHull returns the convex hull of points using Andrew's monotone chain
// The input slice is not reordered. Hull winding is counter-clockwise in a y-up frame
// (clockwise on screen, where y grows downward)
//
// padding scales every hull point away from the centroid of ALL input points:
// p' = c + (p-c)*padding. padding 0 or 1 returns the unpadded hull
func ComputeHull(points []Vec2, padding float64) []Vec2 {
	if len(points) == 0 {
		return nil
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, compareLex)
	sorted = slices.Compact(sorted)

	var hull []Vec2
	if len(sorted) < 3 {
		hull = sorted
	} else {
		hull = monotoneChain(sorted)
	}

	if padding == 0 || padding == 1 {
		return hull
	}

	center := Centroid(points)
	// offset = c*padding - c; p' = p*padding - offset
	offset := V2Sub(V2Scale(center, padding), center)
	expanded := make([]Vec2, len(hull))
	for i, p := range hull {
		expanded[i] = V2Sub(V2Scale(p, padding), offset)
	}
	return expanded
}

// Centroid returns the arithmetic mean of points, zero for an empty set
func Centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range points {
		c.AddInPlace(p)
	}
	c.ScaleInPlace(1 / float64(len(points)))
	return c
}

// monotoneChain expects points sorted by x then y with duplicates removed
func monotoneChain(sorted []Vec2) []Vec2 {
	n := len(sorted)
	lower := make([]Vec2, 0, n)
	upper := make([]Vec2, 0, n)

	for i := 0; i < n; i++ {
		for len(lower) >= 2 && V2Cross(lower[len(lower)-2], lower[len(lower)-1], sorted[i]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, sorted[i])

		p := sorted[n-i-1]
		for len(upper) >= 2 && V2Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Last point of each chain is the first point of the other
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(lower, upper...)
}

func compareLex(a, b Vec2) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// PolygonArea returns the signed shoelace area, positive for counter-clockwise (y-up) winding
func PolygonArea(poly []Vec2) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// ConvexContains reports whether p lies inside or on a counter-clockwise convex polygon
// eps tolerates points sitting on an edge
func ConvexContains(poly []Vec2, p Vec2, eps float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		edge := V2Sub(b, a)
		if V2Cross(a, b, p) < -eps*V2Mag(edge) {
			return false
		}
	}
	return true
}
