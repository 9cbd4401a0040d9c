package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/blob/vmath"
)

func detached(x, y, mass float64) *PointMass {
	return NewPointMass(PointConfig{Position: vmath.V2(x, y), Mass: mass, Radius: 0.1})
}

// TestFixedIdempotentWithinMax verifies a satisfied Fixed constraint leaves both points untouched
func TestFixedIdempotentWithinMax(t *testing.T) {
	sclera := detached(5, 5, 0.01)
	pupil := detached(5.05, 5.03, 0.005)
	c := NewConstraint(ConstraintConfig{Kind: KindFixed, A: sclera, B: pupil, Max: 0.116})

	for i := 0; i < 10; i++ {
		c.Satisfy(16)
	}

	if sclera.Current != vmath.V2(5, 5) {
		t.Errorf("Expected anchor unchanged, got %v", sclera.Current)
	}
	if pupil.Current != vmath.V2(5.05, 5.03) {
		t.Errorf("Expected pupil unchanged, got %v", pupil.Current)
	}
}

// TestFixedSnapsToMax verifies a stretched Fixed constraint lands exactly on Max along the same direction
func TestFixedSnapsToMax(t *testing.T) {
	tests := []struct {
		name  string
		pupil vmath.Vec2
	}{
		{"horizontal", vmath.V2(5.2, 5)},
		{"diagonal", vmath.V2(5+0.2/math.Sqrt2, 5-0.2/math.Sqrt2)},
		{"far", vmath.V2(1, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sclera := detached(5, 5, 0.01)
			pupil := detached(tt.pupil.X, tt.pupil.Y, 0.005)
			dirBefore := vmath.V2Normalize(vmath.V2Sub(pupil.Current, sclera.Current))

			c := NewConstraint(ConstraintConfig{Kind: KindFixed, A: sclera, B: pupil, Max: 0.116})
			c.Satisfy(16)

			dist := vmath.V2Dist(sclera.Current, pupil.Current)
			if math.Abs(dist-0.116) > 1e-12 {
				t.Errorf("Expected distance 0.116, got %.15f", dist)
			}

			dirAfter := vmath.V2Normalize(vmath.V2Sub(pupil.Current, sclera.Current))
			if math.Abs(dirAfter.X-dirBefore.X) > 1e-12 || math.Abs(dirAfter.Y-dirBefore.Y) > 1e-12 {
				t.Errorf("Expected direction %v, got %v", dirBefore, dirAfter)
			}

			if sclera.Current != vmath.V2(5, 5) {
				t.Errorf("Anchor moved to %v", sclera.Current)
			}
		})
	}
}

func TestSpringRestLengthClamp(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		lo, hi   float64
		want     float64
	}{
		{"below min", 1, 2, 3, 2},
		{"above max", 5, 2, 3, 3},
		{"inside", 2.5, 2, 3, 2.5},
		{"unbounded", 7, 0, 0, 7},
		{"min only", 0.5, 1.35, 0, 1.35},
		{"max only", 4, 0, 2.25, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := detached(0, 0, 1)
			b := detached(tt.distance, 0, 1)
			s := NewSpring(a, b, tt.lo, tt.hi, 0.1)
			if math.Abs(s.RestLength-tt.want) > 1e-12 {
				t.Errorf("Expected rest length %f, got %f", tt.want, s.RestLength)
			}
		})
	}
}

// TestSpringSymmetricForces verifies the spring adds equal and opposite forces along the axis
func TestSpringSymmetricForces(t *testing.T) {
	a := detached(0, 0, 1)
	b := detached(2, 0, 1)
	s := NewSpring(a, b, 0, 0, 0.1)

	// Stretch B by 0.5 beyond rest
	b.Current = vmath.V2(2.5, 0)
	s.Satisfy(16)

	fa, fb := a.Force(), b.Force()
	// force = 0.1 * (2 - 2.5) = -0.05; dir(A-B) = (-1,0); A gets dir*force/2 = (+0.025, 0)
	if math.Abs(fa.X-0.025) > 1e-12 || fa.Y != 0 {
		t.Errorf("Expected A force (0.025,0), got %v", fa)
	}
	if math.Abs(fb.X+0.025) > 1e-12 || fb.Y != 0 {
		t.Errorf("Expected B force (-0.025,0), got %v", fb)
	}
}

// TestSpringEquilibrium verifies a displaced spring settles at its rest length with no residual force
func TestSpringEquilibrium(t *testing.T) {
	a := NewPointMass(PointConfig{Position: vmath.V2(1, 1), Mass: 0.01, Dampening: 0.1})
	b := NewPointMass(PointConfig{Position: vmath.V2(3, 1), Mass: 0.01, Dampening: 0.1})
	s := NewSpring(a, b, 0, 0, 0.1)

	b.Teleport(vmath.V2(3.5, 1.2), vmath.V2(3.5, 1.2))

	for i := 0; i < 400; i++ {
		s.Satisfy(16)
		a.Integrate(16)
		b.Integrate(16)
	}

	dist := vmath.V2Dist(a.Current, b.Current)
	if math.Abs(dist-s.RestLength) > 1e-3 {
		t.Fatalf("Expected distance %f at equilibrium, got %f", s.RestLength, dist)
	}

	s.Satisfy(16)
	if mag := vmath.V2Mag(a.Force()); mag > 1e-4 {
		t.Errorf("Expected near-zero residual force, got %g", mag)
	}
}

// TestSpringZeroLengthNoNaN verifies coincident endpoints produce no force instead of NaN
func TestSpringZeroLengthNoNaN(t *testing.T) {
	a := detached(4, 4, 1)
	b := detached(4, 4, 1)
	s := NewSpring(a, b, 2, 3, 0.1)
	s.Satisfy(16)

	f := a.Force()
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Fatalf("Expected finite force, got %v", f)
	}
	if !f.IsZero() {
		t.Errorf("Expected zero force for undefined direction, got %v", f)
	}
}

func TestConstraintKind(t *testing.T) {
	a, b := detached(0, 0, 1), detached(1, 0, 1)

	spring := NewConstraint(ConstraintConfig{Kind: KindSpring, A: a, B: b, K: 0.1})
	if _, ok := spring.(*Spring); !ok || spring.Kind() != KindSpring {
		t.Errorf("Expected *Spring, got %T", spring)
	}

	fixed := NewConstraint(ConstraintConfig{Kind: KindFixed, A: a, B: b, Max: 1})
	if _, ok := fixed.(*Fixed); !ok || fixed.Kind() != KindFixed {
		t.Errorf("Expected *Fixed, got %T", fixed)
	}

	pa, pb := fixed.Points()
	if pa != a || pb != b {
		t.Error("Expected Points to return endpoints in order")
	}

	if KindSpring.String() != "spring" || KindFixed.String() != "fixed" {
		t.Errorf("Unexpected kind names: %s, %s", KindSpring, KindFixed)
	}
}
