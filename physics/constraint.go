package physics

import (
	"math"

	"github.com/lixenwraith/blob/vmath"
)

// ConstraintKind selects the constraint variant at construction
type ConstraintKind uint8

const (
	// KindSpring pulls both points toward a rest length through the force accumulators
	KindSpring ConstraintKind = iota
	// KindFixed caps the distance by moving the second point only
	KindFixed
)

func (k ConstraintKind) String() string {
	switch k {
	case KindSpring:
		return "spring"
	case KindFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ConstraintConfig describes a constraint between A and B
// Min and Max are optional bounds, 0 means unbounded on that side
// Fixed constraints use Max only
type ConstraintConfig struct {
	Kind ConstraintKind
	A, B *PointMass
	Min  float64
	Max  float64
	K    float64
}

// Constraint binds two points and is satisfied once per world step before integration
type Constraint interface {
	Satisfy(dt float64)
	Points() (a, b *PointMass)
	Kind() ConstraintKind
}

// NewConstraint builds the variant named by cfg.Kind
func NewConstraint(cfg ConstraintConfig) Constraint {
	if cfg.Kind == KindFixed {
		return &Fixed{a: cfg.A, b: cfg.B, Max: cfg.Max}
	}
	return NewSpring(cfg.A, cfg.B, cfg.Min, cfg.Max, cfg.K)
}

// ===== Spring =====

// Spring is a Hooke's law link; its rest length is fixed at creation
type Spring struct {
	a, b       *PointMass
	K          float64
	RestLength float64
}

// NewSpring captures the current distance clamped to [lo, hi] as rest length
func NewSpring(a, b *PointMass, lo, hi, k float64) *Spring {
	dist := vmath.V2Dist(a.Current, b.Current)
	if lo != 0 {
		dist = math.Max(dist, lo)
	}
	if hi != 0 {
		dist = math.Min(dist, hi)
	}
	return &Spring{a: a, b: b, K: k, RestLength: dist}
}

// Satisfy pushes half the correction force onto each endpoint along the A-B axis
func (s *Spring) Satisfy(dt float64) {
	between := vmath.V2Sub(s.a.Current, s.b.Current)
	force := s.K * (s.RestLength - vmath.V2Mag(between))
	dir := vmath.V2Normalize(between)

	s.a.AddForce(vmath.V2Scale(dir, force/2))
	s.b.AddForce(vmath.V2Scale(dir, -force/2))
}

func (s *Spring) Points() (*PointMass, *PointMass) {
	return s.a, s.b
}

func (s *Spring) Kind() ConstraintKind {
	return KindSpring
}

// ===== Fixed =====

// Fixed keeps B within Max of A; A is treated as the anchor and never moves
type Fixed struct {
	a, b *PointMass
	Max  float64
}

// Satisfy snaps B back onto the Max circle around A when it strays further
func (f *Fixed) Satisfy(dt float64) {
	between := vmath.V2Sub(f.b.Current, f.a.Current)
	if vmath.V2Mag(between) <= f.Max {
		return
	}
	dir := vmath.V2Normalize(between)
	f.b.Current = vmath.V2Add(f.a.Current, vmath.V2Scale(dir, f.Max))
}

func (f *Fixed) Points() (*PointMass, *PointMass) {
	return f.a, f.b
}

func (f *Fixed) Kind() ConstraintKind {
	return KindFixed
}
