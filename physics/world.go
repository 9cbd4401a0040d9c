package physics

import (
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

// World owns every point and constraint and advances them with a fixed timestep
// World units are square; the shorter screen side always spans parameter.MinDimension
type World struct {
	Width, Height float64

	// Gravity is added to every interactive point each step, hosts may replace it per frame
	Gravity vmath.Vec2

	interactive []*PointMass
	passive     []*PointMass
	constraints []Constraint

	// World to pixel conversion
	scale    vmath.Vec2
	maxScale float64
}

// NewWorld creates an empty world sized to the given pixel dimensions
func NewWorld(pixelWidth, pixelHeight int, gravity vmath.Vec2) *World {
	w := &World{Gravity: gravity}
	w.SetSize(pixelWidth, pixelHeight)
	return w
}

// SetSize rescales the world for a new pixel surface, non-positive sizes clamp to 1
// Existing points keep their world positions
func (w *World) SetSize(pixelWidth, pixelHeight int) {
	px := float64(max(pixelWidth, 1))
	py := float64(max(pixelHeight, 1))

	if px > py {
		w.Width = parameter.MinDimension * (px / py)
		w.Height = parameter.MinDimension
		w.maxScale = px / w.Width
	} else {
		w.Width = parameter.MinDimension
		w.Height = parameter.MinDimension * (py / px)
		w.maxScale = py / w.Height
	}

	w.scale = vmath.V2(px/w.Width, py/w.Height)
}

// AddPoint creates a point attached to this world
// Interactive points are stepped before non-interactive ones, each in insertion order
func (w *World) AddPoint(cfg PointConfig) *PointMass {
	p := NewPointMass(cfg)
	p.world = w
	if p.Interactive {
		w.interactive = append(w.interactive, p)
	} else {
		w.passive = append(w.passive, p)
	}
	return p
}

// AddConstraint creates and registers a constraint, satisfied in insertion order
func (w *World) AddConstraint(cfg ConstraintConfig) Constraint {
	c := NewConstraint(cfg)
	w.constraints = append(w.constraints, c)
	return c
}

// Step advances the simulation by parameter.DT
// All constraints are satisfied before any point moves
func (w *World) Step() {
	for _, c := range w.constraints {
		c.Satisfy(parameter.DT)
	}
	for _, p := range w.interactive {
		p.Integrate(parameter.DT)
	}
	for _, p := range w.passive {
		p.Integrate(parameter.DT)
	}
}

// Interact resolves overlap between p and every other interactive point, then clamps p into the world
func (w *World) Interact(p *PointMass) {
	for _, other := range w.interactive {
		if other != p {
			collidePoints(p, other)
		}
	}

	p.Current = vecFromR2(w.innerBounds(p.Radius).ClampPoint(r2Point(p.Current)))
}

// collidePoints pushes overlapping circles apart by half the overlap each
func collidePoints(a, b *PointMass) {
	between := vmath.V2Sub(a.Current, b.Current)
	dist := vmath.V2Mag(between) - a.Radius - b.Radius
	if dist >= 0 {
		return
	}

	adjustment := vmath.V2Scale(vmath.V2Normalize(between), -dist/2)
	a.Current.AddInPlace(adjustment)
	b.Current.SubInPlace(adjustment)
}

// Bounds returns the world rectangle [0,Width]×[0,Height]
func (w *World) Bounds() r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: w.Width, Y: w.Height})
}

// innerBounds is the region a circle of radius r may occupy
// Lo may exceed Hi on a world narrower than 2r, ClampPoint then pins to Lo
func (w *World) innerBounds(r float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: r, Hi: w.Width - r},
		Y: r1.Interval{Lo: r, Hi: w.Height - r},
	}
}

// ToPixelsVec converts a world position to pixels
func (w *World) ToPixelsVec(v vmath.Vec2) vmath.Vec2 {
	return vmath.V2Mul(v, w.scale)
}

// ToPixelsValue converts a world length to pixels using the longer axis scale
func (w *World) ToPixelsValue(value float64) float64 {
	return value * w.maxScale
}

// ToWorldVec converts a pixel position to world units
func (w *World) ToWorldVec(px vmath.Vec2) vmath.Vec2 {
	return vmath.V2(px.X/w.scale.X, px.Y/w.scale.Y)
}

// RandomVec2 returns a uniformly distributed point inside the world
func (w *World) RandomVec2(rng *rand.Rand) vmath.Vec2 {
	return vmath.V2(w.Width*rng.Float64(), w.Height*rng.Float64())
}

// InteractivePoints returns the collidable points in step order
func (w *World) InteractivePoints() []*PointMass {
	return w.interactive
}

// PassivePoints returns the non-interactive points in step order
func (w *World) PassivePoints() []*PointMass {
	return w.passive
}

// Constraints returns all constraints in satisfaction order
func (w *World) Constraints() []Constraint {
	return w.constraints
}

func r2Point(v vmath.Vec2) r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

func vecFromR2(p r2.Point) vmath.Vec2 {
	return vmath.V2(p.X, p.Y)
}
