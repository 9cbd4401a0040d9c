package controls

import (
	"math"

	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

// Gravity is the user-steered gravity vector
// Direction and magnitude survive an off/on toggle
type Gravity struct {
	direction vmath.Vec2 // unit length
	magnitude float64    // fraction of parameter.MaxGravity
	active    bool
}

// NewGravity points down at full strength
func NewGravity(active bool) *Gravity {
	return &Gravity{
		direction: vmath.V2(0, 1),
		magnitude: 1,
		active:    active,
	}
}

// Toggle switches gravity off, or back on with the last direction and magnitude
func (g *Gravity) Toggle() bool {
	g.active = !g.active
	return g.active
}

func (g *Gravity) Active() bool {
	return g.active
}

// Vector returns the world gravity, zero while inactive
func (g *Gravity) Vector() vmath.Vec2 {
	if !g.active {
		return vmath.Vec2{}
	}
	return vmath.V2Scale(g.direction, parameter.MaxGravity*g.magnitude)
}

// Aim points gravity along dir at magnitude and switches it on
// A zero dir keeps the previous direction
func (g *Gravity) Aim(dir vmath.Vec2, magnitude float64) {
	if !dir.IsZero() {
		g.direction = vmath.V2Normalize(dir)
	}
	g.magnitude = clampMagnitude(magnitude)
	g.active = true
}

// AimFromDrag aims along offset with magnitude |offset|/radius
func (g *Gravity) AimFromDrag(offset vmath.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	g.Aim(offset, vmath.V2Mag(offset)/radius)
}

// Rotate turns the direction by angle radians, switching gravity on
func (g *Gravity) Rotate(angle float64) {
	g.Aim(vmath.V2FromAngle(vmath.V2Angle(g.direction)+angle, 1), g.magnitude)
}

// Adjust changes the magnitude by delta, switching gravity on
func (g *Gravity) Adjust(delta float64) {
	g.Aim(g.direction, g.magnitude+delta)
}

func (g *Gravity) Direction() vmath.Vec2 {
	return g.direction
}

func (g *Gravity) Magnitude() float64 {
	return g.magnitude
}

// arrows are ordered by octant starting at +x, clockwise on screen since y points down
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Arrow returns the compass arrow closest to the direction
func (g *Gravity) Arrow() rune {
	angle := vmath.V2Angle(g.direction)
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func clampMagnitude(m float64) float64 {
	return min(max(m, parameter.GravityMinFraction), 1)
}
