package controls

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/parameter/visual"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

var (
	dialColor    = render.MustParseHex(visual.HexDial)
	dialOffColor = render.MustParseHex(visual.HexDialOff)
	needleColor  = render.MustParseHex(visual.HexDialNeedle)
)

// Dial is the on-screen gravity control: drag to aim, click to toggle
// The needle eases toward the gravity vector on a damped spring
type Dial struct {
	center  vmath.Vec2
	radius  float64
	gravity *Gravity

	dragging  bool
	pressedAt vmath.Vec2
	travel    float64

	spring       harmonica.Spring
	angle, angV  float64
	length, lenV float64
}

// NewDial creates a dial steering g, animated at fps frames per second
// The needle starts settled on the current gravity
func NewDial(g *Gravity, fps int) *Dial {
	d := &Dial{
		radius:  parameter.DialRadius,
		gravity: g,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), parameter.DialSpringFrequency, parameter.DialSpringDamping),
	}
	d.angle = vmath.V2Angle(g.Direction())
	d.length = d.targetLength()
	return d
}

// Place centers the dial at c with the given radius in pixels
func (d *Dial) Place(c vmath.Vec2, radius float64) {
	if radius > 0 {
		// Keep the needle proportional across resizes
		d.length *= radius / d.radius
		d.radius = radius
	}
	d.center = c
}

func (d *Dial) Center() vmath.Vec2 {
	return d.center
}

func (d *Dial) Radius() float64 {
	return d.radius
}

// Contains reports whether p is over the dial face
func (d *Dial) Contains(p vmath.Vec2) bool {
	return vmath.V2Dist(p, d.center) <= d.radius
}

// Press starts a dial gesture when p is over the face, reporting whether the dial took it
func (d *Dial) Press(p vmath.Vec2) bool {
	if !d.Contains(p) {
		return false
	}
	d.dragging = true
	d.pressedAt = p
	d.travel = 0
	return true
}

// Drag aims gravity at p once the gesture has moved past the click slop
func (d *Dial) Drag(p vmath.Vec2) {
	if !d.dragging {
		return
	}
	d.travel = max(d.travel, vmath.V2Dist(p, d.pressedAt))
	if d.travel < parameter.DialClickSlop {
		return
	}
	d.gravity.AimFromDrag(vmath.V2Sub(p, d.center), d.radius)
}

// Release ends the gesture, a press that never left the slop toggles gravity
func (d *Dial) Release(p vmath.Vec2) bool {
	if !d.dragging {
		return false
	}
	d.Drag(p)
	d.dragging = false
	if d.travel < parameter.DialClickSlop {
		d.gravity.Toggle()
	}
	return true
}

// Dragging reports whether a gesture is in progress
func (d *Dial) Dragging() bool {
	return d.dragging
}

// Update advances the needle one frame toward the gravity vector
func (d *Dial) Update() {
	target := vmath.V2Angle(d.gravity.Direction())
	// Shortest way round
	target = d.angle + math.Remainder(target-d.angle, 2*math.Pi)

	d.angle, d.angV = d.spring.Update(d.angle, d.angV, target)
	d.length, d.lenV = d.spring.Update(d.length, d.lenV, d.targetLength())
}

func (d *Dial) targetLength() float64 {
	if !d.gravity.Active() {
		return 0
	}
	return d.gravity.Magnitude() * d.radius
}

// Needle returns the needle tip in pixels
func (d *Dial) Needle() vmath.Vec2 {
	return vmath.V2Add(d.center, vmath.V2FromAngle(d.angle, d.length))
}

// Draw paints the face, rim and needle
func (d *Dial) Draw(c render.Canvas) {
	face := dialColor
	if !d.gravity.Active() {
		face = dialOffColor
	}
	c.FillCircle(d.center, d.radius, face.Alpha(0.6))
	c.StrokeCircle(d.center, d.radius, parameter.StrokeWidth, face.Opaque())

	// Minimum magnitude ring
	c.StrokeCircle(d.center, d.radius*parameter.GravityMinFraction, parameter.StrokeWidth, face.Alpha(0.5))

	c.Line(d.center, d.Needle(), parameter.DialNeedleWidth, needleColor.Opaque())
	c.FillCircle(d.center, parameter.DialNeedleWidth, needleColor.Opaque())
}
