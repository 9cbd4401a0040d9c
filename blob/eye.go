package blob

import (
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/physics"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

// Member is a grabbable part of the blob
type Member interface {
	Point() *physics.PointMass
	Grab(current, previous vmath.Vec2)
	Release()
}

// Eye is a collidable sclera with a pupil chained inside it
// The pupil's self-force points at whatever the eye looks at
type Eye struct {
	Sclera *physics.PointMass
	Pupil  *physics.PointMass
	world  *physics.World
}

// newEye adds the sclera, pupil and their Fixed constraint to w at pos
func newEye(w *physics.World, pos vmath.Vec2) *Eye {
	sclera := w.AddPoint(physics.PointConfig{
		Position:    pos,
		Radius:      parameter.ScleraRadius,
		Mass:        parameter.ScleraMass,
		Interactive: true,
		Dampening:   parameter.ScleraDampening,
	})
	pupil := w.AddPoint(physics.PointConfig{
		Position:     pos,
		Radius:       parameter.PupilRadius,
		Mass:         parameter.PupilMass,
		DefaultForce: parameter.PupilDefaultForce,
		Dampening:    parameter.PupilDampening,
	})
	w.AddConstraint(physics.ConstraintConfig{
		Kind: physics.KindFixed,
		A:    sclera,
		B:    pupil,
		Max:  parameter.PupilMaxOffset,
	})

	return &Eye{Sclera: sclera, Pupil: pupil, world: w}
}

func (e *Eye) Point() *physics.PointMass {
	return e.Sclera
}

// LookAt turns the pupil's self-force toward target
func (e *Eye) LookAt(target vmath.Vec2) {
	e.Pupil.DefaultForceDirection = vmath.V2Normalize(vmath.V2Sub(target, e.Sclera.Current))
}

// Grab pins the sclera at current; previous becomes its velocity on release
func (e *Eye) Grab(current, previous vmath.Vec2) {
	e.Sclera.Pin()
	e.Sclera.Teleport(current, previous)
}

func (e *Eye) Release() {
	e.Sclera.Release()
}

func (e *Eye) draw(c render.Canvas, debug bool) {
	sclera := e.world.ToPixelsVec(e.Sclera.Current)
	scleraRadius := e.world.ToPixelsValue(e.Sclera.Radius)
	pupil := e.world.ToPixelsVec(e.Pupil.Current)
	pupilRadius := e.world.ToPixelsValue(e.Pupil.Radius)
	guide := e.world.ToPixelsValue(parameter.GuideWidth)

	if debug {
		c.StrokeCircle(sclera, scleraRadius, guide, palette.xrayScleraStroke)
		c.FillCircle(sclera, scleraRadius, palette.xrayScleraFill)
		c.StrokeCircle(pupil, pupilRadius, guide, palette.xrayPupilStroke)
		c.FillCircle(pupil, pupilRadius, palette.xrayPupilFill)
		return
	}

	c.FillCircle(sclera, scleraRadius, palette.sclera)
	c.FillCircle(pupil, pupilRadius, palette.pupil)
}
