package blob

import (
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/physics"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

// Mouth is the central member; its outline eases between emotion paths
type Mouth struct {
	point      *physics.PointMass
	expression Expression
	world      *physics.World
}

// newMouth adds the mouth point at the world centre wearing the given expression
func newMouth(w *physics.World, initial Emotion) *Mouth {
	p := w.AddPoint(physics.PointConfig{
		Position:    vmath.V2(w.Width/2, w.Height/2),
		Radius:      parameter.MouthRadius,
		Mass:        parameter.MouthMass,
		Interactive: true,
		Dampening:   parameter.MouthDampening,
	})
	return &Mouth{point: p, expression: ExpressionFor(initial), world: w}
}

func (m *Mouth) Point() *physics.PointMass {
	return m.point
}

// Grab pins the mouth at current; previous becomes its velocity on release
func (m *Mouth) Grab(current, previous vmath.Vec2) {
	m.point.Pin()
	m.point.Teleport(current, previous)
}

func (m *Mouth) Release() {
	m.point.Release()
}

// Expression returns the current outline in unit space
func (m *Mouth) Expression() Expression {
	return m.expression
}

// ease steps the outline toward the path of target
func (m *Mouth) ease(target Emotion) {
	m.expression.Step(ExpressionFor(target), parameter.MouthLerp)
}

// outline maps the expression into a 2r pixel square centred on the mouth
func (m *Mouth) outline() []vmath.Vec2 {
	center := m.world.ToPixelsVec(m.point.Current)
	r := m.world.ToPixelsValue(m.point.Radius)
	origin := vmath.V2Sub(center, vmath.V2(r, r))

	pts := make([]vmath.Vec2, len(m.expression))
	for i, p := range m.expression {
		pts[i] = vmath.V2Add(origin, vmath.V2Scale(p, 2*r))
	}
	return pts
}

func (m *Mouth) draw(c render.Canvas, debug bool) {
	pts := m.outline()
	if !debug {
		drawSpline(c, pts, parameter.MouthCurvature, splineStyle{fill: palette.mouth})
		return
	}

	drawSpline(c, pts, parameter.MouthCurvature, splineStyle{
		fill:          palette.xrayMouthFill,
		stroke:        palette.xrayMouthStroke,
		strokeWidth:   m.world.ToPixelsValue(parameter.MouthStrokeWidth),
		debug:         true,
		marker:        palette.xrayMouthMarker,
		guide:         palette.xrayMouthGuide,
		guideWidth:    m.world.ToPixelsValue(parameter.GuideWidth),
		knotRadius:    m.world.ToPixelsValue(parameter.MouthKnotRadius),
		controlRadius: m.world.ToPixelsValue(parameter.MouthControlRadius),
	})
}
