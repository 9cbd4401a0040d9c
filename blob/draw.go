package blob

import (
	"github.com/lixenwraith/blob/parameter/visual"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

// palette holds the parsed part colors for both render modes
var palette = struct {
	sclera, pupil, mouth render.RGBA

	xrayBodyFill, xrayBodyStroke, xrayBodyMarker, xrayBodyGuide render.RGBA

	xrayScleraFill, xrayScleraStroke, xrayPupilFill, xrayPupilStroke render.RGBA

	xrayConstraint render.RGBA

	xrayMouthFill, xrayMouthStroke, xrayMouthMarker, xrayMouthGuide render.RGBA
}{
	sclera: render.MustParseHex(visual.HexSclera).Opaque(),
	pupil:  render.MustParseHex(visual.HexPupil).Alpha(visual.PupilAlpha),
	mouth:  render.MustParseHex(visual.HexMouth).Alpha(visual.MouthAlpha),

	xrayBodyFill:   render.MustParseHex(visual.HexXRayBodyFill).Alpha(visual.XRayBodyFillAlpha),
	xrayBodyStroke: render.MustParseHex(visual.HexXRayBodyStroke).Alpha(visual.XRayBodyStrokeAlpha),
	xrayBodyMarker: render.MustParseHex(visual.HexXRay).Alpha(visual.XRayBodyMarkerAlpha),
	xrayBodyGuide:  render.MustParseHex(visual.HexXRay).Alpha(visual.XRayBodyGuideAlpha),

	xrayScleraFill:   render.MustParseHex(visual.HexXRay).Alpha(visual.XRayScleraFillAlpha),
	xrayScleraStroke: render.MustParseHex(visual.HexXRay).Alpha(visual.XRayScleraStrokeAlpha),
	xrayPupilFill:    render.MustParseHex(visual.HexXRay).Alpha(visual.XRayPupilFillAlpha),
	xrayPupilStroke:  render.MustParseHex(visual.HexXRay).Alpha(visual.XRayPupilStrokeAlpha),

	xrayConstraint: render.MustParseHex(visual.HexXRay).Alpha(visual.XRayConstraintAlpha),

	xrayMouthFill:   render.MustParseHex(visual.HexXRay).Alpha(visual.XRayMouthFillAlpha),
	xrayMouthStroke: render.MustParseHex(visual.HexXRay).Alpha(visual.XRayMouthStrokeAlpha),
	xrayMouthMarker: render.MustParseHex(visual.HexXRay).Alpha(visual.XRayMouthMarkerAlpha),
	xrayMouthGuide:  render.MustParseHex(visual.HexXRay).Alpha(visual.XRayMouthGuideAlpha),
}

// splineStyle configures drawSpline, zero-alpha fill or stroke is skipped
type splineStyle struct {
	fill        render.RGBA
	stroke      render.RGBA
	strokeWidth float64

	// X-ray markers
	debug         bool
	marker        render.RGBA
	guide         render.RGBA
	guideWidth    float64
	knotRadius    float64
	controlRadius float64
}

// drawSpline draws the smoothed closed outline through points
func drawSpline(c render.Canvas, points []vmath.Vec2, curvature float64, s splineStyle) {
	curves := vmath.SplineCurves(points, curvature)
	path := render.PathFromCurves(curves)
	if path.Empty() {
		return
	}

	if s.fill.A > 0 {
		c.FillPath(path, s.fill)
	}
	if s.stroke.A > 0 {
		c.StrokePath(path, s.strokeWidth, s.stroke)
	}
	if s.debug {
		drawGuides(c, curves, s)
	}
}

// drawGuides marks each knot and control point and joins controls to their knots
func drawGuides(c render.Canvas, curves []vmath.Cubic, s splineStyle) {
	for _, cv := range curves {
		square(c, cv.Start, s.knotRadius, s.marker)
		square(c, cv.C1, s.controlRadius, s.marker)
		square(c, cv.C2, s.controlRadius, s.marker)

		c.Line(cv.Start, cv.C1, s.guideWidth, s.guide)
		c.Line(cv.End, cv.C2, s.guideWidth, s.guide)
	}
}

func square(c render.Canvas, center vmath.Vec2, r float64, clr render.RGBA) {
	c.FillRect(center.X-r, center.Y-r, 2*r, 2*r, clr)
}
