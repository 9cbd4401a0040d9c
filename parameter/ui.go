package parameter

// Gravity dial
const (
	// DialRadius is the dial size in pixels for the windowed host
	DialRadius = 36.0

	// DialMaxFraction caps the dial radius on small surfaces, as a fraction of the shorter side
	DialMaxFraction = 0.125

	// DialMargin is the gap between the dial and the window corner in pixels
	DialMargin = 16.0

	// DialSpringFrequency and DialSpringDamping drive the needle animation
	DialSpringFrequency = 6.0
	DialSpringDamping   = 0.6

	// DialClickSlop is the pointer travel in pixels below which a dial press counts as a click
	DialClickSlop = 5.0

	// DialNeedleWidth is the needle line width in pixels
	DialNeedleWidth = 3.0
)

// X-ray overlay, lengths in world units
const (
	BodyStrokeWidth  = 0.07
	MouthStrokeWidth = 0.03

	// GuideWidth is the width of knot-to-control lines and eye constraint lines
	GuideWidth = 0.015

	BodyKnotRadius     = 0.045
	BodyControlRadius  = 0.03
	MouthKnotRadius    = 0.03
	MouthControlRadius = 0.015
)

// Rasterisation
const (
	// StrokeWidth is the HUD outline width in pixels
	StrokeWidth = 1.5

	// FlattenTolerance is the chord length in pixels per flattened Bezier segment
	FlattenTolerance = 2.0
)

// Terminal host
const (
	// StatusBarHeight is the number of terminal rows reserved for the status line
	StatusBarHeight = 1

	// Status line labels
	StatusGravityOn  = "gravity on"
	StatusGravityOff = "gravity off"
	StatusDebug      = "x-ray"
	StatusMuted      = "muted"
	StatusHelp       = "q quit  r reset  d x-ray  g gravity  ←→↑↓ tilt  m mute"
)
