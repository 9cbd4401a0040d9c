package visual

// BlobPalette is the set of body colors a reset picks from
// CSS named colors as hex, parsed by the render package
var BlobPalette = [...]string{
	"#add8e6", // lightblue
	"#f08080", // lightcoral
	"#90ee90", // lightgreen
	"#ffb6c1", // lightpink
	"#ffa07a", // lightsalmon
	"#20b2aa", // lightseagreen
	"#87cefa", // lightskyblue
	"#db7093", // palevioletred
	"#9acd32", // yellowgreen
	"#cd853f", // peru
}

// Normal mode parts
const (
	HexSclera = "#ffffff"

	HexPupil   = "#000000"
	PupilAlpha = 0.75

	HexMouth   = "#000000"
	MouthAlpha = 0.85
)

// X-ray mode: translucent ice over a blueprint backdrop
const (
	HexXRayBackground = "#0d2b45"
	HexXRay           = "#ffffff"

	HexXRayBodyFill     = "#cdf5ff"
	XRayBodyFillAlpha   = 0.4
	HexXRayBodyStroke   = "#d7f5ff"
	XRayBodyStrokeAlpha = 0.8
	XRayBodyMarkerAlpha = 0.7
	XRayBodyGuideAlpha  = 0.5

	XRayScleraFillAlpha   = 0.4
	XRayScleraStrokeAlpha = 0.6
	XRayPupilFillAlpha    = 0.7
	XRayPupilStrokeAlpha  = 0.8

	XRayConstraintAlpha = 0.1

	XRayMouthFillAlpha   = 0.2
	XRayMouthStrokeAlpha = 0.4
	XRayMouthMarkerAlpha = 0.6
	XRayMouthGuideAlpha  = 0.5
)

// HUD
const (
	HexDial       = "#444444"
	HexDialOff    = "#888888"
	HexDialNeedle = "#e03030"
	HexStatusText = "#dddddd"
	HexStatusBg   = "#202020"
)
