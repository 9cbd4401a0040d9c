package parameter

import "time"

// Blob body
const (
	// MaxEyes is the number of eyes generated per blob
	MaxEyes = 9

	// BodyPadding scales the body hull away from the member centroid
	BodyPadding = 1.5

	// BodyCurvature is the spline tension used to round the body outline
	BodyCurvature = 0.2
)

// Eye-eye springs
const (
	EyeSpringMin = 2.0
	EyeSpringMax = 3.0
	EyeSpringK   = 0.1

	// EyeConnectionsMin and EyeConnectionsMax bound the nearest-neighbor links per eye (inclusive)
	EyeConnectionsMin = 4
	EyeConnectionsMax = 5
)

// Mouth
const (
	MouthRadius    = 0.45
	MouthMass      = 0.005
	MouthDampening = 0.03

	// MouthCurvature is the spline tension of the expression outline
	MouthCurvature = 0.6

	// MouthLerp is the per-frame step of each expression coordinate toward its target
	MouthLerp = 0.025

	// Mouth-eye springs, in multiples of MouthRadius
	MouthSpringMin = 3 * MouthRadius
	MouthSpringMax = 5 * MouthRadius
	MouthSpringK   = 0.05
)

// Interaction
const (
	// GrabBuffer extends each member's radius when picking the grab target
	GrabBuffer = 0.5

	// GanderInterval is the idle time before the blob glances somewhere random
	GanderInterval = 3000 * time.Millisecond

	// ConstraintLineTrim shortens debug constraint lines past each endpoint radius
	ConstraintLineTrim = 0.05
)

// Emotion thresholds, mouth speed in world units per step
const (
	TerrorSpeed = 0.03
	SadSpeed    = 0.015

	// WorriedDistance is the cursor-to-mouth range that makes the blob nervous
	WorriedDistance = 3.0
)
