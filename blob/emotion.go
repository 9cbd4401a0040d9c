package blob

import (
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

// Emotion is the blob's current mood, shown by the mouth
type Emotion uint8

const (
	Happy Emotion = iota
	Sad
	Terror
	Worried
	Gagged
	Bored

	emotionCount
)

func (e Emotion) String() string {
	switch e {
	case Happy:
		return "happy"
	case Sad:
		return "sad"
	case Terror:
		return "terror"
	case Worried:
		return "worried"
	case Gagged:
		return "gagged"
	case Bored:
		return "bored"
	default:
		return "unknown"
	}
}

// Expression is a mouth outline of four points in the unit square
type Expression [4]vmath.Vec2

// emotionPaths maps each emotion to its mouth outline, read through ExpressionFor
var emotionPaths = [emotionCount]Expression{
	Happy:   {{X: 0, Y: 0.5}, {X: 0.5, Y: 0.3}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}},
	Sad:     {{X: 0, Y: 0.7}, {X: 0.5, Y: 0.3}, {X: 1, Y: 0.7}, {X: 0.5, Y: 0.5}},
	Terror:  {{X: 0.1, Y: 0.5}, {X: 0.5, Y: 0.1}, {X: 0.9, Y: 0.5}, {X: 0.5, Y: 0.9}},
	Worried: {{X: 0, Y: 0.6}, {X: 0.5, Y: 0.3}, {X: 1, Y: 0.6}, {X: 0.5, Y: 0.7}},
	Gagged:  {{X: 0.3, Y: 0.55}, {X: 0.5, Y: 0.45}, {X: 0.7, Y: 0.55}, {X: 0.5, Y: 0.6}},
	Bored:   {{X: 0, Y: 0.5}, {X: 0.5, Y: 0.4}, {X: 1, Y: 0.5}, {X: 0.5, Y: 0.7}},
}

// ExpressionFor returns a copy of the target mouth outline for e, Happy for unknown values
func ExpressionFor(e Emotion) Expression {
	if e >= emotionCount {
		return emotionPaths[Happy]
	}
	return emotionPaths[e]
}

// Step moves every coordinate one fixed step toward target, coordinates within step stay put
func (x *Expression) Step(target Expression, step float64) {
	for i := range x {
		x[i].Y = approach(x[i].Y, target[i].Y, step)
		x[i].X = approach(x[i].X, target[i].X, step)
	}
}

func approach(current, target, step float64) float64 {
	diff := target - current
	switch {
	case diff > step:
		return current + step
	case diff < -step:
		return current - step
	default:
		return current
	}
}

// signals are the per-frame observations that decide the emotion
type signals struct {
	mouthPinned bool
	mouthSpeed  float64
	grabbing    bool
	gandering   bool

	hasCursor  bool
	cursorDist float64
}

// feel applies the emotion priority: gagged, terror, sad, bored, worried, happy
func feel(s signals) Emotion {
	switch {
	case s.mouthPinned:
		return Gagged
	case s.mouthSpeed > parameter.TerrorSpeed:
		return Terror
	case s.grabbing || s.mouthSpeed > parameter.SadSpeed:
		return Sad
	case s.gandering:
		return Bored
	case s.hasCursor && s.cursorDist < parameter.WorriedDistance:
		return Worried
	default:
		return Happy
	}
}
