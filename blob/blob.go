package blob

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/physics"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

// Blob is a ring of eyes around a mouth, loosely tied together with springs
// Topology is fixed at construction; all mutation happens on the frame loop goroutine
type Blob struct {
	world *physics.World
	rng   *rand.Rand
	clock engine.TimeProvider
	color render.RGB

	eyes         []*Eye
	mouth        *Mouth
	eyeSprings   []physics.Constraint
	mouthSprings []physics.Constraint

	grabbed       Member
	previousMouse vmath.Vec2

	lookingAt    vmath.Vec2
	hasLookingAt bool

	gander    *engine.Interval
	gandering bool

	emotion         Emotion
	emotionHandlers []func(from, to Emotion)
}

// New builds a blob of parameter.MaxEyes eyes and a mouth inside w
// rng drives eye placement, spring counts and idle glances
func New(w *physics.World, rng *rand.Rand, color render.RGB, clock engine.TimeProvider) *Blob {
	b := &Blob{
		world:   w,
		rng:     rng,
		clock:   clock,
		color:   color,
		emotion: Happy,
		gander:  engine.NewInterval(parameter.GanderInterval),
	}

	rect := spawnRect(w)
	b.eyes = make([]*Eye, parameter.MaxEyes)
	for i := range b.eyes {
		b.eyes[i] = newEye(w, spawnPoint(rect, rng))
	}
	b.mouth = newMouth(w, b.emotion)
	b.connect()

	b.gander.Start(clock.Now())
	return b
}

// OnEmotionChange registers fn to run whenever Update settles on a new emotion
func (b *Blob) OnEmotionChange(fn func(from, to Emotion)) {
	b.emotionHandlers = append(b.emotionHandlers, fn)
}

// Update runs the per-frame behaviour after a world step: idle glances, emotion and mouth easing
func (b *Blob) Update(now time.Time) {
	if b.gander.Due(now) {
		b.gandering = true
		b.lookAt(b.world.RandomVec2(b.rng))
	}

	// A held eye rolls around
	for _, e := range b.eyes {
		if e.Sclera.Pinned() {
			e.LookAt(b.world.RandomVec2(b.rng))
		}
	}

	b.updateEmotion()
	b.mouth.ease(b.emotion)
}

func (b *Blob) updateEmotion() {
	mp := b.mouth.point
	s := signals{
		mouthPinned: mp.Pinned(),
		mouthSpeed:  vmath.V2Dist(mp.Current, mp.Previous),
		grabbing:    b.grabbed != nil,
		gandering:   b.gandering,
		hasCursor:   b.hasLookingAt,
		cursorDist:  vmath.V2Dist(mp.Current, b.lookingAt),
	}

	next := feel(s)
	if next == b.emotion {
		return
	}
	prev := b.emotion
	b.emotion = next
	for _, fn := range b.emotionHandlers {
		fn(prev, next)
	}
}

// MouseDown grabs the nearest member within reach of pos, if any
func (b *Blob) MouseDown(pos vmath.Vec2) {
	b.grabbed = b.closestMember(pos)
	if b.grabbed == nil {
		return
	}
	b.previousMouse = pos
	b.MouseMove(pos)
}

// MouseMove points every eye at pos and drags the grabbed member
// Without a grab the idle timer restarts
func (b *Blob) MouseMove(pos vmath.Vec2) {
	b.lookAt(pos)

	b.gander.Stop()
	b.gandering = false

	if b.grabbed != nil {
		b.grabbed.Grab(pos, b.previousMouse)
		b.previousMouse = pos
		return
	}
	b.gander.Start(b.clock.Now())
}

// MouseUp releases the grabbed member, its last drag step becomes its velocity
// Drag end restarts the idle timer that the drag stopped
func (b *Blob) MouseUp(pos vmath.Vec2) {
	if b.grabbed != nil {
		b.grabbed.Release()
		b.gander.Start(b.clock.Now())
	}
	b.grabbed = nil
}

// closestMember returns the nearest eye or mouth whose reach covers target
// Eyes are checked first; a later member must be strictly closer to win
func (b *Blob) closestMember(target vmath.Vec2) Member {
	var closest Member
	best := 0.0

	check := func(m Member) {
		p := m.Point()
		dist := vmath.V2Dist(target, p.Current)
		if dist > p.Radius+parameter.GrabBuffer {
			return
		}
		if closest == nil || dist < best {
			closest = m
			best = dist
		}
	}

	for _, e := range b.eyes {
		check(e)
	}
	check(b.mouth)
	return closest
}

func (b *Blob) lookAt(target vmath.Vec2) {
	b.lookingAt = target
	b.hasLookingAt = true
	for _, e := range b.eyes {
		e.LookAt(target)
	}
}

// Draw renders body, eyes, x-ray constraint lines and mouth in that order
func (b *Blob) Draw(c render.Canvas, debug bool) {
	b.drawBody(c, debug)

	for _, e := range b.eyes {
		e.draw(c, debug)
	}

	if debug {
		width := b.world.ToPixelsValue(parameter.GuideWidth)
		for _, s := range b.eyeSprings {
			p1, p2 := s.Points()
			from, to := b.trimmedLine(p1, p2)
			c.Line(from, to, width, palette.xrayConstraint)
		}
	}

	b.mouth.draw(c, debug)
}

// Outline returns the padded hull of every member in pixels, the knots of the body spline
func (b *Blob) Outline() []vmath.Vec2 {
	pts := make([]vmath.Vec2, 0, len(b.eyes)+1)
	for _, e := range b.eyes {
		pts = append(pts, b.world.ToPixelsVec(e.Sclera.Current))
	}
	pts = append(pts, b.world.ToPixelsVec(b.mouth.point.Current))
	return vmath.ComputeHull(pts, parameter.BodyPadding)
}

func (b *Blob) drawBody(c render.Canvas, debug bool) {
	hull := b.Outline()
	if !debug {
		drawSpline(c, hull, parameter.BodyCurvature, splineStyle{fill: b.color.Opaque()})
		return
	}

	drawSpline(c, hull, parameter.BodyCurvature, splineStyle{
		fill:          palette.xrayBodyFill,
		stroke:        palette.xrayBodyStroke,
		strokeWidth:   b.world.ToPixelsValue(parameter.BodyStrokeWidth),
		debug:         true,
		marker:        palette.xrayBodyMarker,
		guide:         palette.xrayBodyGuide,
		guideWidth:    b.world.ToPixelsValue(parameter.GuideWidth),
		knotRadius:    b.world.ToPixelsValue(parameter.BodyKnotRadius),
		controlRadius: b.world.ToPixelsValue(parameter.BodyControlRadius),
	})
}

// trimmedLine returns the pixel segment between two points, shortened past each radius
func (b *Blob) trimmedLine(p1, p2 *physics.PointMass) (vmath.Vec2, vmath.Vec2) {
	from := b.world.ToPixelsVec(p1.Current)
	to := b.world.ToPixelsVec(p2.Current)
	dir := vmath.V2Normalize(vmath.V2Sub(to, from))

	r1 := b.world.ToPixelsValue(p1.Radius + parameter.ConstraintLineTrim)
	r2 := b.world.ToPixelsValue(p2.Radius + parameter.ConstraintLineTrim)
	return vmath.V2Add(from, vmath.V2Scale(dir, r1)), vmath.V2Sub(to, vmath.V2Scale(dir, r2))
}

// Emotion returns the mood decided by the last Update
func (b *Blob) Emotion() Emotion {
	return b.emotion
}

// Color returns the body fill color
func (b *Blob) Color() render.RGB {
	return b.color
}

// Grabbed returns the held member, nil when nothing is held
func (b *Blob) Grabbed() Member {
	return b.grabbed
}

// Gandering reports whether the blob is idly looking around
func (b *Blob) Gandering() bool {
	return b.gandering
}

func (b *Blob) Eyes() []*Eye {
	return b.eyes
}

func (b *Blob) Mouth() *Mouth {
	return b.mouth
}

// EyeSprings returns the eye-eye springs in creation order
func (b *Blob) EyeSprings() []physics.Constraint {
	return b.eyeSprings
}

// MouthSprings returns the mouth-eye springs, one per eye
func (b *Blob) MouthSprings() []physics.Constraint {
	return b.mouthSprings
}
