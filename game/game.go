package game

import (
	"errors"
	"log"
	"math/rand"

	"github.com/lixenwraith/blob/audio"
	"github.com/lixenwraith/blob/blob"
	"github.com/lixenwraith/blob/controls"
	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/parameter/visual"
	"github.com/lixenwraith/blob/physics"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

// Sound plays effect cues, satisfied by *audio.SoundManager
type Sound interface {
	Play(st audio.SoundType) error
	SetMuted(muted bool)
}

// Config holds the startup options shared by both hosts
type Config struct {
	// Width and Height are the drawing surface size in pixels
	Width, Height int

	// Seed drives blob generation and colors, 0 picks one from the clock
	Seed int64

	Gravity bool
	Debug   bool
	Muted   bool
	FPS     int

	// Clock defaults to a monotonic clock
	Clock engine.TimeProvider

	// Sound may be nil for a silent game
	Sound Sound
}

var (
	blobColors      = parsePalette(visual.BlobPalette[:])
	xrayBackground  = render.MustParseHex(visual.HexXRayBackground)
	errNoBlobColors = errors.New("empty blob palette")
)

func parsePalette(hexes []string) []render.RGB {
	colors := make([]render.RGB, len(hexes))
	for i, h := range hexes {
		colors[i] = render.MustParseHex(h)
	}
	return colors
}

// Game owns the world, the blob in it and the controls steering both
// It is driven from a single goroutine: pointer and key calls interleave with Update and Draw
type Game struct {
	world    *physics.World
	blob     *blob.Blob
	controls *controls.Controls

	rng   *rand.Rand
	clock engine.TimeProvider
	sound Sound

	width, height int

	color     render.RGB
	nextColor render.RGB
	hasNext   bool

	pointer vmath.Vec2
	onDial  bool
	frame   uint64
}

// New creates a game and builds its first blob
func New(cfg Config) (*Game, error) {
	if len(blobColors) == 0 {
		return nil, errNoBlobColors
	}

	clock := cfg.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}

	g := &Game{
		rng:      rand.New(rand.NewSource(seed)),
		clock:    clock,
		sound:    cfg.Sound,
		controls: controls.New(clock, cfg.Gravity, fps),
	}
	g.controls.SetDebug(cfg.Debug)
	g.setMuted(cfg.Muted)

	log.Printf("game: seed %d", seed)
	g.Resize(cfg.Width, cfg.Height)
	g.Reset()
	return g, nil
}

// Reset replaces the world and blob, the pre-picked next color becomes the body color
func (g *Game) Reset() {
	if g.hasNext {
		g.color = g.nextColor
	} else {
		g.color = g.randomColor()
	}
	g.nextColor = g.randomColor()
	g.hasNext = true

	g.world = physics.NewWorld(g.width, g.height, g.controls.Gravity.Vector())
	g.blob = blob.New(g.world, g.rng, g.color, g.clock)
	g.blob.OnEmotionChange(g.emotionChanged)
	g.onDial = false

	log.Printf("game: reset, body %s background %s", g.color.Hex(), g.nextColor.Hex())
}

// RequestReset resets unless a reset ran within parameter.ResetDebounce
func (g *Game) RequestReset() bool {
	if !g.controls.RequestReset() {
		return false
	}
	g.Reset()
	return true
}

func (g *Game) randomColor() render.RGB {
	return blobColors[g.rng.Intn(len(blobColors))]
}

// Resize rescales the world to a new surface and re-anchors the dial in the bottom-right corner
func (g *Game) Resize(width, height int) {
	g.width, g.height = max(width, 1), max(height, 1)
	if g.world != nil {
		g.world.SetSize(g.width, g.height)
	}

	radius := min(parameter.DialRadius, float64(min(g.width, g.height))*parameter.DialMaxFraction)
	margin := min(parameter.DialMargin, radius/2)
	center := vmath.V2(float64(g.width)-margin-radius, float64(g.height)-margin-radius)
	g.controls.Dial.Place(center, radius)
}

// Update advances one fixed step: gravity from the controls, physics, then blob behaviour
func (g *Game) Update() {
	g.frame++
	g.controls.Update()
	g.world.Gravity = g.controls.Gravity.Vector()
	g.world.Step()
	g.blob.Update(g.clock.Now())
}

// Draw renders the frame: backdrop, blob and dial
func (g *Game) Draw(c render.Canvas) {
	debug := g.controls.Debug()
	if debug {
		c.Clear(xrayBackground)
	} else {
		c.Clear(g.nextColor)
	}
	g.blob.Draw(c, debug)
	g.controls.Dial.Draw(c)
}

// PointerDown presses at a surface position, the dial takes precedence over the blob
func (g *Game) PointerDown(px vmath.Vec2) {
	g.pointer = px
	if g.controls.Dial.Press(px) {
		g.onDial = true
		return
	}

	g.blob.MouseDown(g.world.ToWorldVec(px))
	if g.blob.Grabbed() != nil {
		log.Printf("game: grabbed %T", g.blob.Grabbed())
		g.play(audio.SoundSqueak)
	}
}

// PointerMove tracks the pointer, dragging whatever the press took
func (g *Game) PointerMove(px vmath.Vec2) {
	g.pointer = px
	if g.onDial {
		g.controls.Dial.Drag(px)
		return
	}
	g.blob.MouseMove(g.world.ToWorldVec(px))
}

// PointerUp ends a press
func (g *Game) PointerUp(px vmath.Vec2) {
	g.pointer = px
	if g.onDial {
		g.controls.Dial.Release(px)
		g.onDial = false
		return
	}

	held := g.blob.Grabbed() != nil
	g.blob.MouseUp(g.world.ToWorldVec(px))
	if held {
		log.Printf("game: released")
		g.play(audio.SoundPop)
	}
}

// PointerLeave treats the pointer leaving the surface as a release where it was last seen
func (g *Game) PointerLeave() {
	g.PointerUp(g.pointer)
}

// ToggleDebug flips x-ray rendering
func (g *Game) ToggleDebug() bool {
	on := g.controls.ToggleDebug()
	log.Printf("game: x-ray %t", on)
	return on
}

// ToggleGravity switches gravity off or back to its last setting
func (g *Game) ToggleGravity() bool {
	return g.controls.Gravity.Toggle()
}

// RotateGravity turns gravity by whole steps, positive is clockwise
func (g *Game) RotateGravity(steps int) {
	g.controls.Rotate(steps)
}

// TiltGravity strengthens or weakens gravity by whole steps
func (g *Game) TiltGravity(steps int) {
	g.controls.Tilt(steps)
}

// ToggleMute flips audio muting
func (g *Game) ToggleMute() bool {
	muted := !g.controls.Muted()
	g.setMuted(muted)
	return muted
}

func (g *Game) setMuted(muted bool) {
	g.controls.SetMuted(muted)
	if g.sound != nil {
		g.sound.SetMuted(muted)
	}
}

func (g *Game) emotionChanged(from, to blob.Emotion) {
	log.Printf("game: emotion %s -> %s", from, to)
	switch to {
	case blob.Terror:
		g.play(audio.SoundGasp)
	case blob.Gagged:
		g.play(audio.SoundHum)
	}
}

func (g *Game) play(st audio.SoundType) {
	if g.sound == nil || g.controls.Muted() {
		return
	}
	if err := g.sound.Play(st); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
		log.Printf("game: play %s: %v", st, err)
	}
}

// Status returns the one-line state summary for the terminal status bar
func (g *Game) Status() string {
	return g.blob.Emotion().String() + " | " + g.controls.Status()
}

func (g *Game) World() *physics.World {
	return g.world
}

func (g *Game) Blob() *blob.Blob {
	return g.blob
}

func (g *Game) Controls() *controls.Controls {
	return g.controls
}

// Colors returns the body color and the background color of the next reset
func (g *Game) Colors() (body, background render.RGB) {
	return g.color, g.nextColor
}

// Frame returns the number of Update calls since New
func (g *Game) Frame() uint64 {
	return g.frame
}

// Size returns the surface size in pixels
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
