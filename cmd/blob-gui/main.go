package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/blob/audio"
	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/game"
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

var (
	debugFlag   = flag.Bool("debug", false, "Start in x-ray mode and log to stderr")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag    = flag.Bool("mute", false, "Start muted")
	gravityFlag = flag.Bool("gravity", false, "Start with gravity on")
	fpsFlag     = flag.Int("fps", parameter.DefaultFPS, "Simulation steps per second")
	widthFlag   = flag.Int("width", 960, "Window width")
	heightFlag  = flag.Int("height", 640, "Window height")
)

// errQuit ends the ebiten loop on a quit key
var errQuit = errors.New("quit")

// app adapts game.Game to ebiten's update and draw callbacks
type app struct {
	game   *game.Game
	canvas ebitenCanvas

	width, height int
	pressed       bool
	touch         ebiten.TouchID
	touching      bool
}

func (a *app) Update() error {
	if a.handleKeys() {
		return errQuit
	}
	a.handlePointer()
	a.game.Update()
	return nil
}

// handleKeys applies this frame's key presses, reporting a quit request
func (a *app) handleKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.game.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.RequestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.game.ToggleGravity()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.game.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		a.game.RotateGravity(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		a.game.RotateGravity(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.game.TiltGravity(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		a.game.TiltGravity(-1)
	}
	return false
}

// handlePointer feeds the first touch, or the mouse when nothing touches
func (a *app) handlePointer() {
	if a.handleTouch() {
		return
	}

	mx, my := ebiten.CursorPosition()
	px := vmath.V2(float64(mx), float64(my))
	inside := mx >= 0 && my >= 0 && mx < a.width && my < a.height

	switch {
	case a.pressed && !inside:
		a.game.PointerLeave()
		a.pressed = false
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside:
		a.game.PointerDown(px)
		a.pressed = true
	case a.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.game.PointerUp(px)
		a.pressed = false
	case inside:
		a.game.PointerMove(px)
	}
}

// handleTouch tracks a single touch, returning true while one is active
func (a *app) handleTouch() bool {
	if !a.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return false
		}
		a.touch = ids[0]
		a.touching = true
		x, y := ebiten.TouchPosition(a.touch)
		a.game.PointerDown(vmath.V2(float64(x), float64(y)))
		return true
	}

	if inpututil.IsTouchJustReleased(a.touch) {
		x, y := inpututil.TouchPositionInPreviousTick(a.touch)
		a.game.PointerUp(vmath.V2(float64(x), float64(y)))
		a.touching = false
		return true
	}

	x, y := ebiten.TouchPosition(a.touch)
	a.game.PointerMove(vmath.V2(float64(x), float64(y)))
	return true
}

func (a *app) Draw(screen *ebiten.Image) {
	a.canvas.target(screen)
	a.game.Draw(&a.canvas)
	ebitenutil.DebugPrint(screen, a.game.Status()+"\n"+parameter.StatusHelp)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(a.width, a.height)
		log.Printf("resize %dx%d", a.width, a.height)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if *debugFlag {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		log.SetOutput(io.Discard)
	}

	fps := min(max(*fpsFlag, 1), parameter.MaxFPS)
	clock := engine.NewMonotonicTimeProvider()

	sound := audio.NewSoundManager(audio.LoadAudioConfig(), clock)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	g, err := game.New(game.Config{
		Width:   *widthFlag,
		Height:  *heightFlag,
		Seed:    *seedFlag,
		Gravity: *gravityFlag,
		Debug:   *debugFlag,
		Muted:   *muteFlag,
		FPS:     fps,
		Clock:   clock,
		Sound:   sound,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("blob")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)

	a := &app{game: g, width: *widthFlag, height: *heightFlag}
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "blob: %v\n", err)
		sound.Cleanup()
		os.Exit(1)
	}
}
