package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob/audio"
	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/game"
	"github.com/lixenwraith/blob/render"
)

func newTestHost(t *testing.T, cols, rows int) (*terminalHost, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	w, h := surfaceSize(cols, rows)
	g, err := game.New(game.Config{
		Width:  w,
		Height: h,
		Seed:   3,
		Clock:  engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return newTerminalHost(screen, g), screen, g
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSurfaceSize(t *testing.T) {
	if w, h := surfaceSize(40, 21); w != 40 || h != 40 {
		t.Errorf("Expected 40x40 below the status bar, got %dx%d", w, h)
	}
	if w, h := surfaceSize(10, 0); w != 10 || h != 0 {
		t.Errorf("Expected 10x0 for an empty screen, got %dx%d", w, h)
	}
}

func TestCellToPixel(t *testing.T) {
	p := cellToPixel(3, 4)
	if p.X != 3.5 || p.Y != 9 {
		t.Errorf("Expected (3.5,9), got %v", p)
	}
}

// TestQuitKeys verifies every quit binding stops the loop
func TestQuitKeys(t *testing.T) {
	h, _, _ := newTestHost(t, 40, 21)

	quits := []*tcell.EventKey{
		runeKey('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if h.handleEvent(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
	if !h.handleEvent(runeKey('x')) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestToggleKeys(t *testing.T) {
	h, _, g := newTestHost(t, 40, 21)

	h.handleEvent(runeKey('d'))
	if !g.Controls().Debug() {
		t.Error("Expected d to enable x-ray")
	}
	h.handleEvent(runeKey('g'))
	if !g.Controls().Gravity.Active() {
		t.Error("Expected g to enable gravity")
	}
	h.handleEvent(runeKey('m'))
	if !g.Controls().Muted() {
		t.Error("Expected m to mute")
	}

	before := g.Controls().Gravity.Direction()
	h.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if g.Controls().Gravity.Direction() == before {
		t.Error("Expected right arrow to rotate gravity")
	}

	blob := g.Blob()
	h.handleEvent(runeKey('r'))
	if g.Blob() == blob {
		t.Error("Expected r to reset")
	}
}

// TestMouseGrabAndRelease verifies button transitions map to pointer down and up
func TestMouseGrabAndRelease(t *testing.T) {
	h, _, g := newTestHost(t, 40, 21)

	// The mouth sits at the surface centre, pixel (20,20)
	h.handleEvent(tcell.NewEventMouse(19, 9, tcell.Button1, tcell.ModNone))
	if g.Blob().Grabbed() == nil {
		t.Fatal("Expected a member grabbed under the cursor")
	}
	if !h.mouseDown {
		t.Error("Expected button tracked as down")
	}

	h.handleEvent(tcell.NewEventMouse(20, 9, tcell.Button1, tcell.ModNone))
	h.handleEvent(tcell.NewEventMouse(20, 9, tcell.ButtonNone, tcell.ModNone))
	if g.Blob().Grabbed() != nil {
		t.Error("Expected release on button up")
	}
	if h.mouseDown {
		t.Error("Expected button tracked as up")
	}
}

func TestMouseOntoStatusBarReleases(t *testing.T) {
	h, _, g := newTestHost(t, 40, 21)

	h.handleEvent(tcell.NewEventMouse(19, 9, tcell.Button1, tcell.ModNone))
	if g.Blob().Grabbed() == nil {
		t.Fatal("Expected a member grabbed under the cursor")
	}
	h.handleEvent(tcell.NewEventMouse(19, 20, tcell.Button1, tcell.ModNone))
	if g.Blob().Grabbed() != nil {
		t.Error("Expected leaving the surface to release")
	}
}

func TestResizeEvent(t *testing.T) {
	h, screen, g := newTestHost(t, 40, 21)

	screen.SetSize(60, 31)
	h.handleEvent(tcell.NewEventResize(60, 31))
	if w, ht := g.Size(); w != 60 || ht != 60 {
		t.Errorf("Expected game resized to 60x60, got %dx%d", w, ht)
	}
	if w, ht := h.raster.Size(); w != 60 || ht != 60 {
		t.Errorf("Expected raster resized to 60x60, got %dx%d", w, ht)
	}
}

// TestDrawFillsScreen verifies half-blocks above and the status text on the last row
func TestDrawFillsScreen(t *testing.T) {
	h, screen, g := newTestHost(t, 40, 21)
	h.draw()

	if r, _, _, _ := screen.GetContent(0, 0); r != render.HalfBlock {
		t.Errorf("Expected half-block in the surface, got %q", r)
	}

	status := g.Status()
	if r, _, _, _ := screen.GetContent(1, 20); r != []rune(status)[0] {
		t.Errorf("Expected status %q on the last row, got %q", status, r)
	}
	if r, _, _, _ := screen.GetContent(0, 20); r != ' ' {
		t.Errorf("Expected padded status row, got %q", r)
	}
}

// TestCleanupWithoutAudio verifies cleanup restores the screen whether or not audio was created
func TestCleanupWithoutAudio(t *testing.T) {
	for _, sound := range []*audio.SoundManager{nil, audio.NewSoundManager(nil, engine.NewMonotonicTimeProvider())} {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			t.Fatalf("Failed to init simulation screen: %v", err)
		}
		cleanup(screen, sound)
		if sound != nil && sound.Initialized() {
			t.Error("Expected uninitialized audio to stay uninitialized")
		}
	}
}

// TestRethrowPollerPanic verifies an event goroutine panic surfaces on the frame loop with its own stack
func TestRethrowPollerPanic(t *testing.T) {
	crashes := make(chan pollerCrash, 1)

	// Nothing queued is a no-op
	rethrow(crashes)

	crashes <- pollerCrash{value: "boom", stack: []byte("poller stack")}
	defer func() {
		r := recover()
		pc, ok := r.(pollerCrash)
		if !ok {
			t.Fatalf("Expected pollerCrash, got %T", r)
		}
		if pc.value != "boom" || string(pc.stack) != "poller stack" {
			t.Errorf("Expected forwarded value and stack, got %v %q", pc.value, pc.stack)
		}
	}()
	rethrow(crashes)
	t.Error("Expected rethrow to panic")
}
