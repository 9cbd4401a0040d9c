package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob/game"
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/parameter/visual"
	"github.com/lixenwraith/blob/render"
	"github.com/lixenwraith/blob/vmath"
)

var (
	statusFg = render.MustParseHex(visual.HexStatusText)
	statusBg = render.MustParseHex(visual.HexStatusBg)
)

// terminalHost rasterises the game into half-block cells and feeds it tcell input
// Each cell is one pixel wide and two pixels tall
type terminalHost struct {
	screen tcell.Screen
	game   *game.Game
	raster *render.Raster

	cols, rows int
	mouseDown  bool
}

func newTerminalHost(screen tcell.Screen, g *game.Game) *terminalHost {
	h := &terminalHost{
		screen: screen,
		game:   g,
		raster: render.NewRaster(0, 0),
	}
	h.resize()
	return h
}

// surfaceSize returns the raster size below which the status bar sits
func surfaceSize(cols, rows int) (int, int) {
	return render.RasterSize(cols, max(rows-parameter.StatusBarHeight, 0))
}

func (h *terminalHost) resize() {
	h.cols, h.rows = h.screen.Size()
	w, ht := surfaceSize(h.cols, h.rows)
	h.raster.Resize(w, ht)
	h.game.Resize(w, ht)
}

// cellToPixel maps a cell to the pixel at its horizontal centre, between its two half-blocks
func cellToPixel(x, y int) vmath.Vec2 {
	return vmath.V2(float64(x)+0.5, float64(y*2)+1)
}

// handleEvent applies one terminal event, returning false when the user quits
func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()

	case *tcell.EventFocus:
		if !ev.Focused && h.mouseDown {
			h.game.PointerLeave()
			h.mouseDown = false
		}
	}
	return true
}

// drain handles every queued event without blocking, returning false when the user quits
func (h *terminalHost) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev := <-events:
			if !h.handleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}

func (h *terminalHost) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.game.RotateGravity(-1)
	case tcell.KeyRight:
		h.game.RotateGravity(1)
	case tcell.KeyUp:
		h.game.TiltGravity(1)
	case tcell.KeyDown:
		h.game.TiltGravity(-1)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
			return false
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'd', 'D':
			h.game.ToggleDebug()
		case 'r', 'R':
			h.game.RequestReset()
		case 'g', 'G':
			h.game.ToggleGravity()
		case 'm', 'M':
			h.game.ToggleMute()
		}
	}
	return true
}

func (h *terminalHost) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	// The status bar is off the surface
	if y >= h.rows-parameter.StatusBarHeight {
		if h.mouseDown {
			h.game.PointerLeave()
			h.mouseDown = false
		}
		return
	}

	px := cellToPixel(x, y)
	switch {
	case pressed && !h.mouseDown:
		h.game.PointerDown(px)
	case !pressed && h.mouseDown:
		h.game.PointerUp(px)
	default:
		h.game.PointerMove(px)
	}
	h.mouseDown = pressed
}

// draw renders the game and the status bar and shows the frame
func (h *terminalHost) draw() {
	h.game.Draw(h.raster)
	render.Flush(h.screen, h.raster, 0)

	for row := h.rows - parameter.StatusBarHeight; row < h.rows; row++ {
		render.FillRow(h.screen, row, statusBg)
	}
	if h.rows > 0 {
		render.DrawText(h.screen, 1, h.rows-1, h.game.Status()+"  "+parameter.StatusHelp, statusFg, statusBg)
	}
	h.screen.Show()
}
