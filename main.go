package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob/audio"
	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/game"
	"github.com/lixenwraith/blob/parameter"
)

var (
	debugFlag   = flag.Bool("debug", false, "Start in x-ray mode and write logs/blob.log")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag    = flag.Bool("mute", false, "Start muted")
	gravityFlag = flag.Bool("gravity", false, "Start with gravity on")
	fpsFlag     = flag.Int("fps", parameter.DefaultFPS, "Frames per second")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// pollerCrash carries a panic from the event goroutine to the frame loop
type pollerCrash struct {
	value any
	stack []byte
}

// run owns every resource so deferred cleanup happens before the process exits
func run() (code int) {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	fps := min(max(*fpsFlag, 1), parameter.MaxFPS)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}

	var sound *audio.SoundManager

	// Panic Recovery: Ensure terminal and speaker are released even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			cleanup(screen, sound)
			stack := debug.Stack()
			if pc, ok := r.(pollerCrash); ok {
				r, stack = pc.value, pc.stack
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBLOB CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
			log.Printf("crash: %v", r)
			code = 1
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	clock := engine.NewMonotonicTimeProvider()

	// Audio is optional, failures continue silently
	sound = audio.NewSoundManager(audio.LoadAudioConfig(), clock)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}

	cols, rows := screen.Size()
	width, height := surfaceSize(cols, rows)
	g, err := game.New(game.Config{
		Width:   width,
		Height:  height,
		Seed:    *seedFlag,
		Gravity: *gravityFlag,
		Debug:   *debugFlag,
		Muted:   *muteFlag,
		FPS:     fps,
		Clock:   clock,
		Sound:   sound,
	})
	if err != nil {
		cleanup(screen, sound)
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		return 1
	}

	host := newTerminalHost(screen, g)

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	crashChan := make(chan pollerCrash, 1)
	// Input polling uses raw goroutine as it blocks on the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashChan <- pollerCrash{value: r, stack: debug.Stack()}
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	interval := time.Second / time.Duration(fps)
	err = engine.RunLoop(context.Background(), interval, func() bool {
		rethrow(crashChan)
		if !host.drain(eventChan) {
			return false
		}
		g.Update()
		host.draw()
		return true
	})

	cleanup(screen, sound)
	if err != nil {
		log.Printf("loop: %v", err)
	}
	log.Printf("exit after %d frames", g.Frame())
	return 0
}

// rethrow re-raises an event goroutine panic on the caller so run's recovery handles it
func rethrow(crashes <-chan pollerCrash) {
	select {
	case c := <-crashes:
		panic(c)
	default:
	}
}

// cleanup releases audio and restores the terminal
// sound may be nil when setup failed before audio was created
func cleanup(screen tcell.Screen, sound *audio.SoundManager) {
	if sound != nil {
		sound.Cleanup()
	}
	screen.Fini()
}
