package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lucky-lotto/asset"
	"github.com/lixenwraith/lucky-lotto/audio"
	"github.com/lixenwraith/lucky-lotto/config"
	"github.com/lixenwraith/lucky-lotto/constants"
	"github.com/lixenwraith/lucky-lotto/core"
	"github.com/lixenwraith/lucky-lotto/engine"
	"github.com/lixenwraith/lucky-lotto/input"
	"github.com/lixenwraith/lucky-lotto/lottery"
	"github.com/lixenwraith/lucky-lotto/render"
)

var (
	configFlag = flag.String("config", "lucky-lotto.yaml", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/lucky-lotto.log")
	seedFlag   = flag.Uint64("seed", 0, "Seed for reproducible draws (0 = random)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	if code := finish(run(), logFile); code != 0 {
		os.Exit(code)
	}
}

// finish records err in the debug log, closes it, and returns the exit code
func finish(err error, logFile *os.File) int {
	if err != nil {
		log.Printf("Exiting on error: %v", err)
	}
	if logFile != nil {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucky-lotto: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	// Every ball sprite must resolve before the screen opens
	sprites := asset.NewBallRegistry(cfg.Draw.Pool)

	var rng lottery.RandomSource
	if *seedFlag != 0 {
		rng = lottery.NewSeededRNG(*seedFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetResetHook(screen.Fini)

	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewRenderer(screen.Size())
	playW, playH := renderer.PlayArea()

	timeProvider := engine.NewMonotonicTimeProvider()
	board, err := engine.NewBoard(cfg.Board(), sprites, lottery.NewPicker(rng), timeProvider, playW, playH)
	if err != nil {
		return err
	}

	// Non-fatal, game can run without sound
	sound := audio.NewSoundManager(cfg.Sound())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	clock, redraw := engine.NewAnimationClock(board, timeProvider, cfg.Animation.Tick, func(int) {
		sound.PlayLanding()
	})
	clock.Start()
	defer clock.Stop()

	handler := input.NewHandler(renderer)

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	draw := func() {
		renderer.Draw(screen, render.Frame{
			Balls:       board.Snapshot(),
			Destination: board.Destination(),
			Chosen:      board.Chosen(),
			Muted:       sound.Muted(),
		})
	}
	draw()

	for {
		select {
		case ev := <-eventChan:
			switch handler.HandleEvent(ev) {
			case input.ActionQuit:
				return nil

			case input.ActionPick:
				if _, err := board.PickAndDrop(); err != nil {
					return err
				}

			case input.ActionSort:
				board.SortAndDrop()

			case input.ActionMute:
				log.Printf("Muted: %v", sound.ToggleMute())

			case input.ActionResize:
				screen.Sync()
				renderer.Resize(screen.Size())
				board.Resize(renderer.PlayArea())

			default:
				continue
			}
			draw()

		case <-redraw:
			draw()
		}
	}
}
