package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-pong/audio"
	"github.com/lixenwraith/chaos-pong/config"
	"github.com/lixenwraith/chaos-pong/constants"
	"github.com/lixenwraith/chaos-pong/game"
	"github.com/lixenwraith/chaos-pong/input"
	"github.com/lixenwraith/chaos-pong/render"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug logs to log/chaos-pong.log")
	configFlag = flag.String("config", "chaos-pong.toml", "Path to TOML config file")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\nCHAOS-PONG CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Muted = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewEngine()
	sound.SetMuted(cfg.Muted)
	defer sound.Close()

	var leftScore, rightScore int

	controller := func(ai bool) game.Controller {
		if ai {
			return game.ControllerAI
		}
		return game.ControllerManual
	}

	g := game.New(game.Config{
		CanvasSize: func() (float64, float64) {
			return cfg.CanvasWidth, cfg.CanvasHeight
		},
		OnScore: func(side game.Side) {
			if side == game.SideLeft {
				leftScore++
			} else {
				rightScore++
			}
			log.Printf("score: %s %d:%d", side, leftScore, rightScore)
			sound.Score()
		},
		OnPaddleHit:     sound.PaddleHit,
		LeftController:  controller(cfg.LeftAI),
		RightController: controller(cfg.RightAI),
		MaxBalls:        cfg.MaxBalls,
		TrailLength:     cfg.TrailLength,
	})

	keys := input.NewMachine()
	renderer := render.New(screen)

	// Poll terminal events on their own goroutine; the main loop owns all
	// simulation state
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	log.Println("chaos-pong started")

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(ev, time.Now()) {
				case input.ActionQuit:
					return
				case input.ActionRestart:
					g.Restart()
					leftScore, rightScore = 0, 0
					paused = false
					log.Println("game restarted")
				case input.ActionTogglePause:
					paused = !paused
				case input.ActionToggleMute:
					sound.ToggleMute()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !paused {
				left, right := keys.Intents(time.Now(), g.Snapshot().InvertControls)
				g.SetIntent(game.SideLeft, left)
				g.SetIntent(game.SideRight, right)
				g.Tick()
			}
			renderer.Draw(g, leftScore, rightScore)
		}
	}
}

// emergencyReset writes raw escape sequences to leave the alternate screen
// and restore the cursor when tcell cannot clean up itself
func emergencyReset() {
	fmt.Fprint(os.Stdout, "\x1b[0m\x1b[?25h\x1b[?1049l")
}
