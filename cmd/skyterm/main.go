// Command skyterm previews a generated sky in the terminal.
package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"distant-sky/internal/app"
	"distant-sky/internal/config"
	"distant-sky/internal/core"
	"distant-sky/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal owns stdout and stderr while running; keep logs quiet.
	logger := logging.Init("error", cfg.LogJSON)
	env, palette, err := cfg.Environment(logger)
	if err != nil {
		log.Fatal(err)
	}
	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	w, h := frameSize(screen.Size())
	scene, err := app.NewScene(params, env, cfg.SkyConfig(), palette.RGBA(), w, h)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	runErr := run(screen, scene, cfg.TPS)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	slog.Debug("skyterm exited")
}

func run(screen tcell.Screen, scene *app.Scene, tps int) error {
	if tps <= 0 {
		tps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
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

	clock := core.NewFrameClock(250 * time.Millisecond)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keep, err := handleKey(scene, ev)
				if err != nil {
					return err
				}
				if !keep {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				scene.Resize(frameSize(screen.Size()))
			}
		case <-ticker.C:
			scene.Advance(clock.Delta())
			drawFrame(screen, scene.Render())
			_, h := screen.Size()
			drawStatus(screen, scene, h-1)
			screen.Show()
		}
	}
}
