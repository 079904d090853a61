//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"distant-sky/internal/app"
	"distant-sky/internal/config"
	"distant-sky/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.Init(cfg.LogLevel, cfg.LogJSON)
	env, palette, err := cfg.Environment(logger)
	if err != nil {
		log.Fatal(err)
	}
	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}

	scene, err := app.NewScene(params, env, cfg.SkyConfig(), palette.RGBA(), app.ViewWidth, app.ViewHeight)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(scene, cfg.Scale)

	ebiten.SetWindowTitle("distant sky")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ViewWidth*cfg.Scale+app.HUDWidth, app.ViewHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
