package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"distant-sky/internal/app"
	"distant-sky/internal/assets"
	"distant-sky/internal/sky"
)

func TestFrameSize(t *testing.T) {
	w, h := frameSize(80, 25)
	if w != 80 || h != 48 {
		t.Fatalf("unexpected frame size %dx%d", w, h)
	}
	w, h = frameSize(0, 0)
	if w != 1 || h != 2 {
		t.Fatalf("degenerate terminal should still get a frame, got %dx%d", w, h)
	}
}

func TestDrawFrameHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 3)

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	frame.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})
	frame.SetRGBA(1, 1, color.RGBA{B: 255, A: 255})
	drawFrame(screen, frame)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != halfBlock {
		t.Fatalf("unexpected rune %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("unexpected colors fg=%v bg=%v", fg, bg)
	}
}

func TestHandleKey(t *testing.T) {
	env := sky.Environment{
		Cities:    assets.DefaultAtlas(),
		Filenames: assets.DefaultFilenames(),
		Palette:   assets.DefaultPalette(),
		Loader:    assets.NewSyntheticLoader(),
	}
	scene, err := app.NewScene(sky.Params{ProvinceID: 3}, env, sky.DefaultConfig(), assets.DefaultPalette().RGBA(), 40, 20)
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}

	keep, err := handleKey(scene, tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if err != nil || !keep {
		t.Fatalf("n should advance the day: keep=%v err=%v", keep, err)
	}
	if scene.Sky().Params().CurrentDay != 1 {
		t.Fatalf("unexpected day %d", scene.Sky().Params().CurrentDay)
	}

	keep, _ = handleKey(scene, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !keep || !scene.Paused() {
		t.Fatal("space should pause")
	}

	keep, _ = handleKey(scene, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if keep {
		t.Fatal("q should quit")
	}
	keep, _ = handleKey(scene, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if keep {
		t.Fatal("escape should quit")
	}
}
