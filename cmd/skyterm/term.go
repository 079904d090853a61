package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"distant-sky/internal/app"
)

const halfBlock = '▀'

// frameSize is the pixel size of a frame shown on a w x h cell terminal
// with one status row. Each cell shows two stacked pixels.
func frameSize(w, h int) (int, int) {
	rows := h - 1
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	return w, rows * 2
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawFrame paints frame onto screen using upper half blocks: the
// foreground carries the upper pixel, the background the lower one.
func drawFrame(screen tcell.Screen, frame *image.RGBA) {
	b := frame.Bounds()
	for cy := 0; cy*2 < b.Dy(); cy++ {
		for cx := 0; cx < b.Dx(); cx++ {
			top := frame.RGBAAt(b.Min.X+cx, b.Min.Y+cy*2)
			bottom := top
			if cy*2+1 < b.Dy() {
				bottom = frame.RGBAAt(b.Min.X+cx, b.Min.Y+cy*2+1)
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func drawStatus(screen tcell.Screen, scene *app.Scene, row int) {
	s := scene.Sky()
	p := s.Params()
	status := fmt.Sprintf(" day %d  %s  %s  land %d  clouds %d  stars %d ",
		p.CurrentDay, p.Weather, s.Climate(), s.LandObjectCount(), s.AirObjectCount(), s.StarObjectCount())
	if scene.Paused() {
		status += " [paused]"
	}
	w, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	runes := []rune(status)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		screen.SetContent(x, row, r, nil, style)
	}
}

// handleKey applies a key press to the scene. It returns false to quit.
func handleKey(scene *app.Scene, ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyLeft:
		scene.Turn(2)
	case tcell.KeyRight:
		scene.Turn(-2)
	case tcell.KeyUp:
		scene.Tilt(2)
	case tcell.KeyDown:
		scene.Tilt(-2)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false, nil
		case ' ':
			scene.TogglePause()
		case 'n':
			return true, scene.AdvanceDay(1)
		case 'p':
			return true, scene.AdvanceDay(-1)
		case 'w':
			return true, scene.CycleWeather()
		}
	}
	return true, nil
}
