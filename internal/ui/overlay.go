//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"distant-sky/internal/render"
	"distant-sky/internal/sky"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// SkyView is the scene state the overlay annotates.
type SkyView interface {
	Sky() *sky.Sky
	Camera() render.Camera
}

// Overlay draws optional debugging visuals on top of the composed sky.
type Overlay struct {
	view        SkyView
	scale       int
	showHorizon bool
	showObjects bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(view SkyView, scale int) *Overlay {
	o := &Overlay{view: view, scale: scale, showHorizon: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: 1 for the horizon, 2 for object markers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHorizon = !o.showHorizon
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showObjects = !o.showObjects
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHorizon && !o.showObjects {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	cam := o.view.Camera()
	horizon := cam.HorizonY() * float64(scale)
	width := float64(cam.Width * scale)
	face := basicfont.Face7x13

	if o.showHorizon {
		o.drawLine(screen, 0, horizon, width, horizon, 1, color.RGBA{R: 90, G: 130, B: 170, A: 140})
	}
	for _, m := range HorizonMarkers(o.view.Sky(), cam) {
		x := m.X * float64(scale)
		switch m.Kind {
		case "compass":
			if !o.showHorizon {
				continue
			}
			col := color.RGBA{R: 230, G: 230, B: 240, A: 255}
			o.drawLine(screen, x, horizon-6, x, horizon+6, 1, col)
			text.Draw(screen, m.Label, face, int(math.Round(x))-3, int(math.Round(horizon))+20, col)
		default:
			if !o.showObjects {
				continue
			}
			col := markerColor(m.Kind)
			o.drawPoint(screen, x, horizon, 4, col)
			text.Draw(screen, m.Label, face, int(math.Round(x))+4, int(math.Round(horizon))-4, col)
		}
	}
}

func markerColor(kind string) color.RGBA {
	switch kind {
	case "anim":
		return color.RGBA{R: 255, G: 120, B: 40, A: 230}
	case "cloud":
		return color.RGBA{R: 64, G: 164, B: 223, A: 230}
	default:
		return color.RGBA{R: 190, G: 160, B: 80, A: 230}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
