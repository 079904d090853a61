//go:build ebiten

package app

import (
	"time"

	"distant-sky/internal/core"
	"distant-sky/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the sky view.
const HUDWidth = 220

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene   *Scene
	img     *ebiten.Image
	clock   *core.FrameClock
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
}

// New constructs a Game drawing scene at the given pixel scale.
func New(scene *Scene, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := scene.Size()
	return &Game{
		scene:   scene,
		img:     ebiten.NewImage(size.W, size.H),
		clock:   core.NewFrameClock(250 * time.Millisecond),
		overlay: ui.NewOverlay(scene, scale),
		hud:     ui.NewHUD(scene, HUDWidth),
		scale:   scale,
	}
}

// Update handles input and advances the sky animation by wall time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.TogglePause()
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.scene.Turn(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.scene.Turn(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.scene.Tilt(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.scene.Tilt(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.scene.AdvanceDay(1); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := g.scene.AdvanceDay(-1); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if err := g.scene.CycleWeather(); err != nil {
			return err
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update()
	}

	g.scene.Advance(g.clock.Delta())
	return nil
}

// Draw renders the composed sky, overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.scene.Render()
	g.img.WritePixels(frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.scene.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
