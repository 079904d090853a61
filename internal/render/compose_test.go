package render

import (
	"image"
	"math"
	"testing"

	"distant-sky/internal/assets"
	"distant-sky/internal/sky"
)

func generateTestSky(t *testing.T) *sky.Sky {
	t.Helper()
	env := sky.Environment{
		Cities:    assets.DefaultAtlas(),
		Filenames: assets.DefaultFilenames(),
		Palette:   assets.DefaultPalette(),
		Loader:    assets.NewSyntheticLoader(),
	}
	s, err := sky.Generate(sky.Params{CityID: 0, ProvinceID: 3, CurrentDay: 3}, env, sky.DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return s
}

func countChanged(img *image.RGBA, opts Options) int {
	changed := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != opts.Background {
				changed++
			}
		}
	}
	return changed
}

func TestComposeDrawsAroundTheHorizon(t *testing.T) {
	s := generateTestSky(t)
	palette := assets.DefaultPalette().RGBA()
	opts := DefaultOptions()

	total := 0
	for i := 0; i < 4; i++ {
		cam := NewCamera(320, 200)
		cam.Yaw = float64(i) * math.Pi / 2
		dst := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
		Compose(dst, s, cam, palette, opts)
		total += countChanged(dst, opts)
	}
	if total == 0 {
		t.Fatal("expected sky objects to be drawn")
	}
}

func TestComposeFillsBackground(t *testing.T) {
	s := generateTestSky(t)
	opts := DefaultOptions()
	opts.HideStars = true
	cam := NewCamera(64, 40)
	dst := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	// Without a palette only the background can be drawn.
	Compose(dst, s, cam, nil, opts)
	if n := countChanged(dst, opts); n != 0 {
		t.Fatalf("%d pixels differ from the background", n)
	}
}

func TestComposeHideStars(t *testing.T) {
	s := generateTestSky(t)
	palette := assets.DefaultPalette().RGBA()

	opts := DefaultOptions()
	opts.HideStars = true
	cam := NewCamera(320, 200)
	cam.Pitch = -1.3

	withStars := image.NewRGBA(image.Rect(0, 0, 320, 200))
	Compose(withStars, s, cam, palette, DefaultOptions())
	without := image.NewRGBA(image.Rect(0, 0, 320, 200))
	Compose(without, s, cam, palette, opts)

	if countChanged(without, opts) > countChanged(withStars, opts) {
		t.Fatal("hiding stars should never add pixels")
	}
}
