package render

import (
	"image"
	"image/color"
	"math"

	"distant-sky/internal/core"
	"distant-sky/internal/sky"
)

// Options controls how a sky is composed.
type Options struct {
	Background color.RGBA
	// SunDirection and MoonDirections place objects that carry no direction
	// of their own.
	SunDirection   core.Vec3
	MoonDirections [2]core.Vec3
	HideStars      bool
}

// DefaultOptions returns a night sky background with the sun low in the
// east and the moons in the south.
func DefaultOptions() Options {
	return Options{
		Background:     color.RGBA{R: 10, G: 12, B: 30, A: 255},
		SunDirection:   core.Vec3{X: 1, Y: 0.35, Z: 0},
		MoonDirections: [2]core.Vec3{{X: 0.3, Y: 0.6, Z: -1}, {X: -0.3, Y: 0.45, Z: -1}},
	}
}

// Compose draws every object of s into dst as seen through cam. Objects are
// layered back to front: stars, sun, moons, clouds, then the horizon.
func Compose(dst *image.RGBA, s *sky.Sky, cam Camera, palette []color.RGBA, opts Options) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, opts.Background)
		}
	}
	scale := cam.PixelScale()

	if !opts.HideStars {
		for i := 0; i < s.StarObjectCount(); i++ {
			star := s.StarObject(i)
			x, y, ok := cam.ProjectDirection(star.Direction())
			if !ok {
				continue
			}
			switch star.Kind() {
			case sky.StarSmall:
				// Constellation members spread around the shared base point.
				small := star.Small()
				px := int(x) + int(small.OffsetX)/8*scale
				py := int(y) + int(small.OffsetY)/8*scale
				fillRect(dst, b, px, py, max(1, scale/2), ColorFromARGB(small.Color))
			case sky.StarLarge:
				blitCentered(dst, s.Texture(star.Large().Texture), x, y, scale, palette)
			}
		}
	}

	if s.HasSun() {
		if x, y, ok := cam.ProjectDirection(opts.SunDirection); ok {
			blitCentered(dst, s.Texture(s.SunTexture()), x, y, scale, palette)
		}
	}

	for i := 0; i < s.MoonObjectCount(); i++ {
		moon := s.MoonObject(i)
		dir := opts.MoonDirections[int(moon.Type)%len(opts.MoonDirections)]
		if x, y, ok := cam.ProjectDirection(dir); ok {
			blitCentered(dst, s.Texture(moon.Texture), x, y, scale, palette)
		}
	}

	horizon := cam.HorizonY()
	for i := 0; i < s.AirObjectCount(); i++ {
		air := s.AirObject(i)
		x, ok := cam.ProjectAngle(air.AngleRadians)
		if !ok {
			continue
		}
		view := s.Texture(air.Texture)
		y := horizon - air.Height*horizon - float64(view.Height()*scale)
		blitIndexed(dst, view, int(x)-view.Width()*scale/2, int(math.Round(y)), scale, palette)
	}

	for i := 0; i < s.AnimatedLandObjectCount(); i++ {
		anim := s.AnimatedLandObject(i)
		x, ok := cam.ProjectAngle(anim.AngleRadians())
		if !ok {
			continue
		}
		blitOnHorizon(dst, s.TextureSetFrame(anim.TextureSet(), anim.Index()), x, horizon, scale, palette)
	}

	for i := 0; i < s.LandObjectCount(); i++ {
		land := s.LandObject(i)
		x, ok := cam.ProjectAngle(land.AngleRadians)
		if !ok {
			continue
		}
		blitOnHorizon(dst, s.Texture(land.Texture), x, horizon, scale, palette)
	}
}

func blitCentered(dst *image.RGBA, view core.ImageView, x, y float64, scale int, palette []color.RGBA) {
	if !view.Valid() {
		return
	}
	left := int(math.Round(x)) - view.Width()*scale/2
	top := int(math.Round(y)) - view.Height()*scale/2
	blitIndexed(dst, view, left, top, scale, palette)
}

// blitOnHorizon anchors the bottom edge of view on the horizon line.
func blitOnHorizon(dst *image.RGBA, view core.ImageView, x, horizon float64, scale int, palette []color.RGBA) {
	if !view.Valid() {
		return
	}
	left := int(math.Round(x)) - view.Width()*scale/2
	top := int(math.Round(horizon)) - view.Height()*scale
	blitIndexed(dst, view, left, top, scale, palette)
}
