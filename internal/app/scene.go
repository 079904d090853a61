package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strconv"

	"distant-sky/internal/core"
	"distant-sky/internal/render"
	"distant-sky/internal/sky"
)

// View dimensions of the composed sky before scaling.
const (
	ViewWidth  = sky.IdentityDim
	ViewHeight = 200
)

const (
	turnStep     = math.Pi / 64
	tiltStep     = math.Pi / 128
	maxPitch     = math.Pi / 3
	weatherCount = int(sky.WeatherSnowOvercast2) + 1
)

// Scene owns a generated sky together with the camera looking at it, and
// regenerates the sky when the location or time changes.
type Scene struct {
	env     sky.Environment
	cfg     sky.Config
	params  sky.Params
	sky     *sky.Sky
	palette []color.RGBA
	logger  *slog.Logger

	camera  render.Camera
	options render.Options
	frame   *image.RGBA
	paused  bool
}

// NewScene generates the initial sky for params.
func NewScene(params sky.Params, env sky.Environment, cfg sky.Config, palette []color.RGBA, w, h int) (*Scene, error) {
	if w <= 0 {
		w = ViewWidth
	}
	if h <= 0 {
		h = ViewHeight
	}
	logger := env.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scene{
		env:     env,
		cfg:     cfg,
		palette: palette,
		logger:  logger.With("component", "scene"),
		camera:  render.NewCamera(w, h),
		options: render.DefaultOptions(),
		frame:   image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	if err := s.Regenerate(params); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the sky with one generated for params. On failure
// the previous sky is kept.
func (s *Scene) Regenerate(params sky.Params) error {
	generated, err := sky.Generate(params, s.env, s.cfg)
	if err != nil {
		return fmt.Errorf("generate sky: %w", err)
	}
	s.sky = generated
	s.params = params
	s.logger.Info("sky generated",
		"city", params.CityID,
		"province", params.ProvinceID,
		"day", params.CurrentDay,
		"weather", params.Weather.String(),
	)
	return nil
}

// AdvanceDay moves the scene delta days forward and regenerates.
func (s *Scene) AdvanceDay(delta int) error {
	p := s.params
	p.CurrentDay += delta
	return s.Regenerate(p)
}

// CycleWeather steps to the next weather state and regenerates.
func (s *Scene) CycleWeather() error {
	p := s.params
	p.Weather = sky.Weather((int(p.Weather) + 1) % weatherCount)
	return s.Regenerate(p)
}

// Turn rotates the camera by steps increments; positive turns left.
func (s *Scene) Turn(steps int) {
	s.camera.Yaw = render.WrapAngle(s.camera.Yaw + float64(steps)*turnStep)
}

// Tilt raises or lowers the horizon by steps increments.
func (s *Scene) Tilt(steps int) {
	pitch := s.camera.Pitch + float64(steps)*tiltStep
	s.camera.Pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))
}

// TogglePause freezes or resumes animation.
func (s *Scene) TogglePause() { s.paused = !s.paused }

// Paused reports whether animation is frozen.
func (s *Scene) Paused() bool { return s.paused }

// Advance runs the animation by dt seconds unless paused.
func (s *Scene) Advance(dt float64) {
	if s.paused {
		return
	}
	s.sky.Tick(dt)
}

// Render composes the current sky and returns the reused frame buffer.
func (s *Scene) Render() *image.RGBA {
	render.Compose(s.frame, s.sky, s.camera, s.palette, s.options)
	return s.frame
}

// Resize changes the frame dimensions, keeping the camera orientation.
func (s *Scene) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.camera.Width && h == s.camera.Height) {
		return
	}
	s.camera.Width, s.camera.Height = w, h
	s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Sky returns the current sky.
func (s *Scene) Sky() *sky.Sky { return s.sky }

// Camera returns the current camera.
func (s *Scene) Camera() render.Camera { return s.camera }

// Size returns the frame dimensions.
func (s *Scene) Size() core.Size {
	return core.Size{W: s.camera.Width, H: s.camera.Height}
}

// Parameters extends the sky parameters with the camera state.
func (s *Scene) Parameters() core.ParameterSnapshot {
	snap := s.sky.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			{Key: "yaw", Label: "Yaw", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.camera.Yaw*180/math.Pi, 'f', 1, 64)},
			{Key: "pitch", Label: "Pitch", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.camera.Pitch*180/math.Pi, 'f', 1, 64)},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
		},
	})
	return snap
}
