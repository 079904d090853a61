package ui

import (
	"math"

	"distant-sky/internal/render"
	"distant-sky/internal/sky"
)

// Marker is a labelled screen column on the horizon.
type Marker struct {
	X     float64
	Label string
	// Kind groups markers for coloring: "compass", "land", "anim" or "cloud".
	Kind string
}

var compassPoints = []struct {
	angle float64
	label string
}{
	{0, "E"},
	{math.Pi / 2, "N"},
	{math.Pi, "W"},
	{3 * math.Pi / 2, "S"},
}

// HorizonMarkers lists the visible compass points and horizon objects of s.
func HorizonMarkers(s *sky.Sky, cam render.Camera) []Marker {
	var out []Marker
	for _, p := range compassPoints {
		if x, ok := cam.ProjectAngle(p.angle); ok && x >= 0 && x < float64(cam.Width) {
			out = append(out, Marker{X: x, Label: p.label, Kind: "compass"})
		}
	}
	if s == nil {
		return out
	}
	for i := 0; i < s.LandObjectCount(); i++ {
		land := s.LandObject(i)
		if x, ok := cam.ProjectAngle(land.AngleRadians); ok {
			out = append(out, Marker{X: x, Label: s.Registry().Filename(land.Texture), Kind: "land"})
		}
	}
	for i := 0; i < s.AnimatedLandObjectCount(); i++ {
		anim := s.AnimatedLandObject(i)
		if x, ok := cam.ProjectAngle(anim.AngleRadians()); ok {
			out = append(out, Marker{X: x, Label: s.Registry().SetFilename(anim.TextureSet()), Kind: "anim"})
		}
	}
	for i := 0; i < s.AirObjectCount(); i++ {
		air := s.AirObject(i)
		if x, ok := cam.ProjectAngle(air.AngleRadians); ok {
			out = append(out, Marker{X: x, Label: s.Registry().Filename(air.Texture), Kind: "cloud"})
		}
	}
	return out
}
