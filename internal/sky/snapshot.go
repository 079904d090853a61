package sky

import "fmt"

// Snapshot is a serializable description of a generated sky with handles
// replaced by the filenames they were registered under.
type Snapshot struct {
	CityID       int                    `json:"city_id"`
	ProvinceID   int                    `json:"province_id"`
	Weather      string                 `json:"weather"`
	CurrentDay   int                    `json:"current_day"`
	Climate      string                 `json:"climate"`
	SkySeed      uint32                 `json:"sky_seed"`
	Land         []LandSnapshot         `json:"land"`
	AnimatedLand []AnimatedLandSnapshot `json:"animated_land"`
	Air          []AirSnapshot          `json:"air"`
	Moons        []MoonSnapshot         `json:"moons"`
	Stars        []StarSnapshot         `json:"stars"`
	Sun          string                 `json:"sun,omitempty"`
}

// LandSnapshot describes one horizon object.
type LandSnapshot struct {
	Filename     string  `json:"filename"`
	AngleRadians float64 `json:"angle_radians"`
}

// AnimatedLandSnapshot describes one animated horizon object.
type AnimatedLandSnapshot struct {
	Filename     string  `json:"filename"`
	Frames       int     `json:"frames" jsonschema:"minimum=1"`
	AngleRadians float64 `json:"angle_radians"`
	FrameTime    float64 `json:"frame_time" jsonschema:"minimum=0"`
	Index        int     `json:"index" jsonschema:"minimum=0"`
}

// AirSnapshot describes one cloud.
type AirSnapshot struct {
	Filename     string  `json:"filename"`
	AngleRadians float64 `json:"angle_radians"`
	Height       float64 `json:"height" jsonschema:"minimum=0,maximum=1"`
}

// MoonSnapshot describes one moon.
type MoonSnapshot struct {
	Filename     string  `json:"filename"`
	Type         string  `json:"type" jsonschema:"enum=first,enum=second"`
	PhasePercent float64 `json:"phase_percent" jsonschema:"minimum=0,maximum=1"`
}

// StarSnapshot describes one star. Small stars carry a color, large stars a
// filename.
type StarSnapshot struct {
	Kind      string     `json:"kind" jsonschema:"enum=small,enum=large"`
	Color     uint32     `json:"color,omitempty"`
	Offset    [2]int8    `json:"offset,omitempty"`
	Filename  string     `json:"filename,omitempty"`
	Type      int        `json:"type,omitempty"`
	Direction [3]float64 `json:"direction"`
}

// Snapshot captures the current state of the sky.
func (s *Sky) Snapshot() Snapshot {
	reg := s.registry
	snap := Snapshot{
		CityID:       s.params.CityID,
		ProvinceID:   s.params.ProvinceID,
		Weather:      s.params.Weather.String(),
		CurrentDay:   s.params.CurrentDay,
		Climate:      s.climate.String(),
		SkySeed:      s.skySeed,
		Land:         make([]LandSnapshot, 0, len(s.land)),
		AnimatedLand: make([]AnimatedLandSnapshot, 0, len(s.animLand)),
		Air:          make([]AirSnapshot, 0, len(s.air)),
		Moons:        make([]MoonSnapshot, 0, len(s.moons)),
		Stars:        make([]StarSnapshot, 0, len(s.stars)),
	}
	for _, l := range s.land {
		snap.Land = append(snap.Land, LandSnapshot{Filename: reg.Filename(l.Texture), AngleRadians: l.AngleRadians})
	}
	for i := range s.animLand {
		a := &s.animLand[i]
		snap.AnimatedLand = append(snap.AnimatedLand, AnimatedLandSnapshot{
			Filename:     reg.SetFilename(a.TextureSet()),
			Frames:       a.FrameCount(),
			AngleRadians: a.AngleRadians(),
			FrameTime:    a.FrameTime(),
			Index:        a.Index(),
		})
	}
	for _, a := range s.air {
		snap.Air = append(snap.Air, AirSnapshot{Filename: reg.Filename(a.Texture), AngleRadians: a.AngleRadians, Height: a.Height})
	}
	for _, m := range s.moons {
		snap.Moons = append(snap.Moons, MoonSnapshot{Filename: reg.Filename(m.Texture), Type: m.Type.String(), PhasePercent: m.PhasePercent})
	}
	for _, star := range s.stars {
		d := star.Direction()
		entry := StarSnapshot{Kind: star.Kind().String(), Direction: [3]float64{d.X, d.Y, d.Z}}
		switch star.Kind() {
		case StarSmall:
			small := star.Small()
			entry.Color = small.Color
			entry.Offset = [2]int8{small.OffsetX, small.OffsetY}
		case StarLarge:
			large := star.Large()
			entry.Filename = reg.Filename(large.Texture)
			entry.Type = large.Type
		default:
			panic(fmt.Sprintf("sky: unhandled star kind %v", star.Kind()))
		}
		snap.Stars = append(snap.Stars, entry)
	}
	if s.hasSun {
		snap.Sun = reg.Filename(s.sun)
	}
	return snap
}
