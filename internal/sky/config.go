package sky

import (
	"strconv"
	"strings"
)

// StarDensity selects how many stars the starfield generates.
type StarDensity int

const (
	// StarDensityClassic matches the legacy forty-star sky.
	StarDensityClassic StarDensity = iota
	StarDensityModerate
	StarDensityHigh
)

// StarCountFromDensity returns the number of stars for a density setting.
func StarCountFromDensity(d StarDensity) int {
	switch d {
	case StarDensityModerate:
		return 1000
	case StarDensityHigh:
		return 8000
	default:
		return 40
	}
}

// SubstarMode controls how constellation offsets affect substar directions.
type SubstarMode int

const (
	// SubstarShareBase places every substar on the constellation direction.
	SubstarShareBase SubstarMode = iota
	// SubstarOffset adds the raw (dx, dy) offset to the constellation
	// coordinates before normalizing.
	SubstarOffset
)

func (m SubstarMode) String() string {
	if m == SubstarOffset {
		return "offset"
	}
	return "share"
}

// CoordSign selects which star coordinates the starfield negates.
type CoordSign int

const (
	// CoordSignClear negates a coordinate when bit 1 of its magnitude is clear.
	CoordSignClear CoordSign = iota
	// CoordSignSet negates a coordinate when bit 1 is set, mirroring every
	// star through the origin relative to CoordSignClear.
	CoordSignSet
)

func (m CoordSign) String() string {
	if m == CoordSignSet {
		return "set"
	}
	return "clear"
}

// Config holds tunables that are not part of the location inputs.
type Config struct {
	StarCount     int
	SubstarMode   SubstarMode
	CoordSign     CoordSign
	AnimFrameTime float64
}

// DefaultConfig returns the legacy-compatible configuration.
func DefaultConfig() Config {
	return Config{
		StarCount:     StarCountFromDensity(StarDensityClassic),
		SubstarMode:   SubstarShareBase,
		CoordSign:     CoordSignClear,
		AnimFrameTime: DefaultFrameTime,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["star_density"]; ok {
		switch strings.ToLower(v) {
		case "classic":
			c.StarCount = StarCountFromDensity(StarDensityClassic)
		case "moderate":
			c.StarCount = StarCountFromDensity(StarDensityModerate)
		case "high":
			c.StarCount = StarCountFromDensity(StarDensityHigh)
		}
	}
	if v, ok := cfg["star_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StarCount = parsed
		}
	}
	if v, ok := cfg["substar_mode"]; ok {
		switch strings.ToLower(v) {
		case "share":
			c.SubstarMode = SubstarShareBase
		case "offset":
			c.SubstarMode = SubstarOffset
		}
	}
	if v, ok := cfg["coord_sign"]; ok {
		switch strings.ToLower(v) {
		case "clear":
			c.CoordSign = CoordSignClear
		case "set":
			c.CoordSign = CoordSignSet
		}
	}
	if v, ok := cfg["anim_frame_time"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.AnimFrameTime = parsed
		}
	}
	return c
}
