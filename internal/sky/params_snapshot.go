package sky

import (
	"strconv"

	"distant-sky/internal/core"
)

// Parameters describes the sky's inputs and object counts for the HUD.
func (s *Sky) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Location",
			Params: []core.Parameter{
				intParam("city", "City", s.params.CityID),
				intParam("province", "Province", s.params.ProvinceID),
				stringParam("climate", "Climate", s.climate.String()),
				stringParam("sky_seed", "Sky seed", "0x"+strconv.FormatUint(uint64(s.skySeed), 16)),
			},
		},
		{
			Name: "Time",
			Params: []core.Parameter{
				intParam("day", "Day", s.params.CurrentDay),
				stringParam("weather", "Weather", s.params.Weather.String()),
			},
		},
		{
			Name: "Objects",
			Params: []core.Parameter{
				intParam("land", "Land", len(s.land)),
				intParam("animated_land", "Animated land", len(s.animLand)),
				intParam("air", "Clouds", len(s.air)),
				intParam("moons", "Moons", len(s.moons)),
				intParam("stars", "Stars", len(s.stars)),
				boolParam("sun", "Sun", s.hasSun),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("star_count", "Star count", s.cfg.StarCount),
				stringParam("substar_mode", "Substar mode", s.cfg.SubstarMode.String()),
				stringParam("coord_sign", "Coord sign", s.cfg.CoordSign.String()),
				floatParam("anim_frame_time", "Anim frame time", s.cfg.AnimFrameTime),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 4, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
