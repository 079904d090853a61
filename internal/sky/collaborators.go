package sky

import (
	"fmt"
	"strings"

	"distant-sky/internal/core"
)

// Climate classifies the terrain around a city.
type Climate int

const (
	ClimateTemperate Climate = iota
	ClimateDesert
	ClimateMountain
)

func (c Climate) String() string {
	switch c {
	case ClimateTemperate:
		return "temperate"
	case ClimateDesert:
		return "desert"
	case ClimateMountain:
		return "mountain"
	default:
		return fmt.Sprintf("climate(%d)", int(c))
	}
}

// ParseClimate converts a case-insensitive name into a Climate.
func ParseClimate(s string) (Climate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temperate":
		return ClimateTemperate, nil
	case "desert":
		return ClimateDesert, nil
	case "mountain":
		return ClimateMountain, nil
	}
	return 0, invalidClimatef("unknown climate %q", s)
}

// Weather is the current weather state of a scene.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherOvercast
	WeatherRain
	WeatherSnow
	WeatherSnowOvercast
	WeatherRain2
	WeatherOvercast2
	WeatherSnowOvercast2
)

var weatherNames = [...]string{
	WeatherClear:         "clear",
	WeatherOvercast:      "overcast",
	WeatherRain:          "rain",
	WeatherSnow:          "snow",
	WeatherSnowOvercast:  "snow_overcast",
	WeatherRain2:         "rain2",
	WeatherOvercast2:     "overcast2",
	WeatherSnowOvercast2: "snow_overcast2",
}

func (w Weather) String() string {
	if w >= 0 && int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return fmt.Sprintf("weather(%d)", int(w))
}

// ParseWeather converts a case-insensitive name into a Weather.
func ParseWeather(s string) (Weather, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weatherNames {
		if n == name {
			return Weather(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather %q", s)
}

// CityData answers location questions for the placement pass.
type CityData interface {
	Climate(cityID, provinceID int) (Climate, error)
	SkySeed(cityID, provinceID int) (uint32, error)
	CitySeed(cityID, provinceID int) (uint32, error)
	LocalCityPoint(citySeed uint32) core.Point
	Distance(a, b core.Point) int
}

// Palette resolves palette indices into packed ARGB colors.
type Palette interface {
	ARGB(index uint8) uint32
}

// ImageLoader decodes images by filename.
type ImageLoader interface {
	LoadImage(name string) (*core.IndexedImage, error)
	LoadImageSet(name string) ([]*core.IndexedImage, error)
}

// Filenames holds the base filename templates used by the placement pass.
type Filenames struct {
	// DistantMountains is ordered mountain, desert, temperate.
	DistantMountains [3]string `json:"distant_mountains"`
	Cloud            string    `json:"cloud"`
	// AnimDistantMountains is ordered near, middle, far.
	AnimDistantMountains [3]string `json:"anim_distant_mountains"`
	Moons                [2]string `json:"moons"`
	Star                 string    `json:"star"`
	Sun                  string    `json:"sun"`
}
