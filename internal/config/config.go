// Package config gathers command settings from defaults, a .env file, the
// environment and finally command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"distant-sky/internal/assets"
	"distant-sky/internal/sky"
)

// Config holds the settings shared by the sky commands.
type Config struct {
	AssetDir  string
	Atlas     string
	Palette   string
	Filenames string

	LogLevel string
	LogJSON  bool

	City     int
	Province int
	Day      int
	Weather  string

	StarDensity   string
	StarCount     int
	SubstarMode   string
	CoordSign     string
	AnimFrameTime float64

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel:      "info",
		Province:      3,
		Weather:       sky.WeatherClear.String(),
		StarDensity:   "classic",
		StarCount:     -1,
		SubstarMode:   sky.SubstarShareBase.String(),
		CoordSign:     sky.CoordSignClear.String(),
		AnimFrameTime: sky.DefaultFrameTime,
		Scale:         3,
		TPS:           60,
	}
}

// Load reads the optional .env files and applies SKY_* environment
// variables over the defaults. Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c := NewConfig()
	c.AssetDir = getEnv("SKY_ASSET_DIR", c.AssetDir)
	c.Atlas = getEnv("SKY_ATLAS", c.Atlas)
	c.Palette = getEnv("SKY_PALETTE", c.Palette)
	c.Filenames = getEnv("SKY_FILENAMES", c.Filenames)
	c.LogLevel = getEnv("SKY_LOG_LEVEL", c.LogLevel)
	c.LogJSON = getEnv("SKY_LOG_JSON", strconv.FormatBool(c.LogJSON)) == "true"
	c.StarDensity = getEnv("SKY_STAR_DENSITY", c.StarDensity)
	c.SubstarMode = getEnv("SKY_SUBSTAR_MODE", c.SubstarMode)
	c.CoordSign = getEnv("SKY_COORD_SIGN", c.CoordSign)
	if v, err := strconv.Atoi(getEnv("SKY_SCALE", strconv.Itoa(c.Scale))); err == nil && v > 0 {
		c.Scale = v
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(set *flag.FlagSet) {
	set.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory of sky images (empty draws placeholder art)")
	set.StringVar(&c.Atlas, "atlas", c.Atlas, "city atlas JSON (empty uses the bundled atlas)")
	set.StringVar(&c.Palette, "palette", c.Palette, "palette .COL file (empty uses the default palette)")
	set.StringVar(&c.Filenames, "filenames", c.Filenames, "filename table JSON")
	set.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	set.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log as JSON")
	set.IntVar(&c.City, "city", c.City, "city id within the province")
	set.IntVar(&c.Province, "province", c.Province, "province id")
	set.IntVar(&c.Day, "day", c.Day, "current day")
	set.StringVar(&c.Weather, "weather", c.Weather, "weather: clear, overcast, rain, snow, ...")
	set.StringVar(&c.StarDensity, "stars", c.StarDensity, "star density: classic, moderate, high")
	set.IntVar(&c.StarCount, "star-count", c.StarCount, "exact star count (overrides -stars when > 0)")
	set.StringVar(&c.SubstarMode, "substars", c.SubstarMode, "constellation substar mode: share, offset")
	set.StringVar(&c.CoordSign, "coord-sign", c.CoordSign, "star coordinates negated when bit 1 is: clear, set")
	set.Float64Var(&c.AnimFrameTime, "frame-time", c.AnimFrameTime, "animated land seconds per frame")
	set.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	set.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// SkyConfig converts the generation tunables into a sky.Config.
func (c *Config) SkyConfig() sky.Config {
	m := map[string]string{
		"star_density":    c.StarDensity,
		"substar_mode":    c.SubstarMode,
		"coord_sign":      c.CoordSign,
		"anim_frame_time": strconv.FormatFloat(c.AnimFrameTime, 'g', -1, 64),
	}
	if c.StarCount > 0 {
		m["star_count"] = strconv.Itoa(c.StarCount)
	}
	return sky.FromMap(m)
}

// Params returns the scene inputs.
func (c *Config) Params() (sky.Params, error) {
	weather, err := sky.ParseWeather(c.Weather)
	if err != nil {
		return sky.Params{}, err
	}
	return sky.Params{
		CityID:     c.City,
		ProvinceID: c.Province,
		Weather:    weather,
		CurrentDay: c.Day,
	}, nil
}

// Environment builds the generation collaborators named by the config.
func (c *Config) Environment(logger *slog.Logger) (sky.Environment, *assets.Palette, error) {
	palette := assets.DefaultPalette()
	if c.Palette != "" {
		f, err := os.Open(c.Palette)
		if err != nil {
			return sky.Environment{}, nil, fmt.Errorf("open palette: %w", err)
		}
		defer f.Close()
		if palette, err = assets.ReadCOL(f); err != nil {
			return sky.Environment{}, nil, err
		}
	}

	atlas := assets.DefaultAtlas()
	if c.Atlas != "" {
		f, err := os.Open(c.Atlas)
		if err != nil {
			return sky.Environment{}, nil, fmt.Errorf("open atlas: %w", err)
		}
		defer f.Close()
		if atlas, err = assets.LoadAtlas(f); err != nil {
			return sky.Environment{}, nil, err
		}
	}

	names := assets.DefaultFilenames()
	if c.Filenames != "" {
		f, err := os.Open(c.Filenames)
		if err != nil {
			return sky.Environment{}, nil, fmt.Errorf("open filenames: %w", err)
		}
		defer f.Close()
		if names, err = assets.LoadFilenames(f); err != nil {
			return sky.Environment{}, nil, err
		}
	}

	var loader sky.ImageLoader = assets.NewSyntheticLoader()
	if c.AssetDir != "" {
		loader = assets.NewDirLoader(os.DirFS(c.AssetDir), ".", palette)
	}

	return sky.Environment{
		Cities:    atlas,
		Filenames: names,
		Palette:   palette,
		Loader:    loader,
		Logger:    logger,
	}, palette, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
