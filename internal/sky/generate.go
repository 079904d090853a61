package sky

import (
	"errors"
	"log/slog"
	"strings"

	"distant-sky/internal/core"
	random "distant-sky/pkg/core"
)

// Params identifies the scene whose sky is generated.
type Params struct {
	CityID     int
	ProvinceID int
	Weather    Weather
	CurrentDay int
}

// Environment bundles the read-only collaborators used during generation.
type Environment struct {
	Cities    CityData
	Filenames Filenames
	Palette   Palette
	Loader    ImageLoader
	Logger    *slog.Logger
}

func (e Environment) validate() error {
	switch {
	case e.Cities == nil:
		return internalf("environment has no city data")
	case e.Palette == nil:
		return internalf("environment has no palette")
	case e.Loader == nil:
		return internalf("environment has no image loader")
	}
	return nil
}

// generator carries the state shared by the placement phases.
type generator struct {
	sky    *Sky
	env    Environment
	cfg    Config
	rng    *random.ArenaRandom
	logger *slog.Logger
}

// Generate runs the placement pass and returns a fully populated sky. Any
// failure aborts the pass; no partial sky is returned.
func Generate(p Params, env Environment, cfg Config) (*Sky, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	if cfg.AnimFrameTime <= 0 {
		cfg.AnimFrameTime = DefaultFrameTime
	}
	if cfg.StarCount <= 0 {
		cfg.StarCount = StarCountFromDensity(StarDensityClassic)
	}
	logger := env.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "distant_sky", "city", p.CityID, "province", p.ProvinceID)

	climate, err := env.Cities.Climate(p.CityID, p.ProvinceID)
	if err != nil {
		return nil, err
	}
	skySeed, err := env.Cities.SkySeed(p.CityID, p.ProvinceID)
	if err != nil {
		return nil, err
	}

	g := &generator{
		sky: &Sky{
			registry: NewRegistry(env.Loader),
			params:   p,
			cfg:      cfg,
			climate:  climate,
			skySeed:  skySeed,
		},
		env:    env,
		cfg:    cfg,
		rng:    random.NewArenaRandom(skySeed),
		logger: logger,
	}

	phases := []struct {
		name string
		run  func() error
	}{
		{"statics", g.placeMountains},
		{"clouds", g.placeClouds},
		{"animated_land", g.placeAnimatedLand},
		{"moons", g.placeMoons},
		{"stars", g.placeStars},
		{"sun", g.placeSun},
	}
	for _, phase := range phases {
		if err := phase.run(); err != nil {
			logger.Debug("sky generation aborted", "phase", phase.name, "error", err)
			return nil, err
		}
	}

	s := g.sky
	logger.Debug("sky generated",
		"climate", climate.String(),
		"weather", p.Weather.String(),
		"land", len(s.land),
		"animated_land", len(s.animLand),
		"air", len(s.air),
		"moons", len(s.moons),
		"stars", len(s.stars),
		"textures", s.registry.TextureCount(),
		"texture_sets", s.registry.TextureSetCount(),
	)
	return s, nil
}

func (g *generator) placeMountains() error {
	sp, err := climateStatics(g.sky.climate)
	if err != nil {
		return err
	}
	base := g.env.Filenames.DistantMountains[sp.template]
	count := (g.rng.Next() % 4) + 2
	return g.placeStatics(count, base, sp.pos, sp.variants, sp.maxDigits, false)
}

func (g *generator) placeClouds() error {
	if g.sky.params.Weather != WeatherClear {
		return nil
	}
	g.rng.Reseed(g.rng.Seed() + uint32(posMod(g.sky.params.CurrentDay, 32)))
	return g.placeStatics(cloudCount, g.env.Filenames.Cloud, cloudPos, cloudVariants, cloudMaxDigits, true)
}

// placeStatics adds numbered horizon art. Objects with a random height become
// air objects, the rest land objects.
func (g *generator) placeStatics(count int, base string, pos, variants, maxDigits int, randomHeight bool) error {
	for i := 0; i < count; i++ {
		variant := VariantNumber(g.rng.Next(), variants)
		filename, err := SubstituteDigits(base, pos, maxDigits, variant)
		if err != nil {
			return missingAsset(base, err)
		}
		tex, err := g.sky.registry.Texture(filename)
		if err != nil {
			return err
		}

		yPos := 0
		if randomHeight {
			yPos = g.rng.Next() % heightLimit
		}
		angle := ArenaAngleToRadians(g.rng.Next() % UniqueAngles)

		if !randomHeight {
			g.sky.land = append(g.sky.land, LandObject{Texture: tex, AngleRadians: angle})
			continue
		}
		g.sky.air = append(g.sky.air, AirObject{
			Texture:      tex,
			AngleRadians: angle,
			Height:       float64(yPos) / heightLimit,
		})
	}
	return nil
}

func (g *generator) placeAnimatedLand() error {
	p := g.sky.params
	if p.ProvinceID != AnimLandProvinceID {
		return nil
	}
	citySeed, err := g.env.Cities.CitySeed(p.CityID, p.ProvinceID)
	if err != nil {
		return err
	}
	location := g.env.Cities.LocalCityPoint(citySeed)
	dist := g.env.Cities.Distance(location, AnimLandOrigin)
	angle := AnimAngle(location, AnimLandOrigin)

	filename := strings.ToUpper(g.env.Filenames.AnimDistantMountains[AnimTier(dist)])

	var set TextureSetID
	if strings.Contains(filename, ".DFA") {
		set, err = g.sky.registry.TextureSet(filename)
	} else {
		set, err = g.sky.registry.SingletonSet(filename)
	}
	if err != nil {
		return err
	}

	frames := g.sky.registry.SetLen(set)
	g.sky.animLand = append(g.sky.animLand, NewAnimatedLandObject(set, frames, angle, g.cfg.AnimFrameTime))
	return nil
}

func (g *generator) placeMoons() error {
	for _, moon := range []MoonType{MoonFirst, MoonSecond} {
		obj, err := g.makeMoon(moon)
		if err != nil {
			return err
		}
		g.sky.moons = append(g.sky.moons, obj)
	}
	return nil
}

func (g *generator) makeMoon(moon MoonType) (MoonObject, error) {
	phase, err := MoonPhaseIndex(moon, g.sky.params.CurrentDay)
	if err != nil {
		return MoonObject{}, err
	}
	filename := strings.ToUpper(g.env.Filenames.Moons[moon])
	tex, err := g.sky.registry.SetFrame(filename, phase)
	if err != nil {
		return MoonObject{}, err
	}
	return MoonObject{
		Texture:      tex,
		PhasePercent: float64(phase) / moonPhases,
		Type:         moon,
	}, nil
}

type substar struct {
	dx, dy int8
	color  uint8
}

type rawStar struct {
	x, y, z  int16
	substars []substar
	// starType is -1 for constellations.
	starType int
}

// drawStars consumes the generator exactly as the legacy star pass does.
func drawStars(rng *random.ArenaRandom, count int, sign CoordSign) []rawStar {
	var planets [planetSlots]bool
	stars := make([]rawStar, 0, count)
	for i := 0; i < count; i++ {
		star := rawStar{starType: -1}
		star.x = sign.randomCoord(rng)
		star.y = sign.randomCoord(rng)
		star.z = sign.randomCoord(rng)

		if selection := rng.Next() % 4; selection != 0 {
			n := 2 + (rng.Next() % 4)
			star.substars = make([]substar, n)
			for j := range star.substars {
				star.substars[j].dx = ConstellationOffset(rng.Next())
				star.substars[j].dy = ConstellationOffset(rng.Next())
				star.substars[j].color = uint8((rng.Next() % substarColorRange) + substarColorBase)
			}
		} else {
			star.starType = DrawStarType(rng, &planets)
		}
		stars = append(stars, star)
	}
	return stars
}

var fallbackStarDirection = core.Vec3{Y: 1}

func starDirection(x, y, z float64) core.Vec3 {
	dir := core.Vec3{X: x, Y: y, Z: z}.Normalized()
	if dir == (core.Vec3{}) {
		return fallbackStarDirection
	}
	return dir
}

func (g *generator) placeStars() error {
	g.rng.Reseed(starSeed)
	for _, star := range drawStars(g.rng, g.cfg.StarCount, g.cfg.CoordSign) {
		x, y, z := float64(star.x), float64(star.y), float64(star.z)
		direction := starDirection(x, y, z)

		if star.starType < 0 {
			for _, sub := range star.substars {
				subDirection := direction
				switch g.cfg.SubstarMode {
				case SubstarShareBase:
				case SubstarOffset:
					subDirection = starDirection(x+float64(sub.dx), y+float64(sub.dy), z)
				default:
					return internalf("invalid substar mode %d", int(g.cfg.SubstarMode))
				}
				small := SmallStar{Color: g.env.Palette.ARGB(sub.color), OffsetX: sub.dx, OffsetY: sub.dy}
				g.sky.stars = append(g.sky.stars, MakeSmallStar(small, subDirection))
			}
			continue
		}

		filename, err := StarFilename(g.env.Filenames.Star, star.starType)
		if err != nil {
			var skyErr *Error
			if errors.As(err, &skyErr) {
				return err
			}
			return missingAsset(g.env.Filenames.Star, err)
		}
		tex, err := g.sky.registry.Texture(filename)
		if err != nil {
			return err
		}
		g.sky.stars = append(g.sky.stars, MakeLargeStar(LargeStar{Texture: tex, Type: star.starType}, direction))
	}
	return nil
}

func (g *generator) placeSun() error {
	tex, err := g.sky.registry.Texture(strings.ToUpper(g.env.Filenames.Sun))
	if err != nil {
		return err
	}
	g.sky.sun = tex
	g.sky.hasSun = true
	return nil
}
