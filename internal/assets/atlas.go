package assets

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"distant-sky/internal/core"
	"distant-sky/internal/sky"
)

// Map dimensions of a province map; city points are in this space.
const (
	ProvinceMapWidth  = 320
	ProvinceMapHeight = 200
)

//go:embed data/atlas.json
var defaultAtlasJSON []byte

// ErrUnknownLocation is returned for a city or province not in the atlas.
var ErrUnknownLocation = errors.New("unknown location")

// Rect is a province's footprint on the world map.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// City is one location on a province map.
type City struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Climate string  `json:"climate"`
	SkySeed *uint32 `json:"sky_seed,omitempty"`
}

// Province groups cities and places them on the world map.
type Province struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rect   Rect   `json:"rect"`
	Cities []City `json:"cities"`
}

// DistanceFunc measures two province map points.
type DistanceFunc func(a, b core.Point) int

// Atlas implements sky.CityData over a static list of provinces.
type Atlas struct {
	Provinces []Province `json:"provinces"`

	// DistanceFunc defaults to EuclideanDistance.
	DistanceFunc DistanceFunc `json:"-"`

	climates map[[2]int]sky.Climate
}

// DefaultAtlas returns the embedded atlas.
func DefaultAtlas() *Atlas {
	a, err := parseAtlas(defaultAtlasJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded atlas: %v", err))
	}
	return a
}

// LoadAtlas decodes an atlas from JSON.
func LoadAtlas(r io.Reader) (*Atlas, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read atlas: %w", err)
	}
	return parseAtlas(data)
}

func parseAtlas(data []byte) (*Atlas, error) {
	var a Atlas
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	a.climates = make(map[[2]int]sky.Climate)
	for _, p := range a.Provinces {
		for _, c := range p.Cities {
			climate, err := sky.ParseClimate(c.Climate)
			if err != nil {
				return nil, fmt.Errorf("city %q: %w", c.Name, err)
			}
			a.climates[[2]int{p.ID, c.ID}] = climate
		}
	}
	return &a, nil
}

// Province looks up a province by id.
func (a *Atlas) Province(provinceID int) (*Province, error) {
	for i := range a.Provinces {
		if a.Provinces[i].ID == provinceID {
			return &a.Provinces[i], nil
		}
	}
	return nil, fmt.Errorf("%w: province %d", ErrUnknownLocation, provinceID)
}

// City looks up a city and its province.
func (a *Atlas) City(cityID, provinceID int) (*City, *Province, error) {
	p, err := a.Province(provinceID)
	if err != nil {
		return nil, nil, err
	}
	for i := range p.Cities {
		if p.Cities[i].ID == cityID {
			return &p.Cities[i], p, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: city %d in province %d", ErrUnknownLocation, cityID, provinceID)
}

// Climate implements sky.CityData.
func (a *Atlas) Climate(cityID, provinceID int) (sky.Climate, error) {
	if c, ok := a.climates[[2]int{provinceID, cityID}]; ok {
		return c, nil
	}
	_, _, err := a.City(cityID, provinceID)
	if err == nil {
		err = fmt.Errorf("%w: city %d has no climate", ErrUnknownLocation, cityID)
	}
	return 0, err
}

// CitySeed packs the city's province map point as (x << 16) + y.
func (a *Atlas) CitySeed(cityID, provinceID int) (uint32, error) {
	c, _, err := a.City(cityID, provinceID)
	if err != nil {
		return 0, err
	}
	return packPoint(c.X, c.Y), nil
}

// SkySeed packs the city's world map point unless the city overrides it.
func (a *Atlas) SkySeed(cityID, provinceID int) (uint32, error) {
	c, p, err := a.City(cityID, provinceID)
	if err != nil {
		return 0, err
	}
	if c.SkySeed != nil {
		return *c.SkySeed, nil
	}
	g := LocalPointToGlobal(core.Point{X: c.X, Y: c.Y}, p.Rect)
	return packPoint(g.X, g.Y), nil
}

// LocalCityPoint unpacks a city seed.
func (a *Atlas) LocalCityPoint(citySeed uint32) core.Point {
	return core.Point{X: int(citySeed >> 16), Y: int(citySeed & 0xFFFF)}
}

// Distance implements sky.CityData.
func (a *Atlas) Distance(p, q core.Point) int {
	if a.DistanceFunc != nil {
		return a.DistanceFunc(p, q)
	}
	return EuclideanDistance(p, q)
}

// LocalPointToGlobal scales a province map point into the province's
// rectangle on the world map.
func LocalPointToGlobal(local core.Point, r Rect) core.Point {
	return core.Point{
		X: (local.X*r.W)/ProvinceMapWidth + r.X,
		Y: (local.Y*r.H)/ProvinceMapHeight + r.Y,
	}
}

// EuclideanDistance is the floored straight-line distance.
func EuclideanDistance(a, b core.Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Floor(math.Sqrt(dx*dx + dy*dy)))
}

// ArenaDistance is the integer approximation max + min/4 of the axis deltas.
func ArenaDistance(a, b core.Point) int {
	dx := absInt(a.X - b.X)
	dy := absInt(a.Y - b.Y)
	return max(dx, dy) + min(dx, dy)/4
}

func packPoint(x, y int) uint32 {
	return uint32(x)<<16 + uint32(y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
