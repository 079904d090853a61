package sky

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"distant-sky/internal/core"
	random "distant-sky/pkg/core"
)

// UniqueAngles is the number of distinct legacy horizon directions.
const UniqueAngles = 512

const (
	heightLimit = 64

	cloudCount     = 7
	cloudPos       = 5
	cloudVariants  = 17
	cloudMaxDigits = 2

	moonPhases    = 32
	moonPhaseLead = 14

	starSeed        = 0x12345679
	starTypes       = 8
	firstPlanetType = 5
	planetSlots     = starTypes - firstPlanetType

	substarColorBase  = 64
	substarColorRange = 10

	// AnimLandProvinceID is the only province with animated distant land.
	AnimLandProvinceID = 3

	animNearDistance = 80
	animMidDistance  = 150
)

// AnimLandOrigin is the province-map position of the animated land.
var AnimLandOrigin = core.Point{X: 132, Y: 52}

// staticParams selects and numbers the climate's mountain art.
type staticParams struct {
	template  int
	pos       int
	variants  int
	maxDigits int
}

func climateStatics(c Climate) (staticParams, error) {
	switch c {
	case ClimateTemperate:
		return staticParams{template: 2, pos: 4, variants: 10, maxDigits: 2}, nil
	case ClimateDesert:
		return staticParams{template: 1, pos: 6, variants: 4, maxDigits: 1}, nil
	case ClimateMountain:
		return staticParams{template: 0, pos: 6, variants: 11, maxDigits: 2}, nil
	default:
		return staticParams{}, invalidClimatef("invalid climate type %d", int(c))
	}
}

// ArenaAngleToRadians converts a legacy angle (0 = south, 128 = west,
// clockwise, 512 per turn) into counter-clockwise radians with 0 = east.
func ArenaAngleToRadians(raw int) float64 {
	arenaRadians := 2 * math.Pi * (float64(raw) / UniqueAngles)
	flipped := 2*math.Pi - arenaRadians
	return flipped - math.Pi/2
}

// VariantNumber maps a raw draw onto the 1-based variant range [1, variants].
func VariantNumber(raw, variants int) int {
	v := raw % variants
	if v == 0 {
		return variants
	}
	return v
}

// SubstituteDigits writes value right-justified into the maxDigits characters
// of base starting at pos and uppercases the result.
func SubstituteDigits(base string, pos, maxDigits, value int) (string, error) {
	if value < 0 {
		return "", fmt.Errorf("variant %d is negative", value)
	}
	digits := strconv.Itoa(value)
	if len(digits) > maxDigits {
		return "", fmt.Errorf("variant %d does not fit in %d digits", value, maxDigits)
	}
	if pos < 0 || pos+maxDigits > len(base) {
		return "", fmt.Errorf("digit range [%d,%d) outside %q", pos, pos+maxDigits, base)
	}
	name := []byte(base)
	offset := maxDigits - len(digits)
	copy(name[pos+offset:], digits)
	return strings.ToUpper(string(name)), nil
}

// AnimTier picks the animated land template for a map distance.
func AnimTier(dist int) int {
	switch {
	case dist < animNearDistance:
		return 0
	case dist < animMidDistance:
		return 1
	default:
		return 2
	}
}

// AnimAngle returns the horizon angle from a location toward the animated land.
func AnimAngle(location, origin core.Point) float64 {
	return math.Atan2(float64(location.Y-origin.Y), float64(origin.X-location.X))
}

// MoonPhaseIndex returns the phase frame of a moon on the given day.
func MoonPhaseIndex(moon MoonType, day int) (int, error) {
	switch moon {
	case MoonFirst:
		return posMod(day, moonPhases), nil
	case MoonSecond:
		return posMod(day+moonPhaseLead, moonPhases), nil
	default:
		return 0, internalf("invalid moon type %d", int(moon))
	}
}

// RandomCoord draws one signed star coordinate, negated when bit 1 of the
// magnitude is clear.
func RandomCoord(r *random.ArenaRandom) int16 {
	return CoordSignClear.randomCoord(r)
}

func (m CoordSign) randomCoord(r *random.ArenaRandom) int16 {
	d := int16((0x800 + r.Next()) & 0x0FFF)
	if (d&2 == 0) == (m == CoordSignClear) {
		return -d
	}
	return d
}

// ConstellationOffset converts a raw draw into a signed constellation offset.
// The conversion to int16 keeps the sign bit for the arithmetic shift.
func ConstellationOffset(raw int) int8 {
	return int8(int16(uint16(raw)) >> 9)
}

// DrawStarType samples a star type in [0, 8), redrawing while the value
// names a planet slot that is already taken. planets records slot usage.
func DrawStarType(r *random.ArenaRandom, planets *[planetSlots]bool) int {
	for {
		value := r.Next() % starTypes
		if value < firstPlanetType {
			return value
		}
		if !planets[value-firstPlanetType] {
			planets[value-firstPlanetType] = true
			return value
		}
	}
}

// StarFilename replaces the first '1' of the star template with type+1.
func StarFilename(template string, starType int) (string, error) {
	if starType < 0 || starType >= starTypes {
		return "", internalf("invalid star type %d", starType)
	}
	index := strings.IndexByte(template, '1')
	if index < 0 {
		return "", fmt.Errorf("star template %q has no placeholder digit", template)
	}
	name := template[:index] + strconv.Itoa(starType+1) + template[index+1:]
	return strings.ToUpper(name), nil
}

func posMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
