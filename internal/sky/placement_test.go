package sky

import (
	"errors"
	"math"
	"testing"

	random "distant-sky/pkg/core"
)

func TestSubstituteDigits(t *testing.T) {
	got, err := SubstituteDigits("MNT00.IMG", 3, 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "MNT07.IMG" {
		t.Fatalf("expected MNT07.IMG, got %s", got)
	}

	got, err = SubstituteDigits("MNT00.IMG", 3, 2, VariantNumber(0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "MNT10.IMG" {
		t.Fatalf("expected MNT10.IMG, got %s", got)
	}

	got, err = SubstituteDigits("desert0.img", 6, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "DESERT3.IMG" {
		t.Fatalf("expected uppercased DESERT3.IMG, got %s", got)
	}

	if _, err := SubstituteDigits("MNT00.IMG", 3, 1, 12); err == nil {
		t.Fatal("expected error for too many digits")
	}
	if _, err := SubstituteDigits("MN0", 2, 2, 1); err == nil {
		t.Fatal("expected error for range past end of name")
	}
}

func TestVariantNumber(t *testing.T) {
	cases := []struct{ raw, variants, want int }{
		{0, 10, 10},
		{7, 10, 7},
		{20, 10, 10},
		{34, 17, 17},
		{35, 17, 1},
	}
	for _, c := range cases {
		if got := VariantNumber(c.raw, c.variants); got != c.want {
			t.Fatalf("VariantNumber(%d, %d) = %d, expected %d", c.raw, c.variants, got, c.want)
		}
	}
}

func TestArenaAngleToRadians(t *testing.T) {
	const eps = 1e-12
	if got := ArenaAngleToRadians(384); math.Abs(got) > eps {
		t.Fatalf("east (384) should map to 0, got %f", got)
	}
	if got := ArenaAngleToRadians(128); math.Abs(got-math.Pi) > eps {
		t.Fatalf("west (128) should map to pi, got %f", got)
	}
	if got := ArenaAngleToRadians(0); math.Abs(got-3*math.Pi/2) > eps {
		t.Fatalf("south (0) should map to 3pi/2, got %f", got)
	}
	if got := ArenaAngleToRadians(256); math.Abs(got-math.Pi/2) > eps {
		t.Fatalf("north (256) should map to pi/2, got %f", got)
	}

	for raw := 0; raw < UniqueAngles; raw++ {
		a := ArenaAngleToRadians(raw)
		b := ArenaAngleToRadians(raw + UniqueAngles)
		if math.Abs((a-b)-2*math.Pi) > 1e-9 {
			t.Fatalf("period broken at %d: %f vs %f", raw, a, b)
		}
		if raw > 0 && ArenaAngleToRadians(raw) >= ArenaAngleToRadians(raw-1) {
			t.Fatalf("mapping not monotonic at %d", raw)
		}
	}
}

func TestMoonPhaseIndex(t *testing.T) {
	cases := []struct {
		day           int
		first, second int
	}{
		{10, 10, 24},
		{50, 18, 0},
		{0, 0, 14},
		{31, 31, 13},
	}
	for _, c := range cases {
		first, err := MoonPhaseIndex(MoonFirst, c.day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := MoonPhaseIndex(MoonSecond, c.day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != c.first || second != c.second {
			t.Fatalf("day %d: phases (%d, %d), expected (%d, %d)", c.day, first, second, c.first, c.second)
		}
	}

	if _, err := MoonPhaseIndex(MoonType(7), 1); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected internal error for bad moon type, got %v", err)
	}
}

func TestAnimTier(t *testing.T) {
	cases := map[int]int{0: 0, 79: 0, 80: 1, 149: 1, 150: 2, 400: 2}
	for dist, want := range cases {
		if got := AnimTier(dist); got != want {
			t.Fatalf("AnimTier(%d) = %d, expected %d", dist, got, want)
		}
	}
}

func TestAnimAngle(t *testing.T) {
	// Directly west of the origin on the map means the land is due east.
	if got := AnimAngle(AnimLandOrigin.Add(-10, 0), AnimLandOrigin); math.Abs(got) > 1e-12 {
		t.Fatalf("expected 0, got %f", got)
	}
	// South of the origin (larger y) puts the land north.
	if got := AnimAngle(AnimLandOrigin.Add(0, 10), AnimLandOrigin); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("expected pi/2, got %f", got)
	}
}

func TestStarFilename(t *testing.T) {
	got, err := StarFilename("star1.img", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "STAR7.IMG" {
		t.Fatalf("expected STAR7.IMG, got %s", got)
	}
	if _, err := StarFilename("star.img", 0); err == nil {
		t.Fatal("expected error for template without placeholder")
	}
	if _, err := StarFilename("star1.img", 8); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected internal error for bad type, got %v", err)
	}
}

func TestConstellationOffsetKeepsSign(t *testing.T) {
	if got := ConstellationOffset(0xFFFF); got != -1 {
		t.Fatalf("0xFFFF should shift to -1, got %d", got)
	}
	if got := ConstellationOffset(0x7FFF); got != 63 {
		t.Fatalf("0x7FFF should shift to 63, got %d", got)
	}
	if got := ConstellationOffset(0x8000); got != -64 {
		t.Fatalf("0x8000 should shift to -64, got %d", got)
	}
}

func TestRandomCoordRange(t *testing.T) {
	r := random.NewArenaRandom(99)
	for i := 0; i < 500; i++ {
		c := RandomCoord(r)
		if c < -0x0FFF || c > 0x0FFF {
			t.Fatalf("coordinate %d out of range", c)
		}
		mag := c
		if mag < 0 {
			mag = -mag
		}
		if (mag&2 == 0) != (c <= 0) {
			t.Fatalf("sign of %d does not follow bit 1", c)
		}
	}
}

func TestDrawStarTypeUniquePlanets(t *testing.T) {
	r := random.NewArenaRandom(4242)
	var planets [planetSlots]bool
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := DrawStarType(r, &planets)
		if v < 0 || v >= starTypes {
			t.Fatalf("star type %d out of range", v)
		}
		if v >= firstPlanetType {
			if seen[v] {
				t.Fatalf("planet slot %d assigned twice", v)
			}
			seen[v] = true
		}
	}
	if len(seen) > planetSlots {
		t.Fatalf("more than %d planets: %v", planetSlots, seen)
	}
}

func TestClimateStaticsInvalid(t *testing.T) {
	if _, err := climateStatics(Climate(42)); !errors.Is(err, ErrInvalidClimate) {
		t.Fatalf("expected invalid climate error, got %v", err)
	}
}
