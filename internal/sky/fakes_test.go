package sky

import (
	"errors"

	"distant-sky/internal/core"
)

var errFakeMissing = errors.New("fake: file not found")

// fakeLoader produces tiny images for any filename and records how often
// each name was requested.
type fakeLoader struct {
	singleCalls map[string]int
	setCalls    map[string]int
	missing     map[string]bool
	frames      int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		singleCalls: make(map[string]int),
		setCalls:    make(map[string]int),
		missing:     make(map[string]bool),
		frames:      32,
	}
}

func (l *fakeLoader) LoadImage(name string) (*core.IndexedImage, error) {
	l.singleCalls[name]++
	if l.missing[name] {
		return nil, errFakeMissing
	}
	img := core.NewIndexedImage(2, 2)
	img.Set(0, 0, uint8(len(name)))
	return img, nil
}

func (l *fakeLoader) LoadImageSet(name string) ([]*core.IndexedImage, error) {
	l.setCalls[name]++
	if l.missing[name] {
		return nil, errFakeMissing
	}
	frames := make([]*core.IndexedImage, l.frames)
	for i := range frames {
		frames[i] = core.NewIndexedImage(1, 1)
		frames[i].Set(0, 0, uint8(i))
	}
	return frames, nil
}

func (l *fakeLoader) totalCalls() int {
	n := 0
	for _, c := range l.singleCalls {
		n += c
	}
	for _, c := range l.setCalls {
		n += c
	}
	return n
}

type fakeCity struct {
	climate  Climate
	skySeed  uint32
	citySeed uint32
	point    core.Point
	err      error
}

type fakeCities struct {
	byKey map[[2]int]fakeCity
}

func (f fakeCities) lookup(cityID, provinceID int) (fakeCity, error) {
	c, ok := f.byKey[[2]int{cityID, provinceID}]
	if !ok {
		return fakeCity{}, errors.New("fake: unknown city")
	}
	return c, c.err
}

func (f fakeCities) Climate(cityID, provinceID int) (Climate, error) {
	c, err := f.lookup(cityID, provinceID)
	return c.climate, err
}

func (f fakeCities) SkySeed(cityID, provinceID int) (uint32, error) {
	c, err := f.lookup(cityID, provinceID)
	return c.skySeed, err
}

func (f fakeCities) CitySeed(cityID, provinceID int) (uint32, error) {
	c, err := f.lookup(cityID, provinceID)
	return c.citySeed, err
}

func (f fakeCities) LocalCityPoint(citySeed uint32) core.Point {
	for _, c := range f.byKey {
		if c.citySeed == citySeed {
			return c.point
		}
	}
	return core.Point{}
}

func (f fakeCities) Distance(a, b core.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// greyPalette packs the index into every channel.
type greyPalette struct{}

func (greyPalette) ARGB(index uint8) uint32 {
	v := uint32(index)
	return 0xFF000000 | v<<16 | v<<8 | v
}

func testFilenames() Filenames {
	return Filenames{
		DistantMountains:     [3]string{"mount_00.img", "desert0.img", "temp00.img"},
		Cloud:                "cloud00.img",
		AnimDistantMountains: [3]string{"volcnear.dfa", "volcmid.dfa", "volcfar.img"},
		Moons:                [2]string{"moon1.dfa", "moon2.dfa"},
		Star:                 "star1.img",
		Sun:                  "sun.img",
	}
}

func testEnvironment(loader *fakeLoader, cities fakeCities) Environment {
	return Environment{
		Cities:    cities,
		Filenames: testFilenames(),
		Palette:   greyPalette{},
		Loader:    loader,
	}
}
