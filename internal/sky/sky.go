package sky

import (
	"fmt"
	"math"

	"distant-sky/internal/core"
)

// IdentityDim is the world-space size of a 320 pixel wide texture.
const IdentityDim = 320.0

// IdentityAngleRadians is the horizontal field of view spanned by a texture
// IdentityDim pixels wide.
const IdentityAngleRadians = math.Pi / 2

// Sky is the catalog of distant objects for one scene. It is built by
// Generate and read by renderers; only animated land changes afterwards.
type Sky struct {
	registry *Registry

	land     []LandObject
	animLand []AnimatedLandObject
	air      []AirObject
	moons    []MoonObject
	stars    []StarObject

	sun    TextureID
	hasSun bool

	params  Params
	cfg     Config
	climate Climate
	skySeed uint32
}

func checkIndex(kind string, index, count int) {
	if index < 0 || index >= count {
		panic(fmt.Sprintf("sky: %s index %d out of range [0,%d)", kind, index, count))
	}
}

// LandObjectCount returns the number of horizon objects.
func (s *Sky) LandObjectCount() int { return len(s.land) }

// AnimatedLandObjectCount returns the number of animated horizon objects.
func (s *Sky) AnimatedLandObjectCount() int { return len(s.animLand) }

// AirObjectCount returns the number of clouds.
func (s *Sky) AirObjectCount() int { return len(s.air) }

// MoonObjectCount returns the number of moons.
func (s *Sky) MoonObjectCount() int { return len(s.moons) }

// StarObjectCount returns the number of stars, counting each substar.
func (s *Sky) StarObjectCount() int { return len(s.stars) }

// LandObject returns the horizon object at index.
func (s *Sky) LandObject(index int) LandObject {
	checkIndex("land object", index, len(s.land))
	return s.land[index]
}

// AnimatedLandObject returns a copy of the animated object at index.
func (s *Sky) AnimatedLandObject(index int) AnimatedLandObject {
	checkIndex("animated land object", index, len(s.animLand))
	return s.animLand[index]
}

// AirObject returns the cloud at index.
func (s *Sky) AirObject(index int) AirObject {
	checkIndex("air object", index, len(s.air))
	return s.air[index]
}

// MoonObject returns the moon at index.
func (s *Sky) MoonObject(index int) MoonObject {
	checkIndex("moon object", index, len(s.moons))
	return s.moons[index]
}

// StarObject returns the star at index.
func (s *Sky) StarObject(index int) StarObject {
	checkIndex("star object", index, len(s.stars))
	return s.stars[index]
}

// HasSun reports whether the sun texture has been generated.
func (s *Sky) HasSun() bool { return s.hasSun }

// SunTexture returns the sun's texture handle.
func (s *Sky) SunTexture() TextureID {
	if !s.hasSun {
		panic("sky: sun has not been generated")
	}
	return s.sun
}

// Texture resolves a single texture handle.
func (s *Sky) Texture(id TextureID) core.ImageView { return s.registry.Image(id) }

// TextureSetLen returns the number of frames in an image set.
func (s *Sky) TextureSetLen(id TextureSetID) int { return s.registry.SetLen(id) }

// TextureSetFrame resolves one frame of an image set.
func (s *Sky) TextureSetFrame(id TextureSetID, index int) core.ImageView {
	return s.registry.Frame(id, index)
}

// Registry exposes the image registry backing the catalog.
func (s *Sky) Registry() *Registry { return s.registry }

// Params returns the inputs the sky was generated from.
func (s *Sky) Params() Params { return s.params }

// Climate returns the climate used for the horizon art.
func (s *Sky) Climate() Climate { return s.climate }

// Tick advances every animated object by dt seconds.
func (s *Sky) Tick(dt float64) {
	for i := range s.animLand {
		s.animLand[i].Update(dt)
	}
}
