package sky

import (
	"fmt"

	"distant-sky/internal/core"
)

// DefaultFrameTime is the frame duration of animated land in seconds.
const DefaultFrameTime = 1.0 / 18.0

// LandObject sits on the horizon.
type LandObject struct {
	Texture      TextureID
	AngleRadians float64
}

// AnimatedLandObject is a horizon object that cycles through the frames of
// an image set.
type AnimatedLandObject struct {
	textureSet       TextureSetID
	frameCount       int
	angleRadians     float64
	targetFrameTime  float64
	currentFrameTime float64
	index            int
}

// NewAnimatedLandObject creates an animation at frame zero. frameCount and
// frameTime must be positive.
func NewAnimatedLandObject(set TextureSetID, frameCount int, angleRadians, frameTime float64) AnimatedLandObject {
	if frameCount <= 0 {
		panic(fmt.Sprintf("sky: animated land needs at least one frame, got %d", frameCount))
	}
	if frameTime <= 0 {
		panic(fmt.Sprintf("sky: frame time must be positive, got %f", frameTime))
	}
	return AnimatedLandObject{
		textureSet:      set,
		frameCount:      frameCount,
		angleRadians:    angleRadians,
		targetFrameTime: frameTime,
	}
}

// TextureSet returns the image set handle holding every frame.
func (a AnimatedLandObject) TextureSet() TextureSetID { return a.textureSet }

// FrameCount returns the number of frames in the cycle.
func (a AnimatedLandObject) FrameCount() int { return a.frameCount }

// AngleRadians returns the horizon angle.
func (a AnimatedLandObject) AngleRadians() float64 { return a.angleRadians }

// FrameTime returns the target duration of one frame.
func (a AnimatedLandObject) FrameTime() float64 { return a.targetFrameTime }

// CurrentTime returns the time accumulated toward the next frame.
func (a AnimatedLandObject) CurrentTime() float64 { return a.currentFrameTime }

// Index returns the current frame index.
func (a AnimatedLandObject) Index() int { return a.index }

// SetFrameTime changes the frame duration. It must be positive.
func (a *AnimatedLandObject) SetFrameTime(frameTime float64) {
	if frameTime <= 0 {
		panic(fmt.Sprintf("sky: frame time must be positive, got %f", frameTime))
	}
	a.targetFrameTime = frameTime
}

// SetIndex jumps to a frame.
func (a *AnimatedLandObject) SetIndex(index int) {
	if index < 0 || index >= a.frameCount {
		panic(fmt.Sprintf("sky: frame index %d out of range [0,%d)", index, a.frameCount))
	}
	a.index = index
}

// Update advances the animation by dt seconds. Large steps advance several
// frames at once; the remainder carries over.
func (a *AnimatedLandObject) Update(dt float64) {
	if dt <= 0 || a.frameCount == 0 || a.targetFrameTime <= 0 {
		return
	}
	a.currentFrameTime += dt
	for a.currentFrameTime >= a.targetFrameTime {
		a.currentFrameTime -= a.targetFrameTime
		a.index = (a.index + 1) % a.frameCount
	}
}

// AirObject floats above the horizon, like a cloud.
type AirObject struct {
	Texture      TextureID
	AngleRadians float64
	// Height is 0 at the horizon and approaches 1 at the top of the sky.
	Height float64
}

// MoonType identifies one of the two moons.
type MoonType int

const (
	MoonFirst MoonType = iota
	MoonSecond
)

func (m MoonType) String() string {
	switch m {
	case MoonFirst:
		return "first"
	case MoonSecond:
		return "second"
	default:
		return fmt.Sprintf("moon(%d)", int(m))
	}
}

// MoonObject is a moon drawn with the texture for its current phase.
type MoonObject struct {
	Texture TextureID
	// PhasePercent is the position in the orbit, in [0, 1).
	PhasePercent float64
	Type         MoonType
}

// StarKind discriminates the StarObject variants.
type StarKind int

const (
	StarSmall StarKind = iota
	StarLarge
)

func (k StarKind) String() string {
	switch k {
	case StarSmall:
		return "small"
	case StarLarge:
		return "large"
	default:
		return fmt.Sprintf("star(%d)", int(k))
	}
}

// SmallStar is a single colored point belonging to a constellation.
type SmallStar struct {
	Color uint32
	// OffsetX and OffsetY are the raw constellation offsets.
	OffsetX, OffsetY int8
}

// LargeStar is a star or planet drawn with an image.
type LargeStar struct {
	Texture TextureID
	// Type is the star type in [0, 8); values of 5 and above are planets.
	Type int
}

// StarObject is either a SmallStar or a LargeStar. Use Kind to pick the
// accessor; calling the wrong one panics.
type StarObject struct {
	kind      StarKind
	small     SmallStar
	large     LargeStar
	direction core.Vec3
}

// MakeSmallStar builds a small star variant.
func MakeSmallStar(s SmallStar, direction core.Vec3) StarObject {
	return StarObject{kind: StarSmall, small: s, direction: direction}
}

// MakeLargeStar builds a large star variant.
func MakeLargeStar(l LargeStar, direction core.Vec3) StarObject {
	return StarObject{kind: StarLarge, large: l, direction: direction}
}

// Kind reports which variant the star holds.
func (s StarObject) Kind() StarKind { return s.kind }

// Small returns the small star payload.
func (s StarObject) Small() SmallStar {
	if s.kind != StarSmall {
		panic("sky: star is not small")
	}
	return s.small
}

// Large returns the large star payload.
func (s StarObject) Large() LargeStar {
	if s.kind != StarLarge {
		panic("sky: star is not large")
	}
	return s.large
}

// Direction returns the unit direction toward the star.
func (s StarObject) Direction() core.Vec3 { return s.direction }

// IsPlanet reports whether the star occupies one of the planet slots.
func (s StarObject) IsPlanet() bool {
	return s.kind == StarLarge && s.large.Type >= firstPlanetType
}
