package assets

import (
	"hash/fnv"
	"math"
	"strings"

	"distant-sky/internal/core"
)

// DefaultSyntheticFrames is the frame count of every synthetic image set.
// Moon sets need at least one frame per moon phase.
const DefaultSyntheticFrames = 32

// SyntheticLoader draws placeholder art so the sky can be previewed without
// the original asset files. Output depends only on the requested name.
type SyntheticLoader struct {
	Frames int
}

// NewSyntheticLoader returns a loader producing DefaultSyntheticFrames
// frames per set.
func NewSyntheticLoader() *SyntheticLoader {
	return &SyntheticLoader{Frames: DefaultSyntheticFrames}
}

// LoadImage implements sky.ImageLoader.
func (l *SyntheticLoader) LoadImage(name string) (*core.IndexedImage, error) {
	return l.draw(fileStem(name), 0, 1), nil
}

// LoadImageSet implements sky.ImageLoader.
func (l *SyntheticLoader) LoadImageSet(name string) ([]*core.IndexedImage, error) {
	n := l.Frames
	if n <= 0 {
		n = DefaultSyntheticFrames
	}
	stem := fileStem(name)
	frames := make([]*core.IndexedImage, n)
	for i := range frames {
		frames[i] = l.draw(stem, i, n)
	}
	return frames, nil
}

func (l *SyntheticLoader) draw(stem string, frame, frames int) *core.IndexedImage {
	h := fnv.New32a()
	_, _ = h.Write([]byte(stem))
	seed := h.Sum32()

	switch {
	case strings.HasPrefix(stem, "moon"):
		return drawMoon(frame, frames)
	case strings.HasPrefix(stem, "sun"):
		return drawDisc(16, 72)
	case strings.HasPrefix(stem, "star"):
		return drawStar(65 + uint8(seed%8))
	case strings.HasPrefix(stem, "cloud"):
		return drawCloud(seed)
	default:
		return drawRidge(seed, frame)
	}
}

func drawDisc(size int, idx uint8) *core.IndexedImage {
	img := core.NewIndexedImage(size, size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, idx)
			}
		}
	}
	return img
}

// drawMoon lights a disc from one side according to the phase frame.
func drawMoon(frame, frames int) *core.IndexedImage {
	const size = 12
	img := drawDisc(size, 60)
	phase := float64(frame) / float64(frames)
	terminator := math.Cos(phase * 2 * math.Pi)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.At(x, y) == 0 {
				continue
			}
			dy := float64(y) + 0.5 - r
			half := math.Sqrt(math.Max(r*r-dy*dy, 0))
			if half == 0 {
				continue
			}
			u := (float64(x) + 0.5 - r) / half
			if (phase < 0.5 && u < terminator) || (phase >= 0.5 && u > -terminator) {
				img.Set(x, y, 20)
			}
		}
	}
	return img
}

func drawStar(idx uint8) *core.IndexedImage {
	img := core.NewIndexedImage(3, 3)
	img.Set(1, 0, idx)
	img.Set(0, 1, idx)
	img.Set(1, 1, 64)
	img.Set(2, 1, idx)
	img.Set(1, 2, idx)
	return img
}

func drawCloud(seed uint32) *core.IndexedImage {
	w := 40 + int(seed%24)
	h := 10 + int(seed>>8%6)
	img := core.NewIndexedImage(w, h)
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := (float64(x)+0.5-rx)/rx, (float64(y)+0.5-ry)/ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, 200+uint8((y*40)/h))
			}
		}
	}
	return img
}

// drawRidge draws a mountain silhouette. Animated sets shift a glow along
// the crest so frames differ.
func drawRidge(seed uint32, frame int) *core.IndexedImage {
	w := 64 + int(seed%64)
	h := 24 + int(seed>>8%16)
	img := core.NewIndexedImage(w, h)
	phase := float64(seed%628) / 100
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w)
		ridge := 0.55 + 0.3*math.Sin(t*math.Pi) + 0.12*math.Sin(t*11+phase)
		top := h - int(ridge*float64(h))
		if top < 0 {
			top = 0
		}
		for y := top; y < h; y++ {
			shade := 8 + uint8((y-top)*24/h)
			if y == top && (x+frame)%8 == 0 {
				shade = 62
			}
			img.Set(x, y, shade)
		}
	}
	return img
}
