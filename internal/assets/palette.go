package assets

import (
	"errors"
	"fmt"
	"image/color"
	"io"
)

const (
	paletteSize      = 256
	colHeaderSize    = 8
	rawPaletteBytes  = paletteSize * 3
	colPaletteLength = colHeaderSize + rawPaletteBytes
)

// Palette is a 256-entry color table. Index 0 is the transparent color key.
type Palette [paletteSize]color.RGBA

// ARGB packs the color at index into 0xAARRGGBB.
func (p *Palette) ARGB(index uint8) uint32 {
	c := p[index]
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Colors returns the palette as a color.Palette for image conversion.
func (p *Palette) Colors() color.Palette {
	out := make(color.Palette, len(p))
	for i := range p {
		out[i] = p[i]
	}
	return out
}

// RGBA returns the palette as a slice for renderers.
func (p *Palette) RGBA() []color.RGBA {
	return p[:]
}

// ReadCOL parses a palette file: either 768 bytes of RGB triplets or the
// same data behind an 8 byte header.
func ReadCOL(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(io.LimitReader(r, colPaletteLength+1))
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	switch len(data) {
	case colPaletteLength:
		data = data[colHeaderSize:]
	case rawPaletteBytes:
	default:
		return nil, fmt.Errorf("palette is %d bytes, expected %d or %d", len(data), rawPaletteBytes, colPaletteLength)
	}

	p := &Palette{}
	for i := range p {
		p[i] = color.RGBA{R: data[i*3], G: data[i*3+1], B: data[i*3+2], A: 255}
	}
	p[0].A = 0
	return p, nil
}

// ErrPaletteIndex is returned when a palette is built from too many colors.
var ErrPaletteIndex = errors.New("palette has more than 256 colors")

// DefaultPalette builds the daytime palette used when no palette file is
// supplied: earth tones, a band of star whites and blues starting at 64, and
// a sky gradient in the upper half.
func DefaultPalette() *Palette {
	p := &Palette{}
	for i := 1; i < 64; i++ {
		v := uint8(i * 4)
		p[i] = color.RGBA{R: v, G: uint8(float64(v) * 0.85), B: uint8(float64(v) * 0.7), A: 255}
	}
	stars := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 235, G: 240, B: 255, A: 255},
		{R: 210, G: 220, B: 255, A: 255},
		{R: 190, G: 205, B: 255, A: 255},
		{R: 255, G: 250, B: 220, A: 255},
		{R: 255, G: 240, B: 200, A: 255},
		{R: 255, G: 225, B: 180, A: 255},
		{R: 255, G: 210, B: 170, A: 255},
		{R: 230, G: 230, B: 230, A: 255},
		{R: 200, G: 200, B: 215, A: 255},
	}
	copy(p[64:], stars)
	for i := 64 + len(stars); i < paletteSize; i++ {
		t := float64(i-74) / float64(paletteSize-74)
		p[i] = color.RGBA{
			R: uint8(40 + 120*t),
			G: uint8(70 + 130*t),
			B: uint8(140 + 110*t),
			A: 255,
		}
	}
	return p
}

// PaletteFromColors builds a Palette from up to 256 colors.
func PaletteFromColors(colors color.Palette) (*Palette, error) {
	if len(colors) > paletteSize {
		return nil, ErrPaletteIndex
	}
	p := &Palette{}
	for i, c := range colors {
		p[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return p, nil
}
