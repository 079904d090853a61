package render

import (
	"image"
	"image/color"

	"distant-sky/internal/core"
)

// fillPaletteRGBA converts palette indices into RGBA pixels in buf. When the
// palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, pix []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range pix {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range pix {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ToRGBA expands an indexed image into a new RGBA image.
func ToRGBA(view core.ImageView, palette []color.RGBA) *image.RGBA {
	if !view.Valid() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	out := image.NewRGBA(image.Rect(0, 0, view.Width(), view.Height()))
	pix := make([]uint8, view.Width()*view.Height())
	view.CopyPix(pix)
	fillPaletteRGBA(out.Pix, pix, palette)
	return out
}

// ColorFromARGB unpacks a 0xAARRGGBB value.
func ColorFromARGB(argb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// blitIndexed draws view into dst with its top-left corner at (x, y), each
// source pixel covering scale*scale destination pixels. Index 0 is skipped.
func blitIndexed(dst *image.RGBA, view core.ImageView, x, y, scale int, palette []color.RGBA) {
	if !view.Valid() || len(palette) == 0 {
		return
	}
	if scale < 1 {
		scale = 1
	}
	b := dst.Bounds()
	last := len(palette) - 1
	for sy := 0; sy < view.Height(); sy++ {
		for sx := 0; sx < view.Width(); sx++ {
			idx := int(view.At(sx, sy))
			if idx == 0 {
				continue
			}
			if idx > last {
				idx = last
			}
			fillRect(dst, b, x+sx*scale, y+sy*scale, scale, palette[idx])
		}
	}
}

func fillRect(dst *image.RGBA, b image.Rectangle, x, y, size int, col color.RGBA) {
	for dy := 0; dy < size; dy++ {
		py := y + dy
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for dx := 0; dx < size; dx++ {
			px := x + dx
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			dst.SetRGBA(px, py, col)
		}
	}
}
