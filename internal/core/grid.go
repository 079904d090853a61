package core

// IndexedImage stores a 2D grid of palette indices in row-major order.
type IndexedImage struct {
	W, H int
	data []uint8
}

// NewIndexedImage allocates an image with the given dimensions.
func NewIndexedImage(w, h int) *IndexedImage {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &IndexedImage{W: w, H: h, data: make([]uint8, w*h)}
}

// IndexedImageFrom wraps an existing buffer. The buffer length must equal w*h.
func IndexedImageFrom(w, h int, pix []uint8) *IndexedImage {
	if w <= 0 || h <= 0 || len(pix) != w*h {
		panic("core: indexed image buffer does not match dimensions")
	}
	return &IndexedImage{W: w, H: h, data: pix}
}

// Pix exposes the backing slice so callers can read/write values directly.
func (g *IndexedImage) Pix() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *IndexedImage) Index(x, y int) int { return y*g.W + x }

// At returns the palette index at (x, y).
func (g *IndexedImage) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set writes a palette index at (x, y).
func (g *IndexedImage) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// View returns a read-only view over the image.
func (g *IndexedImage) View() ImageView { return ImageView{img: g} }

// ImageView is a read-only window onto an IndexedImage owned elsewhere.
type ImageView struct {
	img *IndexedImage
}

// Width reports the image width in pixels.
func (v ImageView) Width() int { return v.img.W }

// Height reports the image height in pixels.
func (v ImageView) Height() int { return v.img.H }

// At returns the palette index at (x, y).
func (v ImageView) At(x, y int) uint8 { return v.img.At(x, y) }

// CopyPix copies the pixel data into dst and returns the number of bytes copied.
func (v ImageView) CopyPix(dst []uint8) int { return copy(dst, v.img.data) }

// Valid reports whether the view points at an image.
func (v ImageView) Valid() bool { return v.img != nil }
