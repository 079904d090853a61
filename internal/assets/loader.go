package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/image/bmp"

	// PNG decoding is registered through image.Decode.
	_ "image/png"

	"distant-sky/internal/core"
)

var imageExtensions = []string{".png", ".gif", ".bmp"}

const maxNumberedFrames = 256

// NotFoundError reports a filename that no file in the asset directory
// resolves to. Suggestion holds the closest known stem, if any.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("asset %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("asset %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// DirLoader decodes images from a file system. Requested names are matched
// case-insensitively by stem, so "MOON1.DFA" resolves to "moon1.gif" or to
// numbered frames "moon1_00.png", "moon1_01.png" and so on.
type DirLoader struct {
	fsys    fs.FS
	dir     string
	palette color.Palette

	once  sync.Once
	index map[string]string
	err   error
}

// NewDirLoader returns a loader reading from dir inside fsys. Non-paletted
// images are quantized against pal.
func NewDirLoader(fsys fs.FS, dir string, pal *Palette) *DirLoader {
	if pal == nil {
		pal = DefaultPalette()
	}
	if dir == "" {
		dir = "."
	}
	return &DirLoader{fsys: fsys, dir: dir, palette: pal.Colors()}
}

// LoadImage decodes the single image behind name. For animated files the
// first frame is returned.
func (l *DirLoader) LoadImage(name string) (*core.IndexedImage, error) {
	if err := l.buildIndex(); err != nil {
		return nil, err
	}
	stem := fileStem(name)
	p, ok := l.lookup(stem)
	if !ok {
		p, ok = l.lookup(frameStem(stem, 0))
	}
	if !ok {
		return nil, l.notFound(name)
	}
	frames, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	return frames[0], nil
}

// LoadImageSet decodes every frame behind name: all frames of an animated
// GIF, or the contiguous numbered frame files starting at _00. A plain
// single image yields a one-frame set.
func (l *DirLoader) LoadImageSet(name string) ([]*core.IndexedImage, error) {
	if err := l.buildIndex(); err != nil {
		return nil, err
	}
	stem := fileStem(name)
	if p, ok := l.index[stem+".gif"]; ok {
		return l.decode(p)
	}

	var frames []*core.IndexedImage
	for i := 0; i < maxNumberedFrames; i++ {
		p, ok := l.lookup(frameStem(stem, i))
		if !ok {
			break
		}
		decoded, err := l.decode(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, decoded[0])
	}
	if len(frames) > 0 {
		return frames, nil
	}

	img, err := l.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return []*core.IndexedImage{img}, nil
}

func (l *DirLoader) lookup(stem string) (string, bool) {
	for _, ext := range imageExtensions {
		if p, ok := l.index[stem+ext]; ok {
			return p, true
		}
	}
	return "", false
}

func (l *DirLoader) buildIndex() error {
	l.once.Do(func() {
		entries, err := fs.ReadDir(l.fsys, l.dir)
		if err != nil {
			l.err = fmt.Errorf("read asset dir %q: %w", l.dir, err)
			return
		}
		l.index = make(map[string]string, len(entries))
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			l.index[strings.ToLower(e.Name())] = path.Join(l.dir, e.Name())
		}
	})
	return l.err
}

func (l *DirLoader) decode(p string) ([]*core.IndexedImage, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	switch strings.ToLower(path.Ext(p)) {
	case ".gif":
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return composeGIF(g), nil
	case ".bmp":
		img, err := bmp.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return []*core.IndexedImage{l.toIndexed(img)}, nil
	default:
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return []*core.IndexedImage{l.toIndexed(img)}, nil
	}
}

func (l *DirLoader) toIndexed(img image.Image) *core.IndexedImage {
	b := img.Bounds()
	out := core.NewIndexedImage(b.Dx(), b.Dy())
	if p, ok := img.(*image.Paletted); ok {
		for y := 0; y < b.Dy(); y++ {
			off := p.PixOffset(b.Min.X, b.Min.Y+y)
			row := p.Pix[off : off+b.Dx()]
			for x, v := range row {
				out.Set(x, y, v)
			}
		}
		return out
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			// Skip index 0 so opaque pixels never become the color key.
			idx := l.palette[1:].Index(c) + 1
			out.Set(x, y, uint8(idx))
		}
	}
	return out
}

// composeGIF flattens each GIF frame onto the logical screen, carrying
// earlier frames forward under transparent pixels.
func composeGIF(g *gif.GIF) []*core.IndexedImage {
	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	canvas := core.NewIndexedImage(w, h)
	frames := make([]*core.IndexedImage, 0, len(g.Image))
	for _, frame := range g.Image {
		transparent := -1
		for i, c := range frame.Palette {
			if _, _, _, a := c.RGBA(); a == 0 {
				transparent = i
				break
			}
		}
		b := frame.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if x < 0 || y < 0 || x >= w || y >= h {
					continue
				}
				v := frame.ColorIndexAt(x, y)
				if int(v) == transparent {
					continue
				}
				canvas.Set(x, y, v)
			}
		}
		snapshot := core.IndexedImageFrom(w, h, append([]uint8(nil), canvas.Pix()...))
		frames = append(frames, snapshot)
	}
	return frames
}

func (l *DirLoader) notFound(name string) error {
	stem := fileStem(name)
	stems := make([]string, 0, len(l.index))
	seen := make(map[string]bool, len(l.index))
	for key := range l.index {
		s := strings.TrimSuffix(key, path.Ext(key))
		if !seen[s] {
			seen[s] = true
			stems = append(stems, s)
		}
	}
	sort.Strings(stems)

	best, bestDist := "", -1
	for _, s := range stems {
		dist := levenshtein.ComputeDistance(stem, s)
		if dist > suggestionLimit(len(s)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return &NotFoundError{Name: name, Suggestion: best}
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func fileStem(name string) string {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	return strings.TrimSuffix(base, path.Ext(base))
}

func frameStem(stem string, i int) string {
	return fmt.Sprintf("%s_%02d", stem, i)
}
