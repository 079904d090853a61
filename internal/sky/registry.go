package sky

import (
	"errors"
	"fmt"

	"distant-sky/internal/core"
)

// TextureID addresses a single image in a Registry.
type TextureID int

// TextureSetID addresses an ordered image sequence in a Registry.
type TextureSetID int

type textureEntry struct {
	filename string
	image    *core.IndexedImage
}

type textureSetEntry struct {
	filename string
	frames   []*core.IndexedImage
}

// Registry owns decoded images and hands out stable integer handles. Entries
// are de-duplicated by filename and never removed.
type Registry struct {
	loader ImageLoader

	textures     []textureEntry
	textureIndex map[string]TextureID

	sets     []textureSetEntry
	setIndex map[string]TextureSetID
}

// NewRegistry returns an empty registry backed by the given loader.
func NewRegistry(loader ImageLoader) *Registry {
	return &Registry{
		loader:       loader,
		textureIndex: make(map[string]TextureID),
		setIndex:     make(map[string]TextureSetID),
	}
}

// Texture returns the handle for a single image, loading it on first use.
func (r *Registry) Texture(filename string) (TextureID, error) {
	if id, ok := r.textureIndex[filename]; ok {
		return id, nil
	}
	img, err := r.loader.LoadImage(filename)
	if err != nil {
		return 0, missingAsset(filename, err)
	}
	if img == nil {
		return 0, missingAsset(filename, errors.New("loader returned no image"))
	}
	return r.addTexture(filename, img), nil
}

// TextureSet returns the handle for an image sequence, loading it on first use.
func (r *Registry) TextureSet(filename string) (TextureSetID, error) {
	if id, ok := r.setIndex[filename]; ok {
		return id, nil
	}
	frames, err := r.loader.LoadImageSet(filename)
	if err != nil {
		return 0, missingAsset(filename, err)
	}
	if len(frames) == 0 {
		return 0, missingAsset(filename, errors.New("image set has no frames"))
	}
	for i, f := range frames {
		if f == nil {
			return 0, missingAsset(filename, fmt.Errorf("frame %d is empty", i))
		}
	}
	return r.addSet(filename, frames), nil
}

// SingletonSet loads a single image and registers it as a one-frame set.
// It shares the set namespace, so a later TextureSet call with the same name
// returns the same handle.
func (r *Registry) SingletonSet(filename string) (TextureSetID, error) {
	if id, ok := r.setIndex[filename]; ok {
		return id, nil
	}
	img, err := r.loader.LoadImage(filename)
	if err != nil {
		return 0, missingAsset(filename, err)
	}
	if img == nil {
		return 0, missingAsset(filename, errors.New("loader returned no image"))
	}
	return r.addSet(filename, []*core.IndexedImage{img}), nil
}

// SetFrame registers one frame of an image set as a single texture keyed
// "<filename>#<frame>". The set itself is loaded (and cached) as needed.
func (r *Registry) SetFrame(filename string, frame int) (TextureID, error) {
	key := fmt.Sprintf("%s#%d", filename, frame)
	if id, ok := r.textureIndex[key]; ok {
		return id, nil
	}
	setID, err := r.TextureSet(filename)
	if err != nil {
		return 0, err
	}
	frames := r.sets[setID].frames
	if frame < 0 || frame >= len(frames) {
		return 0, missingAsset(filename, fmt.Errorf("frame %d requested, set has %d", frame, len(frames)))
	}
	return r.addTexture(key, frames[frame]), nil
}

func (r *Registry) addTexture(filename string, img *core.IndexedImage) TextureID {
	id := TextureID(len(r.textures))
	r.textures = append(r.textures, textureEntry{filename: filename, image: img})
	r.textureIndex[filename] = id
	return id
}

func (r *Registry) addSet(filename string, frames []*core.IndexedImage) TextureSetID {
	id := TextureSetID(len(r.sets))
	r.sets = append(r.sets, textureSetEntry{filename: filename, frames: frames})
	r.setIndex[filename] = id
	return id
}

// TextureCount reports the number of single-image entries.
func (r *Registry) TextureCount() int { return len(r.textures) }

// TextureSetCount reports the number of image-set entries.
func (r *Registry) TextureSetCount() int { return len(r.sets) }

// ValidTexture reports whether id refers to a registered single image.
func (r *Registry) ValidTexture(id TextureID) bool {
	return id >= 0 && int(id) < len(r.textures)
}

// ValidTextureSet reports whether id refers to a registered image set.
func (r *Registry) ValidTextureSet(id TextureSetID) bool {
	return id >= 0 && int(id) < len(r.sets)
}

// Image resolves a texture handle. Invalid handles panic.
func (r *Registry) Image(id TextureID) core.ImageView {
	if !r.ValidTexture(id) {
		panic(fmt.Sprintf("sky: texture handle %d out of range [0,%d)", id, len(r.textures)))
	}
	return r.textures[id].image.View()
}

// Filename returns the identifier a texture was registered under.
func (r *Registry) Filename(id TextureID) string {
	if !r.ValidTexture(id) {
		panic(fmt.Sprintf("sky: texture handle %d out of range [0,%d)", id, len(r.textures)))
	}
	return r.textures[id].filename
}

// SetLen returns the frame count of an image set.
func (r *Registry) SetLen(id TextureSetID) int {
	return len(r.set(id).frames)
}

// SetFilename returns the identifier an image set was registered under.
func (r *Registry) SetFilename(id TextureSetID) string {
	return r.set(id).filename
}

// Frame resolves one frame of an image set. Invalid handles or frame indices
// panic.
func (r *Registry) Frame(id TextureSetID, index int) core.ImageView {
	frames := r.set(id).frames
	if index < 0 || index >= len(frames) {
		panic(fmt.Sprintf("sky: frame %d out of range [0,%d) in set %d", index, len(frames), id))
	}
	return frames[index].View()
}

func (r *Registry) set(id TextureSetID) *textureSetEntry {
	if !r.ValidTextureSet(id) {
		panic(fmt.Sprintf("sky: texture set handle %d out of range [0,%d)", id, len(r.sets)))
	}
	return &r.sets[id]
}
