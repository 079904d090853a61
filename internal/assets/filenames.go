package assets

import (
	"encoding/json"
	"fmt"
	"io"

	"distant-sky/internal/sky"
)

// DefaultFilenames returns the filename templates matching the synthetic
// loader and the bundled asset layout.
func DefaultFilenames() sky.Filenames {
	return sky.Filenames{
		DistantMountains:     [3]string{"MOUNTN00.IMG", "DESERT0.IMG", "TEMP00.IMG"},
		Cloud:                "CLOUD00.IMG",
		AnimDistantMountains: [3]string{"VOLCNEAR.DFA", "VOLCMID.DFA", "VOLCFAR.IMG"},
		Moons:                [2]string{"MOON1.DFA", "MOON2.DFA"},
		Star:                 "STAR1.IMG",
		Sun:                  "SUN.IMG",
	}
}

// LoadFilenames decodes a JSON filename table. Keys left out keep their
// default values.
func LoadFilenames(r io.Reader) (sky.Filenames, error) {
	names := DefaultFilenames()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&names); err != nil {
		return sky.Filenames{}, fmt.Errorf("decode filenames: %w", err)
	}
	return names, nil
}
