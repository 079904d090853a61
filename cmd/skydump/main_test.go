package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"distant-sky/internal/app"
	"distant-sky/internal/assets"
	"distant-sky/internal/sky"
)

func TestBuildSchemaDescribesCatalog(t *testing.T) {
	schema := buildSchema()
	if schema.Title != "Distant Sky Catalog" {
		t.Fatalf("unexpected title %q", schema.Title)
	}
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"sky_seed", "animated_land", "phase_percent", "direction"} {
		if !bytes.Contains(data, []byte(key)) {
			t.Fatalf("schema missing %q", key)
		}
	}
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	err := writeFile(path, func(w io.Writer) error { return writeJSON(w, map[string]int{"stars": 40}) })
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"stars": 40`) {
		t.Fatalf("unexpected content %q", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temporary file left behind")
	}
}

func TestRenderView(t *testing.T) {
	env := sky.Environment{
		Cities:    assets.DefaultAtlas(),
		Filenames: assets.DefaultFilenames(),
		Palette:   assets.DefaultPalette(),
		Loader:    assets.NewSyntheticLoader(),
	}
	s, err := sky.Generate(sky.Params{ProvinceID: 3}, env, sky.DefaultConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	img := renderView(s, assets.DefaultPalette().RGBA(), 90, 2)
	if img.Bounds().Dx() != app.ViewWidth*2 || img.Bounds().Dy() != app.ViewHeight*2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}
