// Command skydump generates a sky and writes its object catalog as JSON,
// optionally with a JSON schema of the catalog and a rendered PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"distant-sky/internal/app"
	"distant-sky/internal/config"
	"distant-sky/internal/logging"
	"distant-sky/internal/render"
	"distant-sky/internal/sky"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	var (
		outPath    string
		schemaPath string
		pngPath    string
		yaw        float64
	)
	flag.StringVar(&outPath, "out", "", "path to write the catalog JSON (default stdout)")
	flag.StringVar(&schemaPath, "schema", "", "path to write the catalog JSON schema")
	flag.StringVar(&pngPath, "png", "", "path to write a rendered view")
	flag.Float64Var(&yaw, "yaw", 0, "view direction in degrees for -png")
	flag.Parse()

	logger := logging.Init(cfg.LogLevel, cfg.LogJSON)
	env, palette, err := cfg.Environment(logger)
	if err != nil {
		log.Fatal(err)
	}
	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}

	s, err := sky.Generate(params, env, cfg.SkyConfig())
	if err != nil {
		log.Fatal(err)
	}

	if schemaPath != "" {
		if err := writeFile(schemaPath, func(w io.Writer) error { return writeJSON(w, buildSchema()) }); err != nil {
			log.Fatalf("failed to write schema: %v", err)
		}
	}
	if pngPath != "" {
		img := renderView(s, palette.RGBA(), yaw, cfg.Scale)
		if err := writeFile(pngPath, func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
			log.Fatalf("failed to write png: %v", err)
		}
	}

	snap := s.Snapshot()
	if outPath == "" {
		if err := writeJSON(os.Stdout, snap); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := writeFile(outPath, func(w io.Writer) error { return writeJSON(w, snap) }); err != nil {
		log.Fatalf("failed to write catalog: %v", err)
	}
	logger.Info("catalog written", "path", outPath, "stars", len(snap.Stars), "land", len(snap.Land))
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(sky.Snapshot))
	schema.Title = "Distant Sky Catalog"
	schema.Description = "Objects placed around the horizon and on the sky sphere for one location and day"
	return schema
}

func renderView(s *sky.Sky, palette []color.RGBA, yawDegrees float64, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	cam := render.NewCamera(app.ViewWidth*scale, app.ViewHeight*scale)
	cam.Yaw = render.WrapAngle(yawDegrees * math.Pi / 180)
	img := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))
	render.Compose(img, s, cam, palette, render.DefaultOptions())
	return img
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeFile writes through a temporary file and renames it into place.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
