package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/tptassets/spritegen"
	"github.com/tptassets/spritegen/catalog"
	"github.com/tptassets/spritegen/config"
)

// pipeName is the output name that indicates stdout is being used.
const pipeName = "-"

// generatorOptions builds the generator collaborators from the configuration.
func generatorOptions(c config.Config) (spritegen.Options, error) {
	opts := spritegen.Options{Logger: logger}
	if c.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(c.Seed))
	}

	frame, err := loadFrame(c.Frame)
	if err != nil {
		return opts, err
	}
	opts.Frame = frame

	return opts, nil
}

// loadFrame resolves a built-in frame name or reads an SVG file.
func loadFrame(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	if slices.Contains(spritegen.FrameNames(), name) {
		return spritegen.Frame(name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unable to read the frame: %w", err)
	}
	return data, nil
}

// outputPath returns the file the sprite is written to. An output without
// extension is treated as a directory and receives <type>-<id>.png.
func outputPath(out string, d *spritegen.SpriteDescriptor) string {
	if filepath.Ext(out) != "" {
		return out
	}
	id := d.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return filepath.Join(out, fmt.Sprintf("%s-%s.png", d.Type, id))
}

// stdout returns os.Stdout, refusing a terminal.
func stdout() (io.Writer, error) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("`-` should be used with a pipe for stdout")
	}
	return os.Stdout, nil
}

// emit writes the sprite to the configured output, records it in the
// catalog and prints the result.
func emit(assetType string, d *spritegen.SpriteDescriptor) error {
	var (
		path string
		size int64
	)
	if cfg.Output == pipeName {
		w, err := stdout()
		if err != nil {
			return err
		}
		if err := spritegen.EncodeTo(w, d, imaging.PNG, cfg.ExportOptions()); err != nil {
			return err
		}
	} else {
		path = outputPath(cfg.Output, d)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("unable to create the output directory: %w", err)
		}
		if err := spritegen.Export(d, path, cfg.ExportOptions()); err != nil {
			return err
		}
		if fi, err := os.Stat(path); err == nil {
			size = fi.Size()
		}
		logger.Info("sprite saved", "name", d.Name, "path", path, "bytes", size)
	}

	if cfg.Catalog {
		if err := record(assetType, d, path, size); err != nil {
			return err
		}
	}

	switch {
	case cfg.Output == pipeName:
	case flagJSON:
		return printJSON(d)
	default:
		fmt.Printf("%s  %s  %s\n", d.ID, d.Name, path)
	}
	return nil
}

// record stores the sprite in the catalog.
func record(assetType string, d *spritegen.SpriteDescriptor, path string, size int64) error {
	store, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	a, err := catalog.FromDescriptor(assetType, d, path, size)
	if err != nil {
		return err
	}
	if _, err := store.SaveAsset(a); err != nil {
		return err
	}
	if err := store.SaveSetting("last_generated", d.ID); err != nil {
		return err
	}
	logger.Debug("sprite catalogued", "id", d.ID, "db", cfg.Database)

	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
