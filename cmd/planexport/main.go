// Command planexport renders a saved layout to a PNG image.
package main

import (
	"encoding/json"
	"flag"

	"github.com/sirupsen/logrus"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"tableplan/internal/blob"
	"tableplan/internal/config"
	"tableplan/internal/export"
	"tableplan/internal/floor"
	"tableplan/pkg/geometry"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "config file")
		layoutKey  = flag.String("layout", "", "layout key to export (required)")
		floorName  = flag.String("floor", "", "floor to render (default: first floor)")
		outPath    = flag.String("out", "layout.png", "output PNG file")
		width      = flag.Float64("width", 0, "output width in pixels (default: saved width)")
		height     = flag.Float64("height", 0, "output height in pixels (default: saved height)")
	)
	flag.Parse()

	log := logrus.New()

	if *layoutKey == "" {
		log.Fatal("missing required -layout flag")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	data, ok, err := store.Load(*layoutKey)
	if err != nil {
		log.Fatalf("load layout %q: %v", *layoutKey, err)
	}
	if !ok {
		log.Fatalf("layout %q not found", *layoutKey)
	}

	var l floor.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		log.Fatalf("layout %q is malformed: %v", *layoutKey, err)
	}
	if len(l.Floors) == 0 {
		log.Fatalf("layout %q has no floors", *layoutKey)
	}

	target := l.Floors[0]
	if *floorName != "" {
		target = nil
		for _, f := range l.Floors {
			if f.Name == *floorName {
				target = f
				break
			}
		}
		if target == nil {
			log.Fatalf("floor %q not found in layout %q", *floorName, *layoutKey)
		}
	}

	canvas := geometry.NewSize(l.Dimensions.Width, l.Dimensions.Height)
	if *width > 0 && *height > 0 {
		canvas = geometry.NewSize(*width, *height)
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = geometry.NewSize(cfg.Canvas.Width, cfg.Canvas.Height)
	}

	if err := export.SavePNG(*outPath, &l, target, canvas); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.WithFields(logrus.Fields{
		"layout": *layoutKey,
		"floor":  target.Name,
		"tables": len(target.Tables),
		"out":    *outPath,
	}).Info("exported layout")
}

func openStore(cfg *config.Config) (blob.Store, error) {
	if cfg.Storage.Backend == "sqlite" {
		path := cfg.Storage.Path
		if path == "" {
			path = blob.DefaultDir() + ".db"
		}
		return blob.OpenSQLite(path)
	}
	dir := cfg.Storage.Path
	if dir == "" {
		dir = blob.DefaultDir()
	}
	return blob.NewFileStore(dir)
}
