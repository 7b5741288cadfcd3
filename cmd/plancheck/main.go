// Command plancheck validates a saved layout: it reports table pairs whose
// bounding boxes overlap and tables placed outside the canvas. Exit code 1
// means at least one finding.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"tableplan/internal/blob"
	"tableplan/internal/config"
	"tableplan/internal/floor"
	"tableplan/internal/placement"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "config file")
		layoutKey  = flag.String("layout", "", "layout key to check (required)")
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

	canvas := geometry.NewSize(l.Dimensions.Width, l.Dimensions.Height)
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = geometry.NewSize(cfg.Canvas.Width, cfg.Canvas.Height)
	}

	findings := 0
	for _, f := range l.Floors {
		findings += checkFloor(f, canvas, cfg.Placement.Buffer)
	}

	if findings > 0 {
		fmt.Printf("%d finding(s) in layout %q\n", findings, *layoutKey)
		os.Exit(1)
	}
	fmt.Printf("layout %q is clean: %d floor(s)\n", *layoutKey, len(l.Floors))
}

// checkFloor reports overlapping table pairs and out-of-bounds tables.
// The percentage variant never enforces overlaps at edit time, so saved
// layouts can legitimately contain them; this tool makes them visible.
func checkFloor(f *floor.Floor, canvas geometry.Size, buffer float64) int {
	rects := make([]geometry.Rect, len(f.Tables))
	for i, t := range f.Tables {
		rects[i] = footprint(t, canvas)
	}

	findings := 0
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if placement.Overlaps(rects[i], rects[j], buffer) {
				fmt.Printf("floor %q: tables %s and %s overlap\n",
					f.Name, describe(f.Tables[i]), describe(f.Tables[j]))
				findings++
			}
		}

		r := rects[i]
		if r.X < 0 || r.Y < 0 || r.X+r.Width > canvas.Width || r.Y+r.Height > canvas.Height {
			fmt.Printf("floor %q: table %s extends outside the canvas\n",
				f.Name, describe(f.Tables[i]))
			findings++
		}
	}
	return findings
}

// footprint computes the unrotated bounding box in pixels.
func footprint(t *floor.Table, canvas geometry.Size) geometry.Rect {
	center := t.Center(canvas)
	d := table.Dimensions(t.Shape, t.Size)
	return geometry.Rect{
		X:      center.X - d.Width/2,
		Y:      center.Y - d.Height/2,
		Width:  d.Width,
		Height: d.Height,
	}
}

func describe(t *floor.Table) string {
	if t.Name != "" {
		return fmt.Sprintf("%q", t.Name)
	}
	return t.ID
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
