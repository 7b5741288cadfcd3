// Package main provides the entry point for the Table Plan application.
package main

import (
	"flag"
	"math/rand"
	"time"

	"fyne.io/fyne/v2/app"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/sirupsen/logrus"

	"tableplan/internal/blob"
	"tableplan/internal/config"
	"tableplan/internal/editor"
	"tableplan/internal/planner"
	"tableplan/internal/version"
	"tableplan/pkg/geometry"
	"tableplan/ui/classicwindow"
	"tableplan/ui/mainwindow"
	"tableplan/ui/prefs"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath(), "config file")
		classic    = flag.Bool("classic", false, "open the fixed-coordinate classic editor")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.WithField("version", version.Version).Info("starting Table Plan")

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open layout store: %v", err)
	}

	fyneApp := app.NewWithID("io.tableplan.app")
	fyneApp.Settings().SetTheme(&mainwindow.TablePlanTheme{})

	canvas := geometry.NewSize(cfg.Canvas.Width, cfg.Canvas.Height)

	if *classic {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		state := editor.NewState(canvas, rng)
		state.SetPlacement(cfg.Placement.Buffer, cfg.Placement.MaxAttempts)
		classicwindow.New(fyneApp, state, store, log).ShowAndRun()
		return
	}

	appPrefs := prefs.Load()
	state := planner.NewState("Floor Plan", canvas)
	mainwindow.New(fyneApp, state, store, appPrefs, log).ShowAndRun()
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
