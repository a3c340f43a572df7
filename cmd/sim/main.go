// cmd/sim/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/Kikqs/Physics-Sim/pkg/config"
	"github.com/Kikqs/Physics-Sim/pkg/logging"
	engorender "github.com/Kikqs/Physics-Sim/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "sim.json", "Path to configuration file")
	title := flag.String("title", "", "Window title (overrides config)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flag.Parse()

	log := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	cfg := loadConfiguration(ctx, log, *configPath)

	// Command line flags win over file and environment.
	if *title != "" {
		cfg.Window.Title = *title
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	if err := cfg.Validate(); err != nil {
		log.Error(ctx, "configuration rejected", err)
		os.Exit(1)
	}

	log.Info(ctx, "starting simulation window",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"fullscreen", cfg.Window.Fullscreen,
		"vsync", cfg.Window.VSync)

	scene := engorender.NewSimScene(cfg, log)

	opts := engo.RunOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}

	// engo owns the window lifecycle from here: it creates the surface,
	// polls events and swaps buffers until the scene exits or the
	// window is closed.
	engo.Run(opts, scene)

	log.Info(ctx, "simulation window closed")
}

// loadConfiguration resolves the effective configuration: the file when
// it exists, otherwise defaults overlaid with PHYSIM_* environment
// variables.
func loadConfiguration(ctx context.Context, log *logging.Logger, path string) *config.SimConfig {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info(ctx, "configuration file not found, using environment and defaults", "path", path)
		cfg, err := config.LoadConfigFromEnv()
		if err != nil {
			log.Error(ctx, "failed to load configuration from environment", err)
			os.Exit(1)
		}
		return cfg
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Error(ctx, "failed to load configuration", err, "path", path)
		os.Exit(1)
	}
	log.Info(ctx, "configuration loaded", "path", path)
	return cfg
}
