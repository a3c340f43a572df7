// pkg/render/engo/scene.go
package engo

import (
	"context"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/Kikqs/Physics-Sim/pkg/config"
	"github.com/Kikqs/Physics-Sim/pkg/logging"
)

// SimScene is the main window scene: it owns the frame loop that the
// windowing backend drives (poll events, update, render, swap buffers)
// and animates a handful of dimensionless markers with the vector type.
type SimScene struct {
	world *ecs.World

	cfg *config.SimConfig
	log *logging.Logger

	markers *MarkerSystem
	input   *InputSystem
}

// NewSimScene creates a scene for the given configuration
func NewSimScene(cfg *config.SimConfig, log *logging.Logger) *SimScene {
	return &SimScene{
		cfg:   cfg,
		log:   log,
		world: &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *SimScene) Type() string {
	return "SimScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *SimScene) Preload() {
	// No assets to load; markers are flat shapes.
}

// Setup is called when the scene starts (required by Engo)
func (scene *SimScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("SimScene requires an ecs.World updater")
	}
	scene.world = world

	background, err := ParseHexColor(scene.cfg.Window.Background)
	if err != nil {
		scene.log.Warn(context.Background(), "invalid background color, using black",
			"value", scene.cfg.Window.Background)
		background = color.RGBA{A: 255}
	}
	common.SetBackground(background)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.input = NewInputSystem(scene.log)
	world.AddSystem(scene.input)

	scene.markers = NewMarkerSystem(scene.cfg, scene.log)
	world.AddSystem(scene.markers)
	scene.markers.Spawn(renderSystem,
		float64(scene.cfg.Window.Width), float64(scene.cfg.Window.Height))

	scene.log.Info(context.Background(), "scene ready",
		"markers", scene.cfg.Markers.Count,
		"width", scene.cfg.Window.Width,
		"height", scene.cfg.Window.Height)
}

// ParseHexColor parses a "#RRGGBB" color string
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color must be in #RRGGBB form, got %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
