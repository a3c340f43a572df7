// pkg/render/engo/marker.go
package engo

import (
	"context"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/Kikqs/Physics-Sim/pkg/config"
	"github.com/Kikqs/Physics-Sim/pkg/logging"
	"github.com/Kikqs/Physics-Sim/pkg/physics"
)

// markerPalette cycles through the colors assigned to spawned markers
var markerPalette = []color.RGBA{
	{R: 102, G: 194, B: 255, A: 255},
	{R: 255, G: 178, B: 102, A: 255},
	{R: 153, G: 255, B: 153, A: 255},
	{R: 255, G: 128, B: 170, A: 255},
}

// markerPath is the piecewise-linear orbit a marker follows: straight
// segments between the corners of a square centered on the window,
// interpolated with Vector2D.Lerp. Each corner is the previous corner
// rotated a quarter turn about the center, so the orbit radius is
// preserved exactly.
type markerPath struct {
	From     physics.Vector2D
	To       physics.Vector2D
	Progress float64 // fraction of the current segment already covered, in [0, 1)
}

// nextCorner rotates a corner 90 degrees counter-clockwise about center
func nextCorner(center, corner physics.Vector2D) physics.Vector2D {
	return center.Add(corner.Sub(center).Perpendicular())
}

// Advance moves the path forward by the given distance and returns the
// resulting position. Crossing a corner carries leftover distance onto
// the next segment. A path that collapses onto the center stays there.
func (p *markerPath) Advance(center physics.Vector2D, distance float64) physics.Vector2D {
	for distance > 0 {
		length := p.To.Distance(p.From)
		if length == 0 {
			break
		}

		remaining := (1 - p.Progress) * length
		if distance < remaining {
			p.Progress += distance / length
			break
		}

		distance -= remaining
		p.From = p.To
		p.To = nextCorner(center, p.From)
		p.Progress = 0
	}
	return p.From.Lerp(p.To, p.Progress)
}

// marker ties one animated point to its render components
type marker struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	path   markerPath
}

// MarkerSystem animates the demo markers each frame. It exists to keep
// the frame loop visibly alive; the markers carry no simulation state
// beyond their position.
type MarkerSystem struct {
	cfg *config.SimConfig
	log *logging.Logger

	center  physics.Vector2D
	markers []*marker
}

// NewMarkerSystem creates a marker system for the given configuration
func NewMarkerSystem(cfg *config.SimConfig, log *logging.Logger) *MarkerSystem {
	return &MarkerSystem{
		cfg: cfg,
		log: log,
	}
}

// Spawn creates the configured number of markers evenly spaced on a ring
// around the window center and registers them with the render system.
func (ms *MarkerSystem) Spawn(renderSystem *common.RenderSystem, width, height float64) {
	ms.center = physics.Vector2D{X: width / 2, Y: height / 2}
	orbit := math.Min(width, height) / 3
	size := float32(2 * ms.cfg.Markers.Radius)

	for i := 0; i < ms.cfg.Markers.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(ms.cfg.Markers.Count)
		start := ms.center.Add(physics.FromAngle(angle, orbit))

		m := &marker{
			basic: ecs.NewBasic(),
			path: markerPath{
				From: start,
				To:   nextCorner(ms.center, start),
			},
		}
		m.render = common.RenderComponent{
			Drawable: common.Circle{},
			Color:    markerPalette[i%len(markerPalette)],
		}
		m.space = common.SpaceComponent{
			Position: ms.toPoint(start),
			Width:    size,
			Height:   size,
		}

		renderSystem.Add(&m.basic, &m.render, &m.space)
		ms.markers = append(ms.markers, m)
	}

	ms.log.Debug(context.Background(), "markers spawned",
		"count", len(ms.markers), "orbit", orbit)
}

// Update advances every marker along its path (required by ecs.System)
func (ms *MarkerSystem) Update(dt float32) {
	distance := ms.cfg.Markers.Speed * float64(dt)
	for _, m := range ms.markers {
		pos := m.path.Advance(ms.center, distance)
		m.space.Position = ms.toPoint(pos)
	}
}

// Remove drops a marker from the system (required by ecs.System)
func (ms *MarkerSystem) Remove(basic ecs.BasicEntity) {
	for i, m := range ms.markers {
		if m.basic.ID() == basic.ID() {
			ms.markers = append(ms.markers[:i], ms.markers[i+1:]...)
			return
		}
	}
}

// toPoint converts a center position to the top-left render coordinate
func (ms *MarkerSystem) toPoint(pos physics.Vector2D) engo.Point {
	r := ms.cfg.Markers.Radius
	return engo.Point{
		X: float32(pos.X - r),
		Y: float32(pos.Y - r),
	}
}
