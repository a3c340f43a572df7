// pkg/render/engo/input.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/Kikqs/Physics-Sim/pkg/logging"
)

const exitButton = "exit"

// InputSystem watches lifecycle input for the window shell. The only
// binding is Escape, which requests a clean shutdown of the frame loop;
// window-close events are handled by the backend itself.
type InputSystem struct {
	log *logging.Logger
}

// NewInputSystem creates the input system and registers its key
// bindings. Must be called from Scene.Setup, after the backend has
// initialized input handling.
func NewInputSystem(log *logging.Logger) *InputSystem {
	engo.Input.RegisterButton(exitButton, engo.KeyEscape)
	return &InputSystem{log: log}
}

// Update polls for the exit binding (required by ecs.System)
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(exitButton).JustPressed() {
		is.log.Info(context.Background(), "exit requested")
		engo.Exit()
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}
