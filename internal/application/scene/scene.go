// Package scene defines the Scene interface for game screens.
//
// The level scene runs the simulation; when the level asks for another
// screen (the victory text after the boss falls) it builds that scene by key
// and returns it from Update.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownScene is returned when a scene key has no screen to build
var ErrUnknownScene = errors.New("unknown scene")

// Scene represents a game screen (level, victory text)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene on a transition, nil to stay.
	// ebiten.Termination ends the game cleanly; any other error aborts it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene and once more when the
	// window closes; recordings are flushed here.
	OnExit()
}
