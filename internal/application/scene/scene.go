// Package scene defines the Scene interface for game screens.
//
// Each screen (main menu, character selection, the town and its
// interiors) implements Scene. Scenes never switch themselves: they
// return a transition request and the game manager performs the swap.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
type Scene interface {
	// ID returns the scene's directory id.
	ID() entity.SceneID

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns a transition request to leave the scene, nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (*transition.Request, error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called once with the session handed over by the
	// previous scene.
	OnEnter(payload session.State)

	// OnExit is called when the scene is torn down.
	OnExit()
}

// Built-in scenes that are not declared in world.yaml
const (
	MainMenuID        entity.SceneID = "MainMenu"
	ChooseCharacterID entity.SceneID = "ChooseCharacter"
)
