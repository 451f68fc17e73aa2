package main

import (
	"github.com/younwookim/portfoliotown/internal/application/game"
	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/scene/choose"
	"github.com/younwookim/portfoliotown/internal/application/scene/explore"
	"github.com/younwookim/portfoliotown/internal/application/scene/mainmenu"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
	"github.com/younwookim/portfoliotown/internal/infrastructure/audio"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
	"github.com/younwookim/portfoliotown/internal/infrastructure/render"
	"github.com/younwookim/portfoliotown/internal/infrastructure/script"
)

// services are shared by every scene the directory builds.
// dialogue, footsteps, fonts and press may be nil when running headless.
type services struct {
	cfg       *config.GameConfig
	input     system.InputSource
	dialogue  *script.Dialogue
	footsteps *audio.Footsteps
	fonts     *render.Fonts
	press     func() // Start button clicks, queued into the input
}

// buildDirectory registers the menu, character select and one explore
// scene per world.yaml entry, then checks every destination resolves
func buildDirectory(s services) (*game.Directory, error) {
	display := s.cfg.Display
	world := s.cfg.World
	dir := game.NewDirectory()

	dir.Register(scene.MainMenuID, func(session.State) (scene.Scene, error) {
		menu := mainmenu.New(s.input, s.fonts, display.Display.Title)
		if s.press != nil {
			menu.SetPress(s.press)
		}
		return menu, nil
	})
	dir.Register(scene.ChooseCharacterID, func(session.State) (scene.Scene, error) {
		return choose.New(s.input, world, s.fonts, display.Display.ScreenWidth, display.Display.ScreenHeight), nil
	})

	deps := explore.Deps{
		Display:   display,
		World:     world,
		Input:     s.input,
		Dialogue:  s.dialogue,
		Footsteps: s.footsteps,
		Fonts:     s.fonts,
	}
	for _, id := range world.SceneIDs() {
		sceneID := entity.SceneID(id)
		dir.Register(sceneID, func(session.State) (scene.Scene, error) {
			return explore.New(deps, sceneID)
		})
	}

	if err := game.Validate(dir, scene.MainMenuID, destinations(world)); err != nil {
		return nil, err
	}
	return dir, nil
}

// destinations lists every scene a transition can request
func destinations(world *config.WorldConfig) []entity.SceneID {
	out := []entity.SceneID{scene.ChooseCharacterID, scene.MainMenuID, entity.SceneID(world.Start)}
	for _, d := range world.Destinations() {
		out = append(out, entity.SceneID(d))
	}
	return out
}

// startScene builds the first scene. With a character the menu and
// character select are skipped and the session starts in the world's
// start scene as if that character had just been chosen.
func startScene(dir *game.Directory, world *config.WorldConfig, character string) (scene.Scene, session.State, error) {
	if character == "" {
		s, err := dir.Build(scene.MainMenuID, session.State{})
		return s, session.State{}, err
	}

	if _, ok := world.Character(character); !ok {
		return nil, session.State{}, entity.NewConfigError("character", "unknown character %q", character)
	}
	start := entity.SceneID(world.Start)
	payload, err := session.Payload(session.New(entity.CharacterID(character)), scene.ChooseCharacterID, start, world.FloorMap())
	if err != nil {
		return nil, session.State{}, err
	}
	s, err := dir.Build(start, payload)
	return s, payload, err
}
