// Package choose provides the character selection screen.
package choose

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
	"github.com/younwookim/portfoliotown/internal/infrastructure/render"
)

var (
	colorBG       = color.RGBA{40, 50, 70, 255}
	colorSelected = color.RGBA{255, 230, 90, 255}
	colorCard     = color.RGBA{60, 72, 96, 255}
	colorText     = color.RGBA{255, 255, 255, 255}
)

var chooseFade = transition.Fade{Out: 300 * time.Millisecond, In: 1000 * time.Millisecond}

// Choose lets the player cycle through the configured characters.
// Confirming creates the session and enters the start scene.
type Choose struct {
	input   system.InputSource
	world   *config.WorldConfig
	fonts   *render.Fonts
	screenW float64
	screenH float64

	selected int
	done     bool
}

// New creates the character selection screen
func New(input system.InputSource, world *config.WorldConfig, fonts *render.Fonts, screenW, screenH int) *Choose {
	return &Choose{
		input:   input,
		world:   world,
		fonts:   fonts,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
}

// ID implements scene.Scene
func (c *Choose) ID() entity.SceneID {
	return scene.ChooseCharacterID
}

// OnEnter implements scene.Scene
func (c *Choose) OnEnter(session.State) {
	c.selected = 0
	c.done = false
}

// OnExit implements scene.Scene
func (c *Choose) OnExit() {}

// Selected returns the highlighted character
func (c *Choose) Selected() entity.CharacterID {
	if len(c.world.Characters) == 0 {
		return ""
	}
	return entity.CharacterID(c.world.Characters[c.selected].ID)
}

// Update implements scene.Scene
func (c *Choose) Update(_ float64) (*transition.Request, error) {
	if c.done {
		return nil, nil
	}
	input := c.input.ReadInput()

	n := len(c.world.Characters)
	switch {
	case input.LeftPressed && n > 0:
		c.selected = (c.selected - 1 + n) % n
	case input.RightPressed && n > 0:
		c.selected = (c.selected + 1) % n
	}

	if input.Cancel {
		c.done = true
		return &transition.Request{
			Destination: scene.MainMenuID,
			Payload:     session.CarryForward(session.State{}, scene.ChooseCharacterID),
			Fade:        chooseFade,
		}, nil
	}
	if !input.Confirm || n == 0 {
		return nil, nil
	}

	start := entity.SceneID(c.world.Start)
	payload, err := session.Payload(session.New(c.Selected()), scene.ChooseCharacterID, start, c.world.FloorMap())
	if err != nil {
		return nil, err
	}
	c.done = true
	log.Printf("selected character %s", payload.CharacterID)
	return &transition.Request{Destination: start, Payload: payload, Fade: chooseFade}, nil
}

// Draw implements scene.Scene
func (c *Choose) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	n := len(c.world.Characters)
	if n == 0 {
		return
	}
	slot := c.screenW / float64(n+1)
	card := entity.Size{Width: 160, Height: 200}
	for i, ch := range c.world.Characters {
		center := entity.Vec2{X: slot * float64(i+1), Y: c.screenH / 2}
		render.DrawBox(screen, center, card, colorCard)
		if i == c.selected {
			render.OutlineBox(screen, center, card, 4, colorSelected)
		}

		avatar := entity.NewAvatar(entity.CharacterID(ch.ID), entity.Vec2{X: center.X, Y: center.Y + 20}, 20)
		avatar.Facing = entity.FacingDown
		style := render.AvatarStyle{
			Body:   config.ColorOr(ch.Color, colorCard),
			Accent: config.ColorOr(ch.Accent, colorText),
		}
		render.DrawAvatar(screen, avatar, style, 100, 1)

		if c.fonts != nil {
			name := ch.Name
			if name == "" {
				name = ch.ID
			}
			render.DrawCentered(screen, name, c.fonts.Face(20), center.X, center.Y+card.Height/2+12, colorText)
		}
	}

	if c.fonts != nil {
		render.DrawCentered(screen, "Choose your character", c.fonts.Face(32), c.screenW/2, 60, colorText)
		render.DrawCentered(screen, "Left/Right to pick, Enter to start", c.fonts.Face(18), c.screenW/2, c.screenH-60, colorText)
	}
}
