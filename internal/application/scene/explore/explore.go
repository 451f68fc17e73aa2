// Package explore provides the walkable scenes: the town and the
// building interiors declared in world.yaml.
package explore

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portfoliotown/internal/application/interaction"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
	"github.com/younwookim/portfoliotown/internal/infrastructure/audio"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
	"github.com/younwookim/portfoliotown/internal/infrastructure/physics"
	"github.com/younwookim/portfoliotown/internal/infrastructure/render"
	"github.com/younwookim/portfoliotown/internal/infrastructure/script"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{95, 158, 69, 255}
	colorBuilding  = color.RGBA{160, 100, 60, 255}
	colorHighlight = color.RGBA{255, 230, 90, 255}
	colorLabel     = color.RGBA{255, 255, 255, 255}
	colorDialogBG  = color.RGBA{0, 0, 0, 200}
	colorHint      = color.RGBA{255, 255, 255, 220}
)

const pulseSpeed = 6.0 // Radians per second

// Deps are the collaborators shared by every explore scene
type Deps struct {
	Display   *config.DisplayConfig
	World     *config.WorldConfig
	Input     system.InputSource
	Dialogue  *script.Dialogue // Optional
	Footsteps *audio.Footsteps // Optional
	Fonts     *render.Fonts    // Optional; text is skipped without it
}

// dialogueBox is the open conversation, if any
type dialogueBox struct {
	speaker string
	lines   []string
}

// Explore is a walkable scene built from a world.yaml scene entry
type Explore struct {
	deps   Deps
	cfg    *config.SceneConfig
	layout *system.SceneLayout
	floors session.FloorMap
	bg     color.RGBA
	fills  map[entity.InteractableID]color.RGBA

	// Built on enter
	session    session.State
	avatar     *entity.Avatar
	style      render.AvatarStyle
	world      *physics.ContactWorld
	registry   *interaction.Registry
	proximity  *system.ProximityEvaluator
	controller *transition.Controller

	dialogue *dialogueBox
	talks    map[entity.InteractableID]int
	pulse    float64
}

// New creates the explore scene for id. The world config must have
// passed validation.
func New(deps Deps, id entity.SceneID) (*Explore, error) {
	cfg, ok := deps.World.Scene(string(id))
	if !ok {
		return nil, entity.NewConfigError("scenes["+string(id)+"]", "scene not declared")
	}

	e := &Explore{
		deps:      deps,
		cfg:       cfg,
		layout:    system.LoadScene(cfg),
		floors:    deps.World.FloorMap(),
		bg:        config.ColorOr(cfg.Background, colorBG),
		fills:     make(map[entity.InteractableID]color.RGBA),
		proximity: system.NewProximityEvaluator(),
		talks:     make(map[entity.InteractableID]int),
	}
	for _, ic := range cfg.Interactables {
		e.fills[entity.InteractableID(ic.ID)] = config.ColorOr(ic.Color, colorBuilding)
	}
	return e, nil
}

// ID implements scene.Scene
func (e *Explore) ID() entity.SceneID {
	return e.layout.ID
}

// OnEnter places the avatar and builds the per-visit state
func (e *Explore) OnEnter(payload session.State) {
	e.session = payload
	if e.session.FloorID == "" {
		if floor, err := e.floors.Lookup(e.layout.ID); err == nil {
			e.session = e.session.WithFloor(floor)
		}
	}

	mv := e.deps.Display.Movement
	spawn := system.Spawn(e.cfg, payload.OriginSceneID, mv.AvatarRadius)
	e.avatar = entity.NewAvatar(payload.CharacterID, spawn, mv.AvatarRadius)
	e.style = e.characterStyle(payload.CharacterID)

	e.registry = e.layout.NewRegistry(e)
	e.world = physics.NewContactWorld(e.layout.Bounds, e.layout.Interactables, spawn, mv.AvatarRadius)
	e.controller = transition.NewController(e.layout.ID, e.session, e.registry, e.layout.Interactables, e.floors, e.fade())

	log.Printf("enter %s as %s on %s (from %s)", e.layout.ID, e.session.CharacterID, e.session.FloorID, e.session.OriginSceneID)
}

// OnExit stops the footstep loop
func (e *Explore) OnExit() {
	e.deps.Footsteps.Stop()
}

// Update runs one tick: input, movement, contacts, proximity, interact
func (e *Explore) Update(dt float64) (*transition.Request, error) {
	if e.world == nil {
		return nil, fmt.Errorf("scene %s updated before OnEnter", e.layout.ID)
	}

	input := e.deps.Input.ReadInput()
	interact := false
	for _, intent := range system.Intents(input, e.dialogue != nil) {
		switch it := intent.(type) {
		case system.MoveIntent:
			e.avatar.Steer(it.DX, it.DY, e.deps.Display.Movement.Speed)
		case system.InteractIntent:
			interact = true
		case system.DismissIntent:
			e.dialogue = nil
		}
	}

	e.world.SetAvatarVelocity(e.avatar.Velocity)
	for _, ev := range e.world.Step(dt) {
		e.registry.Set(ev.ID, true)
	}
	e.avatar.Position = e.world.AvatarPosition()
	e.avatar.Animate(dt)

	e.proximity.Apply(e.avatar.Position, e.layout.Interactables, e.registry)
	e.updatePulse(dt)
	e.deps.Footsteps.Update(e.session.FloorID, e.avatar.IsWalking())

	if !interact {
		return nil, nil
	}
	out, ok := e.controller.Interact()
	if !ok {
		return nil, nil
	}
	switch out.Kind {
	case transition.OutcomeTransition:
		e.avatar.Steer(0, 0, 0)
		e.deps.Footsteps.Stop()
		return out.Request, nil
	case transition.OutcomeDialogue:
		e.openDialogue(out.Target)
	}
	return nil, nil
}

// SetVisual implements interaction.VisualSink
func (e *Explore) SetVisual(id entity.InteractableID, state entity.VisualState) {
	if it, ok := e.layout.Find(id); ok {
		it.Visual = state
	}
}

// Visual returns the displayed state of id
func (e *Explore) Visual(id entity.InteractableID) entity.VisualState {
	if it, ok := e.layout.Find(id); ok {
		return it.Visual
	}
	return entity.VisualNeutral
}

// Session returns the session this scene was entered with
func (e *Explore) Session() session.State {
	return e.session
}

// Avatar returns the player avatar
func (e *Explore) Avatar() *entity.Avatar {
	return e.avatar
}

// Registry returns the interaction registry
func (e *Explore) Registry() *interaction.Registry {
	return e.registry
}

// DialogueLines returns the open dialogue, or nil
func (e *Explore) DialogueLines() []string {
	if e.dialogue == nil {
		return nil
	}
	return e.dialogue.lines
}

// AvatarScale returns the avatar draw scale; it pulses while an exit is active
func (e *Explore) AvatarScale() float64 {
	if e.pulse == 0 {
		return 1
	}
	return 1 + 0.08*math.Abs(math.Sin(e.pulse))
}

func (e *Explore) updatePulse(dt float64) {
	id, ok := e.registry.AnyActive()
	if !ok {
		e.pulse = 0
		return
	}
	if it, found := e.layout.Find(id); found && it.Kind == entity.KindExit {
		e.pulse += dt * pulseSpeed
		return
	}
	e.pulse = 0
}

func (e *Explore) openDialogue(target *entity.Interactable) {
	lines := target.Lines
	if target.Script != "" && e.deps.Dialogue != nil {
		scripted, err := e.deps.Dialogue.Lines(target.Script, script.Input{
			Character: string(e.session.CharacterID),
			Origin:    string(e.session.OriginSceneID),
			Talks:     e.talks[target.ID],
		})
		if err != nil {
			log.Printf("dialogue %s: %v", target.ID, err)
		} else {
			lines = scripted
		}
	}
	e.talks[target.ID]++

	if len(lines) == 0 {
		lines = []string{"..."}
	}
	speaker := target.Label
	if speaker == "" {
		speaker = string(target.ID)
	}
	e.dialogue = &dialogueBox{speaker: speaker, lines: lines}
}

func (e *Explore) fade() transition.Fade {
	t := e.deps.Display.Transition
	if t.FadeOutMs == 0 && t.FadeInMs == 0 {
		return transition.DefaultFade
	}
	return transition.Fade{
		Out: time.Duration(t.FadeOutMs) * time.Millisecond,
		In:  time.Duration(t.FadeInMs) * time.Millisecond,
	}
}

func (e *Explore) characterStyle(id entity.CharacterID) render.AvatarStyle {
	style := render.AvatarStyle{
		Body:   color.RGBA{63, 111, 181, 255},
		Accent: color.RGBA{242, 201, 160, 255},
	}
	if c, ok := e.deps.World.Character(string(id)); ok {
		style.Body = config.ColorOr(c.Color, style.Body)
		style.Accent = config.ColorOr(c.Accent, style.Accent)
	}
	return style
}

// Draw renders the scene
func (e *Explore) Draw(screen *ebiten.Image) {
	screen.Fill(e.bg)

	for i := range e.layout.Interactables {
		e.drawInteractable(screen, &e.layout.Interactables[i])
	}
	if e.avatar != nil {
		render.DrawAvatar(screen, e.avatar, e.style, e.deps.Display.Movement.AvatarSize, e.AvatarScale())
	}
	e.drawHint(screen)
	e.drawDialogue(screen)
}

func (e *Explore) drawInteractable(screen *ebiten.Image, it *entity.Interactable) {
	fill := e.fills[it.ID]
	if it.Visual == entity.VisualHighlighted {
		fill = render.Lighten(fill, 0.3)
	}
	render.DrawBox(screen, it.Position, it.Hitbox, fill)
	if it.Visual == entity.VisualHighlighted {
		render.OutlineBox(screen, it.Position, it.Hitbox, 3, colorHighlight)
	}

	if e.deps.Fonts == nil || it.Label == "" || it.Kind == entity.KindExit {
		return
	}
	face := e.deps.Fonts.Face(16)
	top := it.Position.Y - it.Hitbox.Height/2 - 22
	render.DrawCentered(screen, it.Label, face, it.Position.X, top, colorLabel)
}

func (e *Explore) drawHint(screen *ebiten.Image) {
	if e.deps.Fonts == nil || e.dialogue != nil || e.registry == nil {
		return
	}
	id, ok := e.registry.AnyActive()
	if !ok {
		return
	}
	it, found := e.layout.Find(id)
	if !found {
		return
	}

	hint := "Press space to talk"
	switch it.Kind {
	case entity.KindBuilding:
		hint = "Press space to enter " + it.Label
	case entity.KindExit:
		hint = "Press space to go outside"
	case entity.KindProp:
		hint = "Press space to read"
	}
	w := float64(e.deps.Display.Display.ScreenWidth)
	render.DrawCentered(screen, hint, e.deps.Fonts.Face(16), w/2, 16, colorHint)
}

func (e *Explore) drawDialogue(screen *ebiten.Image) {
	if e.dialogue == nil || e.deps.Fonts == nil {
		return
	}
	dc := e.deps.Display.Dialogue
	w := float64(e.deps.Display.Display.ScreenWidth)
	h := float64(e.deps.Display.Display.ScreenHeight)
	boxH := float64(dc.BoxHeight)
	margin := 16.0

	top := h - boxH - margin
	render.DrawBox(screen,
		entity.Vec2{X: w / 2, Y: top + boxH/2},
		entity.Size{Width: w - 2*margin, Height: boxH},
		colorDialogBG)

	face := e.deps.Fonts.Face(dc.FontSize)
	lineH := dc.FontSize * 1.4
	var lines []string
	lines = append(lines, e.dialogue.speaker+":")
	for _, l := range e.dialogue.lines {
		lines = append(lines, render.Wrap(l, w-4*margin, render.FaceWidth(face))...)
	}
	render.DrawLines(screen, lines, face, 2*margin, top+margin, lineH, colorLabel)
}
