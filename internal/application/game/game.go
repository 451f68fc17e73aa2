// Package game provides the main game loop manager that handles scene
// transitions and fades.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/state"
	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

// Game implements ebiten.Game and manages scene transitions.
type Game struct {
	dir     *Directory
	current scene.Scene
	life    *state.Lifecycle
	payload session.State // What current was entered with

	phase   fadePhase
	elapsed float64
	pending *transition.Request

	reloads <-chan *Directory

	screenW int
	screenH int
	dt      float64
	debug   bool
}

// New creates a new Game and enters the start scene with payload.
func New(dir *Directory, start scene.Scene, payload session.State, screenW, screenH int) *Game {
	g := &Game{
		dir:     dir,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.enter(start, payload)
	return g
}

// Update updates the current scene and drives transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.drainReloads()

	switch g.phase {
	case fadeOut:
		g.elapsed += g.dt
		if g.elapsed >= g.pending.Fade.Out.Seconds() {
			return g.swap()
		}
		// The leaving scene is frozen while it fades out
		return nil
	case fadeIn:
		g.elapsed += g.dt
		if g.elapsed >= g.pending.Fade.In.Seconds() {
			g.phase = fadeNone
			g.pending = nil
		}
	}

	req, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if req != nil {
		return g.begin(req)
	}
	return nil
}

// Draw renders the current scene and the fade overlay.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)

	if alpha := g.FadeAlpha(); alpha > 0 {
		a := uint8(alpha * 255)
		vector.FillRect(screen, 0, 0, float32(g.screenW), float32(g.screenH), color.RGBA{A: a}, false)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, g.DebugText())
	}
}

// DebugText describes the current scene for the debug overlay
func (g *Game) DebugText() string {
	return fmt.Sprintf("TPS: %.1f\nScene: %s (%s)\nSession: %s/%s from %s",
		ebiten.ActualTPS(), g.current.ID(), g.life.Current(),
		g.payload.CharacterID, g.payload.FloorID, g.payload.OriginSceneID)
}

// SetDebug toggles the debug overlay
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetReloads makes Update apply scene directories received on ch.
// The sender runs on another goroutine; only Update reads the channel.
func (g *Game) SetReloads(ch <-chan *Directory) {
	g.reloads = ch
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Payload returns the session the current scene was entered with
func (g *Game) Payload() session.State {
	return g.payload
}

// State returns the lifecycle state of the current scene
func (g *Game) State() state.SceneState {
	return g.life.Current()
}

// FadeAlpha returns the black overlay opacity in [0,1]
func (g *Game) FadeAlpha() float64 {
	switch g.phase {
	case fadeOut:
		return progress(g.elapsed, g.pending.Fade.Out.Seconds())
	case fadeIn:
		return 1 - progress(g.elapsed, g.pending.Fade.In.Seconds())
	default:
		return 0
	}
}

func progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	if p := elapsed / total; p < 1 {
		return p
	}
	return 1
}

func (g *Game) enter(s scene.Scene, payload session.State) {
	life := state.NewLifecycle()
	s.OnEnter(payload)
	if err := life.Advance(state.StateActive); err != nil {
		log.Printf("scene %s: %v", s.ID(), err)
	}
	g.current = s
	g.life = life
	g.payload = payload
}

func (g *Game) begin(req *transition.Request) error {
	if err := g.life.Advance(state.StateTransitioning); err != nil {
		return fmt.Errorf("scene %s: %w", g.current.ID(), err)
	}
	old := g.current
	g.life.OnExit(state.StateTransitioning, old.OnExit)

	g.pending = req
	g.phase = fadeOut
	g.elapsed = 0
	if req.Fade.Out <= 0 {
		return g.swap()
	}
	return nil
}

// swap builds the destination, enters it and tears the old scene down
func (g *Game) swap() error {
	req := g.pending
	next, err := g.dir.Build(req.Destination, req.Payload)
	if err != nil {
		return err
	}

	oldLife := g.life
	g.enter(next, req.Payload)
	if err := oldLife.Advance(state.StateTornDown); err != nil {
		log.Printf("teardown: %v", err)
	}

	g.phase = fadeIn
	g.elapsed = 0
	if req.Fade.In <= 0 {
		g.phase = fadeNone
		g.pending = nil
	}
	return nil
}

// drainReloads applies pending directory reloads without blocking.
// An Active scene is rebuilt from the new directory with the payload it
// was entered with; a scene mid-transition keeps running and the swap picks up
// the new directory.
func (g *Game) drainReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case dir, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.applyReload(dir)
		default:
			return
		}
	}
}

func (g *Game) applyReload(dir *Directory) {
	g.dir = dir
	if !g.life.Is(state.StateActive) || g.phase != fadeNone {
		return
	}

	id := g.current.ID()
	if !dir.Has(id) {
		log.Printf("reload: scene %s no longer exists, keeping current instance", id)
		return
	}
	next, err := dir.Build(id, g.payload)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}

	old, oldLife := g.current, g.life
	g.enter(next, g.payload)
	_ = oldLife.Advance(state.StateTornDown)
	old.OnExit()
	log.Printf("reload: rebuilt scene %s", id)
}
