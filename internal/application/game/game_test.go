package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/state"
	"github.com/younwookim/portfoliotown/internal/application/transition"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	id            entity.SceneID
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	entered       session.State
	request       *transition.Request // Returned once
	updateErr     error
}

func (m *mockScene) ID() entity.SceneID {
	return m.id
}

func (m *mockScene) Update(dt float64) (*transition.Request, error) {
	m.updateCalled++
	req := m.request
	m.request = nil
	return req, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter(payload session.State) {
	m.onEnterCalled++
	m.entered = payload
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func factoryFor(s *mockScene) Factory {
	return func(session.State) (scene.Scene, error) {
		return s, nil
	}
}

var testFade = transition.Fade{Out: 250 * time.Millisecond, In: 250 * time.Millisecond}

func createTestGame(initial *mockScene, dir *Directory) *Game {
	if dir == nil {
		dir = NewDirectory()
	}
	g := New(dir, initial, session.New("man"), 320, 240)
	g.SetDT(0.1)
	return g
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{id: "MainMenu"}
	g := createTestGame(mockInitial, nil)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, session.New("man"), mockInitial.entered)
	assert.Equal(t, state.StateActive, g.State())
	assert.Equal(t, 0.0, g.FadeAlpha())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{id: "MainMenu"}
	g := createTestGame(mockInitial, nil)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{id: "MainMenu"}
	g := createTestGame(mockInitial, nil)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := createTestGame(&mockScene{id: "MainMenu"}, nil)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransitionWithFades(t *testing.T) {
	payload := session.State{CharacterID: "man", FloorID: "wood", OriginSceneID: "Game"}
	town := &mockScene{id: "Game", request: &transition.Request{Destination: "ProjectsBuilding", Payload: payload, Fade: testFade}}
	interior := &mockScene{id: "ProjectsBuilding"}
	dir := NewDirectory()
	dir.Register("ProjectsBuilding", factoryFor(interior))
	g := createTestGame(town, dir)

	// Request issued: fade out begins
	require.NoError(t, g.Update())
	assert.Equal(t, state.StateTransitioning, g.State())
	assert.Equal(t, 0.0, g.FadeAlpha())

	// Leaving scene is frozen while fading out
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, 1, town.updateCalled)
	assert.InDelta(t, 0.8, g.FadeAlpha(), 1e-9)
	assert.Equal(t, 0, interior.onEnterCalled)

	// Fade out complete: swap
	require.NoError(t, g.Update())
	assert.Same(t, interior, g.Current())
	assert.Equal(t, 1, interior.onEnterCalled)
	assert.Equal(t, payload, interior.entered)
	assert.Equal(t, 1, town.onExitCalled)
	assert.Equal(t, state.StateActive, g.State())
	assert.Equal(t, payload, g.Payload())
	assert.Equal(t, 1.0, g.FadeAlpha())

	// Destination runs while fading in
	require.NoError(t, g.Update())
	assert.Equal(t, 1, interior.updateCalled)
	assert.InDelta(t, 0.6, g.FadeAlpha(), 1e-9)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 0.0, g.FadeAlpha())
}

func TestGame_ZeroFadeSwapsImmediately(t *testing.T) {
	next := &mockScene{id: "Game"}
	first := &mockScene{id: "ChooseCharacter", request: &transition.Request{Destination: "Game", Payload: session.New("woman")}}
	dir := NewDirectory()
	dir.Register("Game", factoryFor(next))
	g := createTestGame(first, dir)

	require.NoError(t, g.Update())

	assert.Same(t, next, g.Current())
	assert.Equal(t, 1, first.onExitCalled)
	assert.Equal(t, 0.0, g.FadeAlpha())
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{id: "Game"}
	g := createTestGame(scene1, nil)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{id: "Game", updateErr: assert.AnError}
	g := createTestGame(scene1, nil)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_UnknownDestinationIsConfigurationError(t *testing.T) {
	scene1 := &mockScene{id: "Game", request: &transition.Request{Destination: "Shed"}}
	g := createTestGame(scene1, nil)

	err := g.Update()

	assert.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestGame_ReloadRebuildsActiveScene(t *testing.T) {
	first := &mockScene{id: "Game"}
	g := createTestGame(first, nil)
	entered := g.Payload()

	rebuilt := &mockScene{id: "Game"}
	dir := NewDirectory()
	dir.Register("Game", factoryFor(rebuilt))
	reloads := make(chan *Directory, 1)
	reloads <- dir
	g.SetReloads(reloads)

	require.NoError(t, g.Update())

	assert.Same(t, rebuilt, g.Current())
	assert.Equal(t, entered, rebuilt.entered)
	assert.Equal(t, 1, first.onExitCalled)
	assert.Equal(t, 1, rebuilt.updateCalled)
}

func TestGame_ReloadKeepsSceneMissingFromDirectory(t *testing.T) {
	first := &mockScene{id: "MainMenu"}
	g := createTestGame(first, nil)
	reloads := make(chan *Directory, 1)
	reloads <- NewDirectory()
	g.SetReloads(reloads)

	require.NoError(t, g.Update())

	assert.Same(t, first, g.Current())
	assert.Equal(t, 0, first.onExitCalled)
}

func TestGame_DebugOverlay(t *testing.T) {
	mockInitial := &mockScene{id: "Game"}
	g := createTestGame(mockInitial, nil)
	g.SetDebug(true)

	text := g.DebugText()
	g.Draw(ebiten.NewImage(320, 240))

	assert.Contains(t, text, "Scene: Game (Active)")
	assert.Contains(t, text, "Session: man/")
	assert.Equal(t, 1, mockInitial.drawCalled)
}
