package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portfoliotown/internal/application/interaction"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
	"github.com/younwookim/portfoliotown/internal/infrastructure/physics"
)

type visualSink map[entity.InteractableID]entity.VisualState

func (v visualSink) SetVisual(id entity.InteractableID, state entity.VisualState) {
	v[id] = state
}

// townFixture wires contact world, registry, proximity and controller the
// way an exploring scene does each tick.
type townFixture struct {
	items     []entity.Interactable
	world     *physics.ContactWorld
	registry  *interaction.Registry
	proximity *system.ProximityEvaluator
	ctrl      *Controller
	visuals   visualSink
}

func newTownFixture(spawn entity.Vec2) *townFixture {
	items := []entity.Interactable{
		{
			ID: "projectsBuilding", Kind: entity.KindBuilding,
			Position: entity.Vec2{X: 250, Y: 450}, Hitbox: entity.Size{Width: 150, Height: 150},
			Radius: 150, Destination: "ProjectsBuilding",
		},
	}
	f := &townFixture{
		items:     items,
		world:     physics.NewContactWorld(entity.Bounds{Width: 1024, Height: 768}, items, spawn, 20),
		proximity: system.NewProximityEvaluator(),
		visuals:   visualSink{},
	}
	f.registry = interaction.NewRegistry(interaction.Exclusive, f.visuals)
	for _, it := range items {
		f.registry.Register(it.ID)
	}
	f.ctrl = NewController("Game", session.New("man").WithFloor("grass"), f.registry, items, createTestFloors(), DefaultFade)
	return f
}

func (f *townFixture) tick(vel entity.Vec2) {
	f.world.SetAvatarVelocity(vel)
	for _, ev := range f.world.Step(1.0 / 60.0) {
		f.registry.Set(ev.ID, true)
	}
	f.proximity.Apply(f.world.AvatarPosition(), f.items, f.registry)
}

func TestScenario_OutOfRangeWithoutContactIsNoOp(t *testing.T) {
	f := newTownFixture(entity.Vec2{X: 450, Y: 450})

	f.tick(entity.Vec2{})
	_, ok := f.ctrl.Interact()

	assert.False(t, ok)
	assert.False(t, f.registry.IsActive("projectsBuilding"))
}

func TestScenario_InRangeWithoutContactIsNoOp(t *testing.T) {
	f := newTownFixture(entity.Vec2{X: 250, Y: 560})

	for i := 0; i < 10; i++ {
		f.tick(entity.Vec2{})
	}
	_, ok := f.ctrl.Interact()

	assert.False(t, ok, "proximity alone never activates")
}

func TestScenario_ContactThenInteractEntersBuilding(t *testing.T) {
	f := newTownFixture(entity.Vec2{X: 100, Y: 450})

	for i := 0; i < 60; i++ {
		f.tick(entity.Vec2{X: 160})
	}
	require.True(t, f.registry.IsActive("projectsBuilding"))
	assert.Equal(t, entity.VisualHighlighted, f.visuals["projectsBuilding"])

	out, ok := f.ctrl.Interact()

	require.True(t, ok)
	assert.Equal(t, session.State{CharacterID: "man", FloorID: "wood", OriginSceneID: "Game"}, out.Request.Payload)
}

func TestScenario_ContactThenLeaveRangeClears(t *testing.T) {
	f := newTownFixture(entity.Vec2{X: 100, Y: 450})
	for i := 0; i < 60; i++ {
		f.tick(entity.Vec2{X: 160})
	}
	require.True(t, f.registry.IsActive("projectsBuilding"))

	// Walk back left until well outside the 150px circle
	for i := 0; i < 90; i++ {
		f.tick(entity.Vec2{X: -160})
	}

	assert.False(t, f.registry.IsActive("projectsBuilding"))
	assert.Equal(t, entity.VisualNeutral, f.visuals["projectsBuilding"])
	_, ok := f.ctrl.Interact()
	assert.False(t, ok)
}
