package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

// recordingSink is a test double for VisualSink
type recordingSink struct {
	last  map[entity.InteractableID]entity.VisualState
	calls int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{last: make(map[entity.InteractableID]entity.VisualState)}
}

func (s *recordingSink) SetVisual(id entity.InteractableID, state entity.VisualState) {
	s.last[id] = state
	s.calls++
}

func newTestRegistry(mode Mode, sink VisualSink) *Registry {
	r := NewRegistry(mode, sink)
	r.Register("projectsBuilding")
	r.Register("aboutBuilding")
	r.Register("guide")
	return r
}

func TestRegistry_StartsInactive(t *testing.T) {
	r := newTestRegistry(Exclusive, nil)

	assert.Equal(t, 3, r.Len())
	for _, id := range []entity.InteractableID{"projectsBuilding", "aboutBuilding", "guide"} {
		assert.False(t, r.IsActive(id))
	}
	_, ok := r.AnyActive()
	assert.False(t, ok)
}

func TestRegistry_SetAndAnyActive(t *testing.T) {
	r := newTestRegistry(Exclusive, nil)

	r.Set("aboutBuilding", true)
	id, ok := r.AnyActive()
	assert.True(t, ok)
	assert.Equal(t, entity.InteractableID("aboutBuilding"), id)

	r.Set("aboutBuilding", false)
	_, ok = r.AnyActive()
	assert.False(t, ok)
}

func TestRegistry_ExclusiveClearsOthers(t *testing.T) {
	sink := newRecordingSink()
	r := newTestRegistry(Exclusive, sink)

	r.Set("projectsBuilding", true)
	r.Set("aboutBuilding", true)

	assert.False(t, r.IsActive("projectsBuilding"))
	assert.True(t, r.IsActive("aboutBuilding"))
	assert.Equal(t, []entity.InteractableID{"aboutBuilding"}, r.Active())
	assert.Equal(t, entity.VisualNeutral, sink.last["projectsBuilding"])
	assert.Equal(t, entity.VisualHighlighted, sink.last["aboutBuilding"])
}

func TestRegistry_SharedAnyActiveReturnsFirstRegistered(t *testing.T) {
	r := newTestRegistry(Shared, nil)

	// Activate in reverse registration order
	r.Set("guide", true)
	r.Set("projectsBuilding", true)

	assert.Equal(t, Shared, r.Mode())
	assert.Len(t, r.Active(), 2)
	id, ok := r.AnyActive()
	assert.True(t, ok)
	assert.Equal(t, entity.InteractableID("projectsBuilding"), id)
}

func TestRegistry_NotifiesEveryUpdate(t *testing.T) {
	sink := newRecordingSink()
	r := newTestRegistry(Exclusive, sink)

	r.Set("guide", false)
	r.Set("guide", true)
	r.Set("guide", true)

	assert.Equal(t, 3, sink.calls)
	assert.Equal(t, entity.VisualHighlighted, sink.last["guide"])
}

func TestRegistry_UnknownIDIgnored(t *testing.T) {
	sink := newRecordingSink()
	r := newTestRegistry(Exclusive, sink)
	r.Set("projectsBuilding", true)

	r.Set("ghost", true)

	assert.False(t, r.IsActive("ghost"))
	assert.True(t, r.IsActive("projectsBuilding"), "unknown id must not clear others")
	assert.Equal(t, 1, sink.calls)
}

func TestRegistry_RegisterTwiceKeepsOrder(t *testing.T) {
	r := newTestRegistry(Shared, nil)
	r.Set("projectsBuilding", true)

	r.Register("projectsBuilding")

	assert.Equal(t, 3, r.Len())
	assert.True(t, r.IsActive("projectsBuilding"), "re-register keeps flag")
}

func TestRegistry_Reset(t *testing.T) {
	sink := newRecordingSink()
	r := newTestRegistry(Shared, sink)
	r.Set("projectsBuilding", true)
	r.Set("guide", true)

	r.Reset()

	assert.Empty(t, r.Active())
	assert.Equal(t, entity.VisualNeutral, sink.last["projectsBuilding"])
	assert.Equal(t, entity.VisualNeutral, sink.last["guide"])
}
