// Package interaction tracks which interactables the player may use right now.
package interaction

import "github.com/younwookim/portfoliotown/internal/domain/entity"

// Mode controls whether several interactables may be active at once
type Mode int

const (
	// Exclusive activation clears every other id (building selection)
	Exclusive Mode = iota
	// Shared activation leaves other ids alone
	Shared
)

// VisualSink receives appearance changes for interactables.
// The rendering side implements it; the registry only notifies.
type VisualSink interface {
	SetVisual(id entity.InteractableID, state entity.VisualState)
}

// Registry maps interactable ids to their "can interact now" flag.
// Ids keep their registration order so scans are deterministic.
type Registry struct {
	mode   Mode
	order  []entity.InteractableID
	active map[entity.InteractableID]bool
	sink   VisualSink
}

// NewRegistry creates an empty registry. sink may be nil.
func NewRegistry(mode Mode, sink VisualSink) *Registry {
	return &Registry{
		mode:   mode,
		active: make(map[entity.InteractableID]bool),
		sink:   sink,
	}
}

// Register adds id with its flag cleared. Registering twice is a no-op.
func (r *Registry) Register(id entity.InteractableID) {
	if _, ok := r.active[id]; ok {
		return
	}
	r.order = append(r.order, id)
	r.active[id] = false
}

// Mode returns the activation mode
func (r *Registry) Mode() Mode {
	return r.mode
}

// Len returns the number of registered ids
func (r *Registry) Len() int {
	return len(r.order)
}

// Set updates the flag for id and notifies the visual sink.
// In Exclusive mode, activating id clears all others first.
// Unknown ids are ignored.
func (r *Registry) Set(id entity.InteractableID, active bool) {
	if _, ok := r.active[id]; !ok {
		return
	}

	if active && r.mode == Exclusive {
		for _, other := range r.order {
			if other != id && r.active[other] {
				r.active[other] = false
				r.notify(other, false)
			}
		}
	}

	r.active[id] = active
	r.notify(id, active)
}

// IsActive reports whether id is currently active
func (r *Registry) IsActive(id entity.InteractableID) bool {
	return r.active[id]
}

// AnyActive returns the first active id in registration order
func (r *Registry) AnyActive() (entity.InteractableID, bool) {
	for _, id := range r.order {
		if r.active[id] {
			return id, true
		}
	}
	return "", false
}

// Active returns every active id in registration order
func (r *Registry) Active() []entity.InteractableID {
	var ids []entity.InteractableID
	for _, id := range r.order {
		if r.active[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reset clears every flag
func (r *Registry) Reset() {
	for _, id := range r.order {
		r.Set(id, false)
	}
}

func (r *Registry) notify(id entity.InteractableID, active bool) {
	if r.sink == nil {
		return
	}
	state := entity.VisualNeutral
	if active {
		state = entity.VisualHighlighted
	}
	r.sink.SetVisual(id, state)
}
