package game

import (
	"fmt"

	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

// Factory builds a fresh scene instance for the given payload
type Factory func(payload session.State) (scene.Scene, error)

// Directory maps scene ids to the factories that build them
type Directory struct {
	factories map[entity.SceneID]Factory
	order     []entity.SceneID
}

// NewDirectory creates an empty scene directory
func NewDirectory() *Directory {
	return &Directory{factories: make(map[entity.SceneID]Factory)}
}

// Register adds or replaces the factory for id
func (d *Directory) Register(id entity.SceneID, f Factory) {
	if _, ok := d.factories[id]; !ok {
		d.order = append(d.order, id)
	}
	d.factories[id] = f
}

// Has reports whether id has a factory
func (d *Directory) Has(id entity.SceneID) bool {
	_, ok := d.factories[id]
	return ok
}

// IDs returns the registered ids in registration order
func (d *Directory) IDs() []entity.SceneID {
	return append([]entity.SceneID(nil), d.order...)
}

// Build creates the scene for id
func (d *Directory) Build(id entity.SceneID, payload session.State) (scene.Scene, error) {
	f, ok := d.factories[id]
	if !ok {
		return nil, entity.NewConfigError("scenes["+string(id)+"]", "no scene registered")
	}
	s, err := f(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", id, err)
	}
	return s, nil
}

// Validate checks that the start scene and every transition destination
// can be built. It runs once at startup.
func Validate(d *Directory, start entity.SceneID, destinations []entity.SceneID) error {
	if !d.Has(start) {
		return entity.NewConfigError("start", "scene %q is not registered", start)
	}
	for _, dest := range destinations {
		if !d.Has(dest) {
			return entity.NewConfigError("destinations["+string(dest)+"]", "scene %q is not registered", dest)
		}
	}
	return nil
}
