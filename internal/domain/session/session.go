// Package session holds the small value carried across scene transitions.
//
// A State is created once at character selection and afterwards only
// copied forward into transition payloads. Nothing mutates it mid-scene.
package session

import (
	"sort"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

// State is the transition payload shared between scenes
type State struct {
	CharacterID   entity.CharacterID `json:"characterId"`
	FloorID       entity.FloorID     `json:"floorId"`
	OriginSceneID entity.SceneID     `json:"originSceneId"`
}

// New creates the session for a freshly selected character
func New(character entity.CharacterID) State {
	return State{CharacterID: character}
}

// CarryForward returns a copy of current with the origin overridden.
// current itself is never modified.
func CarryForward(current State, origin entity.SceneID) State {
	next := current
	next.OriginSceneID = origin
	return next
}

// WithFloor returns a copy of s standing on floor
func (s State) WithFloor(floor entity.FloorID) State {
	s.FloorID = floor
	return s
}

// FloorMap is the static scene → floor configuration
type FloorMap map[entity.SceneID]entity.FloorID

// Lookup returns the floor for a scene, or a configuration error if the
// scene has no entry.
func (m FloorMap) Lookup(scene entity.SceneID) (entity.FloorID, error) {
	floor, ok := m[scene]
	if !ok || floor == "" {
		return "", entity.NewConfigError("floors["+string(scene)+"]", "no floor mapped for scene")
	}
	return floor, nil
}

// Validate checks the mapping is total over scenes
func (m FloorMap) Validate(scenes []entity.SceneID) error {
	for _, id := range scenes {
		if _, err := m.Lookup(id); err != nil {
			return err
		}
	}
	return nil
}

// Scenes returns the mapped scene ids in sorted order
func (m FloorMap) Scenes() []entity.SceneID {
	ids := make([]entity.SceneID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Payload builds the state handed to destination: the current state carried
// forward from origin, standing on the destination's floor.
func Payload(current State, origin, destination entity.SceneID, floors FloorMap) (State, error) {
	floor, err := floors.Lookup(destination)
	if err != nil {
		return State{}, err
	}
	return CarryForward(current, origin).WithFloor(floor), nil
}
