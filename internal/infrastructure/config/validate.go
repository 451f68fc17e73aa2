package config

import (
	"fmt"
	"math"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

// Validate runs the startup completeness pass over the scene, floor and
// destination tables. Every failure wraps entity.ErrConfiguration.
func (w *WorldConfig) Validate() error {
	if len(w.Scenes) == 0 {
		return entity.NewConfigError("scenes", "no scenes declared")
	}

	declared := make(map[string]bool, len(w.Scenes))
	for i, s := range w.Scenes {
		if s.ID == "" {
			return entity.NewConfigError(fmt.Sprintf("scenes[%d].id", i), "missing id")
		}
		if declared[s.ID] {
			return entity.NewConfigError(scenePath(s.ID), "duplicate scene id")
		}
		declared[s.ID] = true
	}

	if w.Start == "" {
		return entity.NewConfigError("start", "missing start scene")
	}
	if !declared[w.Start] {
		return entity.NewConfigError("start", "unknown scene %q", w.Start)
	}

	if err := w.validateCharacters(); err != nil {
		return err
	}

	if err := w.FloorMap().Validate(w.sceneIDs()); err != nil {
		return err
	}

	for _, s := range w.Scenes {
		if err := s.validate(declared); err != nil {
			return err
		}
	}
	return nil
}

// FloorMap converts the floors table into a session.FloorMap
func (w *WorldConfig) FloorMap() session.FloorMap {
	m := make(session.FloorMap, len(w.Floors))
	for scene, floor := range w.Floors {
		m[entity.SceneID(scene)] = entity.FloorID(floor)
	}
	return m
}

func (w *WorldConfig) sceneIDs() []entity.SceneID {
	ids := make([]entity.SceneID, 0, len(w.Scenes))
	for _, s := range w.Scenes {
		ids = append(ids, entity.SceneID(s.ID))
	}
	return ids
}

func (w *WorldConfig) validateCharacters() error {
	if len(w.Characters) == 0 {
		return entity.NewConfigError("characters", "no characters declared")
	}
	seen := make(map[string]bool, len(w.Characters))
	for i, c := range w.Characters {
		path := fmt.Sprintf("characters[%d]", i)
		if c.ID == "" {
			return entity.NewConfigError(path+".id", "missing id")
		}
		if seen[c.ID] {
			return entity.NewConfigError(path+".id", "duplicate character %q", c.ID)
		}
		seen[c.ID] = true
		if c.Color != "" {
			if _, err := ParseColor(c.Color); err != nil {
				return entity.NewConfigError(path+".color", "%v", err)
			}
		}
	}
	return nil
}

func (s *SceneConfig) validate(declared map[string]bool) error {
	path := scenePath(s.ID)
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return entity.NewConfigError(path+".size", "width and height must be positive")
	}
	switch s.Selection {
	case "", "exclusive", "shared":
	default:
		return entity.NewConfigError(path+".selection", "unknown selection mode %q", s.Selection)
	}
	if s.Background != "" {
		if _, err := ParseColor(s.Background); err != nil {
			return entity.NewConfigError(path+".background", "%v", err)
		}
	}

	seen := make(map[string]bool, len(s.Interactables))
	for i, it := range s.Interactables {
		itPath := fmt.Sprintf("%s.interactables[%d]", path, i)
		if it.ID == "" {
			return entity.NewConfigError(itPath+".id", "missing id")
		}
		itPath = fmt.Sprintf("%s.interactables[%s]", path, it.ID)
		if seen[it.ID] {
			return entity.NewConfigError(itPath, "duplicate interactable id")
		}
		seen[it.ID] = true

		kind, err := entity.ParseKind(it.Kind)
		if err != nil {
			return entity.NewConfigError(itPath+".kind", "%v", err)
		}
		if it.Hitbox.Width <= 0 || it.Hitbox.Height <= 0 {
			return entity.NewConfigError(itPath+".hitbox", "width and height must be positive")
		}
		if it.Radius < 0 {
			return entity.NewConfigError(itPath+".radius", "must not be negative")
		}

		switch kind {
		case entity.KindBuilding, entity.KindExit:
			if it.Destination == "" {
				return entity.NewConfigError(itPath+".destination", "missing destination")
			}
			if !declared[it.Destination] {
				return entity.NewConfigError(itPath+".destination", "unknown scene %q", it.Destination)
			}
		case entity.KindNPC:
			if it.Script == "" && len(it.Lines) == 0 {
				return entity.NewConfigError(itPath, "npc needs a script or lines")
			}
		case entity.KindProp:
			if len(it.Lines) == 0 {
				return entity.NewConfigError(itPath+".lines", "prop needs lines")
			}
		}
	}
	return nil
}

// ValidateReach checks that every interactable's activation radius covers
// all avatar positions touching its hitbox, so a contact is never cleared
// by proximity on the tick it happens. The farthest touching position is
// half the hitbox diagonal plus the avatar radius from the center.
func (w *WorldConfig) ValidateReach(avatarRadius float64) error {
	for _, s := range w.Scenes {
		for _, it := range s.Interactables {
			radius := it.Radius
			if radius == 0 {
				radius = entity.DefaultActivationRadius
			}
			reach := math.Hypot(it.Hitbox.Width/2, it.Hitbox.Height/2) + avatarRadius
			if reach > radius {
				path := fmt.Sprintf("%s.interactables[%s].radius", scenePath(s.ID), it.ID)
				return entity.NewConfigError(path, "radius %.0f is smaller than the contact reach %.1f", radius, reach)
			}
		}
	}
	return nil
}

func scenePath(id string) string {
	return "scenes[" + id + "]"
}
