package config

// WorldConfig is the root config for world.yaml
type WorldConfig struct {
	Start      string            `yaml:"start"`
	Characters []CharacterConfig `yaml:"characters"`
	Floors     map[string]string `yaml:"floors"`
	Scenes     []SceneConfig     `yaml:"scenes"`
}

type SceneConfig struct {
	ID            string                    `yaml:"id"`
	Title         string                    `yaml:"title"`
	Size          SizeConfig                `yaml:"size"`
	Background    string                    `yaml:"background"`
	Selection     string                    `yaml:"selection"` // "exclusive" (default) or "shared"
	Spawn         PositionConfig            `yaml:"spawn"`
	Spawns        map[string]PositionConfig `yaml:"spawns"` // Keyed by origin scene
	Interactables []InteractableConfig      `yaml:"interactables"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type InteractableConfig struct {
	ID          string         `yaml:"id"`
	Kind        string         `yaml:"kind"`
	Label       string         `yaml:"label"`
	Position    PositionConfig `yaml:"position"`
	Hitbox      SizeConfig     `yaml:"hitbox"`
	Sensor      bool           `yaml:"sensor"`
	Radius      float64        `yaml:"radius"`
	Destination string         `yaml:"destination"`
	Color       string         `yaml:"color"`
	Lines       []string       `yaml:"lines"`
	Script      string         `yaml:"script"`
}

// Scene returns the scene with the given id
func (w *WorldConfig) Scene(id string) (*SceneConfig, bool) {
	for i := range w.Scenes {
		if w.Scenes[i].ID == id {
			return &w.Scenes[i], true
		}
	}
	return nil, false
}

// SceneIDs returns every declared scene id in declaration order
func (w *WorldConfig) SceneIDs() []string {
	ids := make([]string, 0, len(w.Scenes))
	for _, s := range w.Scenes {
		ids = append(ids, s.ID)
	}
	return ids
}

// Destinations returns every destination named by an interactable,
// in declaration order without duplicates.
func (w *WorldConfig) Destinations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range w.Scenes {
		for _, it := range s.Interactables {
			if it.Destination == "" || seen[it.Destination] {
				continue
			}
			seen[it.Destination] = true
			out = append(out, it.Destination)
		}
	}
	return out
}

// SpawnFor returns the spawn point for an avatar arriving from origin
func (s *SceneConfig) SpawnFor(origin string) PositionConfig {
	if p, ok := s.Spawns[origin]; ok {
		return p
	}
	return s.Spawn
}
