package system

import (
	"github.com/younwookim/portfoliotown/internal/application/interaction"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
)

// SceneLayout is a scene config resolved into domain values
type SceneLayout struct {
	ID            entity.SceneID
	Title         string
	Bounds        entity.Bounds
	Mode          interaction.Mode
	Interactables []entity.Interactable
}

// LoadScene converts a SceneConfig into a SceneLayout.
// The config is expected to have passed WorldConfig.Validate.
func LoadScene(cfg *config.SceneConfig) *SceneLayout {
	layout := &SceneLayout{
		ID:     entity.SceneID(cfg.ID),
		Title:  cfg.Title,
		Bounds: entity.Bounds{Width: cfg.Size.Width, Height: cfg.Size.Height},
		Mode:   interaction.Exclusive,
	}
	if cfg.Selection == "shared" {
		layout.Mode = interaction.Shared
	}

	layout.Interactables = make([]entity.Interactable, 0, len(cfg.Interactables))
	for _, ic := range cfg.Interactables {
		kind, err := entity.ParseKind(ic.Kind)
		if err != nil {
			kind = entity.KindProp
		}
		layout.Interactables = append(layout.Interactables, entity.Interactable{
			ID:          entity.InteractableID(ic.ID),
			Kind:        kind,
			Label:       ic.Label,
			Position:    entity.Vec2{X: ic.Position.X, Y: ic.Position.Y},
			Hitbox:      entity.Size{Width: ic.Hitbox.Width, Height: ic.Hitbox.Height},
			Sensor:      ic.Sensor,
			Radius:      ic.Radius,
			Destination: entity.SceneID(ic.Destination),
			Lines:       append([]string(nil), ic.Lines...),
			Script:      ic.Script,
			Visual:      entity.VisualNeutral,
		})
	}
	return layout
}

// NewRegistry builds an interaction registry holding every interactable
// of the layout in declaration order.
func (l *SceneLayout) NewRegistry(sink interaction.VisualSink) *interaction.Registry {
	reg := interaction.NewRegistry(l.Mode, sink)
	for _, it := range l.Interactables {
		reg.Register(it.ID)
	}
	return reg
}

// Find returns the interactable with the given id
func (l *SceneLayout) Find(id entity.InteractableID) (*entity.Interactable, bool) {
	for i := range l.Interactables {
		if l.Interactables[i].ID == id {
			return &l.Interactables[i], true
		}
	}
	return nil, false
}

// Spawn returns the avatar start position for an arrival from origin,
// clamped inside the scene bounds.
func Spawn(cfg *config.SceneConfig, origin entity.SceneID, margin float64) entity.Vec2 {
	p := cfg.SpawnFor(string(origin))
	bounds := entity.Bounds{Width: cfg.Size.Width, Height: cfg.Size.Height}
	return bounds.Clamp(entity.Vec2{X: p.X, Y: p.Y}, margin)
}
