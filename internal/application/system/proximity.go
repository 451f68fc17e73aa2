package system

import (
	"github.com/younwookim/portfoliotown/internal/application/interaction"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

// ProximityEvaluator clears interaction flags once the avatar leaves an
// interactable's activation circle. It never sets a flag; activation only
// comes from contact.
type ProximityEvaluator struct{}

// NewProximityEvaluator creates a new proximity evaluator
func NewProximityEvaluator() *ProximityEvaluator {
	return &ProximityEvaluator{}
}

// Evaluate returns, per item, whether player is inside its activation circle
func (e *ProximityEvaluator) Evaluate(player entity.Vec2, items []entity.Interactable) []bool {
	inRange := make([]bool, len(items))
	for i := range items {
		inRange[i] = items[i].Contains(player)
	}
	return inRange
}

// Apply clears the registry flag of every active item out of range
func (e *ProximityEvaluator) Apply(player entity.Vec2, items []entity.Interactable, registry *interaction.Registry) {
	for i, in := range e.Evaluate(player, items) {
		if in {
			continue
		}
		id := items[i].ID
		if registry.IsActive(id) {
			registry.Set(id, false)
		}
	}
}
