// Package transition turns an interact press into a scene change request
// or a dialogue outcome.
package transition

import (
	"log"
	"time"

	"github.com/younwookim/portfoliotown/internal/application/interaction"
	"github.com/younwookim/portfoliotown/internal/domain/entity"
	"github.com/younwookim/portfoliotown/internal/domain/session"
)

// Fade holds the fade-out and fade-in durations of a transition
type Fade struct {
	Out time.Duration
	In  time.Duration
}

// DefaultFade matches the town's building entry
var DefaultFade = Fade{Out: 500 * time.Millisecond, In: 1000 * time.Millisecond}

// Request asks the game manager to replace the current scene
type Request struct {
	Destination entity.SceneID
	Payload     session.State
	Fade        Fade
}

// OutcomeKind tells the scene what an interact press resolved to
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeTransition
	OutcomeDialogue
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "None"
	case OutcomeTransition:
		return "Transition"
	case OutcomeDialogue:
		return "Dialogue"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a successful interact press
type Outcome struct {
	Kind    OutcomeKind
	Request *Request             // Set for OutcomeTransition
	Target  *entity.Interactable // The interactable that was used
}

// Controller resolves interact presses for one scene instance
type Controller struct {
	scene    entity.SceneID
	current  session.State
	registry *interaction.Registry
	items    map[entity.InteractableID]*entity.Interactable
	floors   session.FloorMap
	fade     Fade

	transitioning bool
}

// NewController creates a controller for scene. current is the session the
// scene was entered with; items must be the interactables registered in
// registry.
func NewController(
	scene entity.SceneID,
	current session.State,
	registry *interaction.Registry,
	items []entity.Interactable,
	floors session.FloorMap,
	fade Fade,
) *Controller {
	byID := make(map[entity.InteractableID]*entity.Interactable, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	return &Controller{
		scene:    scene,
		current:  current,
		registry: registry,
		items:    byID,
		floors:   floors,
		fade:     fade,
	}
}

// Transitioning reports whether a transition request was already issued
func (c *Controller) Transitioning() bool {
	return c.transitioning
}

// Interact handles one discrete interact press. It returns false when the
// press does nothing: nothing is active, or a transition already began.
func (c *Controller) Interact() (Outcome, bool) {
	if c.transitioning {
		return Outcome{}, false
	}

	id, ok := c.registry.AnyActive()
	if !ok {
		return Outcome{}, false
	}
	if active := c.registry.Active(); len(active) > 1 {
		log.Printf("transition conflict in %s: %v active, using %s", c.scene, active, id)
	}

	target, ok := c.items[id]
	if !ok {
		log.Printf("interact: %s is registered but has no interactable in %s", id, c.scene)
		return Outcome{}, false
	}

	if !target.Kind.Transitions() {
		return Outcome{Kind: OutcomeDialogue, Target: target}, true
	}

	payload, err := session.Payload(c.current, c.scene, target.Destination, c.floors)
	if err != nil {
		log.Printf("interact: %s -> %s: %v", c.scene, target.Destination, err)
		return Outcome{}, false
	}

	c.transitioning = true
	return Outcome{
		Kind: OutcomeTransition,
		Request: &Request{
			Destination: target.Destination,
			Payload:     payload,
			Fade:        c.fade,
		},
		Target: target,
	}, true
}
