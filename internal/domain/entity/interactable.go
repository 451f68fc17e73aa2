package entity

import "fmt"

// DefaultActivationRadius is used when an interactable declares no radius
const DefaultActivationRadius = 150.0

// Kind is the closed set of interactable variants
type Kind string

const (
	KindBuilding Kind = "building" // Enter an interior scene
	KindExit     Kind = "exit"     // Leave an interior scene
	KindNPC      Kind = "npc"      // Scripted dialogue
	KindProp     Kind = "prop"     // Static portfolio text
)

// ParseKind converts a config string into a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBuilding, KindExit, KindNPC, KindProp:
		return k, nil
	default:
		return "", fmt.Errorf("unknown interactable kind %q", s)
	}
}

// Transitions reports whether interacting with this kind changes scene
func (k Kind) Transitions() bool {
	return k == KindBuilding || k == KindExit
}

// VisualState is the displayed appearance of an interactable
type VisualState int

const (
	VisualNeutral VisualState = iota
	VisualHighlighted
)

// String returns the string representation of the visual state
func (v VisualState) String() string {
	switch v {
	case VisualNeutral:
		return "Neutral"
	case VisualHighlighted:
		return "Highlighted"
	default:
		return "Unknown"
	}
}

// Interactable is a positioned object the player can activate by
// contact and keep active while inside its activation radius.
type Interactable struct {
	ID          InteractableID
	Kind        Kind
	Label       string
	Position    Vec2 // Center of the hitbox
	Hitbox      Size
	Sensor      bool // Hitbox reports contact but does not block movement
	Radius      float64
	Destination SceneID // Required for building and exit kinds
	Lines       []string
	Script      string // Dialogue script name for npc kind
	Visual      VisualState
}

// ActivationRadius returns the radius, falling back to DefaultActivationRadius
func (i *Interactable) ActivationRadius() float64 {
	if i.Radius <= 0 {
		return DefaultActivationRadius
	}
	return i.Radius
}

// Contains reports whether p lies inside the activation circle
func (i *Interactable) Contains(p Vec2) bool {
	r := i.ActivationRadius()
	return i.Position.DistSq(p) <= r*r
}
