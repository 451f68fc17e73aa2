package system

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention as a unit direction
type MoveIntent struct {
	DX, DY int // -1, 0 or 1; at most one axis is non-zero
}

func (MoveIntent) isIntent() {}

// InteractIntent represents a discrete interact press
type InteractIntent struct{}

func (InteractIntent) isIntent() {}

// DismissIntent closes an open dialogue box
type DismissIntent struct{}

func (DismissIntent) isIntent() {}
