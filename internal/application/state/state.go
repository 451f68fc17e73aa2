// Package state holds the scene lifecycle machine.
package state

import "fmt"

// SceneState is the lifecycle phase of a scene instance
type SceneState int

const (
	StateLoading SceneState = iota
	StateActive
	StateTransitioning
	StateTornDown
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateActive:
		return "Active"
	case StateTransitioning:
		return "Transitioning"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}

// Lifecycle tracks one scene instance through
// Loading → Active → Transitioning → TornDown.
// A scene may also be torn down straight from Loading or Active.
type Lifecycle struct {
	current SceneState
	onExit  map[SceneState][]func()
}

// NewLifecycle creates a lifecycle in the Loading state
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		current: StateLoading,
		onExit:  make(map[SceneState][]func()),
	}
}

// Current returns the current state
func (l *Lifecycle) Current() SceneState {
	return l.current
}

// Is reports whether the lifecycle is in s
func (l *Lifecycle) Is(s SceneState) bool {
	return l.current == s
}

// OnExit registers a hook run when the lifecycle leaves s
func (l *Lifecycle) OnExit(s SceneState, hook func()) {
	l.onExit[s] = append(l.onExit[s], hook)
}

// Advance moves to the next state, running exit hooks of the old one.
// Backward moves and moves out of TornDown are rejected.
func (l *Lifecycle) Advance(to SceneState) error {
	if !allowed(l.current, to) {
		return fmt.Errorf("invalid scene transition %s -> %s", l.current, to)
	}
	from := l.current
	l.current = to
	for _, hook := range l.onExit[from] {
		hook()
	}
	return nil
}

func allowed(from, to SceneState) bool {
	switch from {
	case StateLoading:
		return to == StateActive || to == StateTornDown
	case StateActive:
		return to == StateTransitioning || to == StateTornDown
	case StateTransitioning:
		return to == StateTornDown
	default:
		return false
	}
}
