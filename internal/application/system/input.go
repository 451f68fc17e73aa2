package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input sampled for one tick
type InputState struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Up    bool `json:"u,omitempty"`
	Down  bool `json:"d,omitempty"`

	// Edge-triggered
	LeftPressed  bool `json:"lp,omitempty"`
	RightPressed bool `json:"rp,omitempty"`
	Interact     bool `json:"i,omitempty"`
	Confirm      bool `json:"c,omitempty"`
	Cancel       bool `json:"x,omitempty"`
}

// InputSource supplies one InputState per tick
type InputSource interface {
	ReadInput() InputState
}

// InputSystem reads the keyboard. Presses made through on-screen widgets
// are queued and merged into the next read, so recorders see them too.
type InputSystem struct {
	queued InputState
}

// NewInputSystem creates a new keyboard input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// ReadInput reads the current keyboard state
func (s *InputSystem) ReadInput() InputState {
	return s.merge(readKeyboard())
}

// PressConfirm queues a confirm for the next ReadInput
func (s *InputSystem) PressConfirm() {
	s.queued.Confirm = true
}

func (s *InputSystem) merge(in InputState) InputState {
	in.Confirm = in.Confirm || s.queued.Confirm
	s.queued = InputState{}
	return in
}

func readKeyboard() InputState {
	return InputState{
		Left:         anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:        anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:           anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:         anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		LeftPressed:  anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		RightPressed: anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Interact:     anyJustPressed(ebiten.KeySpace, ebiten.KeyE),
		Confirm:      anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace),
		Cancel:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Movement resolves held directions into a single-axis move.
// Priority is left, right, up, down.
func Movement(input InputState) MoveIntent {
	switch {
	case input.Left:
		return MoveIntent{DX: -1}
	case input.Right:
		return MoveIntent{DX: 1}
	case input.Up:
		return MoveIntent{DY: -1}
	case input.Down:
		return MoveIntent{DY: 1}
	default:
		return MoveIntent{}
	}
}

// Intents translates input into the actions for an exploring avatar.
// While a dialogue is open, movement is suppressed and interact or
// cancel dismisses it.
func Intents(input InputState, dialogueOpen bool) []Intent {
	if dialogueOpen {
		if input.Interact || input.Confirm || input.Cancel {
			return []Intent{DismissIntent{}}
		}
		return []Intent{MoveIntent{}}
	}

	intents := []Intent{Movement(input)}
	if input.Interact {
		intents = append(intents, InteractIntent{})
	}
	return intents
}
