package entity

// WalkFrames is the number of frames in a walk cycle
const WalkFrames = 6

// AnimState is the avatar's current animation
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalking
)

// String returns the string representation of the animation state
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "Idle"
	case AnimWalking:
		return "Walking"
	default:
		return "Unknown"
	}
}

// Facing is the direction the avatar sprite faces
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
)

// Avatar is the player character inside one scene instance.
// It is rebuilt on every scene entry.
type Avatar struct {
	Character CharacterID
	Position  Vec2
	Velocity  Vec2 // Pixels per second
	Facing    Facing
	Anim      AnimState
	Radius    float64 // Collision circle radius

	// Walk cycle
	Frame      int
	FrameTimer float64
	FrameRate  float64 // Frames per second
}

// NewAvatar creates an idle avatar at the given position
func NewAvatar(character CharacterID, pos Vec2, radius float64) *Avatar {
	return &Avatar{
		Character: character,
		Position:  pos,
		Facing:    FacingRight,
		Anim:      AnimIdle,
		Radius:    radius,
		FrameRate: 12,
	}
}

// Steer sets velocity from a unit direction and speed.
// A zero direction stops the avatar and returns it to idle.
func (a *Avatar) Steer(dx, dy int, speed float64) {
	a.Velocity = Vec2{X: float64(dx) * speed, Y: float64(dy) * speed}

	switch {
	case dx < 0:
		a.Facing = FacingLeft
	case dx > 0:
		a.Facing = FacingRight
	case dy < 0:
		a.Facing = FacingUp
	case dy > 0:
		a.Facing = FacingDown
	}

	if dx == 0 && dy == 0 {
		a.Anim = AnimIdle
		a.Frame = 0
		a.FrameTimer = 0
		return
	}
	a.Anim = AnimWalking
}

// Animate advances the walk cycle
func (a *Avatar) Animate(dt float64) {
	if a.Anim != AnimWalking || a.FrameRate <= 0 {
		return
	}
	a.FrameTimer += dt
	step := 1.0 / a.FrameRate
	for a.FrameTimer >= step {
		a.FrameTimer -= step
		a.Frame = (a.Frame + 1) % WalkFrames
	}
}

// IsWalking reports whether the avatar is moving
func (a *Avatar) IsWalking() bool {
	return a.Anim == AnimWalking
}
