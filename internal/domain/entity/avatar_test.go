package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAvatar(t *testing.T) {
	a := NewAvatar("woman", Vec2{X: 100, Y: 450}, 20)

	assert.Equal(t, CharacterID("woman"), a.Character)
	assert.Equal(t, Vec2{X: 100, Y: 450}, a.Position)
	assert.Equal(t, AnimIdle, a.Anim)
	assert.Equal(t, FacingRight, a.Facing)
}

func TestAvatar_Steer(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     int
		wantVel    Vec2
		wantFacing Facing
		wantAnim   AnimState
	}{
		{"left", -1, 0, Vec2{X: -160}, FacingLeft, AnimWalking},
		{"right", 1, 0, Vec2{X: 160}, FacingRight, AnimWalking},
		{"up", 0, -1, Vec2{Y: -160}, FacingUp, AnimWalking},
		{"down", 0, 1, Vec2{Y: 160}, FacingDown, AnimWalking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAvatar("man", Vec2{}, 20)
			a.Steer(tt.dx, tt.dy, 160)

			assert.Equal(t, tt.wantVel, a.Velocity)
			assert.Equal(t, tt.wantFacing, a.Facing)
			assert.Equal(t, tt.wantAnim, a.Anim)
		})
	}

	t.Run("stop keeps facing and resets frame", func(t *testing.T) {
		a := NewAvatar("man", Vec2{}, 20)
		a.Steer(-1, 0, 160)
		a.Frame = 3
		a.Steer(0, 0, 160)

		assert.Equal(t, Vec2{}, a.Velocity)
		assert.Equal(t, FacingLeft, a.Facing)
		assert.Equal(t, AnimIdle, a.Anim)
		assert.Equal(t, 0, a.Frame)
	})
}

func TestAvatar_Animate(t *testing.T) {
	a := NewAvatar("man", Vec2{}, 20)

	a.Animate(1.0)
	assert.Equal(t, 0, a.Frame, "idle avatar does not animate")

	a.Steer(1, 0, 160)
	a.Animate(0.26) // 3 frames at 12 fps
	assert.Equal(t, 3, a.Frame)

	a.Animate(0.26)
	assert.Equal(t, 0, a.Frame, "walk cycle wraps after WalkFrames")
}

func TestAnimState_String(t *testing.T) {
	assert.Equal(t, "Idle", AnimIdle.String())
	assert.Equal(t, "Walking", AnimWalking.String())
	assert.Equal(t, "Unknown", AnimState(9).String())
}
