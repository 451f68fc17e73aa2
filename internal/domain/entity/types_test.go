package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2_Dist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	assert.Equal(t, 25.0, a.DistSq(b))
	assert.Equal(t, 5.0, a.Dist(b))
	assert.Equal(t, Vec2{X: 3, Y: 4}, a.Add(b))
	assert.Equal(t, Vec2{X: -3, Y: -4}, a.Sub(b))
}

func TestBounds_Clamp(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{X: 50, Y: 25}, Vec2{X: 50, Y: 25}},
		{"left of bounds", Vec2{X: -10, Y: 25}, Vec2{X: 5, Y: 25}},
		{"below bounds", Vec2{X: 50, Y: 80}, Vec2{X: 50, Y: 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Clamp(tt.in, 5))
		})
	}

	t.Run("zero bounds leave point untouched", func(t *testing.T) {
		assert.Equal(t, Vec2{X: -10, Y: 900}, Bounds{}.Clamp(Vec2{X: -10, Y: 900}, 5))
	})
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"building", "exit", "npc", "prop"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), k)
	}

	_, err := ParseKind("teleporter")
	assert.Error(t, err)
}

func TestKind_Transitions(t *testing.T) {
	assert.True(t, KindBuilding.Transitions())
	assert.True(t, KindExit.Transitions())
	assert.False(t, KindNPC.Transitions())
	assert.False(t, KindProp.Transitions())
}

func TestVisualState_String(t *testing.T) {
	assert.Equal(t, "Neutral", VisualNeutral.String())
	assert.Equal(t, "Highlighted", VisualHighlighted.String())
	assert.Equal(t, "Unknown", VisualState(7).String())
}

func TestInteractable_Contains(t *testing.T) {
	item := Interactable{ID: "projectsBuilding", Position: Vec2{X: 250, Y: 450}}

	assert.Equal(t, DefaultActivationRadius, item.ActivationRadius())
	assert.True(t, item.Contains(Vec2{X: 250, Y: 450}), "center is in range")
	assert.True(t, item.Contains(Vec2{X: 400, Y: 450}), "boundary is in range")
	assert.False(t, item.Contains(Vec2{X: 450, Y: 450}), "distance 200 is out of range")

	item.Radius = 250
	assert.True(t, item.Contains(Vec2{X: 450, Y: 450}))
}
