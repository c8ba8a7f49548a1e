package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCharacter() *Character {
	return NewCharacter(mgl64.Vec3{0, 0.9, 0}, mgl64.Vec3{1, 0, 0}, 100)
}

func TestNewCharacter(t *testing.T) {
	c := NewCharacter(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 5, 2}, 80)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, c.Position)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, c.Forward, "facing flattened and normalized")
	assert.Equal(t, 80, c.Health)
	assert.Equal(t, 80, c.MaxHealth)
}

func TestNewCharacter_VerticalFacingKeepsDefault(t *testing.T) {
	c := NewCharacter(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}, 10)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, c.Forward)
}

func TestCharacter_ApplyVertical(t *testing.T) {
	c := createTestCharacter()
	c.ApplyVertical(0.5)
	c.ApplyVertical(-0.25)

	assert.InDelta(t, 1.15, c.Position.Y(), 1e-12)
	assert.Equal(t, 0.0, c.Position.X())
}

func TestCharacter_Walk(t *testing.T) {
	tests := []struct {
		name    string
		move    mgl64.Vec3
		wantPos mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0.5, 0.9, 0}},
		{"half input", mgl64.Vec3{0, 0, 0.5}, mgl64.Vec3{0, 0.9, 0.25}},
		{"diagonal normalized", mgl64.Vec3{3, 0, 4}, mgl64.Vec3{0.3, 0.9, 0.4}},
		{"no input", mgl64.Vec3{}, mgl64.Vec3{0, 0.9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestCharacter()
			c.Walk(tt.move, 5, 0.1)

			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.wantPos[i], c.Position[i], 1e-12)
			}
			assert.Equal(t, 0.0, c.Velocity.Y())
		})
	}
}

func TestCharacter_Turn(t *testing.T) {
	c := createTestCharacter()

	c.Turn(math.Pi / 2)

	assert.InDelta(t, 0.0, c.Forward.X(), 1e-12)
	assert.InDelta(t, -1.0, c.Forward.Z(), 1e-12)
	assert.InDelta(t, math.Pi/2, c.Yaw(), 1e-12)
	assert.InDelta(t, 1.0, c.Forward.Len(), 1e-12)
}

func TestCharacter_Teleport(t *testing.T) {
	c := createTestCharacter()
	c.Walk(mgl64.Vec3{1, 0, 0}, 5, 0.1)
	require.NotEqual(t, mgl64.Vec3{}, c.Velocity)

	c.Teleport(mgl64.Vec3{10, 4, -2})

	assert.Equal(t, mgl64.Vec3{10, 4, -2}, c.Position)
	assert.Equal(t, mgl64.Vec3{}, c.Velocity)
}

func TestCharacter_TakeDamage(t *testing.T) {
	c := createTestCharacter()

	c.TakeDamage(13)
	assert.Equal(t, 87, c.Health)

	c.TakeDamage(0)
	c.TakeDamage(-5)
	assert.Equal(t, 87, c.Health)
	assert.False(t, c.IsDead())

	c.TakeDamage(500)
	assert.Equal(t, 0, c.Health)
	assert.True(t, c.IsDead())
}
