package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Character is the body the movement core moves.
// Position is the centre of a standing capsule; feet sit half the standing height below it.
// The vertical controller owns vertical speed, so Velocity only tracks horizontal motion.
type Character struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3 // Unit length, horizontal
	Velocity mgl64.Vec3

	Health    int
	MaxHealth int
}

// NewCharacter creates a character at spawn looking along facing
func NewCharacter(spawn, facing mgl64.Vec3, maxHealth int) *Character {
	c := &Character{
		Position:  spawn,
		Forward:   mgl64.Vec3{1, 0, 0},
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
	c.Face(facing)
	return c
}

// ApplyVertical adds the controller's per-tick delta to Y
func (c *Character) ApplyVertical(dy float64) {
	c.Position[1] += dy
}

// Walk moves the character along move at speed for dt seconds.
// move longer than 1 is normalized so diagonals are not faster.
func (c *Character) Walk(move mgl64.Vec3, speed, dt float64) {
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	step := move.Mul(speed)
	c.Velocity = mgl64.Vec3{step.X(), 0, step.Z()}
	c.Position = c.Position.Add(step.Mul(dt))
}

// Face points the character along dir projected onto the ground plane.
// A vertical or zero dir leaves the facing unchanged.
func (c *Character) Face(dir mgl64.Vec3) {
	flat := mgl64.Vec3{dir.X(), 0, dir.Z()}
	if flat.Len() < 1e-9 {
		return
	}
	c.Forward = flat.Normalize()
}

// Turn rotates the facing around world-up by radians (counter-clockwise seen from above)
func (c *Character) Turn(radians float64) {
	rot := mgl64.Rotate3DY(radians)
	c.Face(rot.Mul3x1(c.Forward))
}

// Yaw returns the facing angle around world-up in radians, matching Turn
func (c *Character) Yaw() float64 {
	return math.Atan2(-c.Forward.Z(), c.Forward.X())
}

// Teleport moves the character without any motion in between
func (c *Character) Teleport(pos mgl64.Vec3) {
	c.Position = pos
	c.Velocity = mgl64.Vec3{}
}

// TakeDamage reduces health, never below zero
func (c *Character) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// IsDead returns true once health is exhausted
func (c *Character) IsDead() bool {
	return c.Health <= 0
}
