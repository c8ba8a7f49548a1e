// Package input turns player intent into calls on a vertical controller and moves the
// character body the way a host game would.
package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/entity"
	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

// kneeHeight is where the horizontal blocking ray leaves the body, above the feet
const kneeHeight = 0.3

// State holds one tick of player intent
type State struct {
	MoveX, MoveZ  float64 // World-space horizontal input in [-1,1]
	JumpPressed   bool
	JetpackHeld   bool
	MantlePressed bool // Mantle, falling back to a ledge grab
	PullUpPressed bool
	DropPressed   bool
	CancelPressed bool
}

// Move returns the horizontal input as a vector
func (s State) Move() mgl64.Vec3 {
	return mgl64.Vec3{s.MoveX, 0, s.MoveZ}
}

// System applies intent to one character
type System struct {
	cfg    config.LocomotionConfig
	world  world.Raycaster
	ignore *world.IgnoreList
	feet   float64
}

// NewSystem creates an input system. rc blocks horizontal walking; nil disables blocking.
// ignore should be the list the character's controller uses; it may be nil.
func NewSystem(cfg *config.MovementConfig, rc world.Raycaster, ignore *world.IgnoreList) *System {
	if ignore == nil {
		ignore = world.NewIgnoreList()
	}
	return &System{
		cfg:    cfg.Locomotion,
		world:  rc,
		ignore: ignore,
		feet:   cfg.Ground.FeetOffset(),
	}
}

// GetInput reads the keyboard
func (s *System) GetInput() State {
	var st State
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		st.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		st.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		st.MoveZ--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		st.MoveZ++
	}
	st.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	st.JetpackHeld = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	st.MantlePressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	st.PullUpPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	st.DropPressed = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	st.CancelPressed = inpututil.IsKeyJustPressed(ebiten.KeyX)
	return st
}

// UpdateCharacter runs one tick: forwards intent to the controller, walks the body,
// advances the controller and applies its result. It returns the vertical delta.
func (s *System) UpdateCharacter(ctrl *vertical.Controller, char *entity.Character, in State, dt float64) float64 {
	move := in.Move()
	if move.Len() > 1 {
		move = move.Normalize()
	}
	ctrl.SetMovementInput(move)
	char.Face(move)

	// Discrete actions first so they take effect this tick
	if in.CancelPressed {
		ctrl.CancelMovement()
	}
	if in.DropPressed {
		ctrl.DropFromLedge()
	}
	if in.PullUpPressed {
		ctrl.PullUp()
	}
	if in.MantlePressed && !ctrl.TryMantle(char.Position, char.Forward) {
		ctrl.TryLedgeGrab(char.Position, char.Forward)
	}
	if in.JumpPressed {
		ctrl.RequestJump()
	}

	boosting := ctrl.State().IsBoosting
	switch {
	case in.JetpackHeld && !boosting:
		ctrl.TryJetpack()
	case !in.JetpackHeld && boosting:
		ctrl.StopJetpack()
	}

	if !ctrl.State().Mode().OwnsPosition() {
		s.walk(ctrl, char, move, dt)
	}

	delta := ctrl.Update(dt, char.Position, char.Forward)
	if st := ctrl.State(); st.HasManeuverPosition {
		char.Position = st.ManeuverPosition
		char.Velocity = mgl64.Vec3{}
	} else {
		char.ApplyVertical(delta)
	}
	return delta
}

// walk moves the body horizontally, hugging slopes and sliding off steep ones
func (s *System) walk(ctrl *vertical.Controller, char *entity.Character, move mgl64.Vec3, dt float64) {
	step := ctrl.SlopeAdjustedMovement(move.Mul(ctrl.AirControl()))
	if s.blocked(char.Position, step, s.cfg.WalkSpeed*dt) {
		step = mgl64.Vec3{}
	}
	char.Walk(step, s.cfg.WalkSpeed, dt)

	if slide := ctrl.SlopeSlideVelocity(); slide.Len() > 0 {
		char.Position = char.Position.Add(slide.Mul(dt))
	}
}

// blocked reports whether a wall is within reach along the horizontal part of step
func (s *System) blocked(pos, step mgl64.Vec3, dist float64) bool {
	if s.world == nil {
		return false
	}
	dir := world.Flatten(step)
	if dir.Len() == 0 {
		return false
	}
	origin := mgl64.Vec3{pos.X(), pos.Y() - s.feet + kneeHeight, pos.Z()}
	hit, ok := s.world.Raycast(origin, dir, dist+s.cfg.BodyRadius, s.ignore.Filter())
	return ok && hit.Normal.Y() < 0.7
}
