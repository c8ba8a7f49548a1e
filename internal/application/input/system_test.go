package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/vaultcore/internal/application/state"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/entity"
	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

const tick = 1.0 / 64

type fixture struct {
	sys   *System
	ctrl  *vertical.Controller
	char  *entity.Character
	world *world.BoxWorld
	floor world.ColliderID
	crate world.ColliderID
}

func createTestFixture(crateHeight float64) *fixture {
	cfg := config.Default()
	w := world.NewBoxWorld()
	floor := w.AddBox("hangar_floor", mgl64.Vec3{-50, -1, -50}, mgl64.Vec3{50, 0, 50}, world.SurfaceMetal)
	var crate world.ColliderID
	if crateHeight > 0 {
		crate = w.AddBox("supply_crate", mgl64.Vec3{0.8, 0, -2}, mgl64.Vec3{2.0, crateHeight, 2}, world.SurfaceDefault)
	}
	parts := vertical.NewParts(&cfg, w)
	return &fixture{
		sys:   NewSystem(&cfg, w, parts.Ignore),
		ctrl:  vertical.NewController(&cfg, parts),
		char:  entity.NewCharacter(mgl64.Vec3{0, 0.9, 0}, mgl64.Vec3{1, 0, 0}, 100),
		world: w,
		floor: floor,
		crate: crate,
	}
}

func (f *fixture) run(in State, ticks int) {
	for i := 0; i < ticks; i++ {
		f.sys.UpdateCharacter(f.ctrl, f.char, in, tick)
	}
}

func TestUpdateCharacter_WalksOnFlatGround(t *testing.T) {
	f := createTestFixture(0)

	f.run(State{MoveX: -1}, 16)

	assert.InDelta(t, -1.25, f.char.Position.X(), 1e-9)
	assert.InDelta(t, 0.9, f.char.Position.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, f.char.Forward)
	assert.True(t, f.ctrl.IsGrounded())
}

func TestUpdateCharacter_WallBlocksWalking(t *testing.T) {
	f := createTestFixture(3.0)
	f.char.Teleport(mgl64.Vec3{0.5, 0.9, 0})

	f.run(State{MoveX: 1}, 8)

	assert.Equal(t, 0.5, f.char.Position.X())
}

func TestUpdateCharacter_IgnoredWallDoesNotBlock(t *testing.T) {
	f := createTestFixture(3.0)
	f.char.Teleport(mgl64.Vec3{0.5, 0.9, 0})
	f.ctrl.AddIgnoredCollider(f.crate)

	f.run(State{MoveX: 1}, 8)

	assert.InDelta(t, 0.5+8*5*tick, f.char.Position.X(), 1e-9)
	assert.InDelta(t, 0.9, f.char.Position.Y(), 1e-9)

	f.ctrl.RemoveIgnoredCollider(f.crate)
	f.char.Teleport(mgl64.Vec3{0.5, 0.9, 0})
	f.run(State{MoveX: 1}, 8)

	assert.Equal(t, 0.5, f.char.Position.X())
}

func TestUpdateCharacter_AirControl(t *testing.T) {
	f := createTestFixture(0)
	f.world.Remove(f.floor)

	// The first tick still walks at full control, then the controller notices the drop
	f.run(State{MoveX: 1}, 1)
	x := f.char.Position.X()
	f.run(State{MoveX: 1}, 1)

	assert.InDelta(t, 0.3*5*tick, f.char.Position.X()-x, 1e-12)
	assert.Less(t, f.char.Position.Y(), 0.9)
}

func TestUpdateCharacter_Jump(t *testing.T) {
	f := createTestFixture(0)

	d := f.sys.UpdateCharacter(f.ctrl, f.char, State{JumpPressed: true}, tick)

	assert.Equal(t, 8.0*tick, d)
	assert.Equal(t, 8.0, f.ctrl.VelocityY())
	assert.InDelta(t, 0.9+8.0*tick, f.char.Position.Y(), 1e-12)
}

func TestUpdateCharacter_MantleOntoCrate(t *testing.T) {
	f := createTestFixture(1.0)

	f.sys.UpdateCharacter(f.ctrl, f.char, State{MantlePressed: true}, tick)
	require.Equal(t, state.ModeMantling, f.ctrl.State().Mode())

	for i := 0; i < 120 && f.ctrl.State().Mode().OwnsPosition(); i++ {
		f.sys.UpdateCharacter(f.ctrl, f.char, State{MoveX: 1}, tick)
	}

	assert.Equal(t, state.ModeGrounded, f.ctrl.State().Mode())
	assert.InDelta(t, 1.3, f.char.Position.X(), 1e-9)
	assert.InDelta(t, 1.9, f.char.Position.Y(), 1e-9)
}

func TestUpdateCharacter_MantleFallsBackToGrab(t *testing.T) {
	f := createTestFixture(2.0)

	f.sys.UpdateCharacter(f.ctrl, f.char, State{MantlePressed: true}, tick)
	assert.Equal(t, state.ModeHanging, f.ctrl.State().Mode())

	f.sys.UpdateCharacter(f.ctrl, f.char, State{PullUpPressed: true}, tick)
	assert.Equal(t, state.ModePullingUp, f.ctrl.State().Mode())
}

func TestUpdateCharacter_DropFromLedge(t *testing.T) {
	f := createTestFixture(2.0)
	f.sys.UpdateCharacter(f.ctrl, f.char, State{MantlePressed: true}, tick)
	require.Equal(t, state.ModeHanging, f.ctrl.State().Mode())

	f.sys.UpdateCharacter(f.ctrl, f.char, State{DropPressed: true}, tick)

	assert.False(t, f.ctrl.State().Mode().OwnsPosition())
}

func TestUpdateCharacter_JetpackHeldAndReleased(t *testing.T) {
	f := createTestFixture(0)

	f.run(State{JetpackHeld: true}, 32)
	require.True(t, f.ctrl.State().IsBoosting)
	assert.Greater(t, f.char.Position.Y(), 0.9)

	f.run(State{}, 1)
	assert.False(t, f.ctrl.State().IsBoosting)
}

func TestUpdateCharacter_CancelStopsManeuver(t *testing.T) {
	f := createTestFixture(1.0)
	f.sys.UpdateCharacter(f.ctrl, f.char, State{MantlePressed: true}, tick)
	require.Equal(t, state.ModeMantling, f.ctrl.State().Mode())

	f.sys.UpdateCharacter(f.ctrl, f.char, State{CancelPressed: true}, tick)

	assert.False(t, f.ctrl.State().Mode().OwnsPosition())
}

func TestState_Move(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{1, 0, -1}, State{MoveX: 1, MoveZ: -1}.Move())
}
