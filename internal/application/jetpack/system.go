// Package jetpack implements the fuel-limited boost the vertical controller integrates.
package jetpack

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

// System owns one character's jetpack
type System struct {
	cfg config.JetpackConfig

	fuel          float64 // [0,1]
	active        bool
	lockout       float64 // Seconds before ignition is allowed after running dry
	sinceStop     float64 // Seconds since the last burn, gates recharge
	movementInput mgl64.Vec3
	burnTime      float64 // Drives the camera shake pattern
}

// NewSystem creates a jetpack with a full tank
func NewSystem(cfg config.JetpackConfig) *System {
	return &System{
		cfg:       cfg,
		fuel:      1,
		sinceStop: cfg.RechargeDelay,
	}
}

// IsBoosting reports whether thrust is being produced
func (s *System) IsBoosting() bool {
	return s.active
}

// TryBoost ignites the jetpack. It fails when already burning, locked out or low on fuel.
func (s *System) TryBoost() bool {
	if s.active || s.lockout > 0 || s.fuel < s.cfg.MinFuelToStart || s.fuel <= 0 {
		return false
	}
	s.active = true
	return true
}

// StopBoost cuts thrust
func (s *System) StopBoost() {
	if !s.active {
		return
	}
	s.active = false
	s.sinceStop = 0
}

// SetMovementInput biases the thrust direction toward horizontal input
func (s *System) SetMovementInput(input mgl64.Vec3) {
	s.movementInput = mgl64.Vec3{input.X(), 0, input.Z()}
}

// Fuel returns the fuel fraction in [0,1]
func (s *System) Fuel() float64 {
	return s.fuel
}

// Update burns or recharges fuel and returns the thrust acceleration for this tick.
// The thrust is zero while inactive.
func (s *System) Update(dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return mgl64.Vec3{}
	}
	if s.lockout > 0 {
		s.lockout = math.Max(0, s.lockout-dt)
	}

	if !s.active {
		s.burnTime = 0
		s.sinceStop += dt
		if s.sinceStop >= s.cfg.RechargeDelay {
			s.fuel = math.Min(1, s.fuel+s.cfg.RechargeRate*dt)
		}
		return mgl64.Vec3{}
	}

	s.fuel -= s.cfg.BurnRate * dt
	s.burnTime += dt
	if s.fuel <= 0 {
		s.fuel = 0
		s.active = false
		s.sinceStop = 0
		s.lockout = s.cfg.EmptyLockout
		return mgl64.Vec3{}
	}

	dir := world.Up
	if s.movementInput.Len() > 1e-9 {
		bias := world.Normalize(s.movementInput).Mul(s.cfg.InputBias)
		dir = world.Normalize(world.Up.Add(bias))
	}
	return dir.Mul(s.cfg.Thrust)
}

// CameraShake returns a small deterministic camera offset while burning
func (s *System) CameraShake() (float64, float64) {
	if !s.active {
		return 0, 0
	}
	i := s.cfg.ShakeIntensity
	return math.Sin(s.burnTime*53) * i, math.Cos(s.burnTime*41) * i
}

// Reset refuels and stops the jetpack
func (s *System) Reset() {
	s.fuel = 1
	s.active = false
	s.lockout = 0
	s.sinceStop = s.cfg.RechargeDelay
	s.movementInput = mgl64.Vec3{}
	s.burnTime = 0
}
