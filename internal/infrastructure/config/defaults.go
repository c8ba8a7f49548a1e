package config

import (
	"errors"
	"fmt"
)

// Default returns the stock tunables
func Default() MovementConfig {
	return MovementConfig{
		Physics: PhysicsSettings{
			Gravity:          20,
			TerminalVelocity: 50,
			MaxBoostRise:     20,
		},
		Jump: JumpConfig{
			Speed:      8,
			CoyoteTime: 0.15,
			JumpBuffer: 0.15,
			AirControl: 0.3,
		},
		Ground: GroundConfig{
			ProbeDistance:    0.2,
			StandingHeight:   1.8,
			MaxWalkableSlope: 45,
			SlideFactor:      0.3,
		},
		Mantle: MantleConfig{
			MinHeight:           0.5,
			MaxHeight:           1.2,
			ForwardReach:        1.0,
			Duration:            0.6,
			Cooldown:            0.3,
			AutoMantle:          true,
			AutoMantleMaxHeight: 1.5,
		},
		LedgeGrab: LedgeGrabConfig{
			MinHeight:      1.6,
			MaxHeight:      2.4,
			PullUpDuration: 0.8,
		},
		FallDamage: FallDamageConfig{
			Threshold:  20,
			Multiplier: 2.5,
		},
		Landing: LandingConfig{
			RecoveryDuration:  0.2,
			RecoveryThreshold: 5,
			HeavyThreshold:    15,
			DipScale:          0.01,
			MaxDip:            0.15,
		},
		Jetpack: JetpackConfig{
			Thrust:         35,
			BurnRate:       0.4,
			RechargeRate:   0.25,
			RechargeDelay:  0.8,
			MinFuelToStart: 0.1,
			EmptyLockout:   1.0,
			InputBias:      0.35,
			ShakeIntensity: 0.015,
		},
		Locomotion: LocomotionConfig{
			WalkSpeed:  5,
			BodyRadius: 0.3,
		},
	}
}

// Validate reports every inconsistent tunable at once
func (c *MovementConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, lo, hi float64) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %v exceeds max %v", name, lo, hi))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.terminalVelocity", c.Physics.TerminalVelocity)
	positive("physics.maxBoostRise", c.Physics.MaxBoostRise)
	positive("jump.speed", c.Jump.Speed)
	positive("ground.probeDistance", c.Ground.ProbeDistance)
	positive("ground.standingHeight", c.Ground.StandingHeight)
	positive("mantle.forwardReach", c.Mantle.ForwardReach)
	positive("mantle.duration", c.Mantle.Duration)
	positive("ledgeGrab.pullUpDuration", c.LedgeGrab.PullUpDuration)
	positive("landing.recoveryDuration", c.Landing.RecoveryDuration)
	positive("jetpack.burnRate", c.Jetpack.BurnRate)
	positive("locomotion.walkSpeed", c.Locomotion.WalkSpeed)

	ordered("mantle height", c.Mantle.MinHeight, c.Mantle.MaxHeight)
	ordered("ledgeGrab height", c.LedgeGrab.MinHeight, c.LedgeGrab.MaxHeight)

	if c.Mantle.MaxHeight >= c.LedgeGrab.MinHeight {
		errs = append(errs, fmt.Errorf("mantle max height %v overlaps ledge-grab min height %v",
			c.Mantle.MaxHeight, c.LedgeGrab.MinHeight))
	}
	if c.Ground.MaxWalkableSlope < 0 || c.Ground.MaxWalkableSlope > 90 {
		errs = append(errs, fmt.Errorf("ground.maxWalkableSlope must be within [0, 90], got %v", c.Ground.MaxWalkableSlope))
	}
	if c.Jetpack.MinFuelToStart < 0 || c.Jetpack.MinFuelToStart > 1 {
		errs = append(errs, fmt.Errorf("jetpack.minFuelToStart must be within [0, 1], got %v", c.Jetpack.MinFuelToStart))
	}

	return errors.Join(errs...)
}
