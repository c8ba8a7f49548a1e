package config

// MovementConfig is the root config for movement.json / movement.yaml.
// A controller copies it on construction; changing it afterwards has no effect.
type MovementConfig struct {
	Physics    PhysicsSettings  `json:"physics" yaml:"physics"`
	Jump       JumpConfig       `json:"jump" yaml:"jump"`
	Ground     GroundConfig     `json:"ground" yaml:"ground"`
	Mantle     MantleConfig     `json:"mantle" yaml:"mantle"`
	LedgeGrab  LedgeGrabConfig  `json:"ledgeGrab" yaml:"ledgeGrab"`
	FallDamage FallDamageConfig `json:"fallDamage" yaml:"fallDamage"`
	Landing    LandingConfig    `json:"landing" yaml:"landing"`
	Jetpack    JetpackConfig    `json:"jetpack" yaml:"jetpack"`
	Locomotion LocomotionConfig `json:"locomotion" yaml:"locomotion"`
}

type PhysicsSettings struct {
	Gravity          float64 `json:"gravity" yaml:"gravity"`
	TerminalVelocity float64 `json:"terminalVelocity" yaml:"terminalVelocity"`
	MaxBoostRise     float64 `json:"maxBoostRise" yaml:"maxBoostRise"` // Upward cap while thrusting
}

type JumpConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`
	CoyoteTime float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
	AirControl float64 `json:"airControl" yaml:"airControl"`
}

type GroundConfig struct {
	ProbeDistance    float64 `json:"probeDistance" yaml:"probeDistance"`
	StandingHeight   float64 `json:"standingHeight" yaml:"standingHeight"`
	MaxWalkableSlope float64 `json:"maxWalkableSlope" yaml:"maxWalkableSlope"` // Degrees
	SlideFactor      float64 `json:"slideFactor" yaml:"slideFactor"`
}

// FeetOffset is the distance from the character position down to its feet
func (g GroundConfig) FeetOffset() float64 {
	return g.StandingHeight / 2
}

type MantleConfig struct {
	MinHeight    float64 `json:"minHeight" yaml:"minHeight"`
	MaxHeight    float64 `json:"maxHeight" yaml:"maxHeight"`
	ForwardReach float64 `json:"forwardReach" yaml:"forwardReach"`
	Duration     float64 `json:"duration" yaml:"duration"`
	Cooldown     float64 `json:"cooldown" yaml:"cooldown"`

	// AutoMantle lets a falling character chain into a climb without an extra input
	AutoMantle          bool    `json:"autoMantle" yaml:"autoMantle"`
	AutoMantleMaxHeight float64 `json:"autoMantleMaxHeight" yaml:"autoMantleMaxHeight"`
}

type LedgeGrabConfig struct {
	MinHeight      float64 `json:"minHeight" yaml:"minHeight"`
	MaxHeight      float64 `json:"maxHeight" yaml:"maxHeight"`
	PullUpDuration float64 `json:"pullUpDuration" yaml:"pullUpDuration"`
}

type FallDamageConfig struct {
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

type LandingConfig struct {
	RecoveryDuration  float64 `json:"recoveryDuration" yaml:"recoveryDuration"`
	RecoveryThreshold float64 `json:"recoveryThreshold" yaml:"recoveryThreshold"` // Impact speed that starts a dip
	HeavyThreshold    float64 `json:"heavyThreshold" yaml:"heavyThreshold"`
	DipScale          float64 `json:"dipScale" yaml:"dipScale"` // Dip units per unit of impact speed
	MaxDip            float64 `json:"maxDip" yaml:"maxDip"`
}

type JetpackConfig struct {
	Thrust         float64 `json:"thrust" yaml:"thrust"`
	BurnRate       float64 `json:"burnRate" yaml:"burnRate"`         // Fuel fraction per second
	RechargeRate   float64 `json:"rechargeRate" yaml:"rechargeRate"` // Fuel fraction per second
	RechargeDelay  float64 `json:"rechargeDelay" yaml:"rechargeDelay"`
	MinFuelToStart float64 `json:"minFuelToStart" yaml:"minFuelToStart"`
	EmptyLockout   float64 `json:"emptyLockout" yaml:"emptyLockout"` // Cooldown after running dry
	InputBias      float64 `json:"inputBias" yaml:"inputBias"`
	ShakeIntensity float64 `json:"shakeIntensity" yaml:"shakeIntensity"`
}

// LocomotionConfig drives the host-side horizontal motion used by the sandbox and replays
type LocomotionConfig struct {
	WalkSpeed  float64 `json:"walkSpeed" yaml:"walkSpeed"`
	BodyRadius float64 `json:"bodyRadius" yaml:"bodyRadius"` // Horizontal blocking distance
}
