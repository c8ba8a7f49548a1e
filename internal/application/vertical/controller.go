// Package vertical orchestrates one character's vertical movement each tick:
// ground probing, jumps, gravity, landings, and handing position authority to the
// ledge and jetpack systems while they are active.
package vertical

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/application/ground"
	"github.com/younwookim/vaultcore/internal/application/jetpack"
	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

const (
	// leaveGroundVelocity seeds a walk-off so falling starts from a small negative speed
	leaveGroundVelocity = -0.1
	// autoMantleRiseLimit is the vertical speed below which auto-mantle is considered
	autoMantleRiseLimit = 5.0
	// minSlopeAdjust is the slope below which movement is not projected onto the ground
	minSlopeAdjust = 5.0
)

// Parts are the per-character collaborators a Controller drives.
// Each character owns its own set; they must not be shared.
type Parts struct {
	Ground  *ground.Prober
	Ledge   *ledge.System
	Jetpack *jetpack.System
	Ignore  *world.IgnoreList
}

// NewParts builds a fresh set of collaborators sharing one ignore list
func NewParts(cfg *config.MovementConfig, rc world.Raycaster) Parts {
	ignore := world.NewIgnoreList()
	return Parts{
		Ground:  ground.NewProber(cfg.Ground, rc, ignore),
		Ledge:   ledge.NewSystem(cfg, rc, ignore),
		Jetpack: jetpack.NewSystem(cfg.Jetpack),
		Ignore:  ignore,
	}
}

// Controller owns velocity-Y and grounded bookkeeping for one character
type Controller struct {
	cfg      config.MovementConfig
	ground   *ground.Prober
	ledge    *ledge.System
	jetpack  *jetpack.System
	ignore   *world.IgnoreList
	observer Observer

	velocityY         float64
	grounded          bool
	timeSinceGrounded float64
	jumping           bool
	jumpRequested     bool
	jumpBufferTimer   float64
	groundInfo        ground.Info
	peakFallVelocity  float64

	landingVelocity  float64
	recovering       bool
	recoveryProgress float64
	dipIntensity     float64

	maneuverPos    mgl64.Vec3
	hasManeuverPos bool
}

// NewController creates a controller that starts grounded and idle
func NewController(cfg *config.MovementConfig, parts Parts) *Controller {
	if parts.Ignore == nil {
		parts.Ignore = world.NewIgnoreList()
	}
	c := &Controller{
		cfg:      *cfg,
		ground:   parts.Ground,
		ledge:    parts.Ledge,
		jetpack:  parts.Jetpack,
		ignore:   parts.Ignore,
		observer: NopObserver{},
	}
	c.resetState()
	return c
}

// SetObserver registers the event sink; nil restores the no-op observer
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	c.observer = o
	c.ledge.SetListener(o)
}

// Update advances one tick and returns the vertical position delta the caller
// must add to the character's Y.
func (c *Controller) Update(dt float64, position, forward mgl64.Vec3) float64 {
	c.hasManeuverPos = false
	if dt <= 0 {
		return 0
	}

	wasGrounded := c.grounded
	c.groundInfo = c.ground.Probe(position)
	// A rising character is leaving the ground even if the probe still reaches it
	c.grounded = c.groundInfo.IsGrounded && c.velocityY <= 0

	if c.grounded {
		c.timeSinceGrounded = 0
	} else {
		c.timeSinceGrounded += dt
	}

	// Edge triggers are suspended while a maneuver carries the character
	maneuvering := c.ledge.IsActive()
	if c.grounded && !wasGrounded && !maneuvering {
		c.land()
	}
	if !c.grounded && wasGrounded && !c.jumping && c.velocityY <= 0 && !maneuvering {
		c.velocityY = leaveGroundVelocity
	}

	c.jumpBufferTimer = math.Max(0, c.jumpBufferTimer-dt)

	if pos, owned := c.ledge.Update(dt); owned {
		return c.followManeuver(dt, position, pos)
	}

	jumped := false
	if (c.jumpRequested || c.jumpBufferTimer > 0) && c.CanJump() {
		c.velocityY = c.cfg.Jump.Speed
		c.jumping = true
		c.grounded = false
		c.jumpBufferTimer = 0
		jumped = true
		c.observer.OnJump()
	}
	c.jumpRequested = false

	thrust := c.jetpack.Update(dt)
	if thrust.Y() != 0 {
		c.velocityY = math.Min(c.velocityY+thrust.Y()*dt, c.cfg.Physics.MaxBoostRise)
	} else if !c.grounded && !jumped {
		c.velocityY -= c.cfg.Physics.Gravity * dt
		c.velocityY = math.Max(c.velocityY, -c.cfg.Physics.TerminalVelocity)
		if c.velocityY < c.peakFallVelocity {
			c.peakFallVelocity = c.velocityY
		}
	}

	if c.grounded && c.velocityY < 0 {
		c.velocityY = 0
		c.jumping = false
	}

	c.advanceRecovery(dt)

	delta := c.velocityY * dt
	delta = c.resolveGround(position, delta)

	c.autoMantle(position, forward)

	return delta
}

// followManeuver hands position authority to the ledge system for this tick
func (c *Controller) followManeuver(dt float64, position, target mgl64.Vec3) float64 {
	c.jetpack.StopBoost()
	c.jetpack.Update(dt)

	c.velocityY = 0
	c.jumping = false
	c.jumpRequested = false
	c.peakFallVelocity = 0
	c.maneuverPos = target
	c.hasManeuverPos = true
	if !c.ledge.IsActive() {
		// Finished: the character stands on the edge
		c.grounded = true
		c.timeSinceGrounded = 0
	}
	return target.Y() - position.Y()
}

// resolveGround stops a fall at the first surface below and keeps a standing
// character glued to the ground it probed
func (c *Controller) resolveGround(position mgl64.Vec3, delta float64) float64 {
	if c.grounded && c.velocityY <= 0 {
		return c.groundInfo.GroundHeight - c.ground.FeetY(position)
	}
	if delta < 0 {
		if dist, ok := c.ground.Sweep(position, -delta); ok && dist < -delta {
			return -dist
		}
	}
	return delta
}

// autoMantle chains a falling character into a climb over a low ledge
func (c *Controller) autoMantle(position, forward mgl64.Vec3) {
	if !c.cfg.Mantle.AutoMantle || c.grounded || c.velocityY >= autoMantleRiseLimit {
		return
	}
	if c.ledge.State().Kind() != ledge.KindIdle {
		return
	}

	info := c.ledge.DetectLedge(position, forward)
	if !info.Found || info.IsLedgeGrab || info.Height > c.cfg.Mantle.AutoMantleMaxHeight {
		return
	}
	if c.velocityY < 0 && c.ledge.TryMantle(position, forward) {
		c.jetpack.StopBoost()
	}
}

// land runs the landing edge-trigger
func (c *Controller) land() {
	lc := c.cfg.Landing
	v := math.Abs(c.peakFallVelocity)
	surface := c.groundInfo.Surface
	c.landingVelocity = v

	if v > lc.RecoveryThreshold {
		c.recovering = true
		c.recoveryProgress = 0
		c.dipIntensity = math.Min(v*lc.DipScale, lc.MaxDip)
	}

	switch {
	case v > lc.HeavyThreshold:
		c.observer.OnLandingImpact(ImpactHeavy, surface)
	case v > lc.RecoveryThreshold:
		c.observer.OnLandingImpact(ImpactLight, surface)
	}

	fd := c.cfg.FallDamage
	if v > fd.Threshold {
		if damage := int(math.Round((v - fd.Threshold) * fd.Multiplier)); damage > 0 {
			c.observer.OnFallDamage(damage)
		}
	}

	c.observer.OnLand(v, surface)

	c.velocityY = 0
	c.jumping = false
	c.peakFallVelocity = 0
}

func (c *Controller) advanceRecovery(dt float64) {
	if !c.recovering {
		return
	}
	c.recoveryProgress += dt / c.cfg.Landing.RecoveryDuration
	if c.recoveryProgress >= 1 {
		c.recovering = false
		c.recoveryProgress = 0
		c.dipIntensity = 0
	}
}

// LandingOffset is the camera/weapon dip for the current landing recovery, zero or negative
func (c *Controller) LandingOffset() float64 {
	if !c.recovering {
		return 0
	}
	return -math.Sin(math.Pi*c.recoveryProgress) * c.dipIntensity
}

// CanJump reports whether a jump would launch right now
func (c *Controller) CanJump() bool {
	if c.ledge.IsActive() || c.jetpack.IsBoosting() {
		return false
	}
	if c.grounded {
		return true
	}
	return !c.jumping && c.timeSinceGrounded < c.cfg.Jump.CoyoteTime
}

// RequestJump asks for a jump on the next Update. The request is remembered for
// the jump-buffer window; the result reports whether it could launch immediately.
func (c *Controller) RequestJump() bool {
	c.jumpRequested = true
	c.jumpBufferTimer = c.cfg.Jump.JumpBuffer
	return c.CanJump()
}

// TryMantle starts a mantle; an active boost is cut
func (c *Controller) TryMantle(position, forward mgl64.Vec3) bool {
	if !c.ledge.TryMantle(position, forward) {
		return false
	}
	c.jetpack.StopBoost()
	return true
}

// TryLedgeGrab latches onto a high edge; an active boost is cut
func (c *Controller) TryLedgeGrab(position, forward mgl64.Vec3) bool {
	if !c.ledge.TryLedgeGrab(position, forward) {
		return false
	}
	c.jetpack.StopBoost()
	return true
}

// PullUp commits a hanging character to climbing onto the edge
func (c *Controller) PullUp() bool {
	return c.ledge.PullUp()
}

// DropFromLedge lets go; the character falls from rest
func (c *Controller) DropFromLedge() bool {
	if !c.ledge.DropFromLedge() {
		return false
	}
	c.grounded = false
	c.velocityY = 0
	c.peakFallVelocity = 0
	return true
}

// TryJetpack ignites the jetpack unless a ledge maneuver owns the character
func (c *Controller) TryJetpack() bool {
	if c.ledge.IsActive() {
		return false
	}
	return c.jetpack.TryBoost()
}

// StopJetpack cuts thrust
func (c *Controller) StopJetpack() {
	c.jetpack.StopBoost()
}

// SetMovementInput forwards horizontal input to the jetpack
func (c *Controller) SetMovementInput(input mgl64.Vec3) {
	c.jetpack.SetMovementInput(input)
}

// CancelMovement aborts any maneuver, the boost and a buffered jump
func (c *Controller) CancelMovement() {
	c.ledge.Cancel()
	c.jetpack.StopBoost()
	c.jumpRequested = false
	c.jumpBufferTimer = 0
}

// ForceGround marks the character grounded without a landing, for teleports
func (c *Controller) ForceGround() {
	c.grounded = true
	c.velocityY = 0
	c.jumping = false
	c.timeSinceGrounded = 0
	c.peakFallVelocity = 0
	c.recovering = false
	c.recoveryProgress = 0
	c.dipIntensity = 0
}

// Reset restores the controller and its parts to the initial grounded, idle, full-fuel state
func (c *Controller) Reset() {
	c.ledge.Reset()
	c.jetpack.Reset()
	c.ground.Reset()
	c.resetState()
}

func (c *Controller) resetState() {
	c.velocityY = 0
	c.grounded = true
	c.timeSinceGrounded = 0
	c.jumping = false
	c.jumpRequested = false
	c.jumpBufferTimer = 0
	c.groundInfo = c.ground.Last()
	c.peakFallVelocity = 0
	c.landingVelocity = 0
	c.recovering = false
	c.recoveryProgress = 0
	c.dipIntensity = 0
	c.maneuverPos = mgl64.Vec3{}
	c.hasManeuverPos = false
}

// AddIgnoredCollider excludes a collider from every ray this character casts
func (c *Controller) AddIgnoredCollider(id world.ColliderID) {
	c.ignore.Add(id)
}

// RemoveIgnoredCollider re-includes a collider
func (c *Controller) RemoveIgnoredCollider(id world.ColliderID) {
	c.ignore.Remove(id)
}

// AirControl returns the fraction of horizontal input the host should apply this tick
func (c *Controller) AirControl() float64 {
	if c.grounded || c.ledge.IsActive() {
		return 1
	}
	return c.cfg.Jump.AirControl
}

// CameraShake forwards the jetpack's camera shake
func (c *Controller) CameraShake() (float64, float64) {
	return c.jetpack.CameraShake()
}

// IsGrounded reports the grounded flag from the last Update
func (c *Controller) IsGrounded() bool {
	return c.grounded
}

// VelocityY returns the current vertical speed
func (c *Controller) VelocityY() float64 {
	return c.velocityY
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	return State{
		VelocityY:           c.velocityY,
		IsGrounded:          c.grounded,
		TimeSinceGrounded:   c.timeSinceGrounded,
		IsJumping:           c.jumping,
		Ledge:               c.ledge.State(),
		LedgePhase:          c.ledge.Phase(),
		LedgeProgress:       c.ledge.Progress(),
		IsBoosting:          c.jetpack.IsBoosting(),
		Fuel:                c.jetpack.Fuel(),
		Ground:              c.groundInfo,
		PeakFallVelocity:    c.peakFallVelocity,
		IsRecovering:        c.recovering,
		RecoveryProgress:    c.recoveryProgress,
		LandingVelocity:     c.landingVelocity,
		ManeuverPosition:    c.maneuverPos,
		HasManeuverPosition: c.hasManeuverPos,
	}
}
