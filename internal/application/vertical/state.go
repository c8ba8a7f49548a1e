package vertical

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/application/ground"
	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/application/state"
)

// State is a read-only snapshot of a controller, taken after Update
type State struct {
	VelocityY         float64
	IsGrounded        bool
	TimeSinceGrounded float64
	IsJumping         bool

	Ledge         ledge.State
	LedgePhase    ledge.Phase
	LedgeProgress float64

	IsBoosting bool
	Fuel       float64

	Ground           ground.Info
	PeakFallVelocity float64

	IsRecovering     bool
	RecoveryProgress float64
	LandingVelocity  float64

	// ManeuverPosition is where a mantle or ledge grab placed the character on
	// the last tick. It is only meaningful when HasManeuverPosition is set.
	ManeuverPosition    mgl64.Vec3
	HasManeuverPosition bool
}

// Mode derives the coarse movement mode from the snapshot
func (s State) Mode() state.Mode {
	if s.Ledge != nil {
		switch s.Ledge.Kind() {
		case ledge.KindMantling:
			return state.ModeMantling
		case ledge.KindLedgeGrabbing:
			return state.ModeHanging
		case ledge.KindPullingUp:
			return state.ModePullingUp
		}
	}
	switch {
	case s.IsBoosting:
		return state.ModeBoosting
	case s.IsGrounded:
		return state.ModeGrounded
	default:
		return state.ModeAirborne
	}
}
