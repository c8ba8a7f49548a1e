package ledge

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies which State variant is active
type Kind int

const (
	KindIdle Kind = iota
	KindDetecting
	KindMantling
	KindLedgeGrabbing
	KindPullingUp
	KindCooldown
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindDetecting:
		return "detecting"
	case KindMantling:
		return "mantling"
	case KindLedgeGrabbing:
		return "ledge_grabbing"
	case KindPullingUp:
		return "pulling_up"
	case KindCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Phase is the animation phase inside a maneuver
type Phase int

const (
	PhaseNone Phase = iota
	PhaseReach
	PhasePull
	PhaseVault
	PhaseComplete
	PhaseHanging
	PhasePullUp
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseReach:
		return "reach"
	case PhasePull:
		return "pull"
	case PhaseVault:
		return "vault"
	case PhaseComplete:
		return "complete"
	case PhaseHanging:
		return "hanging"
	case PhasePullUp:
		return "pullup"
	default:
		return "none"
	}
}

// State is the ledge system's state machine value.
// Exactly one variant is active, so a character can never mantle and hang at once.
type State interface {
	Kind() Kind
	isState()
}

// Idle means no maneuver and no cooldown
type Idle struct{}

// Detecting is held only while a Try call probes the world
type Detecting struct{}

// Mantling is a continuous climb over a low obstacle
type Mantling struct {
	Progress float64 // [0,1]
	Phase    Phase
	Ledge    Info
	Start    mgl64.Vec3 // Character position when the mantle began
	Wall     mgl64.Vec3 // Column in front of the wall the character climbs along
	Target   mgl64.Vec3 // Standing position on top of the ledge
}

// LedgeGrabbing is hanging from a high edge, waiting for PullUp or DropFromLedge
type LedgeGrabbing struct {
	Ledge  Info
	Hang   mgl64.Vec3
	Target mgl64.Vec3
}

// PullingUp moves from the hang position onto the ledge
type PullingUp struct {
	Progress float64 // [0,1]
	Ledge    Info
	Hang     mgl64.Vec3
	Target   mgl64.Vec3
}

// Cooldown blocks new maneuvers until Remaining reaches zero
type Cooldown struct {
	Remaining float64
}

func (Idle) Kind() Kind          { return KindIdle }
func (Detecting) Kind() Kind     { return KindDetecting }
func (Mantling) Kind() Kind      { return KindMantling }
func (LedgeGrabbing) Kind() Kind { return KindLedgeGrabbing }
func (PullingUp) Kind() Kind     { return KindPullingUp }
func (Cooldown) Kind() Kind      { return KindCooldown }

func (Idle) isState()          {}
func (Detecting) isState()     {}
func (Mantling) isState()      {}
func (LedgeGrabbing) isState() {}
func (PullingUp) isState()     {}
func (Cooldown) isState()      {}

// phaseFor maps mantle progress to its phase
func phaseFor(progress float64) Phase {
	switch {
	case progress >= 1:
		return PhaseComplete
	case progress < reachEnd:
		return PhaseReach
	case progress < pullEnd:
		return PhasePull
	default:
		return PhaseVault
	}
}
