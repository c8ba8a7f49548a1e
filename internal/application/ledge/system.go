// Package ledge detects climbable edges and drives the mantle and ledge-grab maneuvers.
package ledge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

// Mantle phase boundaries on the progress axis
const (
	reachEnd = 0.3
	pullEnd  = 0.7
)

// hangDrop is how far below the edge the character hangs
const hangDrop = 1.0

// riseEnd is the eased pull-up progress at which the body clears the edge height
const riseEnd = 0.8

// Listener receives maneuver events
type Listener interface {
	OnMantleStart()
	OnMantleProgress(progress float64, phase Phase)
	OnMantleComplete()
	OnLedgeGrab()
	OnLedgePullUp()
}

// NopListener ignores every event
type NopListener struct{}

func (NopListener) OnMantleStart()                  {}
func (NopListener) OnMantleProgress(float64, Phase) {}
func (NopListener) OnMantleComplete()               {}
func (NopListener) OnLedgeGrab()                    {}
func (NopListener) OnLedgePullUp()                  {}

// System owns one character's mantle / ledge-grab state machine
type System struct {
	mantle     config.MantleConfig
	grab       config.LedgeGrabConfig
	feetOffset float64
	world      world.Raycaster
	ignore     *world.IgnoreList
	listener   Listener

	state State
}

// NewSystem creates a ledge system. ignore may be nil.
func NewSystem(cfg *config.MovementConfig, rc world.Raycaster, ignore *world.IgnoreList) *System {
	if ignore == nil {
		ignore = world.NewIgnoreList()
	}
	return &System{
		mantle:     cfg.Mantle,
		grab:       cfg.LedgeGrab,
		feetOffset: cfg.Ground.FeetOffset(),
		world:      rc,
		ignore:     ignore,
		listener:   NopListener{},
		state:      Idle{},
	}
}

// SetListener replaces the event listener; nil restores the no-op listener
func (s *System) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	s.listener = l
}

// State returns the current state value
func (s *System) State() State {
	return s.state
}

// IsMantling reports whether the system is moving the character (mantle or pull-up)
func (s *System) IsMantling() bool {
	switch s.state.(type) {
	case Mantling, PullingUp:
		return true
	}
	return false
}

// IsLedgeGrabbing reports whether the character hangs from an edge
func (s *System) IsLedgeGrabbing() bool {
	_, ok := s.state.(LedgeGrabbing)
	return ok
}

// IsActive reports whether the system currently owns the character's position
func (s *System) IsActive() bool {
	return s.IsMantling() || s.IsLedgeGrabbing()
}

// Progress returns maneuver progress in [0,1], or 0 when no timed maneuver runs
func (s *System) Progress() float64 {
	switch st := s.state.(type) {
	case Mantling:
		return st.Progress
	case PullingUp:
		return st.Progress
	}
	return 0
}

// Phase returns the current animation phase
func (s *System) Phase() Phase {
	switch st := s.state.(type) {
	case Mantling:
		return st.Phase
	case LedgeGrabbing:
		return PhaseHanging
	case PullingUp:
		return PhasePullUp
	}
	return PhaseNone
}

// CooldownRemaining returns the seconds left before a new maneuver is allowed
func (s *System) CooldownRemaining() float64 {
	if c, ok := s.state.(Cooldown); ok {
		return c.Remaining
	}
	return 0
}

// TryMantle starts a mantle over a low obstacle in front of the character
func (s *System) TryMantle(position, forward mgl64.Vec3) bool {
	info, ready := s.detectFromRest(position, forward)
	if !ready {
		return false
	}
	if !info.Found || info.IsLedgeGrab {
		s.state = Idle{}
		return false
	}

	fwd := world.Flatten(forward)
	s.state = Mantling{
		Phase:  PhaseReach,
		Ledge:  info,
		Start:  position,
		Wall:   info.WallPoint.Sub(fwd.Mul(standBack)),
		Target: s.standingTarget(info, fwd),
	}
	s.listener.OnMantleStart()
	return true
}

// TryLedgeGrab latches onto a high edge in front of the character
func (s *System) TryLedgeGrab(position, forward mgl64.Vec3) bool {
	info, ready := s.detectFromRest(position, forward)
	if !ready {
		return false
	}
	if !info.Found || !info.IsLedgeGrab {
		s.state = Idle{}
		return false
	}

	fwd := world.Flatten(forward)
	s.state = LedgeGrabbing{
		Ledge:  info,
		Hang:   hangPosition(info, fwd, position.Y()),
		Target: s.standingTarget(info, fwd),
	}
	s.listener.OnLedgeGrab()
	return true
}

// PullUp commits a hanging character to climbing onto the edge
func (s *System) PullUp() bool {
	st, ok := s.state.(LedgeGrabbing)
	if !ok {
		return false
	}
	s.state = PullingUp{
		Ledge:  st.Ledge,
		Hang:   st.Hang,
		Target: st.Target,
	}
	s.listener.OnLedgePullUp()
	return true
}

// DropFromLedge lets go of the edge
func (s *System) DropFromLedge() bool {
	if !s.IsLedgeGrabbing() {
		return false
	}
	s.state = Cooldown{Remaining: s.mantle.Cooldown / 2}
	return true
}

// Cancel aborts any active maneuver, discarding its progress
func (s *System) Cancel() bool {
	if !s.IsActive() {
		return false
	}
	s.state = Cooldown{Remaining: s.mantle.Cooldown / 2}
	return true
}

// Reset returns to idle immediately
func (s *System) Reset() {
	s.state = Idle{}
}

// Update advances the state machine by dt seconds. While the system owns the
// character it returns the position the character must occupy this tick.
func (s *System) Update(dt float64) (mgl64.Vec3, bool) {
	if dt < 0 {
		dt = 0
	}

	switch st := s.state.(type) {
	case Mantling:
		st.Progress = math.Min(1, st.Progress+dt/s.mantle.Duration)
		st.Phase = phaseFor(st.Progress)
		s.listener.OnMantleProgress(st.Progress, st.Phase)
		if st.Progress >= 1 {
			s.state = Cooldown{Remaining: s.mantle.Cooldown}
			s.listener.OnMantleComplete()
			return st.Target, true
		}
		s.state = st
		return mantlePosition(st), true

	case LedgeGrabbing:
		return st.Hang, true

	case PullingUp:
		st.Progress = math.Min(1, st.Progress+dt/s.grab.PullUpDuration)
		s.listener.OnMantleProgress(st.Progress, PhasePullUp)
		if st.Progress >= 1 {
			s.state = Cooldown{Remaining: s.mantle.Cooldown}
			s.listener.OnMantleComplete()
			return st.Target, true
		}
		s.state = st
		return pullUpPosition(st), true

	case Cooldown:
		st.Remaining -= dt
		if st.Remaining <= 0 {
			s.state = Idle{}
		} else {
			s.state = st
		}
	}

	return mgl64.Vec3{}, false
}

// detectFromRest runs detection if the system is ready for a new maneuver.
// ready is false while another maneuver or a cooldown is in progress.
func (s *System) detectFromRest(position, forward mgl64.Vec3) (info Info, ready bool) {
	switch s.state.(type) {
	case Idle, Detecting:
	default:
		return Info{}, false
	}

	s.state = Detecting{}
	return s.DetectLedge(position, forward), true
}

// standingTarget is where the character stands after climbing onto the edge
func (s *System) standingTarget(info Info, fwd mgl64.Vec3) mgl64.Vec3 {
	return info.Position.Add(mgl64.Vec3{0, s.feetOffset, 0}).Sub(fwd.Mul(standBack))
}

// hangPosition is on the climb column in front of the wall, hangDrop below the edge.
// The body never drops below the height it grabbed from, so the feet stay out of the floor.
func hangPosition(info Info, fwd mgl64.Vec3, grabY float64) mgl64.Vec3 {
	hang := info.WallPoint.Sub(fwd.Mul(standBack))
	hang[1] = math.Max(info.Position.Y()-hangDrop, grabY)
	return hang
}

// pullUpPosition rises along the climb column, then steps forward onto the edge
func pullUpPosition(p PullingUp) mgl64.Vec3 {
	above := mgl64.Vec3{p.Hang.X(), p.Target.Y(), p.Hang.Z()}
	e := easeOutQuad(p.Progress)
	if e < riseEnd {
		return lerp(p.Hang, above, e/riseEnd)
	}
	return lerp(above, p.Target, (e-riseEnd)/(1-riseEnd))
}

// mantlePosition interpolates reach -> pull -> vault for the given progress
func mantlePosition(m Mantling) mgl64.Vec3 {
	reachY := m.Start.Y() + (m.Target.Y()-m.Start.Y())*reachEnd
	atWall := mgl64.Vec3{m.Wall.X(), reachY, m.Wall.Z()}
	onTop := mgl64.Vec3{m.Wall.X(), m.Target.Y(), m.Wall.Z()}

	switch {
	case m.Progress < reachEnd:
		t := m.Progress / reachEnd
		return lerp(m.Start, atWall, easeInOutCubic(t))
	case m.Progress < pullEnd:
		t := (m.Progress - reachEnd) / (pullEnd - reachEnd)
		return lerp(atWall, onTop, easeInOutCubic(t))
	default:
		t := (m.Progress - pullEnd) / (1 - pullEnd)
		return lerp(onTop, m.Target, easeInOutCubic(t))
	}
}
