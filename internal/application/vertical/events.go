package vertical

import (
	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/domain/world"
)

// Event is one recorded movement notification
type Event interface {
	isEvent()
}

// LandEvent is emitted on every air-to-ground transition
type LandEvent struct {
	Velocity float64
	Surface  world.Surface
}

func (LandEvent) isEvent() {}

// JumpEvent is emitted when a jump launches
type JumpEvent struct{}

func (JumpEvent) isEvent() {}

// FallDamageEvent carries the damage of a hard landing
type FallDamageEvent struct {
	Damage int
}

func (FallDamageEvent) isEvent() {}

// LandingImpactEvent is emitted for landings above the light threshold
type LandingImpactEvent struct {
	Tier    ImpactTier
	Surface world.Surface
}

func (LandingImpactEvent) isEvent() {}

// MantleStartEvent is emitted when a mantle begins
type MantleStartEvent struct{}

func (MantleStartEvent) isEvent() {}

// MantleProgressEvent is emitted every tick a mantle or pull-up advances
type MantleProgressEvent struct {
	Progress float64
	Phase    ledge.Phase
}

func (MantleProgressEvent) isEvent() {}

// MantleCompleteEvent is emitted when a mantle or pull-up finishes
type MantleCompleteEvent struct{}

func (MantleCompleteEvent) isEvent() {}

// LedgeGrabEvent is emitted when the character latches onto an edge
type LedgeGrabEvent struct{}

func (LedgeGrabEvent) isEvent() {}

// LedgePullUpEvent is emitted when a hanging character starts to climb
type LedgePullUpEvent struct{}

func (LedgePullUpEvent) isEvent() {}

// Queue is an Observer that buffers events for the host to drain once per frame
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{}
}

// Drain returns the buffered events and empties the queue
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events
func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *Queue) OnMantleStart() { q.push(MantleStartEvent{}) }

func (q *Queue) OnMantleProgress(progress float64, phase ledge.Phase) {
	q.push(MantleProgressEvent{Progress: progress, Phase: phase})
}

func (q *Queue) OnMantleComplete() { q.push(MantleCompleteEvent{}) }
func (q *Queue) OnLedgeGrab()      { q.push(LedgeGrabEvent{}) }
func (q *Queue) OnLedgePullUp()    { q.push(LedgePullUpEvent{}) }
func (q *Queue) OnJump()           { q.push(JumpEvent{}) }

func (q *Queue) OnLand(velocity float64, surface world.Surface) {
	q.push(LandEvent{Velocity: velocity, Surface: surface})
}

func (q *Queue) OnFallDamage(damage int) {
	q.push(FallDamageEvent{Damage: damage})
}

func (q *Queue) OnLandingImpact(tier ImpactTier, surface world.Surface) {
	q.push(LandingImpactEvent{Tier: tier, Surface: surface})
}
