package vertical

import (
	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/domain/world"
)

// ImpactTier grades how hard a landing was
type ImpactTier int

const (
	ImpactLight ImpactTier = iota
	ImpactHeavy
)

// String returns the string representation of the impact tier
func (t ImpactTier) String() string {
	switch t {
	case ImpactLight:
		return "light"
	case ImpactHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Observer receives every outbound movement event.
// Callbacks run synchronously inside Update and the Try* calls.
type Observer interface {
	ledge.Listener

	OnLand(velocity float64, surface world.Surface)
	OnJump()
	OnFallDamage(damage int)
	OnLandingImpact(tier ImpactTier, surface world.Surface)
}

// NopObserver ignores every event
type NopObserver struct {
	ledge.NopListener
}

func (NopObserver) OnLand(float64, world.Surface)             {}
func (NopObserver) OnJump()                                   {}
func (NopObserver) OnFallDamage(int)                          {}
func (NopObserver) OnLandingImpact(ImpactTier, world.Surface) {}

// Fanout forwards every event to each observer in order
type Fanout []Observer

func (f Fanout) OnMantleStart() {
	for _, o := range f {
		o.OnMantleStart()
	}
}

func (f Fanout) OnMantleProgress(progress float64, phase ledge.Phase) {
	for _, o := range f {
		o.OnMantleProgress(progress, phase)
	}
}

func (f Fanout) OnMantleComplete() {
	for _, o := range f {
		o.OnMantleComplete()
	}
}

func (f Fanout) OnLedgeGrab() {
	for _, o := range f {
		o.OnLedgeGrab()
	}
}

func (f Fanout) OnLedgePullUp() {
	for _, o := range f {
		o.OnLedgePullUp()
	}
}

func (f Fanout) OnLand(velocity float64, surface world.Surface) {
	for _, o := range f {
		o.OnLand(velocity, surface)
	}
}

func (f Fanout) OnJump() {
	for _, o := range f {
		o.OnJump()
	}
}

func (f Fanout) OnFallDamage(damage int) {
	for _, o := range f {
		o.OnFallDamage(damage)
	}
}

func (f Fanout) OnLandingImpact(tier ImpactTier, surface world.Surface) {
	for _, o := range f {
		o.OnLandingImpact(tier, surface)
	}
}
