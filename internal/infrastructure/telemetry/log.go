package telemetry

import (
	"log"

	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/world"
)

// LogObserver writes one line per notable movement event.
// Mantle progress is logged only when the phase changes.
type LogObserver struct {
	logger    *log.Logger
	lastPhase ledge.Phase
}

// NewLogObserver logs to l, or to the standard logger when l is nil
func NewLogObserver(l *log.Logger) *LogObserver {
	if l == nil {
		l = log.Default()
	}
	return &LogObserver{logger: l}
}

func (o *LogObserver) OnLand(velocity float64, surface world.Surface) {
	o.logger.Printf("land: %.2f u/s on %s", velocity, surface)
}

func (o *LogObserver) OnLandingImpact(tier vertical.ImpactTier, surface world.Surface) {
	o.logger.Printf("impact: %s on %s", tier, surface)
}

func (o *LogObserver) OnJump() {
	o.logger.Print("jump")
}

func (o *LogObserver) OnFallDamage(damage int) {
	o.logger.Printf("fall damage: %d", damage)
}

func (o *LogObserver) OnMantleStart() {
	o.lastPhase = ledge.PhaseNone
	o.logger.Print("mantle: start")
}

func (o *LogObserver) OnMantleProgress(progress float64, phase ledge.Phase) {
	if phase == o.lastPhase {
		return
	}
	o.lastPhase = phase
	o.logger.Printf("mantle: %s at %.2f", phase, progress)
}

func (o *LogObserver) OnMantleComplete() {
	o.lastPhase = ledge.PhaseNone
	o.logger.Print("mantle: complete")
}

func (o *LogObserver) OnLedgeGrab() {
	o.logger.Print("ledge: grab")
}

func (o *LogObserver) OnLedgePullUp() {
	o.lastPhase = ledge.PhaseNone
	o.logger.Print("ledge: pull up")
}
