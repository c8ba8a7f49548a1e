package replay

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/vaultcore/internal/application/input"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/entity"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Frames         int
	Final          mgl64.Vec3
	Jumps          int
	Landings       int
	Mantles        int
	LedgeGrabs     int
	FallDamage     int
	HardestLanding float64
	Health         int
}

// Run drives ctrl and char through every recorded frame at the recorded tick length.
// The controller's observer is replaced for the run; extra observers still see every event.
// Fall damage is applied to char.
func Run(ctrl *vertical.Controller, char *entity.Character, sys *input.System, data ReplayData, extra ...vertical.Observer) Summary {
	q := vertical.NewQueue()
	ctrl.SetObserver(append(vertical.Fanout{q}, extra...))

	r := NewReplayer(data)
	var s Summary
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		sys.UpdateCharacter(ctrl, char, in, data.DT)
		s.tally(q.Drain(), char)
		s.Frames++
	}

	s.Final = char.Position
	s.Health = char.Health
	return s
}

func (s *Summary) tally(events []vertical.Event, char *entity.Character) {
	for _, e := range events {
		switch ev := e.(type) {
		case vertical.JumpEvent:
			s.Jumps++
		case vertical.LandEvent:
			s.Landings++
			s.HardestLanding = math.Max(s.HardestLanding, ev.Velocity)
		case vertical.MantleStartEvent:
			s.Mantles++
		case vertical.LedgeGrabEvent:
			s.LedgeGrabs++
		case vertical.FallDamageEvent:
			s.FallDamage += ev.Damage
			char.TakeDamage(ev.Damage)
		}
	}
}
