package state

// Mode is the coarse movement mode of a character, used for HUD text and animation selection
type Mode int

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeMantling
	ModeHanging
	ModePullingUp
	ModeBoosting
)

// String returns the string representation of the movement mode
func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "Grounded"
	case ModeAirborne:
		return "Airborne"
	case ModeMantling:
		return "Mantling"
	case ModeHanging:
		return "Hanging"
	case ModePullingUp:
		return "PullingUp"
	case ModeBoosting:
		return "Boosting"
	default:
		return "Unknown"
	}
}

// OwnsPosition reports whether a maneuver, not physics, positions the character
func (m Mode) OwnsPosition() bool {
	return m == ModeMantling || m == ModeHanging || m == ModePullingUp
}
