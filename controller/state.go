package controller

// State identifies the controller's active motion state. Exactly one state
// is active at any time; transitions happen only inside Update.
type State int

const (
	StateGrounded State = iota
	StateAirborne
	StateCrouching
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	case StateCrouching:
		return "crouching"
	default:
		return "unknown"
	}
}
