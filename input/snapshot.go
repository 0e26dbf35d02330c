package input

// Snapshot stores the input state for a single frame. Held fields report
// keys down this frame; Pressed fields are edge-triggered and fire once per
// physical key-down, not for the duration held.
type Snapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	UpPressed    bool
	DownPressed  bool
	LeftPressed  bool
	RightPressed bool
}
