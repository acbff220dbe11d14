package input

// Intent is a paddle movement intent for one tick
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

// Inverted returns the intent with up/down swapped. Inversion is applied in
// the input layer, before intents reach the simulation core.
func (i Intent) Inverted() Intent {
	switch i {
	case IntentUp:
		return IntentDown
	case IntentDown:
		return IntentUp
	default:
		return i
	}
}

// Action is an application-level command decoded from input, separate from
// paddle movement
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
	ActionTogglePause
	ActionToggleMute
)
