package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// intentHold is how long a key event keeps its intent asserted. Terminals
// deliver key repeats, not key-up events, so a held key refreshes the
// window each repeat.
const intentHold = 150 * time.Millisecond

// Machine translates tcell key events into per-side paddle intents and
// application actions. Left paddle: w/s; right paddle: arrow keys.
type Machine struct {
	leftIntent  Intent
	leftUntil   time.Time
	rightIntent Intent
	rightUntil  time.Time
}

// NewMachine creates an input machine with no intents asserted
func NewMachine() *Machine {
	return &Machine{}
}

// HandleKey consumes one key event, updating intents and returning any
// application action it decodes
func (m *Machine) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		m.rightIntent = IntentUp
		m.rightUntil = now.Add(intentHold)
		return ActionNone
	case tcell.KeyDown:
		m.rightIntent = IntentDown
		m.rightUntil = now.Add(intentHold)
		return ActionNone
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			m.leftIntent = IntentUp
			m.leftUntil = now.Add(intentHold)
		case 's', 'S':
			m.leftIntent = IntentDown
			m.leftUntil = now.Add(intentHold)
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionRestart
		case 'p', 'P':
			return ActionTogglePause
		case 'm', 'M':
			return ActionToggleMute
		}
	}
	return ActionNone
}

// Intents returns the current per-side intents, expiring stale holds and
// applying control inversion before the intents reach the core
func (m *Machine) Intents(now time.Time, inverted bool) (left, right Intent) {
	if now.After(m.leftUntil) {
		m.leftIntent = IntentNone
	}
	if now.After(m.rightUntil) {
		m.rightIntent = IntentNone
	}
	left, right = m.leftIntent, m.rightIntent
	if inverted {
		left, right = left.Inverted(), right.Inverted()
	}
	return left, right
}
