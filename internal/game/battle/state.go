// Package battle runs the wild-encounter state machine and the simplified
// trainer engagement. Both are driven one key at a time through Advance.
package battle

// State is a battle screen state.
type State int

const (
	// MenuSelect waits for 1 fight, 2 bag, 3 run, 4 switch or q.
	MenuSelect State = iota
	// ChooseMove waits for move a or b.
	ChooseMove
	// ChooseItem waits for item a, b or c.
	ChooseItem
	// ChooseSlot waits for a roster slot 0 through 5.
	ChooseSlot
	// Display is the read-only trainer engagement screen.
	Display
	// Ended is terminal.
	Ended
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case MenuSelect:
		return "menu_select"
	case ChooseMove:
		return "choose_move"
	case ChooseItem:
		return "choose_item"
	case ChooseSlot:
		return "choose_slot"
	case Display:
		return "display"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Key names accepted by Advance.
const (
	KeyQuit   = "q"
	KeyEscape = "esc"
)

// Step is what Advance hands back to the presentation layer.
type Step struct {
	State    State
	Messages *Messages
	// Screen holds the rendered lines for State.
	Screen []string
}
