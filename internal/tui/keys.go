package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the map-screen and trainer-list bindings. Battle screens pass
// raw key names straight to the battle state machine.
type keyMap struct {
	North     key.Binding
	South     key.Binding
	West      key.Binding
	East      key.Binding
	NorthWest key.Binding
	NorthEast key.Binding
	SouthWest key.Binding
	SouthEast key.Binding
	Rest      key.Binding
	Enter     key.Binding
	Trainers  key.Binding
	Quit      key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	Close      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		North:     key.NewBinding(key.WithKeys("8", "k", "up"), key.WithHelp("k/8", "north")),
		South:     key.NewBinding(key.WithKeys("2", "j", "down"), key.WithHelp("j/2", "south")),
		West:      key.NewBinding(key.WithKeys("4", "h", "left"), key.WithHelp("h/4", "west")),
		East:      key.NewBinding(key.WithKeys("6", "l", "right"), key.WithHelp("l/6", "east")),
		NorthWest: key.NewBinding(key.WithKeys("7", "y", "home"), key.WithHelp("y/7", "north-west")),
		NorthEast: key.NewBinding(key.WithKeys("9", "u", "pgup"), key.WithHelp("u/9", "north-east")),
		SouthWest: key.NewBinding(key.WithKeys("1", "b", "end"), key.WithHelp("b/1", "south-west")),
		SouthEast: key.NewBinding(key.WithKeys("3", "n", "pgdown"), key.WithHelp("n/3", "south-east")),
		Rest:      key.NewBinding(key.WithKeys("5", " ", "."), key.WithHelp("5", "rest")),
		Enter:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "enter building")),
		Trainers:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trainer list")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),

		ScrollUp:   key.NewBinding(key.WithKeys("up", "k")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j")),
		Close:      key.NewBinding(key.WithKeys("esc")),
	}
}

// direction maps a movement key to its (dx, dy). Rest is (0, 0).
//
// Postcondition: ok is false when msg is not a movement key.
func (k keyMap) direction(msg tea.KeyMsg) (dx, dy int, ok bool) {
	switch {
	case key.Matches(msg, k.North):
		return 0, -1, true
	case key.Matches(msg, k.South):
		return 0, 1, true
	case key.Matches(msg, k.West):
		return -1, 0, true
	case key.Matches(msg, k.East):
		return 1, 0, true
	case key.Matches(msg, k.NorthWest):
		return -1, -1, true
	case key.Matches(msg, k.NorthEast):
		return 1, -1, true
	case key.Matches(msg, k.SouthWest):
		return -1, 1, true
	case key.Matches(msg, k.SouthEast):
		return 1, 1, true
	case key.Matches(msg, k.Rest):
		return 0, 0, true
	}
	return 0, 0, false
}
