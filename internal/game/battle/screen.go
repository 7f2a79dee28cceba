package battle

import (
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
)

// columnWidth is the width of the left-hand creature panel.
const columnWidth = 36

// statBlock renders one creature panel. A nil creature renders a placeholder.
func statBlock(title string, c *creature.Instance) []string {
	if c == nil {
		return []string{title, "(no pokemon)"}
	}
	s := c.Stats()
	return []string{
		title,
		fmt.Sprintf("pokemon: %s", c.Name()),
		fmt.Sprintf("level: %d", c.Level()),
		fmt.Sprintf("Move 1: %s", c.Move(0).Name),
		fmt.Sprintf("Move 2: %s", c.Move(1).Name),
		fmt.Sprintf("HP: %d/%d", c.CurrentHP(), c.MaxHP()),
		fmt.Sprintf("attack: %d", s.Attack),
		fmt.Sprintf("defense: %d", s.Defense),
		fmt.Sprintf("special-attack: %d", s.SpecialAttack),
		fmt.Sprintf("special-defense: %d", s.SpecialDefense),
		fmt.Sprintf("speed: %d", s.Speed),
		c.Gender().String(),
	}
}

// sideBySide joins two panels line by line.
func sideBySide(left, right []string) []string {
	n := max(len(left), len(right))
	out := make([]string, n)
	for i := range out {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out[i] = fmt.Sprintf("%-*s%s", columnWidth, l, r)
	}
	return out
}

func menuLines() []string {
	return []string{
		"enter 1 to fight",
		"enter 2 to bag",
		"enter 3 to run",
		"enter 4 to switch pokemon",
		"enter q to quit",
	}
}

func moveLines(c *creature.Instance) []string {
	return []string{
		fmt.Sprintf("choose move a (%s) or b (%s)", c.Move(0).Name, c.Move(1).Name),
		"esc to go back",
	}
}

func itemLines(b *inventory.Bag) []string {
	return []string{
		fmt.Sprintf("a - potion %dx", b.Count(inventory.Potion)),
		fmt.Sprintf("b - revive %dx", b.Count(inventory.Revive)),
		fmt.Sprintf("c - pokeball %dx", b.Count(inventory.Pokeball)),
		"esc to go back",
	}
}

func slotLines(r *roster.Roster) []string {
	out := make([]string, 0, roster.Size+2)
	out = append(out, "- select your pokemon to fight with -")
	for i := 0; i < roster.Size; i++ {
		name := "(empty)"
		if c := r.Slot(i); c != nil {
			name = fmt.Sprintf("%s HP %d/%d", c.Name(), c.CurrentHP(), c.MaxHP())
		}
		marker := ' '
		if i == r.ActiveIndex() {
			marker = '*'
		}
		out = append(out, fmt.Sprintf("%c%d - %s", marker, i, name))
	}
	return append(out, "esc to go back")
}
