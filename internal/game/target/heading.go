package target

import (
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

// Heading describes where a trainer stands relative to the player.
type Heading struct {
	// Vertical is "North" or "South".
	Vertical string
	// Rows is the absolute row difference.
	Rows int
	// Horizontal is "West" or "East".
	Horizontal string
	// Cols is the absolute column difference.
	Cols int
}

// HeadingOf computes the heading from player to actor. A zero delta reads as
// North and West.
func HeadingOf(actor, player world.Pos) Heading {
	dy := actor.Y - player.Y
	dx := actor.X - player.X
	h := Heading{Vertical: "North", Rows: abs(dy), Horizontal: "West", Cols: abs(dx)}
	if dy > 0 {
		h.Vertical = "South"
	}
	if dx > 0 {
		h.Horizontal = "East"
	}
	return h
}

// String renders the heading as "3 North by 2 East".
func (h Heading) String() string {
	return fmt.Sprintf("%d %s by %d %s", h.Rows, h.Vertical, h.Cols, h.Horizontal)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
