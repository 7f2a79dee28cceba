package target

import (
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

const (
	// PageSize is the number of trainer rows visible at once.
	PageSize = 13
	// rowWidth bounds a formatted row, matching the fixed-width list box.
	rowWidth = 39
)

// Row formats one trainer-list line.
func Row(t *world.Trainer, player world.Pos) string {
	h := HeadingOf(t.Pos, player)
	s := fmt.Sprintf("%16s %c: %2d %s by %2d %s",
		t.Class.String(), t.Symbol(), h.Rows, h.Vertical, h.Cols, h.Horizontal)
	if r := []rune(s); len(r) > rowWidth {
		s = string(r[:rowWidth])
	}
	return s
}

// Summary formats the nearest-trainer status line, or "NONE." when t is nil.
func Summary(t *world.Trainer, player world.Pos) string {
	if t == nil {
		return "NONE."
	}
	h := HeadingOf(t.Pos, player)
	return fmt.Sprintf("%c at %d %c by %d %c.",
		t.Symbol(), h.Rows, h.Vertical[0], h.Cols, h.Horizontal[0])
}

// Listing is a scrollable trainer list.
//
// Invariant: 0 <= offset <= max(0, len(rows)-PageSize).
type Listing struct {
	rows   []string
	offset int
}

// NewListing formats ranked trainers relative to player.
func NewListing(ranked []*world.Trainer, player world.Pos) *Listing {
	rows := make([]string, len(ranked))
	for i, t := range ranked {
		rows[i] = Row(t, player)
	}
	return &Listing{rows: rows}
}

// Len returns the number of rows.
func (l *Listing) Len() int { return len(l.rows) }

// Offset returns the index of the first visible row.
func (l *Listing) Offset() int { return l.offset }

// Scrollable reports whether the list is longer than a page.
func (l *Listing) Scrollable() bool { return len(l.rows) > PageSize }

// Header returns the title line.
func (l *Listing) Header() string {
	return fmt.Sprintf("You know of %d trainers:", len(l.rows))
}

// Footer returns the key hint for the list.
func (l *Listing) Footer() string {
	if l.Scrollable() {
		return "Arrows to scroll, escape to continue."
	}
	return "Hit escape to continue."
}

// ScrollUp moves the window one row up, stopping at the top.
func (l *Listing) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// ScrollDown moves the window one row down, stopping when the last row is visible.
func (l *Listing) ScrollDown() {
	if l.offset < len(l.rows)-PageSize {
		l.offset++
	}
}

// Page returns the visible rows.
//
// Postcondition: len(result) <= PageSize.
func (l *Listing) Page() []string {
	end := min(l.offset+PageSize, len(l.rows))
	return l.rows[l.offset:end]
}
