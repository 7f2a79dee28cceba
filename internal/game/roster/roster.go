// Package roster holds a trainer's six creature slots and builds rosters
// for trainers and the player's starter choice.
package roster

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
)

// Size is the fixed number of roster slots.
const Size = 6

var (
	// ErrSlotRange is returned for a slot index outside [0, Size).
	ErrSlotRange = errors.New("roster slot out of range")
	// ErrEmptySlot is returned when activating a slot that holds no creature.
	ErrEmptySlot = errors.New("roster slot is empty")
)

// Roster is a fixed array of creature slots plus the active index.
//
// Invariant: 0 <= ActiveIndex() < Size.
type Roster struct {
	slots  [Size]*creature.Instance
	active int
}

// Slot returns the creature in slot i, or nil when empty or out of range.
func (r *Roster) Slot(i int) *creature.Instance {
	if i < 0 || i >= Size {
		return nil
	}
	return r.slots[i]
}

// Set places c into slot i, replacing whatever was there.
func (r *Roster) Set(i int, c *creature.Instance) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("set slot %d: %w", i, ErrSlotRange)
	}
	r.slots[i] = c
	return nil
}

// ActiveIndex returns the index of the creature currently fighting.
func (r *Roster) ActiveIndex() int { return r.active }

// Active returns the creature currently fighting; nil if that slot is empty.
func (r *Roster) Active() *creature.Instance { return r.slots[r.active] }

// SetActive makes slot i the active one. Slots are never reordered or removed.
//
// Postcondition: on error the active index is unchanged.
func (r *Roster) SetActive(i int) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("activate slot %d: %w", i, ErrSlotRange)
	}
	if r.slots[i] == nil {
		return fmt.Errorf("activate slot %d: %w", i, ErrEmptySlot)
	}
	r.active = i
	return nil
}

// Filled returns how many slots hold a creature.
func (r *Roster) Filled() int {
	n := 0
	for _, c := range r.slots {
		if c != nil {
			n++
		}
	}
	return n
}

// Lead returns the first filled slot, or nil for an empty roster.
func (r *Roster) Lead() *creature.Instance {
	for _, c := range r.slots {
		if c != nil {
			return c
		}
	}
	return nil
}

// maxDraws bounds retries when the factory draws a species it cannot build.
const maxDraws = 16

// draw instantiates a creature, redrawing on ErrDataNotFound.
func draw(f *creature.Factory, src dice.Source, distance int) (*creature.Instance, error) {
	var lastErr error
	for i := 0; i < maxDraws; i++ {
		c, err := f.Instantiate(src, distance)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, creature.ErrDataNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no usable species after %d draws: %w", maxDraws, lastErr)
}

// Populate builds a trainer roster. Slot 0 is always filled; each further slot
// is filled while a d10 roll is 6 or less.
//
// Postcondition: 1 <= Filled() <= Size and filled slots are contiguous from 0.
func Populate(f *creature.Factory, src dice.Source, distance int) (*Roster, error) {
	r := &Roster{}
	for i := 0; i < Size; i++ {
		c, err := draw(f, src, distance)
		if err != nil {
			return nil, fmt.Errorf("populating slot %d: %w", i, err)
		}
		r.slots[i] = c
		if dice.Between(src, 1, 10) > 6 {
			break
		}
	}
	return r, nil
}

// StarterCount is how many candidates the player chooses a starter from.
const StarterCount = 3

// Starters instantiates the starter candidates.
func Starters(f *creature.Factory, src dice.Source, distance int) ([StarterCount]*creature.Instance, error) {
	var out [StarterCount]*creature.Instance
	for i := range out {
		c, err := draw(f, src, distance)
		if err != nil {
			return out, fmt.Errorf("starter %d: %w", i+1, err)
		}
		out[i] = c
	}
	return out, nil
}

// ChooseStarter places candidates[choice] in slot 0 and makes it active.
//
// Precondition: 0 <= choice < StarterCount.
func (r *Roster) ChooseStarter(candidates [StarterCount]*creature.Instance, choice int) error {
	if choice < 0 || choice >= StarterCount || candidates[choice] == nil {
		return fmt.Errorf("starter %d: %w", choice+1, ErrSlotRange)
	}
	r.slots[0] = candidates[choice]
	r.active = 0
	return nil
}
