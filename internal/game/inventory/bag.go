package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/tallgrass/internal/game/creature"
)

// PotionHeal is the hp a potion restores.
const PotionHeal = 20

// ErrNoneLeft is returned when using an item whose counter is zero.
var ErrNoneLeft = errors.New("none left")

// Item identifies one of the three bag items.
type Item int

const (
	// Potion restores PotionHeal hp, capped at max hp.
	Potion Item = iota
	// Revive brings a fainted creature back at half its max hp.
	Revive
	// Pokeball is counted and shown; throwing one goes to the capture hook.
	Pokeball
)

// String returns the item's display name.
func (i Item) String() string {
	switch i {
	case Potion:
		return "potion"
	case Revive:
		return "revive"
	case Pokeball:
		return "pokeball"
	default:
		return "unknown"
	}
}

// Bag holds the player's item counters.
//
// Invariant: every counter is >= 0.
type Bag struct {
	counts [3]int
}

// NewBag creates a Bag with the given starting counters. Negative values are
// stored as zero.
func NewBag(potions, revives, pokeballs int) *Bag {
	return &Bag{counts: [3]int{max(potions, 0), max(revives, 0), max(pokeballs, 0)}}
}

// Count returns the counter for item.
func (b *Bag) Count(item Item) int {
	if item < Potion || item > Pokeball {
		return 0
	}
	return b.counts[item]
}

// UseOn applies a healing item to target. It reports whether the item had any
// effect; an item with no effect is not consumed.
//
// Precondition: item is Potion or Revive; target must be non-nil.
// Postcondition: returns ErrNoneLeft without change when the counter is zero.
func (b *Bag) UseOn(item Item, target *creature.Instance) (bool, error) {
	if item != Potion && item != Revive {
		return false, fmt.Errorf("%s cannot be used on a creature", item)
	}
	if b.counts[item] == 0 {
		return false, fmt.Errorf("%s: %w", item, ErrNoneLeft)
	}

	var applied bool
	switch item {
	case Potion:
		applied = target.Heal(PotionHeal) > 0
	case Revive:
		applied = target.Revive()
	}
	if applied {
		b.counts[item]--
	}
	return applied, nil
}
