// Package creature builds and mutates creature instances.
package creature

import (
	"github.com/google/uuid"
)

// MoveSlots is the number of combat moves every creature carries.
const MoveSlots = 2

// Gender is the binary gender rolled at creation.
type Gender int

const (
	// Male is rolled when the gender draw is 0.
	Male Gender = iota
	// Female is rolled when the gender draw is 1.
	Female
)

// String returns "Male" or "Female".
func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// Stats are the six derived stat values of an instance.
type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// MoveSlot is a value copy of a move table row taken at creation time.
type MoveSlot struct {
	Name     string
	Priority int
	Accuracy int
	Power    int
}

// Spec describes an instance to build directly, bypassing the factory.
type Spec struct {
	SpeciesID int
	Name      string
	Level     int
	Gender    Gender
	Stats     Stats
	Moves     [MoveSlots]MoveSlot
}

// Instance is one live creature.
//
// Invariant: 0 <= CurrentHP() <= MaxHP(); Level() >= 1; move slots never change.
type Instance struct {
	id        uuid.UUID
	speciesID int
	name      string
	level     int
	gender    Gender
	stats     Stats
	currentHP int
	moves     [MoveSlots]MoveSlot
}

// New builds an instance at full health from spec.
//
// Postcondition: Level() >= 1, MaxHP() >= 0, CurrentHP() == MaxHP().
func New(spec Spec) *Instance {
	level := max(spec.Level, 1)
	stats := spec.Stats
	stats.HP = max(stats.HP, 0)
	return &Instance{
		id:        uuid.New(),
		speciesID: spec.SpeciesID,
		name:      spec.Name,
		level:     level,
		gender:    spec.Gender,
		stats:     stats,
		currentHP: stats.HP,
		moves:     spec.Moves,
	}
}

// ID returns the identifier assigned at creation.
func (c *Instance) ID() uuid.UUID { return c.id }

// SpeciesID returns the pokedex id the instance was built from.
func (c *Instance) SpeciesID() int { return c.speciesID }

// Name returns the species name.
func (c *Instance) Name() string { return c.name }

// Level returns the level, always in [1, 100].
func (c *Instance) Level() int { return c.level }

// Gender returns the gender rolled at creation.
func (c *Instance) Gender() Gender { return c.gender }

// Stats returns the derived stats; HP is the max hp.
func (c *Instance) Stats() Stats { return c.stats }

// MaxHP returns the hp ceiling.
func (c *Instance) MaxHP() int { return c.stats.HP }

// CurrentHP returns the remaining hp, in [0, MaxHP].
func (c *Instance) CurrentHP() int { return c.currentHP }

// Fainted reports whether CurrentHP is zero.
func (c *Instance) Fainted() bool { return c.currentHP == 0 }

// Move returns move slot i.
//
// Precondition: 0 <= i < MoveSlots.
func (c *Instance) Move(i int) MoveSlot { return c.moves[i] }

// Moves returns a copy of both move slots.
func (c *Instance) Moves() [MoveSlots]MoveSlot { return c.moves }

// ApplyDamage reduces CurrentHP by amount, flooring at zero, and returns the
// hp actually lost.
//
// Precondition: amount >= 0.
// Postcondition: CurrentHP() >= 0.
func (c *Instance) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	lost := min(amount, c.currentHP)
	c.currentHP -= lost
	return lost
}

// Heal raises CurrentHP by amount, capped at MaxHP, and returns the hp restored.
//
// Postcondition: CurrentHP() <= MaxHP().
func (c *Instance) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	gained := min(amount, c.stats.HP-c.currentHP)
	c.currentHP += gained
	return gained
}

// Revive sets CurrentHP to floor(MaxHP/2) when the creature has fainted.
// It reports whether it had any effect.
//
// Postcondition: if the creature was not fainted, nothing changes.
func (c *Instance) Revive() bool {
	if c.currentHP != 0 {
		return false
	}
	c.currentHP = c.stats.HP / 2
	return true
}
