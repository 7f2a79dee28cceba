// Package pokedex holds the static species, move, and species-move tables.
//
// Tables are loaded once at startup (from YAML or PostgreSQL) and never
// mutated afterwards.
package pokedex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable is returned when a required table has no rows.
var ErrEmptyTable = errors.New("pokedex table is empty")

// BaseStats are the six base stat values of a species.
type BaseStats struct {
	HP             int `yaml:"hp"`
	Attack         int `yaml:"attack"`
	Defense        int `yaml:"defense"`
	SpecialAttack  int `yaml:"special_attack"`
	SpecialDefense int `yaml:"special_defense"`
	Speed          int `yaml:"speed"`
}

// Species is one row of the species table.
type Species struct {
	ID    int       `yaml:"id"`
	Name  string    `yaml:"name"`
	Stats BaseStats `yaml:"stats"`
}

// Move is one row of the move table.
type Move struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
	// Accuracy is a percentage in [0, 100].
	Accuracy int `yaml:"accuracy"`
	Power    int `yaml:"power"`
}

// Link maps a species to one of its moves. Row order is significant.
type Link struct {
	SpeciesID int `yaml:"species_id"`
	MoveID    int `yaml:"move_id"`
}

// Pokedex is the immutable, indexed set of static tables.
type Pokedex struct {
	species     []Species
	moves       []Move
	links       []Link
	speciesByID map[int]int
	moveByID    map[int]int
}

// New validates the tables and builds their id indexes. The slices are copied.
//
// Postcondition: Returns a ready Pokedex, or an error naming every violation.
// An empty species or move table wraps ErrEmptyTable.
func New(species []Species, moves []Move, links []Link) (*Pokedex, error) {
	p := &Pokedex{
		species:     append([]Species(nil), species...),
		moves:       append([]Move(nil), moves...),
		links:       append([]Link(nil), links...),
		speciesByID: make(map[int]int, len(species)),
		moveByID:    make(map[int]int, len(moves)),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pokedex) validate() error {
	if len(p.species) == 0 {
		return fmt.Errorf("species: %w", ErrEmptyTable)
	}
	if len(p.moves) == 0 {
		return fmt.Errorf("moves: %w", ErrEmptyTable)
	}

	var errs []string
	for i, s := range p.species {
		if _, dup := p.speciesByID[s.ID]; dup {
			errs = append(errs, fmt.Sprintf("species %d: duplicate id", s.ID))
			continue
		}
		p.speciesByID[s.ID] = i
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("species %d: name must not be empty", s.ID))
		}
		st := s.Stats
		if st.HP < 1 || st.Attack < 0 || st.Defense < 0 || st.SpecialAttack < 0 ||
			st.SpecialDefense < 0 || st.Speed < 0 {
			errs = append(errs, fmt.Sprintf("species %d: base stats must be non-negative and hp >= 1", s.ID))
		}
	}
	for i, m := range p.moves {
		if _, dup := p.moveByID[m.ID]; dup {
			errs = append(errs, fmt.Sprintf("move %d: duplicate id", m.ID))
			continue
		}
		p.moveByID[m.ID] = i
		if m.Name == "" {
			errs = append(errs, fmt.Sprintf("move %d: name must not be empty", m.ID))
		}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			errs = append(errs, fmt.Sprintf("move %d: accuracy must be 0-100, got %d", m.ID, m.Accuracy))
		}
		if m.Power < 0 {
			errs = append(errs, fmt.Sprintf("move %d: power must be >= 0, got %d", m.ID, m.Power))
		}
	}
	for i, l := range p.links {
		if _, ok := p.speciesByID[l.SpeciesID]; !ok {
			errs = append(errs, fmt.Sprintf("link %d: unknown species %d", i, l.SpeciesID))
		}
		if _, ok := p.moveByID[l.MoveID]; !ok {
			errs = append(errs, fmt.Sprintf("link %d: unknown move %d", i, l.MoveID))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("pokedex validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SpeciesCount returns the number of rows in the species table.
func (p *Pokedex) SpeciesCount() int { return len(p.species) }

// SpeciesAt returns the species at table index i.
//
// Precondition: 0 <= i < SpeciesCount().
func (p *Pokedex) SpeciesAt(i int) Species { return p.species[i] }

// Species looks up a species by id.
func (p *Pokedex) Species(id int) (Species, bool) {
	i, ok := p.speciesByID[id]
	if !ok {
		return Species{}, false
	}
	return p.species[i], true
}

// Move looks up a move by id.
func (p *Pokedex) Move(id int) (Move, bool) {
	i, ok := p.moveByID[id]
	if !ok {
		return Move{}, false
	}
	return p.moves[i], true
}

// LinkedMoves scans the link table in order and returns at most limit moves
// linked to speciesID.
//
// Postcondition: len(result) <= limit; order follows the link table.
func (p *Pokedex) LinkedMoves(speciesID, limit int) []Move {
	var out []Move
	for _, l := range p.links {
		if len(out) >= limit {
			break
		}
		if l.SpeciesID != speciesID {
			continue
		}
		if m, ok := p.Move(l.MoveID); ok {
			out = append(out, m)
		}
	}
	return out
}

// AllSpecies returns a copy of the species table in table order.
func (p *Pokedex) AllSpecies() []Species { return append([]Species(nil), p.species...) }

// AllMoves returns a copy of the move table in table order.
func (p *Pokedex) AllMoves() []Move { return append([]Move(nil), p.moves...) }

// AllLinks returns a copy of the link table in table order.
func (p *Pokedex) AllLinks() []Link { return append([]Link(nil), p.links...) }
