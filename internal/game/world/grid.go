package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for a position outside the map.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrOccupied is returned when placing an actor on an occupied cell.
	ErrOccupied = errors.New("cell occupied")
)

// Map is one region's terrain grid plus its occupancy map.
//
// Invariant: every trainer's Pos names the cell that holds it.
type Map struct {
	Name   string
	Region Region

	width   int
	height  int
	terrain [][]Terrain
	cells   [][]Occupant
	player  *Trainer
}

// NewMap builds a map from terrain rows. All rows must be the same width.
//
// Postcondition: Returns an empty occupancy map or an error.
func NewMap(name string, region Region, terrain [][]Terrain) (*Map, error) {
	if len(terrain) == 0 || len(terrain[0]) == 0 {
		return nil, fmt.Errorf("map %q: terrain must not be empty", name)
	}
	w := len(terrain[0])
	cells := make([][]Occupant, len(terrain))
	for y, row := range terrain {
		if len(row) != w {
			return nil, fmt.Errorf("map %q: row %d has width %d, want %d", name, y, len(row), w)
		}
		cells[y] = make([]Occupant, w)
	}
	return &Map{
		Name:    name,
		Region:  region,
		width:   w,
		height:  len(terrain),
		terrain: terrain,
		cells:   cells,
	}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether p lies on the map.
func (m *Map) InBounds(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// TerrainAt returns the terrain at p. Cells off the map read as Boulder.
func (m *Map) TerrainAt(p Pos) Terrain {
	if !m.InBounds(p) {
		return Boulder
	}
	return m.terrain[p.Y][p.X]
}

// At returns the occupant of p. Cells off the map read as vacant.
func (m *Map) At(p Pos) Occupant {
	if !m.InBounds(p) {
		return Occupant{}
	}
	return m.cells[p.Y][p.X]
}

// Player returns the player's trainer, or nil before PlacePlayer.
func (m *Map) Player() *Trainer { return m.player }

// PlacePlayer puts the player on the map.
//
// Precondition: t.Class == ClassPlayer.
func (m *Map) PlacePlayer(t *Trainer) error {
	if err := m.place(t, PlayerOccupant); err != nil {
		return err
	}
	m.player = t
	return nil
}

// PlaceTrainer puts a non-player trainer on the map.
func (m *Map) PlaceTrainer(t *Trainer) error {
	return m.place(t, NonPlayerOccupant)
}

func (m *Map) place(t *Trainer, kind OccupantKind) error {
	if !m.InBounds(t.Pos) {
		return fmt.Errorf("placing %s at %v: %w", t.Class, t.Pos, ErrOutOfBounds)
	}
	if m.cells[t.Pos.Y][t.Pos.X].Kind != Vacant {
		return fmt.Errorf("placing %s at %v: %w", t.Class, t.Pos, ErrOccupied)
	}
	m.cells[t.Pos.Y][t.Pos.X] = Occupant{Kind: kind, Trainer: t}
	return nil
}

// Move relocates the trainer at from to the vacant cell to.
//
// Postcondition: on error nothing changes.
func (m *Map) Move(from, to Pos) error {
	if !m.InBounds(from) || !m.InBounds(to) {
		return fmt.Errorf("moving %v to %v: %w", from, to, ErrOutOfBounds)
	}
	occ := m.cells[from.Y][from.X]
	if occ.Kind == Vacant {
		return fmt.Errorf("moving %v: no actor there", from)
	}
	if from == to {
		return nil
	}
	if m.cells[to.Y][to.X].Kind != Vacant {
		return fmt.Errorf("moving %v to %v: %w", from, to, ErrOccupied)
	}
	m.cells[to.Y][to.X] = occ
	m.cells[from.Y][from.X] = Occupant{}
	occ.Trainer.Pos = to
	return nil
}

// NonPlayers returns every non-player trainer in row-major scan order.
func (m *Map) NonPlayers() []*Trainer {
	var out []*Trainer
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if t, ok := m.cells[y][x].NonPlayer(); ok {
				out = append(out, t)
			}
		}
	}
	return out
}
