// Package world provides the tile-grid world the combat core is layered over:
// terrain, actors, occupancy, movement costs, and distance fields.
package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tallgrass/internal/game/roster"
)

// Terrain classifies a single map cell.
type Terrain int

const (
	Boulder Terrain = iota
	Tree
	Path
	Mart
	Center
	Grass
	Clearing
	Mountain
	Forest
	Water
	Gate
	terrainCount
)

// terrainGlyphs maps the map-file legend to terrain.
var terrainGlyphs = map[rune]Terrain{
	'%': Boulder,
	'^': Tree,
	'#': Path,
	'M': Mart,
	'C': Center,
	':': Grass,
	'.': Clearing,
	'A': Mountain,
	'F': Forest,
	'~': Water,
	'=': Gate,
}

// Glyph returns the character the terrain is drawn with.
func (t Terrain) Glyph() rune {
	switch t {
	case Boulder, Mountain:
		return '%'
	case Tree, Forest:
		return '^'
	case Path, Gate:
		return '#'
	case Mart:
		return 'M'
	case Center:
		return 'C'
	case Grass:
		return ':'
	case Clearing:
		return '.'
	case Water:
		return '~'
	default:
		return '0'
	}
}

// Pos is a cell coordinate; Y grows southward, X grows eastward.
type Pos struct {
	X int
	Y int
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos { return Pos{X: p.X + dx, Y: p.Y + dy} }

// ActorClass tags what kind of actor occupies a cell.
type ActorClass int

const (
	ClassPlayer ActorClass = iota
	ClassHiker
	ClassRival
	ClassSwimmer
	ClassPacer
	ClassWanderer
	ClassSentry
	ClassExplorer
	classCount
)

var classNames = [classCount]string{"PC", "Hiker", "Rival", "Swimmer", "Pacer", "Wanderer", "Sentry", "Explorer"}
var classSymbols = [classCount]rune{'@', 'h', 'r', 'm', 'p', 'w', 's', 'e'}

// String returns the class display name.
func (c ActorClass) String() string {
	if c < 0 || c >= classCount {
		return "Unknown"
	}
	return classNames[c]
}

// Symbol returns the map symbol for the class.
func (c ActorClass) Symbol() rune {
	if c < 0 || c >= classCount {
		return '?'
	}
	return classSymbols[c]
}

// ParseActorClass converts a class name, case-insensitively, into a non-player ActorClass.
func ParseActorClass(s string) (ActorClass, error) {
	for i, name := range classNames {
		if ActorClass(i) == ClassPlayer {
			continue
		}
		if strings.EqualFold(s, name) {
			return ActorClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown actor class %q", s)
}

// MoveMode is an actor's movement behaviour.
type MoveMode int

const (
	MovePlayer MoveMode = iota
	MoveSeek
	MoveSwim
	MovePace
	MoveWander
	MoveSentry
	MoveExplore
)

// DefaultMoveMode returns the movement behaviour a class starts with.
func DefaultMoveMode(c ActorClass) MoveMode {
	switch c {
	case ClassHiker, ClassRival:
		return MoveSeek
	case ClassSwimmer:
		return MoveSwim
	case ClassPacer:
		return MovePace
	case ClassWanderer:
		return MoveWander
	case ClassSentry:
		return MoveSentry
	case ClassExplorer:
		return MoveExplore
	default:
		return MovePlayer
	}
}

// Trainer is any actor on the map, the player included.
type Trainer struct {
	Pos      Pos
	Class    ActorClass
	Mode     MoveMode
	Defeated bool
	Roster   roster.Roster
}

// NewTrainer creates a trainer at pos with the class's default movement mode.
func NewTrainer(class ActorClass, pos Pos) *Trainer {
	return &Trainer{Pos: pos, Class: class, Mode: DefaultMoveMode(class)}
}

// Symbol returns the map symbol.
func (t *Trainer) Symbol() rune { return t.Class.Symbol() }

// OccupantKind discriminates Occupant.
type OccupantKind int

const (
	Vacant OccupantKind = iota
	PlayerOccupant
	NonPlayerOccupant
)

// Occupant is the tagged content of a cell: vacant, the player, or a
// non-player trainer. The tag is fixed when the occupancy map is built.
type Occupant struct {
	Kind    OccupantKind
	Trainer *Trainer
}

// IsPlayer reports whether the cell holds the player.
func (o Occupant) IsPlayer() bool { return o.Kind == PlayerOccupant }

// NonPlayer returns the non-player trainer in the cell, if any.
func (o Occupant) NonPlayer() (*Trainer, bool) {
	if o.Kind != NonPlayerOccupant {
		return nil, false
	}
	return o.Trainer, true
}

// Region is the index of the current map relative to the world origin.
type Region struct {
	X int
	Y int
}

// RegionalDistance returns the Manhattan distance of the region from the origin.
//
// Postcondition: result >= 0.
func (r Region) RegionalDistance() int { return abs(r.X) + abs(r.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
