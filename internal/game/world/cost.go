package world

import "math"

// Impassable marks a terrain a class cannot enter.
const Impassable = math.MaxInt

// moveCosts is indexed [cost class][terrain].
var moveCosts = [...][terrainCount]int{
	// boulder, tree, path, mart, center, grass, clearing, mountain, forest, water, gate
	costPlayer:  {Impassable, Impassable, 10, 10, 10, 20, 10, Impassable, Impassable, Impassable, 10},
	costHiker:   {Impassable, Impassable, 10, 50, 50, 15, 10, 15, 15, Impassable, Impassable},
	costRival:   {Impassable, Impassable, 10, 50, 50, 20, 10, Impassable, Impassable, Impassable, Impassable},
	costSwimmer: {Impassable, Impassable, Impassable, Impassable, Impassable, Impassable, Impassable, Impassable, Impassable, 7, Impassable},
	costOther:   {Impassable, Impassable, 10, 50, 50, 20, 10, Impassable, Impassable, Impassable, Impassable},
}

const (
	costPlayer = iota
	costHiker
	costRival
	costSwimmer
	costOther
)

func costClass(c ActorClass) int {
	switch c {
	case ClassPlayer:
		return costPlayer
	case ClassHiker:
		return costHiker
	case ClassRival:
		return costRival
	case ClassSwimmer:
		return costSwimmer
	default:
		return costOther
	}
}

// MoveCost returns the cost for class to enter terrain, or Impassable.
func MoveCost(class ActorClass, t Terrain) int {
	if t < 0 || t >= terrainCount {
		return Impassable
	}
	return moveCosts[costClass(class)][t]
}

// Passable reports whether class may enter p on m.
func (m *Map) Passable(class ActorClass, p Pos) bool {
	return m.InBounds(p) && MoveCost(class, m.TerrainAt(p)) != Impassable
}
