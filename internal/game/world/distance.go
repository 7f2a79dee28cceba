package world

import "container/heap"

// Unreachable is the distance-field sentinel for cells that cannot be reached.
const Unreachable = -1

// DistanceField holds a per-cell travel cost toward an origin.
type DistanceField struct {
	width  int
	height int
	dist   []int
}

// NewDistanceField wraps precomputed rows. Negative values are unreachable.
func NewDistanceField(rows [][]int) *DistanceField {
	f := &DistanceField{height: len(rows)}
	if len(rows) > 0 {
		f.width = len(rows[0])
	}
	f.dist = make([]int, 0, f.width*f.height)
	for _, r := range rows {
		for x := 0; x < f.width; x++ {
			if x < len(r) {
				f.dist = append(f.dist, r[x])
			} else {
				f.dist = append(f.dist, Unreachable)
			}
		}
	}
	return f
}

// At returns the distance at p, or Unreachable off the field.
func (f *DistanceField) At(p Pos) int {
	if p.X < 0 || p.Y < 0 || p.X >= f.width || p.Y >= f.height {
		return Unreachable
	}
	return f.dist[p.Y*f.width+p.X]
}

// ComputeDistanceField runs Dijkstra from origin over m using class's movement
// costs. Entering a cell costs that cell's terrain cost; the origin costs 0.
// Occupancy is ignored.
//
// Postcondition: At(origin) == 0; impassable or cut-off cells are Unreachable.
func ComputeDistanceField(m *Map, class ActorClass, origin Pos) *DistanceField {
	f := &DistanceField{width: m.width, height: m.height, dist: make([]int, m.width*m.height)}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}
	if !m.InBounds(origin) {
		return f
	}

	pq := &cellQueue{{pos: origin, cost: 0}}
	f.dist[origin.Y*f.width+origin.X] = 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(cell)
		if cur.cost > f.dist[cur.pos.Y*f.width+cur.pos.X] {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := cur.pos.Add(dx, dy)
				if !m.Passable(class, next) {
					continue
				}
				cost := cur.cost + MoveCost(class, m.TerrainAt(next))
				idx := next.Y*f.width + next.X
				if f.dist[idx] == Unreachable || cost < f.dist[idx] {
					f.dist[idx] = cost
					heap.Push(pq, cell{pos: next, cost: cost})
				}
			}
		}
	}
	return f
}

type cell struct {
	pos  Pos
	cost int
}

type cellQueue []cell

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(cell)) }
func (q *cellQueue) Pop() any {
	old := *q
	c := old[len(old)-1]
	*q = old[:len(old)-1]
	return c
}
