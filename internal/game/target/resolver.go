// Package target ranks and selects non-player trainers by their distance-field
// value and renders them for the trainer list and the status line.
package target

import (
	"slices"

	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

// Resolver orders trainers by a distance field toward the player.
type Resolver struct {
	field *world.DistanceField
}

// NewResolver creates a Resolver over field.
//
// Precondition: field must not be nil.
func NewResolver(field *world.DistanceField) *Resolver {
	return &Resolver{field: field}
}

// Distance returns the field value at the trainer's position.
func (r *Resolver) Distance(t *world.Trainer) int {
	return r.field.At(t.Pos)
}

// compare orders field values ascending with every unreachable value after
// every reachable one. Two unreachable values compare equal.
func compare(a, b int) int {
	switch {
	case a < 0 && b < 0:
		return 0
	case a < 0:
		return 1
	case b < 0:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Nearest returns the trainer with the smallest field value. On ties the
// earliest trainer in actors wins.
//
// Postcondition: returns nil iff actors is empty; otherwise equals Ranked(actors)[0].
func (r *Resolver) Nearest(actors []*world.Trainer) *world.Trainer {
	if len(actors) == 0 {
		return nil
	}
	best := actors[0]
	bestD := r.Distance(best)
	for _, t := range actors[1:] {
		if d := r.Distance(t); compare(d, bestD) < 0 {
			best, bestD = t, d
		}
	}
	return best
}

// Ranked returns a new slice holding actors sorted ascending by field value.
// The sort is stable, so actors given in row-major order keep that order on ties.
//
// Postcondition: len(result) == len(actors); actors is not modified.
func (r *Resolver) Ranked(actors []*world.Trainer) []*world.Trainer {
	out := slices.Clone(actors)
	slices.SortStableFunc(out, func(a, b *world.Trainer) int {
		return compare(r.Distance(a), r.Distance(b))
	})
	return out
}
