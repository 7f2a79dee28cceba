// Package encounter decides when a movement step through tall grass starts a
// wild battle.
package encounter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

// Trigger rolls for wild encounters.
type Trigger struct {
	factory *creature.Factory
	src     dice.Source
	logger  *zap.Logger
	opts    []battle.Option
}

// NewTrigger creates a Trigger that builds wild creatures with factory.
//
// Precondition: factory, src and logger must be non-nil.
func NewTrigger(factory *creature.Factory, src dice.Source, logger *zap.Logger, opts ...battle.Option) *Trigger {
	return &Trigger{factory: factory, src: src, logger: logger, opts: opts}
}

// Check reports whether a step of (dx, dy) toward dest starts an encounter:
// the step must move on at least one axis, dest must be tall grass, and a
// coin flip must come up. The coin is flipped on every call. dest is the
// attempted cell; occupancy and passability are not considered.
func (t *Trigger) Check(m *world.Map, dest world.Pos, dx, dy int) bool {
	coin := t.src.Intn(2) == 0
	moved := dx != 0 || dy != 0
	return moved && m.TerrainAt(dest) == world.Grass && coin
}

// Encounter runs Check and, when it fires, instantiates a wild creature scaled
// by the map's regional distance and begins the battle. It returns a nil
// battle when nothing fires or when the drawn species cannot be built.
//
// Postcondition: a non-nil error means the battle could not be started for a
// reason other than missing move data.
func (t *Trigger) Encounter(ctx context.Context, m *world.Map, dest world.Pos, dx, dy int, party *roster.Roster, bag *inventory.Bag) (*battle.Wild, error) {
	if !t.Check(m, dest, dx, dy) {
		return nil, nil
	}
	wild, err := t.factory.Instantiate(t.src, m.Region.RegionalDistance())
	if errors.Is(err, creature.ErrDataNotFound) {
		t.logger.Warn("skipping wild encounter", zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("instantiating wild creature: %w", err)
	}
	t.logger.Debug("wild encounter",
		zap.Int("x", dest.X),
		zap.Int("y", dest.Y),
		zap.String("species", wild.Name()),
		zap.Int("level", wild.Level()),
	)
	return battle.BeginWild(ctx, party, bag, wild, t.src, t.logger, t.opts...)
}
