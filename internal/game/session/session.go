// Package session holds the explicit game context: the current map, the
// player, the bag and the shared random source. Every game operation goes
// through a Session rather than package-level state.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/encounter"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
	"github.com/cory-johannsen/tallgrass/internal/game/target"
	"github.com/cory-johannsen/tallgrass/internal/game/world"
	"github.com/cory-johannsen/tallgrass/internal/observability"
)

// Greeting strings shown when entering buildings.
const (
	MartGreeting   = "Welcome to the Pokemart.  Could I interest you in some Pokeballs?"
	CenterGreeting = "Welcome to the Pokemon Center.  How can Nurse Joy assist you?"
)

// Session is one player's game.
//
// Invariant: Player is the map's player and the distance field is measured
// from Player.Pos.
type Session struct {
	Map    *world.Map
	Player *world.Trainer
	Bag    *inventory.Bag

	factory *creature.Factory
	trigger *encounter.Trigger
	src     dice.Source
	logger  *zap.Logger
	field   *world.DistanceField
}

// New creates a Session over m. Battle options are passed to every wild battle.
//
// Precondition: m must have a player placed; bag, factory, src and logger must be non-nil.
func New(m *world.Map, bag *inventory.Bag, factory *creature.Factory, src dice.Source, logger *zap.Logger, opts ...battle.Option) (*Session, error) {
	if m.Player() == nil {
		return nil, errors.New("creating session: map has no player")
	}
	s := &Session{
		Map:     m,
		Player:  m.Player(),
		Bag:     bag,
		factory: factory,
		trigger: encounter.NewTrigger(factory, src, logger, opts...),
		src:     src,
		logger:  logger,
	}
	s.refreshField()
	return s, nil
}

// refreshField recomputes the distance field from the player's position.
// Rival costs approximate how far the player must walk to each trainer.
func (s *Session) refreshField() {
	s.field = world.ComputeDistanceField(s.Map, world.ClassRival, s.Player.Pos)
}

// PopulateTrainers fills every non-player trainer's roster.
//
// Postcondition: on success every trainer has at least one creature.
func (s *Session) PopulateTrainers() error {
	dist := s.Map.Region.RegionalDistance()
	for _, t := range s.Map.NonPlayers() {
		r, err := roster.Populate(s.factory, s.src, dist)
		if err != nil {
			return fmt.Errorf("populating %s at %v: %w", t.Class, t.Pos, err)
		}
		t.Roster = *r
		s.logger.Debug("trainer populated",
			zap.Stringer("class", t.Class),
			zap.Int("x", t.Pos.X),
			zap.Int("y", t.Pos.Y),
			zap.Int("pokemon", r.Filled()),
		)
	}
	return nil
}

// Starters draws the starter candidates.
func (s *Session) Starters() ([roster.StarterCount]*creature.Instance, error) {
	return roster.Starters(s.factory, s.src, s.Map.Region.RegionalDistance())
}

// ChooseStarter gives the player candidates[choice].
func (s *Session) ChooseStarter(candidates [roster.StarterCount]*creature.Instance, choice int) error {
	if err := s.Player.Roster.ChooseStarter(candidates, choice); err != nil {
		return err
	}
	s.logger.Info("starter chosen", zap.String("species", candidates[choice].Name()))
	return nil
}

// Outcome reports what a movement step did. A step can both start a wild
// battle and bump into a trainer; the presentation layer runs Wild first.
type Outcome struct {
	Moved      bool
	Wild       *battle.Wild
	Engagement *battle.Engagement
	Messages   *battle.Messages
}

// Step attempts to move the player by (dx, dy). In order it rolls for a wild
// encounter on the attempted cell, handles bumping into a trainer, checks
// passability and finally moves.
//
// Postcondition: Moved is true iff the player now stands on the destination.
func (s *Session) Step(ctx context.Context, dx, dy int) (Outcome, error) {
	ctx, span := observability.Tracer("session").Start(ctx, "session.step")
	defer span.End()

	from := s.Player.Pos
	dest := from.Add(dx, dy)
	span.SetAttributes(
		attribute.Int("from_x", from.X),
		attribute.Int("from_y", from.Y),
		attribute.Int("dx", dx),
		attribute.Int("dy", dy),
	)

	out := Outcome{Messages: &battle.Messages{}}
	wild, err := s.trigger.Encounter(ctx, s.Map, dest, dx, dy, &s.Player.Roster, s.Bag)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, fmt.Errorf("step to %v: %w", dest, err)
	}
	out.Wild = wild
	span.SetAttributes(attribute.Bool("encounter", wild != nil))

	if t, ok := s.Map.At(dest).NonPlayer(); ok {
		if t.Defeated {
			out.Messages.Add("The %s has already been beaten.", t.Class)
			return out, nil
		}
		out.Engagement = battle.BeginEngagement(ctx, t, s.Player, s.logger)
		return out, nil
	}

	if (dx == 0 && dy == 0) || !s.Map.Passable(world.ClassPlayer, dest) {
		return out, nil
	}
	if err := s.Map.Move(from, dest); err != nil {
		return out, fmt.Errorf("step to %v: %w", dest, err)
	}
	s.refreshField()
	out.Moved = true
	return out, nil
}

// Enter greets the player when standing on a Pokemart or Pokemon Center.
func (s *Session) Enter() *battle.Messages {
	msgs := &battle.Messages{}
	switch s.Map.TerrainAt(s.Player.Pos) {
	case world.Mart:
		msgs.Add(MartGreeting)
	case world.Center:
		msgs.Add(CenterGreeting)
	}
	return msgs
}

// Resolver returns a target resolver over the current distance field.
func (s *Session) Resolver() *target.Resolver {
	return target.NewResolver(s.field)
}

// Nearest returns the nearest trainer, or nil when none are on the map.
func (s *Session) Nearest() *world.Trainer {
	return s.Resolver().Nearest(s.Map.NonPlayers())
}

// StatusLine summarises the nearest trainer for the map screen.
func (s *Session) StatusLine() string {
	return target.Summary(s.Nearest(), s.Player.Pos)
}

// Listing builds the ranked, scrollable trainer list.
func (s *Session) Listing() *target.Listing {
	return target.NewListing(s.Resolver().Ranked(s.Map.NonPlayers()), s.Player.Pos)
}
