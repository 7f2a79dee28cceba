package battle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/world"
	"github.com/cory-johannsen/tallgrass/internal/observability"
)

// Engagement is the read-only screen shown when the player walks into a
// trainer. No damage is exchanged; only q ends it.
type Engagement struct {
	trainer *world.Trainer
	player  *world.Trainer
	logger  *zap.Logger
	state   State
}

// BeginEngagement marks trainer defeated and opens the engagement screen.
// Hikers and rivals stop seeking the player and wander instead.
//
// Precondition: trainer and player must be non-nil.
// Postcondition: trainer.Defeated is true; the engagement is in Display.
func BeginEngagement(ctx context.Context, trainer, player *world.Trainer, logger *zap.Logger) *Engagement {
	_, span := observability.Tracer("battle").Start(ctx, "battle.engagement.begin")
	span.SetAttributes(
		attribute.String("trainer_class", trainer.Class.String()),
		attribute.Int("trainer_x", trainer.Pos.X),
		attribute.Int("trainer_y", trainer.Pos.Y),
	)
	span.End()

	trainer.Defeated = true
	if trainer.Class == world.ClassHiker || trainer.Class == world.ClassRival {
		trainer.Mode = world.MoveWander
	}
	logger.Info("trainer engaged",
		zap.Stringer("class", trainer.Class),
		zap.Int("x", trainer.Pos.X),
		zap.Int("y", trainer.Pos.Y),
	)
	return &Engagement{trainer: trainer, player: player, logger: logger, state: Display}
}

// State returns the current state.
func (e *Engagement) State() State { return e.state }

// Trainer returns the engaged trainer.
func (e *Engagement) Trainer() *world.Trainer { return e.trainer }

// Opening returns the first screen.
func (e *Engagement) Opening() Step {
	msgs := &Messages{}
	msgs.Add("%s %c wants to battle!", e.trainer.Class, e.trainer.Symbol())
	return Step{State: e.state, Messages: msgs, Screen: e.Screen()}
}

// Advance accepts only q, which ends the engagement.
//
// Postcondition: on error the state is unchanged.
func (e *Engagement) Advance(input string) (Step, error) {
	if e.state != Display || input != KeyQuit {
		return Step{State: e.state, Messages: &Messages{}, Screen: e.Screen()}, &StateError{State: e.state, Input: input}
	}
	e.state = Ended
	e.logger.Debug("engagement closed", zap.Stringer("class", e.trainer.Class))
	return Step{State: e.state, Messages: &Messages{}}, nil
}

// Screen renders the trainer's lead creature beside the player's active one.
func (e *Engagement) Screen() []string {
	if e.state == Ended {
		return nil
	}
	lines := sideBySide(
		statBlock(e.trainer.Class.String()+" Pokemon", e.trainer.Roster.Lead()),
		statBlock("PC pokemon", e.player.Roster.Active()),
	)
	return append(lines, "", "enter q to flee")
}
