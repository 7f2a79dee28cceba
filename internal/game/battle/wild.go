package battle

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
	"github.com/cory-johannsen/tallgrass/internal/observability"
)

// runOdds is the denominator of the chance to escape; one draw in runOdds succeeds.
const runOdds = 7

// CaptureHook receives the wild creature when a pokeball is thrown. Capture is
// not resolved by the battle itself.
type CaptureHook func(wild *creature.Instance, bag *inventory.Bag)

// Option configures a Wild battle.
type Option func(*Wild)

// WithCaptureHook installs h as the pokeball handler.
func WithCaptureHook(h CaptureHook) Option {
	return func(w *Wild) {
		if h != nil {
			w.capture = h
		}
	}
}

// Wild is a battle against one wild creature.
//
// Invariant: the player side always fights with party.Active().
type Wild struct {
	party    *roster.Roster
	bag      *inventory.Bag
	opponent *creature.Instance
	src      dice.Source
	logger   *zap.Logger
	capture  CaptureHook
	state    State
	turns    int
}

// BeginWild opens a wild battle between the player's party and opponent.
//
// Precondition: party.Active() and opponent must be non-nil; bag, src and logger must be non-nil.
// Postcondition: the battle starts in MenuSelect.
func BeginWild(ctx context.Context, party *roster.Roster, bag *inventory.Bag, opponent *creature.Instance, src dice.Source, logger *zap.Logger, opts ...Option) (*Wild, error) {
	if party == nil || party.Active() == nil {
		return nil, errors.New("beginning wild battle: player has no active pokemon")
	}
	if opponent == nil {
		return nil, errors.New("beginning wild battle: opponent must not be nil")
	}

	_, span := observability.Tracer("battle").Start(ctx, "battle.wild.begin")
	span.SetAttributes(
		attribute.String("opponent", opponent.Name()),
		attribute.Int("opponent_level", opponent.Level()),
		attribute.Int("party_size", party.Filled()),
	)
	span.End()

	w := &Wild{
		party:    party,
		bag:      bag,
		opponent: opponent,
		src:      src,
		logger:   logger,
		capture:  func(*creature.Instance, *inventory.Bag) {},
		state:    MenuSelect,
	}
	for _, opt := range opts {
		opt(w)
	}
	logger.Info("wild battle started",
		zap.String("opponent", opponent.Name()),
		zap.Stringer("opponent_id", opponent.ID()),
		zap.Int("level", opponent.Level()),
		zap.String("active", party.Active().Name()),
	)
	return w, nil
}

// State returns the current state.
func (w *Wild) State() State { return w.state }

// Opponent returns the wild creature.
func (w *Wild) Opponent() *creature.Instance { return w.opponent }

// Turns returns how many turn-consuming actions the player has taken.
func (w *Wild) Turns() int { return w.turns }

// Opening returns the first screen with the appearance message.
func (w *Wild) Opening() Step {
	msgs := &Messages{}
	msgs.Add("A wild %s appeared!", w.opponent.Name())
	return w.step(msgs)
}

// Advance applies one key to the battle.
//
// Postcondition: on error the battle state is unchanged.
func (w *Wild) Advance(input string) (Step, error) {
	msgs := &Messages{}
	var err error
	switch w.state {
	case MenuSelect:
		err = w.menu(input, msgs)
	case ChooseMove:
		err = w.chooseMove(input, msgs)
	case ChooseItem:
		err = w.chooseItem(input, msgs)
	case ChooseSlot:
		err = w.chooseSlot(input, msgs)
	default:
		err = &StateError{State: w.state, Input: input, Reason: "battle is over"}
	}
	if err != nil {
		w.logger.Debug("battle input rejected", zap.String("input", input), zap.Stringer("state", w.state), zap.Error(err))
		return w.step(nil), err
	}
	return w.step(msgs), nil
}

func (w *Wild) menu(input string, msgs *Messages) error {
	switch input {
	case "1":
		if active := w.party.Active(); active.Fainted() {
			msgs.Add("%s has fainted and cannot fight!", active.Name())
			return nil
		}
		w.state = ChooseMove
	case "2":
		w.state = ChooseItem
	case "3":
		if dice.Chance(w.src, runOdds) {
			msgs.Add("Got away safely!")
			w.end("run")
			return nil
		}
		msgs.Add("Couldn't get away!")
	case "4":
		w.state = ChooseSlot
	case KeyQuit:
		msgs.Add("You left the battle.")
		w.end("quit")
	default:
		return &StateError{State: w.state, Input: input}
	}
	return nil
}

func (w *Wild) chooseMove(input string, msgs *Messages) error {
	var slot int
	switch input {
	case "a":
		slot = 0
	case "b":
		slot = 1
	case KeyEscape:
		w.state = MenuSelect
		return nil
	default:
		return &StateError{State: w.state, Input: input}
	}
	w.strike(w.party.Active(), w.opponent, slot, msgs)
	w.opponentTurn(msgs)
	return nil
}

func (w *Wild) chooseItem(input string, msgs *Messages) error {
	var item inventory.Item
	switch input {
	case "a":
		item = inventory.Potion
	case "b":
		item = inventory.Revive
	case "c":
		n := w.bag.Count(inventory.Pokeball)
		msgs.Add("You have %d pokeballs.", n)
		w.capture(w.opponent, w.bag)
		w.opponentTurn(msgs)
		return nil
	case KeyEscape:
		w.state = MenuSelect
		return nil
	default:
		return &StateError{State: w.state, Input: input}
	}

	active := w.party.Active()
	applied, err := w.bag.UseOn(item, active)
	if errors.Is(err, inventory.ErrNoneLeft) {
		msgs.Add("You have no %ss left.", item)
		return nil
	}
	if err != nil {
		return &StateError{State: w.state, Input: input, Reason: err.Error()}
	}
	if applied {
		msgs.Add("Used a %s on %s. HP %d/%d.", item, active.Name(), active.CurrentHP(), active.MaxHP())
	} else {
		msgs.Add("The %s had no effect on %s.", item, active.Name())
	}
	w.opponentTurn(msgs)
	return nil
}

func (w *Wild) chooseSlot(input string, msgs *Messages) error {
	if input == KeyEscape {
		w.state = MenuSelect
		return nil
	}
	if len(input) != 1 || input[0] < '0' || input[0] > '5' {
		return &StateError{State: w.state, Input: input}
	}
	if err := w.party.SetActive(int(input[0] - '0')); err != nil {
		return &StateError{State: w.state, Input: input, Reason: err.Error()}
	}
	msgs.Add("Go, %s!", w.party.Active().Name())
	w.opponentTurn(msgs)
	return nil
}

// strike narrates attacker using move slot on defender.
func (w *Wild) strike(attacker, defender *creature.Instance, slot int, msgs *Messages) {
	out := Strike(attacker, defender, slot, w.src)
	msgs.Add("%s used %s!", attacker.Name(), out.Move.Name)
	if !out.Hit {
		msgs.Add("%s's attack missed!", attacker.Name())
	} else {
		msgs.Add("It dealt %d damage to %s.", out.Dealt, defender.Name())
		if out.Dealt > 0 && defender.Fainted() {
			msgs.Add("%s fainted!", defender.Name())
		}
	}
	w.logger.Debug("move resolved",
		zap.String("attacker", attacker.Name()),
		zap.String("move", out.Move.Name),
		zap.Bool("hit", out.Hit),
		zap.Int("damage", out.Damage),
		zap.Int("dealt", out.Dealt),
		zap.Int("defender_hp", defender.CurrentHP()),
	)
}

// opponentTurn closes a turn-consuming action: the wild creature picks one
// of its two moves at random, then the menu is shown again.
// Postcondition: the wild creature strikes even at 0 hp.
func (w *Wild) opponentTurn(msgs *Messages) {
	w.turns++
	w.state = MenuSelect
	w.strike(w.opponent, w.party.Active(), w.src.Intn(creature.MoveSlots), msgs)
}

func (w *Wild) end(reason string) {
	w.state = Ended
	w.logger.Info("wild battle ended",
		zap.String("reason", reason),
		zap.String("opponent", w.opponent.Name()),
		zap.Int("turns", w.turns),
	)
}

func (w *Wild) step(msgs *Messages) Step {
	if msgs == nil {
		msgs = &Messages{}
	}
	return Step{State: w.state, Messages: msgs, Screen: w.Screen()}
}

// Screen renders the current state.
func (w *Wild) Screen() []string {
	if w.state == Ended {
		return nil
	}
	active := w.party.Active()
	lines := sideBySide(statBlock("Wild Pokemon", w.opponent), statBlock("PC pokemon", active))
	lines = append(lines, "")
	switch w.state {
	case MenuSelect:
		lines = append(lines, menuLines()...)
	case ChooseMove:
		lines = append(lines, moveLines(active)...)
	case ChooseItem:
		lines = append(lines, itemLines(w.bag)...)
	case ChooseSlot:
		lines = append(lines, slotLines(w.party)...)
	}
	return lines
}

// String implements fmt.Stringer for logging.
func (w *Wild) String() string {
	return fmt.Sprintf("wild battle vs %s (%s, turn %d)", w.opponent.Name(), w.state, w.turns)
}
