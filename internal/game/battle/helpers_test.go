package battle_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
)

// scripted replays Intn results in order and fails the test when a draw is
// out of range or the script runs out.
type scripted struct {
	t    testing.TB
	vals []int
}

func script(t testing.TB, vals ...int) *scripted { return &scripted{t: t, vals: vals} }

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.vals, "unexpected Intn(%d): script exhausted", n)
	v := s.vals[0]
	s.vals = s.vals[1:]
	require.Less(s.t, v, n, "scripted value out of range for Intn(%d)", n)
	return v
}

func (s *scripted) push(vals ...int) { s.vals = append(s.vals, vals...) }

func (s *scripted) drained(t *testing.T) {
	t.Helper()
	require.Empty(t, s.vals, "script not fully consumed")
}

func mon(name string, level, hp, atk, def int, moves ...creature.MoveSlot) *creature.Instance {
	spec := creature.Spec{
		Name:  name,
		Level: level,
		Stats: creature.Stats{HP: hp, Attack: atk, Defense: def},
	}
	copy(spec.Moves[:], moves)
	return creature.New(spec)
}

var (
	tackle = creature.MoveSlot{Name: "tackle", Accuracy: 100, Power: 40}
	growl  = creature.MoveSlot{Name: "growl", Accuracy: 100, Power: 0}
	swift  = creature.MoveSlot{Name: "swift", Accuracy: 100, Power: 60}
)

type fixture struct {
	party    *roster.Roster
	bag      *inventory.Bag
	player   *creature.Instance
	opponent *creature.Instance
	src      *scripted
	wild     *battle.Wild
}

// newFixture starts a battle between a level 10 player creature and a
// level 5 wild creature. Both use attack 50 and defense 50.
func newFixture(t *testing.T, opts ...battle.Option) *fixture {
	t.Helper()
	f := &fixture{
		party:    &roster.Roster{},
		bag:      inventory.NewBag(2, 1, 3),
		player:   mon("Bulbasaur", 10, 100, 50, 50, tackle, swift),
		opponent: mon("Rattata", 5, 60, 50, 50, tackle, growl),
		src:      script(t),
	}
	require.NoError(t, f.party.Set(0, f.player))
	w, err := battle.BeginWild(t.Context(), f.party, f.bag, f.opponent, f.src, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	f.wild = w
	return f
}

func (f *fixture) advance(t *testing.T, inputs ...string) battle.Step {
	t.Helper()
	var st battle.Step
	for _, in := range inputs {
		var err error
		st, err = f.wild.Advance(in)
		require.NoError(t, err, "input %q", in)
	}
	return st
}
