package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
	"github.com/cory-johannsen/tallgrass/internal/game/session"
	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

const townYAML = `
map:
  name: town
  region: {x: 1, y: -2}
  rows:
    - "%%%%%%%"
    - "%.:..M%"
    - "%.::.C%"
    - "%..A.#%"
    - "%%%%%%%"
  player: {x: 1, y: 1}
  trainers:
    - {class: rival, x: 4, y: 1}
    - {class: hiker, x: 3, y: 3}
`

// scriptThen replays vals, then falls through to rest.
type scriptThen struct {
	vals []int
	rest dice.Source
}

func (s *scriptThen) Intn(n int) int {
	if len(s.vals) > 0 {
		v := s.vals[0]
		s.vals = s.vals[1:]
		return v % n
	}
	return s.rest.Intn(n)
}

func newSession(t *testing.T, vals ...int) (*session.Session, *scriptThen) {
	t.Helper()
	m, err := world.LoadMapFromBytes([]byte(townYAML))
	require.NoError(t, err)

	dex, err := pokedex.New(
		[]pokedex.Species{
			{ID: 1, Name: "bulbasaur", Stats: pokedex.BaseStats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45}},
			{ID: 4, Name: "charmander", Stats: pokedex.BaseStats{HP: 39, Attack: 52, Defense: 43, SpecialAttack: 60, SpecialDefense: 50, Speed: 65}},
		},
		[]pokedex.Move{
			{ID: 33, Name: "tackle", Accuracy: 100, Power: 40},
			{ID: 45, Name: "growl", Accuracy: 100, Power: 0},
			{ID: 10, Name: "scratch", Accuracy: 100, Power: 40},
		},
		[]pokedex.Link{
			{SpeciesID: 1, MoveID: 33}, {SpeciesID: 1, MoveID: 45},
			{SpeciesID: 4, MoveID: 10}, {SpeciesID: 4, MoveID: 45},
		},
	)
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	f, err := creature.NewFactory(dex, creature.FallbackReject, logger)
	require.NoError(t, err)

	src := &scriptThen{vals: vals, rest: dice.NewSeededSource(99)}
	s, err := session.New(m, inventory.NewBag(1, 1, 1), f, src, logger)
	require.NoError(t, err)

	cands, err := s.Starters()
	require.NoError(t, err)
	require.NoError(t, s.ChooseStarter(cands, 0))
	return s, src
}

func TestStep_MovesOntoClearing(t *testing.T) {
	s, src := newSession(t)
	src.vals = []int{0}

	out, err := s.Step(t.Context(), 0, 1)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Nil(t, out.Wild, "clearing never triggers an encounter")
	assert.Nil(t, out.Engagement)
	assert.Equal(t, world.Pos{X: 1, Y: 2}, s.Player.Pos)
	assert.True(t, s.Map.At(world.Pos{X: 1, Y: 2}).IsPlayer())
}

func TestStep_GrassEncounter(t *testing.T) {
	s, src := newSession(t)
	src.vals = []int{0}

	out, err := s.Step(t.Context(), 1, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Wild)
	assert.Equal(t, battle.MenuSelect, out.Wild.State())
	assert.True(t, out.Moved, "the player still steps into the grass")
	assert.Equal(t, world.Pos{X: 2, Y: 1}, s.Player.Pos)
	lvl := out.Wild.Opponent().Level()
	assert.True(t, lvl >= 1 && lvl <= 2, "regional distance 3 gives a level range of 2, got %d", lvl)
}

func TestStep_GrassNoEncounterOnTails(t *testing.T) {
	s, src := newSession(t)
	src.vals = []int{1}
	out, err := s.Step(t.Context(), 1, 0)
	require.NoError(t, err)
	assert.Nil(t, out.Wild)
	assert.True(t, out.Moved)
}

func TestStep_BlockedByBoulder(t *testing.T) {
	s, src := newSession(t)
	src.vals = []int{0}
	out, err := s.Step(t.Context(), -1, 0)
	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Equal(t, world.Pos{X: 1, Y: 1}, s.Player.Pos)
	assert.Empty(t, src.vals, "the coin is flipped even for a blocked step")
}

func TestStep_StandingStill(t *testing.T) {
	s, src := newSession(t)
	src.vals = []int{0}
	out, err := s.Step(t.Context(), 0, 0)
	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Nil(t, out.Wild)
	assert.Empty(t, src.vals)
}

func TestStep_EngagesTrainerOnce(t *testing.T) {
	s, src := newSession(t)
	require.NoError(t, s.PopulateTrainers())
	require.NoError(t, s.Map.Move(s.Player.Pos, world.Pos{X: 3, Y: 1}))
	rival, ok := s.Map.At(world.Pos{X: 4, Y: 1}).NonPlayer()
	require.True(t, ok)

	src.vals = []int{1}
	out, err := s.Step(t.Context(), 1, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Engagement)
	assert.False(t, out.Moved)
	assert.True(t, rival.Defeated)
	assert.Equal(t, world.MoveWander, rival.Mode)
	assert.Equal(t, world.Pos{X: 3, Y: 1}, s.Player.Pos)

	src.vals = []int{1}
	out, err = s.Step(t.Context(), 1, 0)
	require.NoError(t, err)
	assert.Nil(t, out.Engagement)
	assert.False(t, out.Moved)
	assert.Equal(t, []string{"The Rival has already been beaten."}, out.Messages.Texts())
}

func TestEnter(t *testing.T) {
	s, _ := newSession(t)
	assert.Zero(t, s.Enter().Len())

	require.NoError(t, s.Map.Move(s.Player.Pos, world.Pos{X: 5, Y: 1}))
	assert.Equal(t, []string{session.MartGreeting}, s.Enter().Texts())

	require.NoError(t, s.Map.Move(s.Player.Pos, world.Pos{X: 5, Y: 2}))
	assert.Equal(t, []string{session.CenterGreeting}, s.Enter().Texts())
}

func TestNearestAndListing(t *testing.T) {
	s, _ := newSession(t)

	n := s.Nearest()
	require.NotNil(t, n)
	assert.Equal(t, world.ClassRival, n.Class, "the hiker stands on a mountain the field cannot reach")
	assert.Equal(t, "r at 0 N by 3 E.", s.StatusLine())

	l := s.Listing()
	assert.Equal(t, "You know of 2 trainers:", l.Header())
	page := l.Page()
	require.Len(t, page, 2)
	assert.Contains(t, page[0], "Rival r:")
	assert.Contains(t, page[1], "Hiker h:")
}

func TestStatusLine_NoTrainers(t *testing.T) {
	m, err := world.LoadMapFromBytes([]byte("map: {name: empty, rows: [\"...\"], player: {x: 0, y: 0}}"))
	require.NoError(t, err)
	s, err := session.New(m, inventory.NewBag(0, 0, 0), nil, dice.NewSeededSource(1), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "NONE.", s.StatusLine())
}

func TestPopulateTrainers(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.PopulateTrainers())
	for _, tr := range s.Map.NonPlayers() {
		assert.GreaterOrEqual(t, tr.Roster.Filled(), 1)
		assert.NotNil(t, tr.Roster.Slot(0))
	}
}

func TestChooseStarter(t *testing.T) {
	s, _ := newSession(t)
	require.NotNil(t, s.Player.Roster.Active())
	assert.Equal(t, 0, s.Player.Roster.ActiveIndex())
}

func TestProperty_FieldFollowsPlayer(t *testing.T) {
	dirs := []world.Pos{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {X: 1, Y: 1}, {X: -1, Y: -1}}
	rapid.Check(t, func(rt *rapid.T) {
		s, src := newSession(t)
		src.rest = dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed"))
		steps := rapid.SliceOfN(rapid.SampledFrom(dirs), 1, 20).Draw(rt, "steps")
		for _, d := range steps {
			_, err := s.Step(t.Context(), d.X, d.Y)
			require.NoError(rt, err)
			assert.True(rt, s.Map.At(s.Player.Pos).IsPlayer())
			if n := s.Nearest(); n != nil {
				assert.Same(rt, n, s.Resolver().Ranked(s.Map.NonPlayers())[0])
			}
		}
	})
}
