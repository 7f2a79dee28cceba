package pokedex_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
)

const speciesYAML = `
species:
  - id: 1
    name: bulbasaur
    stats: {hp: 45, attack: 49, defense: 49, special_attack: 65, special_defense: 65, speed: 45}
  - id: 4
    name: charmander
    stats: {hp: 39, attack: 52, defense: 43, special_attack: 60, special_defense: 50, speed: 65}
`

const movesYAML = `
moves:
  - {id: 33, name: tackle, priority: 0, accuracy: 100, power: 40}
  - {id: 45, name: growl, priority: 0, accuracy: 100, power: 0}
  - {id: 10, name: scratch, priority: 0, accuracy: 100, power: 40}
`

const linksYAML = `
species_moves:
  - {species_id: 4, move_id: 10}
  - {species_id: 1, move_id: 33}
  - {species_id: 4, move_id: 45}
  - {species_id: 1, move_id: 45}
  - {species_id: 1, move_id: 10}
`

func TestLoadFromBytes(t *testing.T) {
	p, err := pokedex.LoadFromBytes([]byte(speciesYAML), []byte(movesYAML), []byte(linksYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, p.SpeciesCount())
	s, ok := p.Species(1)
	require.True(t, ok)
	assert.Equal(t, "bulbasaur", s.Name)
	assert.Equal(t, 65, s.Stats.SpecialAttack)

	m, ok := p.Move(33)
	require.True(t, ok)
	assert.Equal(t, "tackle", m.Name)
	assert.Equal(t, 40, m.Power)
}

func TestLinkedMoves_FollowsTableOrder(t *testing.T) {
	p, err := pokedex.LoadFromBytes([]byte(speciesYAML), []byte(movesYAML), []byte(linksYAML))
	require.NoError(t, err)

	moves := p.LinkedMoves(1, 2)
	require.Len(t, moves, 2)
	assert.Equal(t, "tackle", moves[0].Name)
	assert.Equal(t, "growl", moves[1].Name)

	moves = p.LinkedMoves(4, 2)
	require.Len(t, moves, 2)
	assert.Equal(t, "scratch", moves[0].Name)
	assert.Equal(t, "growl", moves[1].Name)

	assert.Empty(t, p.LinkedMoves(99, 2))
}

func TestNew_EmptyTablesFail(t *testing.T) {
	_, err := pokedex.New(nil, []pokedex.Move{{ID: 1, Name: "x", Accuracy: 100}}, nil)
	assert.ErrorIs(t, err, pokedex.ErrEmptyTable)

	_, err = pokedex.New([]pokedex.Species{{ID: 1, Name: "x", Stats: pokedex.BaseStats{HP: 1}}}, nil, nil)
	assert.ErrorIs(t, err, pokedex.ErrEmptyTable)
}

func TestNew_RejectsBadRows(t *testing.T) {
	species := []pokedex.Species{
		{ID: 1, Name: "a", Stats: pokedex.BaseStats{HP: 10}},
		{ID: 1, Name: "dup", Stats: pokedex.BaseStats{HP: 10}},
	}
	moves := []pokedex.Move{{ID: 1, Name: "m", Accuracy: 101}}
	links := []pokedex.Link{{SpeciesID: 7, MoveID: 1}}

	_, err := pokedex.New(species, moves, links)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "accuracy must be 0-100")
	assert.Contains(t, err.Error(), "unknown species 7")
}

func TestNew_CopiesInput(t *testing.T) {
	moves := []pokedex.Move{{ID: 1, Name: "tackle", Accuracy: 100, Power: 40}}
	p, err := pokedex.New([]pokedex.Species{{ID: 1, Name: "a", Stats: pokedex.BaseStats{HP: 10}}}, moves, nil)
	require.NoError(t, err)

	moves[0].Power = 999
	m, _ := p.Move(1)
	assert.Equal(t, 40, m.Power)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, pokedex.SpeciesFile), []byte(speciesYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, pokedex.MovesFile), []byte(movesYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, pokedex.SpeciesMovesFile), []byte(linksYAML), 0o644))

	p, err := pokedex.LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, p.SpeciesCount())
}

func TestLoadFromDir_ShippedContent(t *testing.T) {
	p, err := pokedex.LoadFromDir(filepath.Join("..", "..", "..", "content", "pokedex"))
	require.NoError(t, err)
	assert.Equal(t, 20, p.SpeciesCount())

	moves := p.LinkedMoves(25, 2)
	require.Len(t, moves, 2)
	assert.Equal(t, "thunder-shock", moves[0].Name)
	assert.Equal(t, "growl", moves[1].Name)

	assert.Len(t, p.LinkedMoves(129, 2), 1, "magikarp only knows splash")
}

func TestLoadFromDir_MissingFile(t *testing.T) {
	_, err := pokedex.LoadFromDir(t.TempDir())
	assert.Error(t, err)
}

func TestProperty_LinkedMoves_NeverExceedsLimit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(rt, "links")
		limit := rapid.IntRange(0, 4).Draw(rt, "limit")
		links := make([]pokedex.Link, n)
		for i := range links {
			links[i] = pokedex.Link{SpeciesID: 1, MoveID: 1}
		}
		p, err := pokedex.New(
			[]pokedex.Species{{ID: 1, Name: "a", Stats: pokedex.BaseStats{HP: 1}}},
			[]pokedex.Move{{ID: 1, Name: "m", Accuracy: 50}},
			links,
		)
		require.NoError(rt, err)
		got := p.LinkedMoves(1, limit)
		assert.Equal(rt, min(n, limit), len(got))
	})
}
