package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
	"github.com/cory-johannsen/tallgrass/internal/storage/postgres"
	"github.com/cory-johannsen/tallgrass/internal/testutil"
)

func sampleDex(t *testing.T) *pokedex.Pokedex {
	t.Helper()
	p, err := pokedex.New(
		[]pokedex.Species{
			{ID: 1, Name: "Bulbasaur", Stats: pokedex.BaseStats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45}},
			{ID: 16, Name: "Pidgey", Stats: pokedex.BaseStats{HP: 40, Attack: 45, Defense: 40, SpecialAttack: 35, SpecialDefense: 35, Speed: 56}},
		},
		[]pokedex.Move{
			{ID: 33, Name: "Tackle", Accuracy: 100, Power: 40},
			{ID: 45, Name: "Growl", Accuracy: 100},
			{ID: 98, Name: "Quick Attack", Priority: 1, Accuracy: 100, Power: 40},
		},
		[]pokedex.Link{
			{SpeciesID: 16, MoveID: 98},
			{SpeciesID: 1, MoveID: 33},
			{SpeciesID: 16, MoveID: 33},
			{SpeciesID: 1, MoveID: 45},
		},
	)
	require.NoError(t, err)
	return p
}

func TestPokedexRepository_StoreThenLoad(t *testing.T) {
	repo := postgres.NewPokedexRepository(testutil.NewPool(t))
	ctx := context.Background()

	want := sampleDex(t)
	require.NoError(t, repo.Store(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.AllSpecies(), got.AllSpecies())
	assert.Equal(t, want.AllMoves(), got.AllMoves())
	assert.Equal(t, want.AllLinks(), got.AllLinks())

	pidgey := got.LinkedMoves(16, 2)
	require.Len(t, pidgey, 2)
	assert.Equal(t, "Quick Attack", pidgey[0].Name)
	assert.Equal(t, "Tackle", pidgey[1].Name)
}

func TestPokedexRepository_StoreReplacesRows(t *testing.T) {
	repo := postgres.NewPokedexRepository(testutil.NewPool(t))
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, sampleDex(t)))

	smaller, err := pokedex.New(
		[]pokedex.Species{{ID: 129, Name: "Magikarp", Stats: pokedex.BaseStats{HP: 20, Attack: 10, Defense: 55, SpecialAttack: 15, SpecialDefense: 20, Speed: 80}}},
		[]pokedex.Move{{ID: 150, Name: "Splash", Accuracy: 100}},
		[]pokedex.Link{{SpeciesID: 129, MoveID: 150}},
	)
	require.NoError(t, err)
	require.NoError(t, repo.Store(ctx, smaller))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SpeciesCount())
	_, ok := got.Species(1)
	assert.False(t, ok)
	assert.Len(t, got.AllLinks(), 1)
}

func TestPokedexRepository_LoadEmpty(t *testing.T) {
	repo := postgres.NewPokedexRepository(testutil.NewPool(t))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, pokedex.ErrEmptyTable))
}
