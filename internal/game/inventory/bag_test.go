package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/inventory"
)

func hurt(maxHP, damage int) *creature.Instance {
	c := creature.New(creature.Spec{Name: "pidgey", Level: 3, Stats: creature.Stats{HP: maxHP}})
	c.ApplyDamage(damage)
	return c
}

func TestBag_PotionHealsTwenty(t *testing.T) {
	bag := inventory.NewBag(2, 0, 0)
	c := hurt(100, 50)

	ok, err := bag.UseOn(inventory.Potion, c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 70, c.CurrentHP())
	assert.Equal(t, 1, bag.Count(inventory.Potion))
}

func TestBag_PotionCapsAtMax(t *testing.T) {
	bag := inventory.NewBag(1, 0, 0)
	c := hurt(100, 5)

	_, err := bag.UseOn(inventory.Potion, c)
	require.NoError(t, err)
	assert.Equal(t, 100, c.CurrentHP())
}

func TestBag_PotionAtFullHealthIsNotConsumed(t *testing.T) {
	bag := inventory.NewBag(1, 0, 0)
	c := hurt(30, 0)

	ok, err := bag.UseOn(inventory.Potion, c)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, bag.Count(inventory.Potion))
}

func TestProperty_Bag_PotionIdempotentAtCeiling(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 250).Draw(rt, "max_hp")
		dmg := rapid.IntRange(0, maxHP).Draw(rt, "dmg")
		uses := rapid.IntRange(1, 30).Draw(rt, "uses")

		bag := inventory.NewBag(uses, 0, 0)
		c := hurt(maxHP, dmg)
		for i := 0; i < uses; i++ {
			_, err := bag.UseOn(inventory.Potion, c)
			require.NoError(rt, err)
			assert.LessOrEqual(rt, c.CurrentHP(), maxHP)
		}
	})
}

func TestBag_ReviveOnlyWhenFainted(t *testing.T) {
	bag := inventory.NewBag(0, 1, 0)
	c := hurt(100, 40)

	ok, err := bag.UseOn(inventory.Revive, c)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 60, c.CurrentHP())
	assert.Equal(t, 1, bag.Count(inventory.Revive))

	c.ApplyDamage(60)
	ok, err = bag.UseOn(inventory.Revive, c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 50, c.CurrentHP())
	assert.Equal(t, 0, bag.Count(inventory.Revive))
}

func TestBag_EmptyCounter(t *testing.T) {
	bag := inventory.NewBag(0, 0, 0)
	c := hurt(10, 5)
	_, err := bag.UseOn(inventory.Potion, c)
	assert.ErrorIs(t, err, inventory.ErrNoneLeft)
	assert.Equal(t, 5, c.CurrentHP())
}

func TestBag_PokeballCannotTargetCreature(t *testing.T) {
	bag := inventory.NewBag(0, 0, 3)
	_, err := bag.UseOn(inventory.Pokeball, hurt(10, 0))
	assert.Error(t, err)
	assert.Equal(t, 3, bag.Count(inventory.Pokeball))
}

func TestBag_NegativeStartStoredAsZero(t *testing.T) {
	bag := inventory.NewBag(-3, 1, -1)
	assert.Equal(t, 0, bag.Count(inventory.Potion))
	assert.Equal(t, 1, bag.Count(inventory.Revive))
	assert.Equal(t, 0, bag.Count(inventory.Pokeball))
	assert.Equal(t, 0, bag.Count(inventory.Item(7)), "unknown items count zero")
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "potion", inventory.Potion.String())
	assert.Equal(t, "revive", inventory.Revive.String())
	assert.Equal(t, "pokeball", inventory.Pokeball.String())
}
