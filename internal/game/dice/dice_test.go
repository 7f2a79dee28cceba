package dice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tallgrass/internal/game/dice"
)

// fixedSource replays a scripted sequence of Intn results.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "1d10-1", Dice: []int{7}, Modifier: -1}
	assert.Equal(t, "1d10-1 → [7] -1 = 6", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr                   string
		count, sides, modifier int
	}{
		{"d20", 1, 20, 0},
		{"2d6", 2, 6, 0},
		{"2d6+3", 2, 6, 3},
		{"1d15-1", 1, 15, -1},
		{"1D10-1", 1, 10, -1},
	}
	for _, tc := range tests {
		e, err := dice.Parse(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.Equal(t, tc.count, e.Count, tc.expr)
		assert.Equal(t, tc.sides, e.Sides, tc.expr)
		assert.Equal(t, tc.modifier, e.Modifier, tc.expr)
		assert.Equal(t, tc.expr, e.Raw)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{"", "20", "0d6", "xd6", "1d1", "1dx", "1d6+x"} {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expr %q", expr)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("bogus") })
}

func TestProperty_Roll_WithinExpressionBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 5).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-5, 5).Draw(rt, "mod")
		seed := rapid.Uint64().Draw(rt, "seed")

		e := dice.Expression{Raw: "x", Count: count, Sides: sides, Modifier: mod}
		r := dice.Roll(e, dice.NewSeededSource(seed))
		assert.Len(rt, r.Dice, count)
		assert.GreaterOrEqual(rt, r.Total(), e.Min())
		assert.LessOrEqual(rt, r.Total(), e.Max())
	})
}

func TestVarianceExpressions_Bounds(t *testing.T) {
	stat := dice.MustParse("1d15-1")
	assert.Equal(t, 0, stat.Min())
	assert.Equal(t, 14, stat.Max())

	dmg := dice.MustParse("1d10-1")
	assert.Equal(t, 0, dmg.Min())
	assert.Equal(t, 9, dmg.Max())
}

func TestBetween_Inclusive(t *testing.T) {
	src := &fixedSource{vals: []int{0, 4}}
	assert.Equal(t, 1, dice.Between(src, 1, 5))
	assert.Equal(t, 5, dice.Between(src, 1, 5))
}

func TestBetween_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { dice.Between(dice.NewSeededSource(1), 3, 2) })
}

func TestProperty_Between_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		hi := lo + rapid.IntRange(0, 50).Draw(rt, "span")
		v := dice.Between(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestChance(t *testing.T) {
	assert.True(t, dice.Chance(&fixedSource{vals: []int{0}}, 7))
	assert.False(t, dice.Chance(&fixedSource{vals: []int{3}}, 7))
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_LogsRollAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(&fixedSource{vals: []int{6}}, zap.New(core))

	res := dice.RollFrom(r, dice.MustParse("1d10-1"))
	assert.Equal(t, 6, res.Total())

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "1d10-1", fields["expression"])
	assert.EqualValues(t, 6, fields["total"])
}

func TestRollFrom_PlainSourceIsNotLogged(t *testing.T) {
	res := dice.RollFrom(&fixedSource{vals: []int{2}}, dice.MustParse("1d15-1"))
	assert.True(t, strings.HasPrefix(res.String(), "1d15-1"))
	assert.Equal(t, 2, res.Total())
}
