package creature

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/dice"
	"github.com/cory-johannsen/tallgrass/internal/game/pokedex"
)

// statVariance is added to every base stat.
var statVariance = dice.MustParse("1d15-1")

// FallbackPolicy decides what happens when a species has fewer than two linked moves.
type FallbackPolicy string

const (
	// FallbackReject fails instantiation with a DataNotFoundError.
	FallbackReject FallbackPolicy = "reject"
	// FallbackDuplicate copies a lone linked move into both slots.
	// A species with no linked moves still fails.
	FallbackDuplicate FallbackPolicy = "duplicate"
)

// ParseFallbackPolicy converts a config string into a FallbackPolicy.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(s); p {
	case FallbackReject, FallbackDuplicate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown move fallback policy %q", s)
	}
}

// Factory instantiates creatures from the static tables.
type Factory struct {
	dex    *pokedex.Pokedex
	policy FallbackPolicy
	logger *zap.Logger
}

// NewFactory builds a Factory over dex.
//
// Precondition: dex and logger must be non-nil.
// Postcondition: Returns an error if no species can be instantiated under policy.
func NewFactory(dex *pokedex.Pokedex, policy FallbackPolicy, logger *zap.Logger) (*Factory, error) {
	if _, err := ParseFallbackPolicy(string(policy)); err != nil {
		return nil, err
	}
	f := &Factory{dex: dex, policy: policy, logger: logger}
	usable := 0
	for i := 0; i < dex.SpeciesCount(); i++ {
		if _, err := f.movesFor(dex.SpeciesAt(i)); err == nil {
			usable++
		}
	}
	if usable == 0 {
		return nil, fmt.Errorf("no species has enough linked moves under policy %q: %w", policy, ErrDataNotFound)
	}
	if usable < dex.SpeciesCount() {
		logger.Warn("some species cannot be instantiated",
			zap.Int("usable", usable),
			zap.Int("total", dex.SpeciesCount()),
			zap.String("policy", string(policy)),
		)
	}
	return f, nil
}

// LevelRange returns floor(distance/2)+1, clamped to at least 1. A clamp is
// reported through a *RangeError alongside the usable value.
//
// Postcondition: result >= 1.
func LevelRange(regionalDistance int) (int, error) {
	r := floorDiv(regionalDistance, 2) + 1
	if r < 1 {
		return 1, &RangeError{Quantity: "level range", Value: r, Clamped: 1}
	}
	return r, nil
}

// Instantiate builds one creature. Random draws happen in a fixed order:
// species, level, six stat variances, gender.
//
// Precondition: src must be non-nil.
// Postcondition: On success Level() >= 1 and CurrentHP() == MaxHP(). A species
// without enough linked moves yields a *DataNotFoundError.
func (f *Factory) Instantiate(src dice.Source, regionalDistance int) (*Instance, error) {
	species := f.dex.SpeciesAt(src.Intn(f.dex.SpeciesCount()))

	levelRange, err := LevelRange(regionalDistance)
	if err != nil {
		f.logger.Warn("clamping level range", zap.Error(err), zap.Int("regional_distance", regionalDistance))
	}
	level := dice.Between(src, 1, levelRange)

	moves, err := f.movesFor(species)
	if err != nil {
		return nil, err
	}

	base := species.Stats
	stats := Stats{
		HP:             base.HP + dice.RollFrom(src, statVariance).Total(),
		Attack:         base.Attack + dice.RollFrom(src, statVariance).Total(),
		Defense:        base.Defense + dice.RollFrom(src, statVariance).Total(),
		SpecialAttack:  base.SpecialAttack + dice.RollFrom(src, statVariance).Total(),
		SpecialDefense: base.SpecialDefense + dice.RollFrom(src, statVariance).Total(),
		Speed:          base.Speed + dice.RollFrom(src, statVariance).Total(),
	}
	gender := Gender(src.Intn(2))

	c := New(Spec{
		SpeciesID: species.ID,
		Name:      species.Name,
		Level:     level,
		Gender:    gender,
		Stats:     stats,
		Moves:     moves,
	})
	f.logger.Debug("creature instantiated",
		zap.Stringer("id", c.ID()),
		zap.String("species", c.Name()),
		zap.Int("level", c.Level()),
		zap.Int("max_hp", c.MaxHP()),
	)
	return c, nil
}

func (f *Factory) movesFor(s pokedex.Species) ([MoveSlots]MoveSlot, error) {
	var slots [MoveSlots]MoveSlot
	linked := f.dex.LinkedMoves(s.ID, MoveSlots)
	switch {
	case len(linked) == MoveSlots:
	case len(linked) == 1 && f.policy == FallbackDuplicate:
		linked = append(linked, linked[0])
	default:
		return slots, &DataNotFoundError{SpeciesID: s.ID, Species: s.Name, Found: len(linked)}
	}
	for i, m := range linked {
		slots[i] = MoveSlot{Name: m.Name, Priority: m.Priority, Accuracy: m.Accuracy, Power: m.Power}
	}
	return slots, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
