package battle

import (
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/dice"
)

// damageVariance is the uniform 0..9 bonus added to every hit.
var damageVariance = dice.MustParse("1d10-1")

// Damage computes the hp a hit deals. Every division truncates before the
// next multiplication:
//
//	floor((floor(2*level/5)+2) * power * floor(attack/defense) / 50) + 2 + 1d10-1
//
// Precondition: level >= 1, power >= 0, attack >= 0. A defense below 1 counts as 1.
// Postcondition: result >= 2.
func Damage(level, power, attack, defense int, src dice.Source) int {
	if defense < 1 {
		defense = 1
	}
	base := (2*level/5 + 2) * power * (attack / defense) / 50
	return base + 2 + dice.RollFrom(src, damageVariance).Total()
}

// Outcome is the result of one creature using one move.
type Outcome struct {
	Move   creature.MoveSlot
	Hit    bool
	Damage int
	// Dealt is the hp the defender actually lost after flooring at zero.
	Dealt int
}

// Strike resolves attacker using move slot i on defender. The damage roll is
// drawn before the accuracy roll; a miss leaves defender untouched.
//
// Precondition: 0 <= i < creature.MoveSlots.
func Strike(attacker, defender *creature.Instance, i int, src dice.Source) Outcome {
	mv := attacker.Move(i)
	out := Outcome{Move: mv}
	out.Damage = Damage(attacker.Level(), mv.Power, attacker.Stats().Attack, defender.Stats().Defense, src)
	if src.Intn(100) < mv.Accuracy {
		out.Hit = true
		out.Dealt = defender.ApplyDamage(out.Damage)
	}
	return out
}
