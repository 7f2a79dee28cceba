package dice

// Roll evaluates an Expression using the given Source.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count and
// expr.Min() <= result.Total() <= expr.Max().
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}

type expressionRoller interface {
	Roll(expr Expression) RollResult
}

// RollFrom rolls expr through src. When src audits its own rolls (a *Roller),
// the roll goes through it so it is logged.
//
// Precondition: src must be non-nil.
func RollFrom(src Source, expr Expression) RollResult {
	if r, ok := src.(expressionRoller); ok {
		return r.Roll(expr)
	}
	return Roll(expr, src)
}
