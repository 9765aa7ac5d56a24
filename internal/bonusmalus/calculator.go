// Package bonusmalus computes the automobile insurance bonus-malus score.
// Lower is better: MinScore is the best bonus, MaxScore the worst malus.
package bonusmalus

const (
	MinScore           = -2
	MaxScore           = 22
	PenaltyPerAccident = 5

	baseProfessional = 11
	basePrivate      = 14

	// Rule A and rule B experience thresholds.
	ruleAMaxYears      = 13
	ruleAVeteranYears  = 14
	ruleBVeteranAbove  = 17
	twoAccidentsFloor  = 3
	floorAccidentCount = 2
)

// Calculate maps a validated ScoreInput to a score in [MinScore, MaxScore].
// It is pure and never re-validates its input.
//
// NOTE: rule A was written up as the private-client rule and rule B as the
// professional one, but scoring has always applied A to usage 1 and B to usage 0.
// Kept as-is until the product owner confirms which is intended.
func Calculate(in *ScoreInput) int {
	base := startingScore(in)

	var score int
	if in.usage == UsageProfessional {
		score = applyRuleA(in, base)
	} else {
		score = applyRuleB(in, base)
	}

	score = applyAccidentFloor(in, score)
	return clamp(score)
}

func startingScore(in *ScoreInput) int {
	base := basePrivate
	if in.usage == UsageProfessional {
		base = baseProfessional
	}
	if in.drivingYears >= 1 {
		base -= in.drivingYears
	}
	return base
}

func penalized(in *ScoreInput, base int) int {
	return base + in.accidentsAtFault*PenaltyPerAccident
}

func applyRuleA(in *ScoreInput, base int) int {
	switch {
	case in.drivingYears <= ruleAMaxYears:
		return penalized(in, base)
	case in.drivingYears >= ruleAVeteranYears && in.accidentsAtFault > 0:
		return penalized(in, base)
	default:
		return MinScore
	}
}

func applyRuleB(in *ScoreInput, base int) int {
	switch {
	case in.drivingYears > ruleBVeteranAbove && in.accidentsAtFault > 0:
		return penalized(in, base)
	case in.drivingYears > ruleBVeteranAbove && in.accidentsAtFault == 0:
		return MinScore
	default:
		return penalized(in, base)
	}
}

// applyAccidentFloor runs before clamp; since MinScore < twoAccidentsFloor the
// clamp can never undo it.
func applyAccidentFloor(in *ScoreInput, score int) int {
	if in.accidentsAtFault == floorAccidentCount && score <= twoAccidentsFloor {
		return twoAccidentsFloor
	}
	return score
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
