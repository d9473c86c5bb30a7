// Package calibrate adjusts principle weights for the wearer's goals
// before aggregation: goal-relevant principles count more, strongly
// negative findings count slightly more, and no single principle may
// dominate the composite.
package calibrate

import (
	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
)

// negativeAmplification is applied once to any principle scoring below
// the strong-negative threshold: a real problem should weigh more than a
// comparable benefit.
const (
	negativeAmplification = 1.1
	strongNegative        = -0.15
	dominanceCapShare     = 0.35
)

// goalWeightBoosts maps each goal to the principles whose weight it
// raises, with the full-strength boost factor.
var goalWeightBoosts = map[types.StylingGoal]map[string]float64{
	types.GoalLookTaller: {
		principles.NameMonochrome:     1.5,
		principles.NameRiseElongation: 1.3,
		principles.NameVNeck:          1.3,
		principles.NameHemline:        1.3,
		principles.NamePantRise:       1.5,
		principles.NameTopHemline:     1.2,
	},
	types.GoalHighlightWaist: {
		principles.NameColorBreak:     1.5,
		principles.NameBodycon:        1.3,
		principles.NameWaistPlacement: 1.5,
		principles.NamePantRise:       1.3,
		principles.NameJacket:         1.2,
	},
	types.GoalHideMidsection: {
		principles.NameTent:         1.5,
		principles.NameDarkSlimming: 1.3,
		principles.NameMatte:        1.3,
		principles.NameFabricZone:   1.2,
		principles.NameTopHemline:   1.3,
		principles.NameJacket:       1.2,
	},
	types.GoalSlimHips: {
		principles.NameDarkSlimming: 1.5,
		principles.NameALine:        1.3,
		principles.NameMatte:        1.3,
		principles.NameHemline:      1.2,
		principles.NameLegShape:     1.5,
		principles.NameTopHemline:   1.3,
	},
	types.GoalLookProportional: {
		principles.NameWaistPlacement: 1.5,
		principles.NameHemline:        1.3,
		principles.NameRiseElongation: 1.3,
		principles.NamePantRise:       1.3,
	},
	types.GoalMinimizeArms: {
		principles.NameSleeve: 1.5,
		principles.NameMatte:  1.3,
		principles.NameJacket: 1.2,
	},
	types.GoalSlimming: {
		principles.NameDarkSlimming: 1.5,
		principles.NameMatte:        1.5,
		principles.NameHStripe:      1.3,
		principles.NameTent:         1.5,
	},
	types.GoalConcealment: {
		principles.NameTent:  1.5,
		principles.NameMatte: 1.3,
	},
	types.GoalEmphasis: {
		principles.NameBodycon:    1.5,
		principles.NameColorBreak: 1.5,
		principles.NameVNeck:      1.5,
	},
	types.GoalBalance: {},
}

// AdjustWeights returns a copy of the principle results with weights
// recalibrated for the active goals. Two passes: multiplicative boosts
// first, then a single dominance cap at 35% of the post-boost total.
// The boosts commute, so goal order never changes the outcome.
func AdjustWeights(results []types.PrincipleResult, goals []types.WeightedGoal) []types.PrincipleResult {
	out := make([]types.PrincipleResult, len(results))
	copy(out, results)

	// Pass 1: goal boosts, scaled by goal participation weight, plus the
	// negative amplification.
	for i := range out {
		if !out[i].Applicable {
			continue
		}
		for _, wg := range goals {
			boosts, known := goalWeightBoosts[wg.Goal]
			if !known {
				continue
			}
			if boost, relevant := boosts[out[i].Name]; relevant {
				out[i].Weight *= 1 + (boost-1)*wg.Weight
			}
		}
		if out[i].Score < strongNegative {
			out[i].Weight *= negativeAmplification
		}
	}

	// Pass 2: dominance cap against the post-boost total. One pass, no
	// re-normalization: capping one weight must not re-inflate another's
	// share past the cap.
	var total float64
	for i := range out {
		if out[i].Applicable {
			total += out[i].Weight
		}
	}
	maxWeight := total * dominanceCapShare
	for i := range out {
		if out[i].Applicable && out[i].Weight > maxWeight {
			out[i].Weight = maxWeight
		}
	}
	return out
}
