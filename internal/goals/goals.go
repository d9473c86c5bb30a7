// Package goals maps principle scores onto styling goals and renders a
// pass/caution/fail verdict per goal. It also derives secondary goals
// from the body profile when the wearer's stated goals leave obvious
// concerns unaddressed.
package goals

import (
	"fmt"

	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
)

// Verdict thresholds on the weighted goal score.
const (
	passThreshold = 0.06
	failThreshold = -0.06
)

// participation lists which principles support or oppose a goal, and how
// strongly each one counts.
type participation struct {
	positive []string
	negative []string
	weights  map[string]float64 // default 1.0
}

var goalPrincipleMap = map[types.StylingGoal]participation{
	types.GoalLookTaller: {
		positive: []string{
			principles.NameMonochrome, principles.NameRiseElongation,
			principles.NameVNeck, principles.NameHemline,
			principles.NameWaistPlacement, principles.NamePantRise,
		},
		negative: []string{
			principles.NameColorBreak, principles.NameHStripe, principles.NameTopHemline,
		},
		weights: map[string]float64{
			principles.NameMonochrome:     1.5,
			principles.NameRiseElongation: 1.3,
			principles.NameVNeck:          1.2,
			principles.NameHemline:        1.3,
			principles.NameWaistPlacement: 1.2,
			principles.NameColorBreak:     1.3,
			principles.NamePantRise:       1.5,
			principles.NameTopHemline:     1.2,
		},
	},
	types.GoalHighlightWaist: {
		positive: []string{
			principles.NameColorBreak, principles.NameBodycon,
			principles.NameWaistPlacement, principles.NamePantRise, principles.NameJacket,
		},
		negative: []string{principles.NameTent},
		weights: map[string]float64{
			principles.NameColorBreak:     1.5,
			principles.NameBodycon:        1.2,
			principles.NameWaistPlacement: 1.5,
			principles.NameTent:           1.3,
			principles.NamePantRise:       1.3,
			principles.NameJacket:         1.2,
		},
	},
	types.GoalHideMidsection: {
		positive: []string{
			principles.NameTent, principles.NameDarkSlimming, principles.NameMatte,
			principles.NameFabricZone, principles.NameTopHemline, principles.NameJacket,
		},
		negative: []string{
			principles.NameBodycon, principles.NameColorBreak, principles.NamePantRise,
		},
		weights: map[string]float64{
			principles.NameTent:         1.5,
			principles.NameDarkSlimming: 1.3,
			principles.NameMatte:        1.2,
			principles.NameBodycon:      1.5,
			principles.NameColorBreak:   1.2,
			principles.NameTopHemline:   1.3,
			principles.NameJacket:       1.2,
			principles.NamePantRise:     1.2,
		},
	},
	types.GoalSlimHips: {
		positive: []string{
			principles.NameDarkSlimming, principles.NameALine, principles.NameMatte,
			principles.NameHemline, principles.NameLegShape,
		},
		negative: []string{
			principles.NameHStripe, principles.NameBodycon, principles.NameTopHemline,
		},
		weights: map[string]float64{
			principles.NameDarkSlimming: 1.5,
			principles.NameALine:        1.3,
			principles.NameMatte:        1.2,
			principles.NameHemline:      1.2,
			principles.NameHStripe:      1.3,
			principles.NameBodycon:      1.3,
			principles.NameLegShape:     1.5,
			principles.NameTopHemline:   1.3,
		},
	},
	types.GoalLookProportional: {
		positive: []string{
			principles.NameWaistPlacement, principles.NameHemline,
			principles.NameRiseElongation, principles.NameMonochrome,
			principles.NamePantRise, principles.NameJacket,
		},
		negative: []string{principles.NameTent},
		weights: map[string]float64{
			principles.NameWaistPlacement: 1.5,
			principles.NameHemline:        1.3,
			principles.NameRiseElongation: 1.2,
			principles.NameTent:           1.2,
			principles.NamePantRise:       1.3,
			principles.NameJacket:         1.1,
		},
	},
	types.GoalMinimizeArms: {
		positive: []string{
			principles.NameSleeve, principles.NameMatte, principles.NameJacket,
		},
		weights: map[string]float64{
			principles.NameSleeve: 1.5,
			principles.NameMatte:  1.2,
			principles.NameJacket: 1.2,
		},
	},
	types.GoalSlimming: {
		positive: []string{
			principles.NameDarkSlimming, principles.NameMatte,
			principles.NameHStripe, principles.NameColorValue,
		},
		negative: []string{principles.NameTent, principles.NameBodycon},
		weights: map[string]float64{
			principles.NameDarkSlimming: 1.5,
			principles.NameMatte:        1.3,
			principles.NameTent:         1.5,
		},
	},
	types.GoalConcealment: {
		positive: []string{
			principles.NameTent, principles.NameMatte, principles.NameDarkSlimming,
		},
		negative: []string{principles.NameBodycon},
		weights: map[string]float64{
			principles.NameTent:  1.5,
			principles.NameMatte: 1.3,
		},
	},
	types.GoalEmphasis: {
		positive: []string{
			principles.NameBodycon, principles.NameColorBreak, principles.NameVNeck,
		},
		negative: []string{principles.NameTent},
		weights: map[string]float64{
			principles.NameBodycon:    1.5,
			principles.NameColorBreak: 1.3,
			principles.NameVNeck:      1.3,
		},
	},
	types.GoalBalance: {
		positive: []string{
			principles.NameWaistPlacement, principles.NameALine, principles.NameHemline,
		},
	},
}

// ScoreGoal evaluates one styling goal against the principle results.
func ScoreGoal(goal types.StylingGoal, results []types.PrincipleResult) types.GoalVerdict {
	part, known := goalPrincipleMap[goal]
	if !known {
		return types.GoalVerdict{
			Goal:    goal,
			Verdict: types.VerdictCaution,
			Trail:   types.Trail{{RuleID: "unknown_goal", Note: "no principle mapping for this goal"}},
		}
	}

	byName := make(map[string]types.PrincipleResult, len(results))
	for _, r := range results {
		byName[r.Name] = r
	}
	weightOf := func(name string) float64 {
		if w, ok := part.weights[name]; ok {
			return w
		}
		return 1.0
	}

	var weightedSum, totalWeight float64
	var supporting []string
	var trail types.Trail

	for _, name := range part.positive {
		r, present := byName[name]
		if !present || !r.Applicable {
			continue
		}
		w := weightOf(name)
		weightedSum += r.Score * w
		totalWeight += w
		if r.Score > 0.05 {
			supporting = append(supporting, fmt.Sprintf("+%s (%+.2f)", name, r.Score))
			trail = trail.Add("goal_support", r.Score*w, name+" works toward this goal")
		}
	}
	for _, name := range part.negative {
		r, present := byName[name]
		if !present || !r.Applicable {
			continue
		}
		w := weightOf(name)
		weightedSum -= r.Score * w
		totalWeight += w
		if r.Score < -0.05 {
			supporting = append(supporting, fmt.Sprintf("-%s avoided (%.2f)", name, r.Score))
			trail = trail.Add("goal_avoided", -r.Score*w, name+" failure mode avoided")
		}
	}

	if totalWeight == 0 {
		return types.GoalVerdict{
			Goal:    goal,
			Verdict: types.VerdictCaution,
			Trail:   types.Trail{{RuleID: "no_signal", Note: "No applicable principles for this goal"}},
		}
	}

	// Strict thresholds: a score exactly on the line stays caution.
	score := weightedSum / totalWeight
	verdict := types.VerdictCaution
	if score > passThreshold {
		verdict = types.VerdictPass
	} else if score < failThreshold {
		verdict = types.VerdictFail
	}

	return types.GoalVerdict{
		Goal:                 goal,
		Verdict:              verdict,
		Score:                score,
		SupportingPrinciples: supporting,
		Trail:                trail,
	}
}

// ScoreAll evaluates every active goal, in the profile's goal order.
func ScoreAll(goals []types.WeightedGoal, results []types.PrincipleResult) []types.GoalVerdict {
	verdicts := make([]types.GoalVerdict, 0, len(goals))
	for _, wg := range goals {
		verdicts = append(verdicts, ScoreGoal(wg.Goal, results))
	}
	return verdicts
}
