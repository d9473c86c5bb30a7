// Package composite aggregates calibrated principle scores into the
// final raw composite, applying the dominance overrides that keep one
// catastrophic silhouette or definition failure from being averaged away
// by many small wins.
package composite

import (
	"math"

	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
)

// Dominance override thresholds. Overrides fire only on strictly worse
// scores, and only when the composite would otherwise be positive.
const (
	silhouetteFloor = -0.25
	definitionFloor = -0.15

	strongGoalWeight   = 0.75
	moderateGoalWeight = 0.30
)

// silhouetteScorers are the principles whose failure means the garment's
// overall shape is wrong for the body. Both overrides key on the worst
// of this pair, at different floors.
var silhouetteScorers = []string{principles.NameTent, principles.NameBodycon}

// slimmingClassGoals are the goals that make a silhouette failure
// unacceptable rather than unfortunate.
var slimmingClassGoals = []types.StylingGoal{
	types.GoalSlimming, types.GoalSlimHips, types.GoalHideMidsection,
}

// definitionGoals are the goals that make a definition failure decisive.
var definitionGoals = []types.StylingGoal{
	types.GoalEmphasis, types.GoalHighlightWaist,
}

// Aggregate computes the confidence-weighted composite over applicable
// results. The second return is false when nothing was applicable.
func Aggregate(results []types.PrincipleResult) (float64, bool) {
	var num, den float64
	for _, r := range results {
		if !r.Applicable {
			continue
		}
		num += r.Score * r.Weight * r.Confidence
		den += r.Weight * r.Confidence
	}
	if den == 0 {
		return 0, false
	}
	return types.ClampUnit(num / den), true
}

// worstOf returns the lowest applicable score among the named scorers,
// and whether any were applicable.
func worstOf(results []types.PrincipleResult, names []string) (float64, bool) {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	worst := math.Inf(1)
	found := false
	for _, r := range results {
		if r.Applicable && wanted[r.Name] && r.Score < worst {
			worst = r.Score
			found = true
		}
	}
	return worst, found
}

// maxGoalWeight returns the highest active weight among the given goals.
func maxGoalWeight(goals []types.WeightedGoal, of []types.StylingGoal) float64 {
	wanted := map[types.StylingGoal]bool{}
	for _, g := range of {
		wanted[g] = true
	}
	maxW := 0.0
	for _, wg := range goals {
		if wanted[wg.Goal] && wg.Weight > maxW {
			maxW = wg.Weight
		}
	}
	return maxW
}

// ApplyDominance applies the silhouette override, then the definition
// override, in that order. Each fires only while the running composite
// is positive: a composite already negative needs no correction, and the
// silhouette override can push it negative before definition is checked.
func ApplyDominance(composite float64, results []types.PrincipleResult, goals []types.WeightedGoal) (float64, types.Trail) {
	var trail types.Trail

	if composite > 0 {
		if worst, ok := worstOf(results, silhouetteScorers); ok && worst < silhouetteFloor {
			w := maxGoalWeight(goals, slimmingClassGoals)
			switch {
			case w >= strongGoalWeight:
				composite = worst * 0.4
				trail = trail.Add("silhouette_dominance", composite,
					"silhouette failure overrides the average for a slimming-focused wearer")
			case w >= moderateGoalWeight:
				composite *= 0.75
				trail = trail.Add("silhouette_dominance_partial", composite,
					"silhouette failure discounts the composite")
			}
		}
	}

	if composite > 0 {
		if worst, ok := worstOf(results, silhouetteScorers); ok && worst < definitionFloor {
			w := maxGoalWeight(goals, definitionGoals)
			switch {
			case w >= strongGoalWeight:
				composite *= 0.65
				trail = trail.Add("definition_dominance", composite,
					"silhouette failure erases the definition the wearer asked for")
			case w >= moderateGoalWeight:
				composite *= 0.80
				trail = trail.Add("definition_dominance_partial", composite,
					"silhouette failure dulls the definition the wearer asked for")
			}
		}
	}

	return types.ClampUnit(composite), trail
}

// MeanConfidence averages the confidence of applicable results.
func MeanConfidence(results []types.PrincipleResult) float64 {
	var sum float64
	var n int
	for _, r := range results {
		if r.Applicable {
			sum += r.Confidence
			n++
		}
	}
	if n == 0 {
		return 0.50
	}
	return sum / float64(n)
}

// DisplayScore converts a raw composite to the 0-10 display scale.
func DisplayScore(composite float64) float64 {
	return types.RescaleDisplay(types.ScoreToTen(composite))
}
