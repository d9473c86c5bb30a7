package goals

import "github.com/kridha/fit-engine/internal/types"

// Participation weights for goal provenance. User-stated goals count in
// full; goals derived from the body profile count at half or quarter
// strength depending on how direct the evidence is.
const (
	userWeight      = 1.0
	derivedStrong   = 0.5
	derivedInferred = 0.25
)

// Normalize merges stated goals with body-derived ones into a single
// weighted list. Duplicates keep the higher weight; order is stated goals
// first, then derivations.
func Normalize(stated []types.StylingGoal, b *types.BodyProfile) []types.WeightedGoal {
	out := make([]types.WeightedGoal, 0, len(stated)+4)
	seen := map[types.StylingGoal]int{}

	add := func(goal types.StylingGoal, weight float64) {
		if idx, dup := seen[goal]; dup {
			if weight > out[idx].Weight {
				out[idx].Weight = weight
			}
			return
		}
		seen[goal] = len(out)
		out = append(out, types.WeightedGoal{Goal: goal, Weight: weight})
	}

	for _, g := range stated {
		add(g, userWeight)
	}
	for _, wg := range Derive(b) {
		add(wg.Goal, wg.Weight)
	}
	return out
}

// Resolve merges the profile's own weighted goals with body-derived
// ones. A stated goal with no weight counts at full strength; duplicates
// keep the higher weight.
func Resolve(b *types.BodyProfile) []types.WeightedGoal {
	out := make([]types.WeightedGoal, 0, len(b.StylingGoals)+4)
	seen := map[types.StylingGoal]int{}

	add := func(goal types.StylingGoal, weight float64) {
		if idx, dup := seen[goal]; dup {
			if weight > out[idx].Weight {
				out[idx].Weight = weight
			}
			return
		}
		seen[goal] = len(out)
		out = append(out, types.WeightedGoal{Goal: goal, Weight: weight})
	}

	for _, wg := range b.StylingGoals {
		w := wg.Weight
		if w == 0 {
			w = userWeight
		}
		add(wg.Goal, w)
	}
	for _, wg := range Derive(b) {
		add(wg.Goal, wg.Weight)
	}
	return out
}

// Derive infers secondary goals from the body profile: concerns the
// wearer flagged and proportions that usually drive preferences.
func Derive(b *types.BodyProfile) []types.WeightedGoal {
	var derived []types.WeightedGoal

	if b.IsPetite() {
		derived = append(derived, types.WeightedGoal{Goal: types.GoalLookTaller, Weight: derivedStrong})
	}
	if b.BellyZone > 0.5 || (b.GoalBelly != nil && *b.GoalBelly == "minimize") {
		derived = append(derived, types.WeightedGoal{Goal: types.GoalHideMidsection, Weight: derivedStrong})
	}
	if b.Shape() == types.ShapePear || b.HipZone > 0.5 || (b.GoalHip != nil && *b.GoalHip == "narrower") {
		derived = append(derived, types.WeightedGoal{Goal: types.GoalSlimHips, Weight: derivedStrong})
	}
	if b.UpperArmZone > 0.5 || (b.GoalArm != nil && *b.GoalArm == "slimmer") {
		derived = append(derived, types.WeightedGoal{Goal: types.GoalMinimizeArms, Weight: derivedInferred})
	}
	if b.LegRatio() < 0.55 {
		derived = append(derived, types.WeightedGoal{Goal: types.GoalLookProportional, Weight: derivedInferred})
	}
	return derived
}
