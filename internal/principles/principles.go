// Package principles implements the styling-principle scorers. Each scorer
// evaluates one visual effect of the garment on the body and returns a
// score in [-1, 1] with a structured reasoning trail. Scorers are pure
// functions of the input; inapplicable scorers say so explicitly instead
// of returning a disguised zero.
package principles

import (
	"github.com/kridha/fit-engine/internal/fabric"
	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/translate"
	"github.com/kridha/fit-engine/internal/types"
)

// Canonical scorer names. Goal participation maps, weight tables, and fix
// suggestions all key on these.
const (
	NameHStripe          = "horizontal_stripe_thinning"
	NameDarkSlimming     = "dark_color_slimming"
	NameRiseElongation   = "rise_elongation"
	NameALine            = "a_line_balance"
	NameTent             = "tent_concealment"
	NameColorBreak       = "color_break"
	NameBodycon          = "bodycon_honesty"
	NameMatte            = "matte_zone"
	NameVNeck            = "v_neck_elongation"
	NameMonochrome       = "monochrome_column"
	NameHemline          = "hemline_placement"
	NameSleeve           = "sleeve_interaction"
	NameWaistPlacement   = "waist_placement"
	NameColorValue       = "color_value"
	NameFabricZone       = "fabric_zone_composite"
	NameNecklineCompound = "neckline_compound"

	NameTopHemline = "top_hemline"
	NamePantRise   = "pant_rise"
	NameLegShape   = "leg_shape"
	NameJacket     = "jacket_structure"
)

// Input bundles everything a scorer may consult.
type Input struct {
	G      *types.GarmentProfile
	B      *types.BodyProfile
	Fabric fabric.Resolved
	Proj   *translate.Projection
}

// Scorer pairs a principle name with its scoring function and the body
// zones its score rolls up to.
type Scorer struct {
	Name  string
	Zones []string
	Score func(in Input) types.PrincipleResult
}

// BaseScorers returns the sixteen always-considered scorers in evaluation
// order. Category skip rules are applied by the caller.
func BaseScorers() []Scorer {
	return []Scorer{
		{NameHStripe, []string{"torso"}, scoreStripes},
		{NameDarkSlimming, []string{"torso"}, scoreDarkSlimming},
		{NameRiseElongation, []string{"waist"}, scoreRiseElongation},
		{NameALine, []string{"hip"}, scoreALine},
		{NameTent, []string{"torso", "hip"}, scoreTent},
		{NameColorBreak, []string{"waist"}, scoreColorBreak},
		{NameBodycon, []string{"torso", "hip", "thigh"}, scoreBodycon},
		{NameMatte, []string{"torso", "hip"}, scoreMatte},
		{NameVNeck, []string{"bust", "shoulder"}, scoreVNeck},
		{NameMonochrome, []string{"torso"}, scoreMonochrome},
		{NameHemline, []string{"knee", "calf", "ankle"}, scoreHemline},
		{NameSleeve, []string{"upper_arm", "shoulder"}, scoreSleeve},
		{NameWaistPlacement, []string{"waist"}, scoreWaistPlacement},
		{NameColorValue, []string{"torso"}, scoreColorValue},
		{NameFabricZone, []string{"torso", "hip"}, scoreFabricZone},
		{NameNecklineCompound, []string{"bust"}, scoreNecklineCompound},
	}
}

// TypeScorers returns the garment-type-specific scorers keyed by name.
func TypeScorers() map[string]Scorer {
	return map[string]Scorer{
		NameTopHemline: {NameTopHemline, []string{"hip", "torso"}, scoreTopHemline},
		NamePantRise:   {NamePantRise, []string{"waist"}, scorePantRise},
		NameLegShape:   {NameLegShape, []string{"hip", "thigh"}, scoreLegShape},
		NameJacket:     {NameJacket, []string{"shoulder", "waist", "hip", "torso"}, scoreJacket},
	}
}

// result assembles an applicable scorer outcome with the base weight and
// the evidence confidence of the rule that drove the score.
func result(name string, score float64, trail types.Trail) types.PrincipleResult {
	return types.PrincipleResult{
		Name:       name,
		Score:      types.ClampUnit(score),
		Trail:      trail,
		Weight:     WeightFor(name),
		Applicable: true,
		Confidence: rules.ConfidenceFor(dominantRule(trail)),
	}
}

// dominantRule returns the rule ID of the trail step with the largest
// score movement. An empty trail yields an empty ID, which maps to the
// default confidence.
func dominantRule(trail types.Trail) string {
	id := ""
	max := 0.0
	for _, s := range trail {
		d := s.Delta
		if d < 0 {
			d = -d
		}
		if id == "" || d > max {
			id = s.RuleID
			max = d
		}
	}
	return id
}
