package principles

import "github.com/kridha/fit-engine/internal/types"

// baseWeights is the evidence-strength weight of each base scorer in the
// composite. Garment-anatomy scorers (hemline, sleeve, waist placement)
// carry the most weight; weak color heuristics the least.
var baseWeights = map[string]float64{
	NameHStripe:          0.10,
	NameDarkSlimming:     0.08,
	NameRiseElongation:   0.08,
	NameALine:            0.10,
	NameTent:             0.12,
	NameColorBreak:       0.08,
	NameBodycon:          0.12,
	NameMatte:            0.06,
	NameVNeck:            0.10,
	NameMonochrome:       0.06,
	NameHemline:          0.18,
	NameSleeve:           0.15,
	NameWaistPlacement:   0.15,
	NameColorValue:       0.08,
	NameFabricZone:       0.10,
	NameNecklineCompound: 0.12,
}

// typeWeights is the composite weight of each type-specific scorer.
var typeWeights = map[string]float64{
	NameTopHemline: 0.15,
	NamePantRise:   0.18,
	NameLegShape:   0.15,
	NameJacket:     0.18,
}

// WeightFor returns the composite weight for a scorer name.
func WeightFor(name string) float64 {
	if w, ok := baseWeights[name]; ok {
		return w
	}
	if w, ok := typeWeights[name]; ok {
		return w
	}
	return 0.10
}

// scorersToSkip lists the base scorers that make no sense for a garment
// category: pants have no neckline, tops have no leg hemline.
var scorersToSkip = map[types.GarmentCategory]map[string]bool{
	types.CategoryTop:        {NameHemline: true},
	types.CategorySweatshirt: {NameHemline: true},
	types.CategoryBodysuit:   {NameHemline: true},
	types.CategoryJacket:     {NameHemline: true},
	types.CategoryCardigan:   {NameHemline: true},
	types.CategoryBottomPants: {
		NameVNeck: true, NameNecklineCompound: true, NameSleeve: true,
		NameRiseElongation: true, NameHemline: true,
	},
	types.CategoryBottomShorts: {
		NameVNeck: true, NameNecklineCompound: true, NameSleeve: true,
		NameRiseElongation: true, NameHemline: true,
	},
	types.CategorySkirt: {
		NameVNeck: true, NameNecklineCompound: true, NameSleeve: true,
		NameRiseElongation: true,
	},
	types.CategoryVest: {NameHemline: true, NameSleeve: true},
}

// extraScorers lists the type-specific scorers each category adds.
var extraScorers = map[types.GarmentCategory][]string{
	types.CategoryTop:          {NameTopHemline},
	types.CategorySweatshirt:   {NameTopHemline},
	types.CategoryBodysuit:     {NameTopHemline},
	types.CategoryCardigan:     {NameTopHemline},
	types.CategoryBottomPants:  {NamePantRise, NameLegShape},
	types.CategoryBottomShorts: {NamePantRise, NameLegShape},
	types.CategoryJacket:       {NameJacket},
	types.CategoryCoat:         {NameJacket},
}

// SkipsScorer reports whether the category excludes the named base scorer.
func SkipsScorer(cat types.GarmentCategory, name string) bool {
	return scorersToSkip[cat][name]
}

// ExtraScorersFor returns the type-specific scorer names the category adds.
func ExtraScorersFor(cat types.GarmentCategory) []string {
	return extraScorers[cat]
}

// layerCategories are the garments worn over another garment, which get
// layer-interaction analysis.
var layerCategories = map[types.GarmentCategory]bool{
	types.CategoryJacket:   true,
	types.CategoryCoat:     true,
	types.CategoryCardigan: true,
	types.CategoryVest:     true,
}

// IsLayerCategory reports whether the category is an over-layer.
func IsLayerCategory(cat types.GarmentCategory) bool {
	return layerCategories[cat]
}

// scorerZones maps each scorer to the body zones its score rolls up to.
var scorerZones = map[string][]string{
	NameHStripe:          {"torso"},
	NameDarkSlimming:     {"torso"},
	NameRiseElongation:   {"waist"},
	NameALine:            {"hip"},
	NameTent:             {"torso", "hip"},
	NameColorBreak:       {"waist"},
	NameBodycon:          {"torso", "hip", "thigh"},
	NameMatte:            {"torso", "hip"},
	NameVNeck:            {"bust", "shoulder"},
	NameMonochrome:       {"torso"},
	NameHemline:          {"knee", "calf", "ankle"},
	NameSleeve:           {"upper_arm", "shoulder"},
	NameWaistPlacement:   {"waist"},
	NameColorValue:       {"torso"},
	NameFabricZone:       {"torso", "hip"},
	NameNecklineCompound: {"bust"},
	NameTopHemline:       {"hip", "torso"},
	NamePantRise:         {"waist"},
	NameLegShape:         {"hip", "thigh"},
	NameJacket:           {"shoulder", "waist", "hip", "torso"},
}

// ZonesFor returns the body zones a scorer contributes to.
func ZonesFor(name string) []string {
	return scorerZones[name]
}

// fixEntry is the actionable change that would lift one scorer's penalty.
type fixEntry struct {
	suggestion  string
	improvement float64
}

// fixTable maps a penalized scorer to the change most likely to fix it.
var fixTable = map[string]fixEntry{
	NameTent:           {"Try semi-fitted silhouette (ER 0.03-0.08)", 0.20},
	NameBodycon:        {"Add structured layer or choose heavier fabric (GSM 250+)", 0.25},
	NameColorBreak:     {"Remove contrasting belt or switch to tonal belt", 0.10},
	NameALine:          {"Choose fabric with lower drape coefficient (<40%)", 0.15},
	NameRiseElongation: {"Choose wider elastic waistband (5cm+, 8%+ stretch)", 0.15},
	NameVNeck:          {"Choose V-neck instead of boat/turtleneck", 0.12},
	NameHemline:        {"Adjust hem to avoid knee/calf danger zones", 0.20},
	NameSleeve:         {"Choose 3/4 sleeve for optimal arm slimming", 0.25},
	NameHStripe:        {"Replace horizontal stripes with solid or vertical lines", 0.10},
	NameDarkSlimming:   {"Choose dark chocolate/burgundy for warm skin tones", 0.08},
	NameTopHemline:     {"Try tucking in or choosing a cropped/waist-length top", 0.20},
	NamePantRise:       {"Choose high-rise pants to elongate your leg line", 0.25},
	NameLegShape:       {"Try wide-leg or straight-leg pants for your body type", 0.20},
	NameJacket:         {"Try a cropped or waist-length jacket with natural shoulders", 0.15},
}
