// Package rules holds the immutable empirical lookup tables the scoring
// engine is built on: fabric physics multipliers, body-landmark thresholds,
// and per-principle confidence. All tables are constructed once at process
// start and never mutated.
package rules

import "github.com/kridha/fit-engine/internal/types"

// FiberGSMMultipliers adjusts estimated GSM for fiber density.
var FiberGSMMultipliers = map[string]float64{
	"cotton":    1.15,
	"polyester": 1.00,
	"silk":      0.85,
	"wool":      1.10,
	"rayon":     0.90,
	"linen":     1.25,
	"nylon":     0.95,
	"tencel":    0.92,
	"modal":     0.90,
	"viscose":   0.90,
}

// ElastaneMultipliers maps construction to the elastane stretch multiplier.
var ElastaneMultipliers = map[types.FabricConstruction]float64{
	types.ConstructionWoven:      1.6,
	types.ConstructionKnit:       4.0,
	types.ConstructionKnitRib:    5.5,
	types.ConstructionKnitDouble: 3.5,
	types.ConstructionKnitJersey: 4.0,
}

// SheenMap maps surface finish to a 0-1 sheen score.
var SheenMap = map[types.SurfaceFinish]float64{
	types.SurfaceDeepMatte:     0.00,
	types.SurfaceMatte:         0.10,
	types.SurfaceSubtleSheen:   0.25,
	types.SurfaceModerateSheen: 0.50,
	types.SurfaceHighShine:     0.75,
	types.SurfaceMaximumShine:  1.00,
	types.SurfaceCrushed:       0.35,
}

// HeelEfficiencyTier is one band of heel height to visual-extension
// efficiency. Taller heels convert less of their height to perceived leg.
type HeelEfficiencyTier struct {
	MinInches  float64
	MaxInches  float64
	Efficiency float64
}

// HeelEfficiency lists the heel height tiers, lowest first.
var HeelEfficiency = []HeelEfficiencyTier{
	{0, 3, 0.70},
	{3, 5, 0.60},
	{5, 99, 0.50},
}

// waistPositionMultipliers scales torso length to the visual waist
// position, measured from the shoulder.
var waistPositionMultipliers = map[string]float64{
	"empire":  0.35,
	"high":    0.65,
	"natural": 1.0,
	"drop":    1.15,
}

// WaistPositionMultiplier returns the torso-length multiplier for a waist
// position. The second return is false for no_waist and unknown positions,
// which fall back to the natural waist.
func WaistPositionMultiplier(position string) (float64, bool) {
	m, ok := waistPositionMultipliers[position]
	return m, ok
}

// HemTypeModifiers adjusts perceived sleeve width by hem construction,
// in inches.
var HemTypeModifiers = map[string]float64{
	"clean_hem": 0.0,
	"elastic":   0.15,
	"soft_edge": -0.10,
	"flutter":   -0.20,
	"rolled":    0.10,
}

// ShoulderWidthModifiers is the shoulder width effect per side, in inches,
// by sleeve construction.
var ShoulderWidthModifiers = map[types.SleeveType]float64{
	types.SleeveSetIn:  0.0,
	types.SleeveRaglan: -0.5,
	types.SleevePuff:   1.5,
	types.SleeveCap:    0.25,
	types.SleeveDolman: -0.5,
}

// VDepthRange is the optimal V-neck depth band for a body classification.
type VDepthRange struct {
	Min     float64
	Optimal float64
	Max     float64
}

// OptimalVDepth gives V-neck depth bands in inches by body tag.
var OptimalVDepth = map[string]VDepthRange{
	"petite":               {2.5, 3.5, 4.5},
	"tall":                 {3.0, 4.5, 6.0},
	"pear":                 {3.0, 4.0, 5.5},
	"apple":                {3.0, 4.0, 5.0},
	"hourglass":            {2.5, 3.5, 4.5},
	"hourglass_DD_plus":    {2.0, 3.0, 3.5},
	"rectangle":            {3.0, 4.5, 6.0},
	"inverted_triangle":    {3.0, 4.0, 5.0},
	"plus_size_large_bust": {2.0, 3.0, 3.5},
}

// bustDividingThresholds maps bust differential (bust minus underbust,
// cup size proxy) to the V-depth at which the neckline divides the bust.
var bustDividingThresholds = []struct {
	maxDifferential float64
	threshold       float64
}{
	{4, 7.0}, // A-B cup
	{5, 6.0}, // C cup
	{6, 5.0}, // D cup
	{7, 4.5}, // DD cup
	{8, 4.0}, // E cup
	{9, 3.5}, // F+ cup
}

// BustDividingThreshold returns the V-neck dividing depth threshold for a
// bust differential.
func BustDividingThreshold(bustDifferential float64) float64 {
	for _, row := range bustDividingThresholds {
		if bustDifferential <= row.maxDifferential {
			return row.threshold
		}
	}
	return 3.5 // F+ cup
}

// PrincipleConfidence carries the evidence-strength confidence per rule.
var PrincipleConfidence = map[string]float64{
	"v_neck_dividing_threshold":      0.85,
	"boat_neck_inverted_triangle":    0.92,
	"puff_inverted_triangle":         0.92,
	"three_quarter_arm_slimming":     0.85,
	"cap_sleeve_danger_zone":         0.80,
	"hemline_zone_collision_petite":  0.82,
	"hemline_sleeve_anatomical":      0.90,
	"dark_color_slimming":            0.70,
	"wrap_waist_apple":               0.72,
	"turtleneck_column":              0.68,
	"waist_placement_golden_ratio":   0.75,
	"empire_tent_thresholds":         0.65,
	"skin_tone_contrast":             0.60,
	"stripe_effect_ashida":           0.55,
	"pattern_scale_effect":           0.40,
	"fit_flare_pear_origin":          0.50,
	"cowl_bust_volume":               0.50,
	"contour_smoothness":             0.45,
}

// DefaultConfidence is used wherever a rule has no explicit entry.
const DefaultConfidence = 0.70

// ConfidenceFor returns the confidence for a rule ID, defaulting to 0.70.
func ConfidenceFor(ruleID string) float64 {
	if c, ok := PrincipleConfidence[ruleID]; ok {
		return c
	}
	return DefaultConfidence
}

// CutRatioRange is the ideal hem-from-floor/height band for a hem style.
type CutRatioRange struct {
	Lo float64
	Hi float64
}

// ProportionCutRatios gives ideal proportion cut ratios per hem label.
var ProportionCutRatios = map[string]CutRatioRange{
	"mini":       {0.40, 0.50},
	"above_knee": {0.28, 0.35},
	"below_knee": {0.22, 0.27},
	"midi":       {0.14, 0.18},
	"ankle":      {0.06, 0.10},
}
