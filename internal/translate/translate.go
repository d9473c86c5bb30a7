package translate

import (
	"github.com/kridha/fit-engine/internal/fabric"
	"github.com/kridha/fit-engine/internal/types"
)

// Which garment categories each projection applies to. A top has no
// hemline landing on the leg; pants have no neckline-driven waist seam
// shift beyond their rise, which the waist set covers.
var hemCategories = map[types.GarmentCategory]bool{
	types.CategoryDress:    true,
	types.CategorySkirt:    true,
	types.CategoryJumpsuit: true,
	types.CategoryRomper:   true,
	types.CategoryCoat:     true,
}

var sleeveCategories = map[types.GarmentCategory]bool{
	types.CategoryDress:        true,
	types.CategoryTop:          true,
	types.CategoryJumpsuit:     true,
	types.CategoryRomper:       true,
	types.CategoryJacket:       true,
	types.CategoryCoat:         true,
	types.CategorySweatshirt:   true,
	types.CategoryCardigan:     true,
	types.CategoryBodysuit:     true,
	types.CategoryLoungewear:   true,
	types.CategoryActivewear:   true,
	types.CategorySaree:        true,
	types.CategorySalwarKameez: true,
	types.CategoryLehenga:      true,
}

var waistCategories = map[types.GarmentCategory]bool{
	types.CategoryDress:        true,
	types.CategoryJumpsuit:     true,
	types.CategoryRomper:       true,
	types.CategoryCoat:         true,
	types.CategoryBottomPants:  true,
	types.CategoryBottomShorts: true,
	types.CategorySkirt:        true,
}

// Projection bundles the per-aspect translation results for the scorers
// that consume them directly.
type Projection struct {
	Hemline   *HemlineResult
	Sleeve    *SleeveResult
	Waistline *WaistlineResult
	Adjusted  types.BodyAdjustedGarment
}

// GarmentToBody projects the garment onto the body, running only the
// projections the garment category supports.
func GarmentToBody(g *types.GarmentProfile, b *types.BodyProfile, r fabric.Resolved) Projection {
	adjusted := types.BodyAdjustedGarment{
		VisualLegRatio:       types.GoldenRatio,
		TotalStretchPct:      r.TotalStretchPct,
		SheenScore:           r.SheenScore,
		PhotoRealityDiscount: fabric.PhotoRealityDiscount(g, b),
	}
	if r.EffectiveGSM != nil {
		adjusted.EffectiveGSM = *r.EffectiveGSM
	} else if g.GSMEstimated != nil {
		adjusted.EffectiveGSM = *g.GSMEstimated
	} else {
		adjusted.EffectiveGSM = 150.0
	}

	proj := Projection{}

	if hemCategories[g.Category] {
		hem := ComputeHemline(g, b, r.EffectiveGSM)
		proj.Hemline = &hem
		adjusted.HemFromFloor = hem.HemFromFloor
		adjusted.HemZone = hem.Zone
		adjusted.HemlineDangerZones = hem.DangerZones
		adjusted.HemlineSafeZone = hem.SafeZone
		adjusted.FabricRiseAdjustment = hem.FabricRiseAdjustment
	}

	adjusted.ArmProminenceSeverity = 0.5
	if sleeveCategories[g.Category] {
		sleeve := ComputeSleeve(g, b)
		proj.Sleeve = &sleeve
		adjusted.SleeveEndpointPosition = sleeve.EndpointPosition
		adjusted.PerceivedArmWidth = sleeve.PerceivedArmWidth
		adjusted.ArmWidthDelta = sleeve.Delta
		adjusted.ArmProminenceSeverity = sleeve.Severity
	}

	if waistCategories[g.Category] {
		waist := ComputeWaistline(g, b)
		proj.Waistline = &waist
		adjusted.VisualWaistHeight = waist.VisualWaistHeight
		adjusted.VisualLegRatio = AdjustedLegRatio(b, waist.VisualLegRatio)
		adjusted.ProportionImprovement = waist.ProportionImprovement
	}

	proj.Adjusted = adjusted
	return proj
}
