package fabric

import (
	"math"

	"github.com/kridha/fit-engine/internal/types"
)

// Reference product-photo model measurements in inches.
var refModel = map[string]float64{
	"bust":      34.0,
	"waist":     25.0,
	"hip":       35.0,
	"upper_arm": 10.0,
	"thigh":     20.0,
}

// How much each inch of gap between the user and the photo model matters,
// per zone.
var zoneGapCoefficients = map[string]float64{
	"bust":      0.08,
	"waist":     0.06,
	"hip":       0.10,
	"upper_arm": 0.04,
	"thigh":     0.07,
}

// Photo honesty by brand tier. Luxury photography runs closest to reality;
// fast fashion runs the most misleading.
var brandMultipliers = map[types.BrandTier]float64{
	types.TierLuxury:      0.85,
	types.TierPremium:     0.90,
	types.TierMidMarket:   1.00,
	types.TierMassMarket:  1.10,
	types.TierFastFashion: 1.20,
}

// PhotoRealityDiscount estimates how different the garment will look on
// this body versus the product photo. Returns 0.0 (identical) to 0.55
// (very different).
func PhotoRealityDiscount(g *types.GarmentProfile, b *types.BodyProfile) float64 {
	zones := map[string]float64{
		"bust":      b.Bust,
		"waist":     b.Waist,
		"hip":       b.Hip,
		"upper_arm": b.CUpperArmMax,
		"thigh":     b.CThighMax,
	}

	totalGap := 0.0
	for zone, userCirc := range zones {
		gap := math.Abs(userCirc - refModel[zone])
		coeff, ok := zoneGapCoefficients[zone]
		if !ok {
			coeff = 0.05
		}
		totalGap += gap * coeff
	}

	brandMult, ok := brandMultipliers[g.BrandTier]
	if !ok {
		brandMult = 1.0
	}
	return math.Min(0.55, totalGap*brandMult)
}
