package translate

import (
	"math"

	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/types"
)

// WaistlineResult is the perceived proportion shift from where the
// garment places the visual waist.
type WaistlineResult struct {
	VisualWaistFromShoulder float64
	VisualWaistHeight       float64 // inches from floor
	VisualLegRatio          float64
	ProportionImprovement   float64 // -0.80 to +0.80
	Applicable              bool
}

// ComputeWaistline evaluates the garment's waist placement against the
// golden leg ratio. Garments with no waist seam read at the natural waist
// and produce no shift.
func ComputeWaistline(g *types.GarmentProfile, b *types.BodyProfile) WaistlineResult {
	mult, known := rules.WaistPositionMultiplier(g.WaistPosition)
	if !known {
		mult = 1.0
	}

	visualWaist := b.TorsoLength * mult
	shift := b.TorsoLength - visualWaist

	// Only about a quarter of the geometric shift survives perception:
	// the eye anchors on the real waist, hips, and shoulders.
	perceptual := shift * 0.25

	visualLeg := b.LegLengthVisual + perceptual
	visualLegRatio := 0.618
	if b.Height > 0 {
		visualLegRatio = visualLeg / b.Height
	}

	before := math.Abs(b.LegRatio() - types.GoldenRatio)
	after := math.Abs(visualLegRatio - types.GoldenRatio)
	improvement := types.Clamp((before-after)*8, -0.80, 0.80)

	return WaistlineResult{
		VisualWaistFromShoulder: visualWaist,
		VisualWaistHeight:       b.Height - b.TorsoLength + perceptual,
		VisualLegRatio:          visualLegRatio,
		ProportionImprovement:   improvement,
		Applicable:              g.WaistPosition != "no_waist",
	}
}
