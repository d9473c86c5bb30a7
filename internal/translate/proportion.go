package translate

import (
	"math"

	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/types"
)

// HeelLegExtension returns the perceived leg lengthening, in inches, from
// the footwear planned with the garment. Heels convert height to leg with
// diminishing efficiency; nude shoes extend the leg line visually; shoes
// that contrast the hemline cut it short.
func HeelLegExtension(b *types.BodyProfile) float64 {
	heel := b.HeelHeightInches
	extension := 0.0
	if heel > 0 {
		efficiency := 0.50
		for _, tier := range rules.HeelEfficiency {
			if heel >= tier.MinInches && heel < tier.MaxInches {
				efficiency = tier.Efficiency
				break
			}
		}
		extension = heel * efficiency
	}

	switch b.ShoeColorMatch {
	case "nude":
		extension += math.Min(2.0, heel*0.3)
	case "contrast":
		extension -= 1.0
	}
	return extension
}

// AdjustedLegRatio folds the footwear extension into a visual leg ratio.
func AdjustedLegRatio(b *types.BodyProfile, visualLegRatio float64) float64 {
	extension := HeelLegExtension(b)
	if extension == 0 || b.Height <= 0 {
		return visualLegRatio
	}
	return types.Clamp(visualLegRatio+extension/b.Height, 0, 1)
}
