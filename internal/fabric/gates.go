package fabric

import (
	"fmt"

	"github.com/kridha/fit-engine/internal/types"
)

// Gate rule IDs, referenced by tests and the composite stage.
const (
	GateDarkShiny       = "GATE_DARK_SHINY"
	GateALineShelf      = "GATE_ALINE_SHELF"
	GateWrapGapping     = "GATE_WRAP_GAPPING"
	GateStructured      = "GATE_STRUCTURED"
	GateFluidAppleBelly = "GATE_FLUID_APPLE_BELLY"
	GateClingTrap       = "GATE_CLING_TRAP"
)

// StructuredPenaltyFactor is the share of a negative principle score that
// survives when a structured garment fires GATE_STRUCTURED.
const StructuredPenaltyFactor = 0.30

// RunGates evaluates every fabric gate rule independently and returns the
// triggered exceptions. Rules are not mutually exclusive.
func RunGates(g *types.GarmentProfile, b *types.BodyProfile, r Resolved) []types.ExceptionTriggered {
	var exceptions []types.ExceptionTriggered

	// Gate 1: dark + shiny inversion.
	if g.IsDark() && r.SheenScore > 0.50 {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateDarkShiny,
			RuleOverridden: "dark_slimming",
			Reason: fmt.Sprintf(
				"Dark (L=%.2f) + high sheen (SI=%.2f): sheen amplifies body contours, partially negating dark slimming benefit",
				g.ColorLightness, r.SheenScore),
			Confidence: 0.80,
		})
	}

	// Gate 2: A-line stiff-fabric shelf effect.
	if g.Silhouette == types.SilhouetteALine && r.DrapeCoefficient != nil && *r.DrapeCoefficient >= 65 {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateALineShelf,
			RuleOverridden: "aline_balance",
			Reason: fmt.Sprintf(
				"A-line + stiff fabric (DC=%.0f%%): fabric won't drape, creates shelf effect at hips",
				*r.DrapeCoefficient),
			Confidence: 0.82,
		})
	}

	// Gate 3: wrap dress gapping risk.
	if g.Neckline == types.NecklineWrap && b.BustDifferential() >= 6 && r.SurfaceFriction < 0.3 {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateWrapGapping,
			RuleOverridden: "wrap_neckline",
			Reason: fmt.Sprintf(
				"Wrap neckline + large bust (BD=%.1f\") + slippery fabric (friction=%.2f): high gaping risk",
				b.BustDifferential(), r.SurfaceFriction),
			Confidence: 0.75,
		})
	}

	// Gate 4: tailoring override for structured garments.
	if r.IsStructured {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateStructured,
			RuleOverridden: "negative_penalties",
			Reason:         "Structured garment (boning/lining): negative penalties reduced ~70%, construction provides body sculpting",
			Confidence:     0.85,
		})
	}

	// Gate 5: fluid fabric on a belly concern zone.
	if r.DrapeCoefficient != nil && *r.DrapeCoefficient > 60 && b.BellyZone > 0.3 &&
		g.Silhouette != types.SilhouetteFitted && g.Silhouette != types.SilhouetteSemiFitted {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateFluidAppleBelly,
			RuleOverridden: "tent_concealment",
			Reason: fmt.Sprintf(
				"Fluid/drapey fabric (DC=%.0f%%) on belly concern zone (%.2f): fabric clings to belly contour instead of skimming",
				*r.DrapeCoefficient, b.BellyZone),
			Confidence: 0.72,
		})
	}

	// Gate 6: cling trap, matte but clingy on curves.
	if r.SheenScore < 0.30 && r.ClingRiskBase != nil && *r.ClingRiskBase > 0.6 &&
		(b.IsPlusSize() || b.HipZone > 0.5 || b.BellyZone > 0.5) {
		exceptions = append(exceptions, types.ExceptionTriggered{
			ExceptionID:    GateClingTrap,
			RuleOverridden: "matte_zone",
			Reason: fmt.Sprintf(
				"Matte (SI=%.2f) but clingy (cling=%.2f): creates second-skin effect on curves, overriding matte benefit",
				r.SheenScore, *r.ClingRiskBase),
			Confidence: 0.78,
		})
	}

	return exceptions
}

// StructuredPenaltyReduction returns the factor applied to negative
// principle scores: StructuredPenaltyFactor when GATE_STRUCTURED fired,
// else 1.0 (no reduction).
func StructuredPenaltyReduction(exceptions []types.ExceptionTriggered) float64 {
	for _, ex := range exceptions {
		if ex.ExceptionID == GateStructured {
			return StructuredPenaltyFactor
		}
	}
	return 1.0
}
