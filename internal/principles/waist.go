package principles

import (
	"github.com/kridha/fit-engine/internal/types"
)

// scoreRiseElongation rates how a stated waist seam rise lengthens or
// shortens the visual leg on this torso.
func scoreRiseElongation(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if g.RiseCm == nil {
		return types.NotApplicable(NameRiseElongation, "no rise measurement")
	}
	rise := *g.RiseCm

	base := types.Clamp((rise-20)*0.015, -0.20, 0.20)
	trail = trail.Add("rise_base", base, "rise vs the 20cm neutral point")

	if b.IsPetite() {
		if b.TorsoScore() <= -1 && rise > 26 {
			trail = trail.Add("rise_petite_short_torso", -0.30, "ultra-high rise leaves no torso at all")
			return result(NameRiseElongation, -0.30, trail)
		}
		if b.TorsoScore() >= 1 {
			base *= 1.5
			trail = trail.Add("rise_petite_long_torso", 0, "high rise rebalances a long petite torso")
		} else {
			base *= 1.3
		}
	}
	if b.IsTall() {
		base *= 0.5
	}

	if (b.Shape() == types.ShapeApple || b.IsPlusSize()) && b.BellyZone > 0.3 {
		if g.WaistbandWidthCm >= 5 && g.WaistbandStretch >= 8 {
			base += 0.10
			trail = trail.Add("rise_wide_stretch_band", 0.10, "wide stretch waistband smooths over the belly")
		} else if g.WaistbandWidthCm < 3 && g.WaistbandStretch < 5 {
			trail = trail.Add("rise_narrow_rigid_band", -0.25, "narrow rigid band digs in and creates a roll line")
			return result(NameRiseElongation, -0.25, trail)
		}
	}

	if b.Shape() == types.ShapeHourglass && rise > 24 {
		base += 0.03
	}
	if b.Shape() == types.ShapeInvertedTriangle && rise > 26 && g.ExpansionRate < 0.03 {
		base *= 0.6
	}

	return result(NameRiseElongation, base, trail)
}

// scoreColorBreak rates a horizontal color interruption at the waist,
// usually a belt. Breaking the column shortens; on a defined waist it
// instead anchors the narrowest point.
func scoreColorBreak(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if !g.HasContrastingBelt && !g.HasTonalBelt {
		return types.NotApplicable(NameColorBreak, "no belt or color break at the waist")
	}
	if g.HasTonalBelt && !g.HasContrastingBelt {
		trail = trail.Add("tonal_break", -0.03, "tonal belt barely interrupts the column")
		return result(NameColorBreak, -0.03, trail)
	}

	if b.Shape() == types.ShapeHourglass {
		score := 0.20
		if g.BeltWidthCm >= 5 {
			score = 0.25
		}
		trail = trail.Add("break_hourglass", score, "contrast at the narrowest point showcases the waist")
		return result(NameColorBreak, score, trail)
	}

	score := -0.10
	trail = trail.Add("break_base", -0.10, "horizontal break cuts the vertical line")

	switch b.Shape() {
	case types.ShapeApple:
		score = -0.25
		trail = trail.Add("break_apple", -0.25, "draws the eye to the widest point")
	case types.ShapeInvertedTriangle:
		score = 0.08
	case types.ShapeRectangle:
		score = 0.05
		trail = trail.Add("break_rectangle", 0.05, "manufactures a waist the frame lacks")
	case types.ShapePear:
		if b.WHR() < 0.75 {
			score = 0.05
		} else {
			score = -0.10
		}
	}

	if b.IsPetite() {
		score *= 1.5
	}
	if b.IsTall() {
		score *= 0.3
	}
	if b.IsPlusSize() {
		if b.BellyZone > 0.5 {
			if score > -0.20 {
				score = -0.20
			}
		} else if b.BellyZone < 0.2 && score < 0.05 {
			score = 0.05
		}
	}

	return result(NameColorBreak, score, trail)
}

// scoreWaistPlacement rates where the garment places the visual waist
// against the golden leg ratio, with the empire and drop failure modes.
func scoreWaistPlacement(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if in.Proj == nil || in.Proj.Waistline == nil || !in.Proj.Waistline.Applicable {
		return types.NotApplicable(NameWaistPlacement, "garment has no waist seam to place")
	}
	w := in.Proj.Waistline

	score := w.ProportionImprovement
	trail = trail.Add("waist_placement_golden_ratio", score, "visual waist shift vs golden leg ratio")

	drape := 5.0
	if g.Drape != nil {
		drape = *g.Drape
	}

	if g.WaistPosition == "empire" && b.Shape() == types.ShapeHourglass {
		var adj float64
		switch {
		case in.Fabric.TotalStretchPct > 10:
			adj = -0.10
		case drape > 7:
			adj = -0.15
		default:
			adj = -0.30
		}
		score += adj
		trail = trail.Add("empire_hourglass", adj, "empire seam hides the defined natural waist")
	}

	if g.WaistPosition == "empire" && b.BustDifferential() >= 6 && drape < 4 {
		tentSeverity := b.BustDifferential() * 0.4 * (1 - drape/10)
		var adj float64
		switch {
		case tentSeverity > 2:
			adj = -0.45
		case tentSeverity > 1:
			adj = -0.25
		default:
			adj = -0.10
		}
		score += adj
		trail = trail.Add("empire_tent_thresholds", adj, "stiff fabric falls straight off the bust")
	}

	if g.WaistPosition == "drop" {
		if b.LegRatio() < 0.55 {
			score -= 0.30
			trail = trail.Add("drop_short_legs", -0.30, "drop waist shortens already-short legs")
		} else if b.LegRatio() < 0.58 {
			score -= 0.15
		}
	}

	if b.Shape() == types.ShapeApple && g.WaistPosition == "natural" &&
		g.HasContrastingBelt && b.WHR() > 0.85 {
		adj := -0.15
		if b.WHR() > 0.88 {
			adj = -0.30
		}
		score += adj
		trail = trail.Add("wrap_waist_apple", adj, "belted natural waist marks the widest point")
	}

	return result(NameWaistPlacement, types.Clamp(score, -0.80, 0.80), trail)
}
