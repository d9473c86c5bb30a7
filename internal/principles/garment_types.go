package principles

import "github.com/kridha/fit-engine/internal/types"

// scoreTopHemline rates where a top's hem ends and how it behaves: tucked,
// cropped, or pooling at the hip.
func scoreTopHemline(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	shape := b.Shape()
	gsm := effectiveGSM(in)
	relaxedFit := g.FitCategory != nil &&
		(*g.FitCategory == "relaxed" || *g.FitCategory == "loose")

	if g.TopHemBehavior != nil {
		switch *g.TopHemBehavior {
		case types.HemTucked:
			score := 0.15
			trail = trail.Add("tuck_waist_reveal", 0.15, "tucking shows the natural waist")
			if gsm > 250 {
				score = -0.20
				trail = trail.Add("tuck_heavy_fabric", -0.20, "heavy fabric bulks at the waistband when tucked")
			}
			return result(NameTopHemline, score, trail)

		case types.HemHalfTucked:
			score := 0.20
			trail = trail.Add("half_tuck", 0.20, "front tuck marks the waist while the back skims the hip")
			switch shape {
			case types.ShapePear:
				score += 0.10
			case types.ShapeApple:
				score += 0.05
			}
			if b.HasGoal(types.GoalHighlightWaist) {
				score += 0.10
			}
			if gsm > 250 {
				score = -0.15
			}
			return result(NameTopHemline, score, trail)

		case types.HemBodysuit:
			trail = trail.Add("bodysuit_clean_line", 0.10, "no hem break at all")
			return result(NameTopHemline, 0.10, trail)

		case types.HemCropped:
			if shape == types.ShapeApple && b.HasGoal(types.GoalHideMidsection) {
				trail = trail.Add("crop_exposes_midsection", -0.70, "crop exposes exactly the zone the wearer wants hidden")
				return result(NameTopHemline, -0.70, trail)
			}
			var score float64
			switch {
			case b.IsPetite() && b.TorsoLegRatio() < 0.48:
				score = -0.35
				trail = trail.Add("crop_short_torso", -0.35, "crop truncates an already short torso")
			case b.IsPetite():
				score = 0.30
				trail = trail.Add("crop_petite", 0.30, "raising the visual waist lengthens petite legs")
			default:
				score = 0.15
			}
			return result(NameTopHemline, score, trail)
		}
	}

	if g.TopHemLength == nil {
		return types.NotApplicable(NameTopHemline, "top hem length unknown")
	}

	switch *g.TopHemLength {
	case "cropped":
		if shape == types.ShapeApple && b.HasGoal(types.GoalHideMidsection) {
			trail = trail.Add("crop_exposes_midsection", -0.70, "crop exposes exactly the zone the wearer wants hidden")
			return result(NameTopHemline, -0.70, trail)
		}
		score := 0.15
		if b.IsPetite() {
			score = 0.30
			if b.TorsoLegRatio() < 0.48 {
				score = -0.35
			}
		}
		return result(NameTopHemline, score, trail)

	case "at_waist":
		score := 0.20
		trail = trail.Add("hem_at_waist", 0.20, "hem ends at the narrowest point")
		if b.HasGoal(types.GoalHighlightWaist) {
			score += 0.15
		}
		return result(NameTopHemline, score, trail)

	case "just_below_waist":
		trail = trail.Add("hem_just_below_waist", 0.15, "hem grazes just past the waist")
		return result(NameTopHemline, 0.15, trail)

	case "at_hip":
		var score float64
		switch shape {
		case types.ShapePear:
			score = -0.45
			if relaxedFit {
				score = -0.30
			}
			trail = trail.Add("hem_at_widest_hip", score, "hem ends exactly at the widest hip point")
			if b.HasGoal(types.GoalSlimHips) {
				score -= 0.10
			}
		case types.ShapeInvertedTriangle:
			score = 0.35
			trail = trail.Add("hem_hip_invt", 0.35, "hip-length hem adds lower volume to balance shoulders")
		case types.ShapeApple:
			score = -0.15
			if relaxedFit {
				score = 0.20
			}
		}
		return result(NameTopHemline, score, trail)

	case "below_hip", "tunic_length":
		var score float64
		if b.HasGoal(types.GoalHideMidsection) {
			score = 0.35
			trail = trail.Add("tunic_coverage", 0.35, "long hem covers the full midsection and hip")
		}
		if b.HasGoal(types.GoalLookTaller) {
			if *g.TopHemLength == "tunic_length" {
				score -= 0.35
			} else {
				score -= 0.20
			}
			trail = trail.Add("tunic_shortens_legs", 0, "long top eats into the visual leg line")
		}
		if b.IsPetite() && *g.TopHemLength == "tunic_length" {
			score -= 0.20
		}
		return result(NameTopHemline, score, trail)
	}

	return types.NotApplicable(NameTopHemline, "top hem length unknown")
}

// scorePantRise rates the rise of pants and shorts.
func scorePantRise(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	riseLabel := ""
	if g.Rise != nil {
		riseLabel = *g.Rise
	} else if g.RiseCm != nil {
		switch {
		case *g.RiseCm > 26:
			riseLabel = "high"
		case *g.RiseCm > 22:
			riseLabel = "mid"
		default:
			riseLabel = "low"
		}
	}
	if riseLabel == "" {
		return types.NotApplicable(NamePantRise, "no rise information")
	}

	switch riseLabel {
	case "high", "ultra_high":
		score := 0.25
		trail = trail.Add("high_rise_leg_line", 0.25, "high rise moves the visual waist up the torso")
		if b.HasGoal(types.GoalLookTaller) {
			score += 0.25
		}
		if b.HasGoal(types.GoalHighlightWaist) {
			score += 0.15
		}
		if b.Shape() == types.ShapeApple && b.WHR() > 0.85 {
			if in.Fabric.TotalStretchPct >= 8 {
				score -= 0.10
			} else {
				score -= 0.25
				trail = trail.Add("high_rise_rigid_apple", -0.25, "rigid high waistband digs into the midsection")
			}
		}
		if b.IsPetite() {
			score += 0.10
		}
		return result(NamePantRise, score, trail)

	case "mid":
		trail = trail.Add("mid_rise_neutral", 0.05, "mid rise sits near the natural waist")
		return result(NamePantRise, 0.05, trail)

	default: // low
		score := -0.15
		trail = trail.Add("low_rise_shortens", -0.15, "low rise pushes the visual waist down")
		if b.HasGoal(types.GoalLookTaller) {
			score -= 0.25
		}
		if b.IsPetite() {
			score -= 0.15
		}
		if b.HasGoal(types.GoalHideMidsection) {
			score -= 0.15
			trail = trail.Add("low_rise_muffin", -0.15, "low waistband cuts across the belly")
		}
		return result(NamePantRise, score, trail)
	}
}

// scoreLegShape rates the pant leg cut against hip and thigh proportions.
func scoreLegShape(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if g.LegShape == nil {
		return types.NotApplicable(NameLegShape, "no leg shape information")
	}

	shape := b.Shape()
	highRise := g.Rise != nil && (*g.Rise == "high" || *g.Rise == "ultra_high")
	lowRise := g.Rise != nil && *g.Rise == "low"

	switch *g.LegShape {
	case "skinny", "slim":
		cling := 0.0
		stretch := g.ElastanePct * g.StretchMultiplier()
		if stretch < 8 {
			if b.CThighMax > 24 {
				cling = -0.10
				trail = trail.Add("slim_low_stretch_thigh", -0.10, "low-stretch slim leg pulls tight at the thigh")
			} else if b.CThighMax > 22 {
				cling = -0.05
			}
		}
		var score float64
		switch shape {
		case types.ShapePear:
			score = -0.10
			if b.HasGoal(types.GoalSlimHips) {
				score = -0.35
				trail = trail.Add("skinny_pear_hips", -0.35, "skinny leg narrows below the hip and widens its read")
			}
			if highRise {
				score += 0.10
			}
		case types.ShapeInvertedTriangle:
			score = -0.25
			trail = trail.Add("skinny_invt", -0.25, "narrow leg exaggerates the top-heavy triangle")
		case types.ShapeRectangle, types.ShapeHourglass:
			score = 0.15
		}
		return result(NameLegShape, score+cling, trail)

	case "wide_leg", "palazzo":
		var score float64
		switch {
		case b.IsPetite():
			score = -0.30
			if highRise {
				score = 0.15
			}
			trail = trail.Add("wide_leg_petite", score, "wide leg needs a high rise to not swallow a petite frame")
		case shape == types.ShapePear:
			score = 0.40
			if highRise {
				score += 0.10
			}
			if lowRise {
				score -= 0.20
			}
			trail = trail.Add("wide_leg_pear", score, "straight fall from the widest hip hides the taper")
		case shape == types.ShapeInvertedTriangle:
			score = 0.40
			if highRise {
				score += 0.05
			}
		case shape == types.ShapeApple:
			score = 0.25
			if highRise && in.Fabric.TotalStretchPct >= 8 {
				score += 0.10
			}
			if lowRise {
				score -= 0.15
			}
		default:
			score = 0.15
		}
		return result(NameLegShape, score, trail)

	case "straight":
		trail = trail.Add("straight_column", 0.15, "straight leg draws one vertical line")
		return result(NameLegShape, 0.15, trail)

	case "bootcut", "flare":
		score := 0.15
		if shape == types.ShapePear {
			score = 0.30
			trail = trail.Add("flare_pear", 0.30, "flare below the knee balances the hip")
		}
		if b.HasGoal(types.GoalLookTaller) {
			score += 0.15
		}
		return result(NameLegShape, score, trail)

	case "tapered":
		score := 0.10
		if shape == types.ShapePear {
			score = -0.15
		}
		return result(NameLegShape, score, trail)

	case "jogger":
		score := 0.0
		if b.IsPetite() {
			score = -0.15
			trail = trail.Add("jogger_petite", -0.15, "cuffed ankle chops the leg line")
		}
		return result(NameLegShape, score, trail)
	}

	return types.NotApplicable(NameLegShape, "unrecognized leg shape")
}

// scoreJacket rates outerwear structure, length, and closure against the
// frame underneath.
func scoreJacket(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	shape := b.Shape()
	score := 0.0

	if g.ShoulderStructure != nil {
		switch *g.ShoulderStructure {
		case "padded", "structured":
			var adj float64
			switch shape {
			case types.ShapePear:
				adj = 0.50
				trail = trail.Add("structured_shoulder_pear", 0.50, "built shoulder balances wider hips")
			case types.ShapeInvertedTriangle:
				adj = -0.40
				trail = trail.Add("puff_inverted_triangle", -0.40, "padding widens already-broad shoulders")
			case types.ShapeRectangle:
				adj = 0.25
			default:
				adj = 0.10
			}
			score += adj
		case "dropped", "oversized":
			var adj float64
			switch {
			case shape == types.ShapeInvertedTriangle:
				adj = 0.20
			case b.IsPetite():
				adj = -0.30
				trail = trail.Add("dropped_shoulder_petite", -0.30, "dropped shoulder swamps a petite frame")
			default:
				adj = 0.05
			}
			score += adj
		}
	}

	if g.JacketLength != nil {
		switch *g.JacketLength {
		case "cropped":
			score += 0.30
			trail = trail.Add("cropped_jacket", 0.30, "crop keeps the waist visible and the leg line long")
			if b.HasGoal(types.GoalLookTaller) {
				score += 0.15
			}
		case "hip":
			switch shape {
			case types.ShapePear:
				score -= 0.30
				trail = trail.Add("hip_length_pear", -0.30, "jacket hem points at the widest hip")
			case types.ShapeInvertedTriangle:
				score += 0.20
			}
		case "mid_thigh", "knee", "below_knee", "full_length":
			if b.HasGoal(types.GoalLookTaller) {
				score -= 0.20
			}
			if b.HasGoal(types.GoalHideMidsection) || b.HasGoal(types.GoalSlimHips) {
				score += 0.30
				trail = trail.Add("long_jacket_coverage", 0.30, "long line covers the midsection and hip")
			}
		}
	}

	if g.JacketClosure != nil {
		switch *g.JacketClosure {
		case "open_front":
			score += 0.20
			trail = trail.Add("open_front_lines", 0.20, "open front draws two vertical lines")
		case "double_breasted":
			switch shape {
			case types.ShapeApple:
				score -= 0.15
			case types.ShapeRectangle:
				score += 0.10
			}
		}
	}

	return result(NameJacket, score, trail)
}
