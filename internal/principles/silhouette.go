package principles

import (
	"math"

	"github.com/kridha/fit-engine/internal/types"
)

// effectiveGSM returns the best available fabric weight for a scorer.
func effectiveGSM(in Input) float64 {
	if in.Fabric.EffectiveGSM != nil {
		return *in.Fabric.EffectiveGSM
	}
	if in.G.GSMEstimated != nil {
		return *in.G.GSMEstimated
	}
	return 150.0
}

// scoreALine rates the A-line expansion: a moderate flare skims problem
// zones, but too much flare adds volume, and stiff fabric shelves at the
// hip.
func scoreALine(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	er := g.ExpansionRate
	if er < 0.03 {
		return types.NotApplicable(NameALine, "no flare to evaluate")
	}

	var base float64
	switch {
	case er <= 0.06:
		base = 0.10 + (er-0.03)*5
	case er <= 0.12:
		base = 0.25
	case er <= 0.18:
		base = 0.25 - (er-0.12)*2.5
	default:
		base = math.Max(-0.10, 0.10-(er-0.18)*(0.10/0.12))
	}
	trail = trail.Add("flare_rate", base, "A-line expansion rate effect")

	drapeMult := 1.0
	if in.Fabric.DrapeCoefficient != nil {
		dc := *in.Fabric.DrapeCoefficient
		switch {
		case dc < 40:
			drapeMult = 1.0
		case dc < 65:
			drapeMult = 0.7
		default:
			drapeMult = -0.5
			trail = trail.Add("fit_flare_pear_origin", 0, "stiff fabric shelves at the hip instead of skimming")
		}
	}
	if b.IsPlusSize() && drapeMult < 0 {
		drapeMult *= 1.5
	}
	drapeMult = math.Max(drapeMult, -1)

	bonus := 0.0
	switch b.Shape() {
	case types.ShapeInvertedTriangle:
		bonus = 0.15
		trail = trail.Add("aline_invt", 0.15, "flare balances broad shoulders")
	case types.ShapeHourglass, types.ShapePear:
		bonus = 0.05
	case types.ShapeApple:
		bonus = 0.03
	}
	if b.IsTall() {
		bonus += 0.10
	}
	if b.IsPetite() {
		if er > 0.12 {
			bonus -= 0.15
			trail = trail.Add("aline_petite_volume", -0.15, "heavy flare swamps a petite frame")
		} else {
			bonus += 0.05
		}
	}

	hem := 0.0
	if b.Shape() == types.ShapePear {
		switch g.HemPosition {
		case "mini", "above_knee":
			hem = -0.10
			trail = trail.Add("aline_pear_hem", -0.10, "flare ending mid-thigh points at the widest hip line")
		case "knee":
			hem = 0.05
		}
	}

	return result(NameALine, base*drapeMult+bonus+hem, trail)
}

// scoreTent rates extreme volume. Tents conceal, but they also erase the
// body: the verdict depends on whether the wearer wants concealment or
// slimness.
func scoreTent(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	er := g.ExpansionRate
	shape := b.Shape()

	if er >= 0.03 && er <= 0.08 {
		score := 0.15
		trail = trail.Add("semi_fitted_skim", 0.15, "semi-fitted drape skims without hiding")
		if shape == types.ShapeHourglass {
			score = 0.05
			trail = trail.Add("semi_fitted_hourglass", 0.05, "semi-fitted drape slightly masks the curves")
		}
		if b.IsPlusSize() && in.Fabric.IsStructured {
			score = 0.20
			trail = trail.Add("structured_skim_plus", 0.20, "structure holds a smooth contained skim")
		}
		return result(NameTent, score, trail)
	}
	if er < 0.12 {
		return types.NotApplicable(NameTent, "not oversized enough to evaluate as a tent")
	}

	conceal := b.HasGoal(types.GoalConcealment) || b.HasGoal(types.GoalHideMidsection)
	slim := b.HasGoal(types.GoalSlimming) || b.HasGoal(types.GoalSlimHips)

	concealScore := 0.25
	if er > 0.20 {
		concealScore = 0.35
	}
	slimScore := -0.20
	if er > 0.20 {
		slimScore = -0.40
	}

	var score float64
	switch {
	case conceal && !slim:
		score = concealScore
		trail = trail.Add("tent_conceals", score, "volume hides the midsection completely")
	case slim && !conceal:
		score = slimScore
		trail = trail.Add("tent_widens", score, "the widest fabric line becomes the perceived body line")
	default:
		score = 0.3*concealScore + 0.7*slimScore
		trail = trail.Add("tent_tradeoff", score, "conceals the midsection but reads wider overall")
	}

	switch {
	case shape == types.ShapeHourglass:
		score -= 0.20
		trail = trail.Add("tent_hourglass", -0.20, "erases a defined waist")
	case b.IsPetite():
		score -= 0.15
		trail = trail.Add("tent_petite", -0.15, "volume swamps a petite frame")
	case b.IsPlusSize():
		score -= 0.10
	case shape == types.ShapeInvertedTriangle:
		score -= 0.10
	case b.IsTall():
		score += 0.10
	case shape == types.ShapeRectangle:
		score += 0.05
	}

	return result(NameTent, score, trail)
}

// scoreBodycon rates second-skin fit: it shows exactly what is there, so
// the verdict tracks how much the wearer wants shown.
func scoreBodycon(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if g.ExpansionRate > 0.03 {
		return types.NotApplicable(NameBodycon, "not a bodycon fit")
	}

	gsm := effectiveGSM(in)
	isThin := gsm < 200 && !in.Fabric.IsStructured
	isStructured := gsm >= 250 || in.Fabric.IsStructured

	var score float64
	switch b.Shape() {
	case types.ShapeHourglass:
		score = 0.30
		if isStructured {
			score = 0.35
		}
		trail = trail.Add("bodycon_hourglass", score, "shows the curves the frame already has")
		if b.BellyZone > 0.5 {
			score = -0.15
			trail = trail.Add("bodycon_belly_concern", -0.15, "also shows the midsection the wearer wants hidden")
		}
	case types.ShapeApple:
		if b.IsAthletic {
			score = 0.20
			trail = trail.Add("bodycon_athletic", 0.20, "firm midsection carries close fit")
		} else if isThin {
			score = -0.40
			trail = trail.Add("bodycon_apple_thin", -0.40, "thin fabric maps every contour of the midsection")
		} else {
			score = -0.12
		}
	case types.ShapePear:
		if isThin {
			score = -0.30
			trail = trail.Add("bodycon_pear_thin", -0.30, "thin fabric clings at the hip and thigh")
		} else {
			score = -0.09
		}
	case types.ShapeInvertedTriangle:
		switch g.Zone {
		case "full_body":
			score = -0.15
		case "lower_body":
			score = -0.05
		default:
			score = -0.10
		}
	case types.ShapeRectangle:
		score = 0
		trail = trail.Add("bodycon_rectangle", 0, "neutral on a straight frame")
	default:
		score = -0.10
	}
	if b.IsPlusSize() {
		if isThin {
			score = -0.40
			trail = trail.Add("bodycon_plus_thin", -0.40, "thin bodycon is unforgiving at this size")
		} else {
			score = -0.05
		}
	}

	return result(NameBodycon, score, trail)
}
