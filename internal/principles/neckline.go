package principles

import (
	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/types"
)

// thresholdFor returns the bust dividing depth for this body. Defined
// curves and larger frames tolerate a little more depth before the divide
// reads.
func thresholdFor(b *types.BodyProfile) float64 {
	bd := b.BustDifferential()
	threshold := rules.BustDividingThreshold(bd)
	if b.Shape() == types.ShapeHourglass && bd >= 6 {
		threshold += 0.75
	}
	if b.IsPlusSize() && bd >= 8 {
		threshold += 1.0
	}
	return threshold
}

// scoreVNeck rates neckline shape for vertical elongation and shoulder
// framing.
func scoreVNeck(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	shape := b.Shape()
	shortTorso := b.TorsoScore() <= -1

	switch g.Neckline {
	case types.NecklineCrew, types.NecklineSquare, types.NecklineHalter, types.NecklineCowl:
		trail = trail.Add("neckline_neutral", 0, "neckline neither elongates nor widens")
		return result(NameVNeck, 0, trail)

	case types.NecklineBoat, types.NecklineOffShoulder:
		switch shape {
		case types.ShapeInvertedTriangle:
			trail = trail.Add("boat_neck_inverted_triangle", -0.15, "horizontal neckline widens broad shoulders")
			return result(NameVNeck, -0.15, trail)
		case types.ShapeRectangle:
			trail = trail.Add("boat_rectangle", 0.08, "horizontal line adds upper-body presence")
			return result(NameVNeck, 0.08, trail)
		case types.ShapePear:
			trail = trail.Add("boat_pear", 0.05, "widened shoulder line balances the hip")
			return result(NameVNeck, 0.05, trail)
		}
		return result(NameVNeck, 0, trail)

	case types.NecklineScoop:
		score := 0.05
		if shape == types.ShapeInvertedTriangle {
			score = 0.08
		}
		trail = trail.Add("scoop_open", score, "open curve softly elongates")
		return result(NameVNeck, score, trail)

	case types.NecklineTurtleneck:
		score := 0.0
		switch {
		case shape == types.ShapeInvertedTriangle:
			score = -0.05
		case b.IsPetite() && shortTorso:
			score = 0.10
			trail = trail.Add("turtleneck_column", 0.10, "unbroken neck column lengthens a short torso")
		}
		return result(NameVNeck, score, trail)

	case types.NecklineWrap:
		trail = trail.Add("wrap_v_line", 0.08, "wrap creates a soft V line")
		return result(NameVNeck, 0.08, trail)

	case types.NecklineVNeck, types.NecklineDeepV:
		score := 0.10
		trail = trail.Add("v_vertical_line", 0.10, "V draws a vertical line through the upper body")
		switch shape {
		case types.ShapeInvertedTriangle:
			score = 0.18
			trail = trail.Add("v_invt", 0.18, "V narrows the shoulder read")
		case types.ShapeHourglass:
			score = 0.12
		case types.ShapeApple:
			score = 0.10
		case types.ShapePear:
			score = 0.10
		}
		if b.IsPetite() {
			score = 0.12
			if shortTorso {
				score = 0.15
				if g.RiseCm != nil && *g.RiseCm > 26 {
					score = -0.05
					trail = trail.Add("v_petite_squeeze", -0.05, "high rise plus deep V leaves no torso between them")
				}
			}
		}
		if b.IsTall() {
			score = 0.15
		}
		return result(NameVNeck, score, trail)
	}

	return result(NameVNeck, 0, trail)
}

// scoreNecklineCompound evaluates open necklines against the bust
// dividing threshold: depth relative to where the neckline starts
// splitting the bust visually.
func scoreNecklineCompound(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	switch g.Neckline {
	case types.NecklineVNeck, types.NecklineDeepV, types.NecklineWrap, types.NecklineScoop:
	default:
		return types.NotApplicable(NameNecklineCompound, "closed neckline, no depth interaction")
	}

	depth := 4.0
	switch {
	case g.NecklineDepth != nil:
		depth = *g.NecklineDepth
	case g.VDepthCm > 0:
		depth = g.VDepthCm / 2.54
	}

	threshold := thresholdFor(b)
	effectiveDepth := depth + in.G.ElastanePct*0.01

	enhance := b.GoalBust != nil && *b.GoalBust == "enhance"
	minimize := b.GoalBust != nil && *b.GoalBust == "minimize"

	ratio := effectiveDepth / threshold
	var bustScore float64
	switch {
	case ratio < 0.60:
		bustScore = 0.30
		trail = trail.Add("depth_conservative", 0.30, "depth stays well above the dividing line")
	case ratio < 0.85:
		bustScore = 0.50
		trail = trail.Add("depth_optimal", 0.50, "depth flatters without dividing the bust")
	case ratio < 1.0:
		bustScore = 0.30
		if enhance {
			bustScore = 0.70
		} else if minimize {
			bustScore = -0.20
		}
		trail = trail.Add("v_neck_dividing_threshold", bustScore, "depth approaches the dividing threshold")
	case ratio < 1.15:
		bustScore = -0.15
		if enhance {
			bustScore = 0.30
		} else if minimize {
			bustScore = -0.60
		}
		trail = trail.Add("depth_dividing", bustScore, "neckline starts dividing the bust")
	default:
		bustScore = -0.35
		if enhance {
			bustScore = 0.10
		} else if minimize {
			bustScore = -0.85
		}
		trail = trail.Add("depth_deep_divide", bustScore, "depth well past the dividing threshold")
	}

	vAngle := 2.0
	if depth > 0 {
		vAngle = (g.VDepthCm * 0.8) / depth
	}
	var torsoScore float64
	switch {
	case vAngle < 0.5:
		torsoScore = 0.25
	case vAngle < 1.0:
		torsoScore = 0.18
	case vAngle < 1.5:
		torsoScore = 0.10
	default:
		torsoScore = 0.05
	}
	switch b.Shape() {
	case types.ShapeApple:
		torsoScore *= 1.30
	case types.ShapeRectangle:
		torsoScore *= 1.15
	}

	var balance float64
	switch b.Shape() {
	case types.ShapeInvertedTriangle:
		balance = 0.45
	case types.ShapePear:
		balance = 0.30
	case types.ShapeRectangle:
		balance = 0.20
	case types.ShapeHourglass:
		balance = 0.10
	default:
		balance = 0.15
	}

	compound := bustScore*0.40 + torsoScore*0.30 + balance*0.30
	trail = trail.Add("neckline_compound", compound, "bust, torso line, and frame balance blended")
	return result(NameNecklineCompound, compound, trail)
}
