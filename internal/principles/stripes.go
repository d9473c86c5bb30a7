package principles

import "github.com/kridha/fit-engine/internal/types"

// scoreStripes applies the Ashida-effect findings: horizontal stripes read
// mildly slimming on most frames, with body-shape and zone exceptions.
func scoreStripes(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if !g.HasHorizontalStripes && !g.HasVerticalStripes {
		return types.NotApplicable(NameHStripe, "no stripes present")
	}

	shape := b.Shape()

	if g.HasVerticalStripes && !g.HasHorizontalStripes {
		score := -0.05
		trail = trail.Add("vertical_stripe_base", -0.05, "vertical stripes widen slightly on most frames")
		if shape == types.ShapeRectangle && g.Zone == "torso" {
			score += 0.03
			trail = trail.Add("vertical_rectangle", 0.03, "rectangle torso gains a hint of structure")
		}
		if shape == types.ShapeInvertedTriangle && g.Zone == "lower_body" {
			score -= 0.08
			trail = trail.Add("vertical_invt_lower", -0.08, "vertical lines narrow an already-narrow lower half")
		}
		return result(NameHStripe, score, trail)
	}

	score := 0.03
	trail = trail.Add("stripe_effect_ashida", 0.03, "horizontal stripes read slightly slimming")

	if b.IsPlusSize() {
		score -= 0.10
		trail = trail.Add("stripe_plus", -0.10, "horizontal banding emphasizes width on larger frames")
	}
	if b.IsPetite() {
		score += 0.05
		trail = trail.Add("stripe_petite", 0.05, "scale works in petite proportions")
	}

	switch shape {
	case types.ShapePear:
		if g.Zone == "torso" {
			score += 0.08
			trail = trail.Add("stripe_pear_torso", 0.08, "stripes on top balance wider hips")
		} else if g.Zone == "lower_body" {
			score -= 0.05
			trail = trail.Add("stripe_pear_lower", -0.05, "stripes widen the hip line")
		}
	case types.ShapeInvertedTriangle:
		if g.Zone == "torso" {
			score -= 0.12
			trail = trail.Add("stripe_invt_torso", -0.12, "stripes widen already-broad shoulders")
		} else if g.Zone == "lower_body" {
			score += 0.10
			trail = trail.Add("stripe_invt_lower", 0.10, "lower stripes balance the shoulder line")
		}
	case types.ShapeApple:
		if g.CoversWaist {
			score -= 0.05
			trail = trail.Add("stripe_apple_waist", -0.05, "bands cross the midsection")
		}
	case types.ShapeRectangle:
		score += 0.05
		trail = trail.Add("stripe_rectangle", 0.05, "stripes add curve interest to a straight frame")
	case types.ShapeHourglass:
		score += 0.03
		trail = trail.Add("stripe_hourglass", 0.03, "stripes follow existing curves")
	}

	if g.StripeWidthCm > 0 && g.StripeWidthCm < 1 {
		score += 0.03
		trail = trail.Add("stripe_narrow", 0.03, "narrow stripes maximize the thinning illusion")
	} else if g.StripeWidthCm > 2 && b.IsPlusSize() {
		score -= 0.05
		trail = trail.Add("stripe_wide_plus", -0.05, "wide bands amplify width")
	}

	if g.IsDark() {
		score += 0.04
		trail = trail.Add("stripe_dark_ground", 0.04, "dark ground softens the banding")
	}

	return result(NameHStripe, score, trail)
}
