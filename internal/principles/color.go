package principles

import (
	"math"

	"github.com/kridha/fit-engine/internal/types"
)

// scoreDarkSlimming rates the receding effect of dark color, corrected for
// body type, skin undertone, and sheen (which cancels the effect).
func scoreDarkSlimming(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	l := g.ColorLightness
	var base float64
	switch {
	case l > 0.65:
		base = -0.05 * ((l - 0.65) / 0.35)
		trail = trail.Add("light_expands", base, "light color visually expands")
	case l >= 0.25:
		base = math.Max(0, 0.15*(1-(l-0.10)/0.55))
		trail = trail.Add("mid_value", base, "mid value retains partial receding effect")
	default:
		base = 0.15
		trail = trail.Add("dark_recedes", 0.15, "dark color recedes, compressing perceived volume")
	}

	btMult := 1.0
	shape := b.Shape()
	switch {
	case b.IsPetite() && g.Zone == "full_body":
		btMult = 0.6
		trail = trail.Add("petite_full_dark", 0, "head-to-toe dark can overwhelm a petite frame")
	case b.IsPetite():
		btMult = 0.9
	case b.IsTall():
		btMult = 1.2
		trail = trail.Add("tall_dark", 0, "tall frames carry dark columns well")
	}
	if shape == types.ShapeInvertedTriangle && g.Zone == "torso" {
		btMult = 1.4
		trail = trail.Add("invt_dark_torso", 0, "dark torso recedes broad shoulders")
	}
	if shape == types.ShapeHourglass {
		btMult = 0.7
		trail = trail.Add("hourglass_dark", 0, "dark flattens curves an hourglass may want visible")
	}

	skinMult := 1.0
	if b.SkinUndertone == types.UndertoneWarm && (g.Zone == "torso" || g.Zone == "full_body") {
		sallow := math.Max(0, 1-l/0.22)
		skinMult = 1 - sallow
		if b.SkinDarkness > 0.7 {
			skinMult = 0.5
		}
		if skinMult < 1 {
			trail = trail.Add("skin_tone_contrast", 0, "stark dark near the face can sallow warm undertones")
		}
	}

	sheenPenalty := 0.0
	if in.Fabric.SheenScore > 0.5 {
		sheenPenalty = -0.15 * ((in.Fabric.SheenScore - 0.5) / 0.5)
		if shape == types.ShapeApple || b.IsPlusSize() {
			sheenPenalty *= 1.5
		}
		trail = trail.Add("sheen_cancels_dark", sheenPenalty, "shine highlights contours dark would hide")
	}

	score := base*btMult*math.Max(skinMult, 0) + sheenPenalty
	return result(NameDarkSlimming, score, trail)
}

// scoreMonochrome rates the single-color column effect.
func scoreMonochrome(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if !g.IsMonochromeOutfit {
		return types.NotApplicable(NameMonochrome, "outfit is not monochrome")
	}

	score := 0.08
	trail = trail.Add("monochrome_column", 0.08, "unbroken color creates one vertical line")

	darkBonus := 0.0
	if g.IsDark() {
		darkBonus = 0.07
	}

	shape := b.Shape()
	bonus := 0.0
	switch {
	case b.IsPetite():
		bonus = 0.15
		trail = trail.Add("monochrome_petite", 0.15, "the column effect matters most on petite frames")
	case b.IsTall():
		bonus = 0.03
	}
	switch shape {
	case types.ShapeHourglass:
		bonus = 0.03
		if g.HasContrastingBelt || g.HasTonalBelt {
			bonus = 0.12
			trail = trail.Add("monochrome_hourglass_belt", 0.12, "belted monochrome keeps the column and the waist")
		}
	case types.ShapeInvertedTriangle:
		bonus = 0.05
	case types.ShapeApple:
		bonus = 0.08
	case types.ShapePear:
		if g.ColorLightness < 0.30 {
			bonus = 0.12
		} else {
			bonus = 0.05
		}
	}
	if b.IsPlusSize() {
		bonus = 0.10
		if g.IsDark() {
			darkBonus = math.Max(darkBonus, 0.08)
		}
	}

	if darkBonus > 0 {
		trail = trail.Add("monochrome_dark", darkBonus, "dark monochrome compounds the slimming")
	}
	return result(NameMonochrome, score+bonus+darkBonus, trail)
}

// scoreColorValue rates lightness placement: darker values compress, but
// very dark values can erase wanted shape or clash with skin contrast.
func scoreColorValue(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	l100 := g.ColorLightness * 100
	var perStep float64
	switch {
	case l100 <= 10:
		perStep = 0.04
	case l100 <= 25:
		perStep = 0.03
	case l100 <= 40:
		perStep = 0.02
	case l100 <= 60:
		perStep = 0.005
	case l100 <= 80:
		perStep = -0.005
	default:
		perStep = -0.01
	}
	score := perStep * 6.25
	trail = trail.Add("value_compression", score, "color value compression effect")

	if b.Shape() == types.ShapeHourglass && l100 <= 25 {
		fade := 1 - l100/25
		bustWaist := b.Bust - b.Waist
		var loss float64
		switch {
		case bustWaist >= 8:
			loss = -0.30 * fade
		case bustWaist >= 6:
			loss = -0.20 * fade
		default:
			loss = -0.10 * fade
		}
		score += loss
		trail = trail.Add("value_hourglass_loss", loss, "very dark value hides defined curves")
	}
	if b.Shape() == types.ShapeRectangle && l100 <= 25 {
		score += 0.05
		trail = trail.Add("value_rectangle", 0.05, "dark value streamlines a straight frame")
	}

	if l100 <= 15 && (g.Zone == "torso" || g.Zone == "full_body") {
		contrast := math.Abs(b.SkinToneL/100 - g.ColorLightness)
		if contrast > 0.70 {
			score -= 0.05
			trail = trail.Add("skin_contrast_harsh", -0.05, "hard skin-to-garment contrast draws a harsh line")
		} else if contrast < 0.30 {
			score += 0.05
			trail = trail.Add("skin_contrast_tonal", 0.05, "low contrast blends garment into the skin line")
		}
	}

	return result(NameColorValue, score, trail)
}
