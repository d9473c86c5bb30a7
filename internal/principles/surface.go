package principles

import "github.com/kridha/fit-engine/internal/types"

// matteBase converts a sheen index to the matte-benefit base score.
func matteBase(sheen float64) float64 {
	switch {
	case sheen < 0.15:
		return 0.08
	case sheen < 0.35:
		return 0.08 * (1 - (sheen-0.15)/0.20)
	case sheen <= 0.50:
		return 0
	default:
		return -0.10 * ((sheen - 0.50) / 0.50)
	}
}

// clingRisk returns the best available cling estimate.
func clingRisk(in Input) float64 {
	if in.Fabric.ClingRiskBase != nil {
		return *in.Fabric.ClingRiskBase
	}
	return in.G.ClingRisk()
}

// scoreMatte rates surface light behavior: matte absorbs and flattens,
// shine projects every contour.
func scoreMatte(in Input) types.PrincipleResult {
	b := in.B
	var trail types.Trail

	sheen := in.Fabric.SheenScore
	base := matteBase(sheen)
	trail = trail.Add("surface_light", base, "surface sheen effect on perceived volume")

	shape := b.Shape()

	// Matte can still betray: a matte fabric that clings shows shape
	// through contour instead of light.
	if clingRisk(in) > 0.6 && sheen < 0.30 {
		switch {
		case b.IsPlusSize():
			trail = trail.Add("matte_cling_plus", -0.15, "matte but clinging: contour shows anyway")
			return result(NameMatte, -0.15, trail)
		case shape == types.ShapePear:
			trail = trail.Add("matte_cling_pear", -0.10, "cling at hip and thigh overrides the matte benefit")
			return result(NameMatte, -0.10, trail)
		case shape == types.ShapeApple:
			trail = trail.Add("matte_cling_apple", -0.12, "cling at the midsection overrides the matte benefit")
			return result(NameMatte, -0.12, trail)
		}
	}

	mult := 1.0
	switch {
	case shape == types.ShapeApple, b.IsPlusSize():
		mult = 1.5
	case shape == types.ShapePear && (in.G.Zone == "lower_body" || in.G.Zone == "full_body"):
		mult = 1.3
	case shape == types.ShapeHourglass:
		mult = 0.5
		if sheen > 0.35 && sheen < 0.55 {
			base = 0.05
			trail = trail.Add("subtle_sheen_hourglass", 0.05, "a little light play flatters defined curves")
		}
	case shape == types.ShapeInvertedTriangle && in.G.Zone == "torso":
		mult = 1.2
	}

	return result(NameMatte, base*mult, trail)
}

// fabricZoneWeights are the sub-factor weights inside the fabric zone
// composite. Placeholder factors keep the denominator honest.
var fabricZoneWeights = map[string]float64{
	"cling":        0.30,
	"structure":    0.20,
	"sheen":        0.15,
	"drape":        0.10,
	"color":        0.08,
	"texture":      0.05,
	"pattern":      0.05,
	"silhouette":   0.04,
	"construction": 0.03,
}

// scoreFabricZone blends the fabric's zone-level behaviors into one
// composite: cling, structure, sheen, and drape.
func scoreFabricZone(in Input) types.PrincipleResult {
	b := in.B
	var trail types.Trail

	sub := map[string]float64{}

	cling := clingRisk(in)
	switch {
	case cling > 0.6:
		sub["cling"] = -0.20
		if b.IsPlusSize() || b.BellyZone > 0.5 {
			sub["cling"] = -0.40
		}
		trail = trail.Add("zone_cling", sub["cling"], "high cling risk in the concern zone")
	case cling > 0.3:
		sub["cling"] = -0.05
	default:
		sub["cling"] = 0.10
		trail = trail.Add("zone_cling", 0.10, "fabric skims rather than clings")
	}

	gsm := effectiveGSM(in)
	switch {
	case in.Fabric.IsStructured:
		sub["structure"] = 0.15
		trail = trail.Add("zone_structure", 0.15, "construction holds shape over the body")
	case gsm > 250:
		sub["structure"] = 0.08
	case gsm < 100:
		sub["structure"] = -0.10
		trail = trail.Add("zone_structure", -0.10, "featherweight fabric follows every contour")
	}

	sub["sheen"] = matteBase(in.Fabric.SheenScore)

	if in.Fabric.DrapeCoefficient != nil {
		dc := *in.Fabric.DrapeCoefficient
		switch {
		case dc < 30:
			sub["drape"] = 0.10
		case dc < 50:
			sub["drape"] = 0.05
		case dc < 70:
			sub["drape"] = 0
		default:
			sub["drape"] = -0.10
		}
	}

	var weighted, total float64
	for factor, weight := range fabricZoneWeights {
		weighted += sub[factor] * weight
		total += weight
	}
	return result(NameFabricZone, weighted/total, trail)
}
