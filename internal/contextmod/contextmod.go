// Package contextmod adjusts the composite for wear context: cultural
// color symbolism, occasion coverage norms, climate, and age-typical
// style tolerance. These are small corrections layered on top of the
// body-garment score, never replacements for it.
package contextmod

import (
	"fmt"
	"strings"

	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
)

// colorSymbolism maps country -> color -> occasion -> adjustment.
// Cultural rules are decisive in both directions: red is the bridal
// color in India and a faux pas on a guest.
var colorSymbolism = map[string]map[string]map[string]float64{
	"in": {
		"red": {
			"wedding_bride": 0.95,
			"wedding_guest": -0.30,
		},
		"white": {
			"celebration": -0.90,
			"funeral":     0.50,
		},
		"black": {
			"wedding_ceremony": -0.70,
			"sangeet":          -0.20,
		},
		"gold": {
			"wedding": 0.80,
			"general": 0.20,
		},
	},
	"us": {
		"white": {
			"wedding_bride": 0.90,
			"wedding_guest": -0.50,
		},
		"black": {
			"evening": 0.90,
			"funeral": 0.50,
		},
	},
}

// coverageNorm is the minimum coverage an occasion expects.
type coverageNorm struct {
	minHem              string
	maxNecklineDepth    float64
	structuredPreferred bool
}

var occasionCoverage = map[string]coverageNorm{
	"formal":          {"knee", 4.0, true},
	"business":        {"above_knee", 5.0, true},
	"business_casual": {"above_knee", 6.0, false},
	"interview":       {"knee", 5.0, true},
	"wedding_guest":   {"knee", 5.0, false},
	"casual":          {"mini", 8.0, false},
	"date_night":      {"above_knee", 7.0, false},
	"brunch":          {"above_knee", 7.0, false},
	"evening":         {"above_knee", 8.0, false},
	"athletic":        {"mini", 6.0, false},
}

// hemOrder ranks hem positions longest to shortest. A hem with a higher
// index than the occasion minimum is shorter than the occasion expects.
var hemOrder = []string{
	"floor", "ankle", "below_calf", "midi", "below_knee", "knee", "above_knee", "mini",
}

func hemIndex(pos string) int {
	for i, h := range hemOrder {
		if h == pos {
			return i
		}
	}
	return -1
}

// nonBreathableFibers trap heat in hot climates.
var nonBreathableFibers = map[string]bool{"polyester": true, "nylon": true}

// Apply computes the total context adjustment for this garment, body,
// and principle outcome.
func Apply(g *types.GarmentProfile, b *types.BodyProfile, results []types.PrincipleResult) (float64, types.Trail) {
	var adj float64
	var trail types.Trail

	adj, trail = applySymbolism(g, b, adj, trail)
	adj, trail = applyOccasion(g, b, adj, trail)
	adj, trail = applyClimate(g, b, adj, trail)
	adj, trail = applyAge(b, results, adj, trail)

	return adj, trail
}

func applySymbolism(g *types.GarmentProfile, b *types.BodyProfile, adj float64, trail types.Trail) (float64, types.Trail) {
	if b.CountryCode == "" || b.Occasion == "" || g.ColorName == "" {
		return adj, trail
	}
	country, ok := colorSymbolism[strings.ToLower(b.CountryCode)]
	if !ok {
		return adj, trail
	}
	occasions, ok := country[strings.ToLower(g.ColorName)]
	if !ok {
		return adj, trail
	}
	if delta, ok := occasions[b.Occasion]; ok {
		adj += delta
		trail = trail.Add("color_symbolism", delta,
			fmt.Sprintf("%s for %s in %s", g.ColorName, b.Occasion, strings.ToUpper(b.CountryCode)))
	}
	return adj, trail
}

func applyOccasion(g *types.GarmentProfile, b *types.BodyProfile, adj float64, trail types.Trail) (float64, types.Trail) {
	norm, ok := occasionCoverage[b.Occasion]
	if !ok {
		return adj, trail
	}

	actual := hemIndex(g.HemPosition)
	minimum := hemIndex(norm.minHem)
	if actual >= 0 && minimum >= 0 && actual > minimum {
		adj -= 0.20
		trail = trail.Add("occasion_hem", -0.20,
			fmt.Sprintf("%s hem shorter than the %s norm", g.HemPosition, b.Occasion))
	}

	depth := 0.0
	switch {
	case g.NecklineDepth != nil:
		depth = *g.NecklineDepth
	case g.VDepthCm > 0:
		depth = g.VDepthCm / 2.54
	}
	if depth > norm.maxNecklineDepth {
		adj -= 0.15
		trail = trail.Add("occasion_neckline", -0.15,
			fmt.Sprintf("neckline deeper than the %s norm", b.Occasion))
	}
	return adj, trail
}

func applyClimate(g *types.GarmentProfile, b *types.BodyProfile, adj float64, trail types.Trail) (float64, types.Trail) {
	gsm := 150.0
	if g.GSMEstimated != nil {
		gsm = *g.GSMEstimated
	}
	switch b.Climate {
	case types.ClimateHotHumid:
		if gsm > 250 {
			adj -= 0.10
			trail = trail.Add("climate_heavy_hot", -0.10, "heavy fabric in hot humid climate")
		}
		if nonBreathableFibers[g.PrimaryFiber] {
			adj -= 0.05
			trail = trail.Add("climate_nonbreathable", -0.05, "non-breathable fiber in hot humid climate")
		}
	case types.ClimateCold:
		if gsm < 120 {
			adj -= 0.10
			trail = trail.Add("climate_light_cold", -0.10, "lightweight fabric in cold climate")
		}
	}
	return adj, trail
}

func applyAge(b *types.BodyProfile, results []types.PrincipleResult, adj float64, trail types.Trail) (float64, types.Trail) {
	if b.Age == 0 {
		return adj, trail
	}
	scoreOf := func(name string) (float64, bool) {
		for _, r := range results {
			if r.Name == name && r.Applicable {
				return r.Score, true
			}
		}
		return 0, false
	}

	if b.Age >= 50 {
		if s, ok := scoreOf(principles.NameBodycon); ok && s > 0.20 {
			adj -= 0.05
			trail = trail.Add("age_bodycon", -0.05, "very close fit reads younger than the wearer's register")
		}
	} else if b.Age >= 18 && b.Age <= 25 {
		if s, ok := scoreOf(principles.NameTent); ok && s < -0.20 {
			adj += 0.05
			trail = trail.Add("age_oversized", 0.05, "oversized volume reads as intentional at this age")
		}
	}
	return adj, trail
}
