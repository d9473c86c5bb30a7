// Package fabric resolves raw fabric composition into behavioral
// properties (stretch, weight, sheen, cling risk) and applies the gate
// rules that can override scoring paths.
package fabric

import (
	"math"

	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/types"
)

// Resolved is the computed fabric behavior for one garment. Fields that
// depend on optional raw inputs are pointers: a nil field means the raw
// attribute was absent, and downstream scorers must treat it as not
// applicable rather than zero.
type Resolved struct {
	TotalStretchPct      float64
	EffectiveGSM         *float64
	SheenScore           float64
	DrapeCoefficient     *float64 // 0-100%
	ClingRiskBase        *float64
	IsStructured         bool
	PhotoRealityDiscount float64
	SurfaceFriction      float64
}

// Resolve converts raw fabric attributes to behavioral properties.
// It never fails: missing inputs produce nil derived fields.
func Resolve(g *types.GarmentProfile) Resolved {
	var fabricData *rules.FabricData
	if g.FabricName != nil {
		if fd, ok := rules.FabricByName(*g.FabricName); ok {
			fabricData = &fd
		}
	}

	mult, ok := rules.ElastaneMultipliers[g.Construction]
	if !ok {
		mult = 2.0
	}
	totalStretch := g.ElastanePct * mult

	// A named fabric's typical stretch stands in when elastane is unknown.
	if fabricData != nil && g.ElastanePct == 0 && fabricData.TypicalStretch > 0 {
		totalStretch = fabricData.TypicalStretch
	}

	var effectiveGSM *float64
	if g.GSMEstimated != nil {
		if fiberMult, known := rules.FiberGSMMultipliers[g.PrimaryFiber]; known {
			v := *g.GSMEstimated * fiberMult
			effectiveGSM = &v
		}
	}

	sheen, ok := rules.SheenMap[g.Surface]
	if !ok {
		sheen = 0.10
	}

	drapeCoeff := g.DrapeCoefficient()

	var clingBase *float64
	if effectiveGSM != nil {
		gsmFactor := math.Max(0, 1.0-*effectiveGSM/300.0)
		frictionFactor := math.Max(0, 1.0-g.SurfaceFriction)
		v := math.Min(1.0, (totalStretch/20.0+gsmFactor+frictionFactor)/3.0)
		clingBase = &v
	}

	return Resolved{
		TotalStretchPct:  totalStretch,
		EffectiveGSM:     effectiveGSM,
		SheenScore:       sheen,
		DrapeCoefficient: drapeCoeff,
		ClingRiskBase:    clingBase,
		IsStructured:     g.IsStructured || g.HasLining,
		SurfaceFriction:  g.SurfaceFriction,
	}
}
