package translate

import (
	"testing"

	"github.com/kridha/fit-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeWaistline_NaturalWaistIsNeutral(t *testing.T) {
	g := types.NewGarmentProfile()
	g.WaistPosition = "natural"
	b := types.NewBodyProfile()

	w := ComputeWaistline(&g, &b)

	assert.True(t, w.Applicable)
	assert.InDelta(t, 0.0, w.ProportionImprovement, 0.0001)
	assert.InDelta(t, b.LegRatio(), w.VisualLegRatio, 0.0001)
}

func TestComputeWaistline_EmpireHurtsAlreadyGoldenBody(t *testing.T) {
	g := types.NewGarmentProfile()
	g.WaistPosition = "empire"
	b := types.NewBodyProfile()

	w := ComputeWaistline(&g, &b)

	// Default legs are already near golden (41/66 = 0.621); raising the
	// visual waist overshoots: before 0.0032, after 0.0401, times 8.
	assert.InDelta(t, -0.2955, w.ProportionImprovement, 0.001)
}

func TestComputeWaistline_EmpireHelpsShortLegs(t *testing.T) {
	g := types.NewGarmentProfile()
	g.WaistPosition = "empire"
	b := types.NewBodyProfile()
	b.LegLengthVisual = 34

	w := ComputeWaistline(&g, &b)

	assert.Greater(t, w.ProportionImprovement, 0.20)
}

func TestComputeWaistline_NoWaistNotApplicable(t *testing.T) {
	g := types.NewGarmentProfile()
	g.WaistPosition = "no_waist"
	b := types.NewBodyProfile()

	w := ComputeWaistline(&g, &b)

	assert.False(t, w.Applicable)
}

func TestHeelLegExtension(t *testing.T) {
	b := types.NewBodyProfile()
	b.HeelHeightInches = 2.0

	// 2" heel at 0.70 efficiency
	assert.InDelta(t, 1.4, HeelLegExtension(&b), 0.001)

	b.ShoeColorMatch = "nude"
	assert.InDelta(t, 2.0, HeelLegExtension(&b), 0.001)

	b.ShoeColorMatch = "contrast"
	assert.InDelta(t, 0.4, HeelLegExtension(&b), 0.001)
}

func TestHeelLegExtension_TallHeelsLoseEfficiency(t *testing.T) {
	b := types.NewBodyProfile()
	b.HeelHeightInches = 4.0

	assert.InDelta(t, 2.4, HeelLegExtension(&b), 0.001)
}
