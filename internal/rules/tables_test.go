package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kridha/fit-engine/internal/types"
)

func TestWaistPositionMultiplier(t *testing.T) {
	tests := []struct {
		position string
		want     float64
		ok       bool
	}{
		{"empire", 0.35, true},
		{"high", 0.65, true},
		{"natural", 1.0, true},
		{"drop", 1.15, true},
		{"no_waist", 0, false},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		got, ok := WaistPositionMultiplier(tt.position)
		assert.Equal(t, tt.ok, ok, tt.position)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.position)
		}
	}
}

func TestBustDividingThreshold(t *testing.T) {
	tests := []struct {
		differential float64
		want         float64
	}{
		{2.0, 7.0},
		{4.0, 7.0},
		{4.5, 6.0},
		{5.0, 6.0},
		{6.0, 5.0},
		{7.0, 4.5},
		{8.0, 4.0},
		{9.0, 3.5},
		{12.0, 3.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BustDividingThreshold(tt.differential),
			"differential %.1f", tt.differential)
	}
}

func TestBustDividingThreshold_Monotonic(t *testing.T) {
	prev := BustDividingThreshold(0)
	for d := 0.5; d <= 12; d += 0.5 {
		cur := BustDividingThreshold(d)
		assert.LessOrEqual(t, cur, prev, "differential %.1f", d)
		prev = cur
	}
}

func TestConfidenceFor(t *testing.T) {
	assert.Equal(t, 0.92, ConfidenceFor("boat_neck_inverted_triangle"))
	assert.Equal(t, 0.40, ConfidenceFor("pattern_scale_effect"))
	assert.Equal(t, DefaultConfidence, ConfidenceFor("never_heard_of_it"))
}

func TestPrincipleConfidence_InUnitRange(t *testing.T) {
	for ruleID, c := range PrincipleConfidence {
		assert.Greater(t, c, 0.0, ruleID)
		assert.LessOrEqual(t, c, 1.0, ruleID)
	}
}

func TestHeelEfficiency_TiersDecreaseAndCover(t *testing.T) {
	require.NotEmpty(t, HeelEfficiency)
	assert.Equal(t, 0.0, HeelEfficiency[0].MinInches)

	for i := 1; i < len(HeelEfficiency); i++ {
		// Contiguous bands, taller heels less efficient
		assert.Equal(t, HeelEfficiency[i-1].MaxInches, HeelEfficiency[i].MinInches)
		assert.Less(t, HeelEfficiency[i].Efficiency, HeelEfficiency[i-1].Efficiency)
	}
}

func TestSheenMap_MatchesGarmentSheenIndex(t *testing.T) {
	for surface, want := range SheenMap {
		g := types.NewGarmentProfile()
		g.Surface = surface
		assert.Equal(t, want, g.SheenIndex(), string(surface))
	}
}

func TestElastaneMultipliers_MatchGarmentStretchMultiplier(t *testing.T) {
	for construction, want := range ElastaneMultipliers {
		g := types.NewGarmentProfile()
		g.Construction = construction
		assert.Equal(t, want, g.StretchMultiplier(), string(construction))
	}
}

func TestOptimalVDepth_BandsAreOrdered(t *testing.T) {
	for tag, band := range OptimalVDepth {
		assert.Less(t, band.Min, band.Optimal, tag)
		assert.Less(t, band.Optimal, band.Max, tag)
	}
}

func TestProportionCutRatios_BandsAreOrdered(t *testing.T) {
	for label, band := range ProportionCutRatios {
		assert.Less(t, band.Lo, band.Hi, label)
	}
	// Shorter hems sit higher on the leg
	assert.Greater(t, ProportionCutRatios["mini"].Lo, ProportionCutRatios["midi"].Hi)
}
