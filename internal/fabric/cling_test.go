package fabric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeClingRisk_NoDemandWhenGarmentLarger(t *testing.T) {
	r := Resolved{TotalStretchPct: 20}

	result := ComputeClingRisk(r, 36, 40, 0.5)

	assert.InDelta(t, 0.0, result.StretchDemandPct, 0.001)
	assert.False(t, result.ExceedsThreshold)
	assert.InDelta(t, 0.0, result.Severity, 0.001)
}

func TestComputeClingRisk_ThresholdDropsWithCurvature(t *testing.T) {
	r := Resolved{TotalStretchPct: 20}

	flat := ComputeClingRisk(r, 38, 36, 0.2)
	curvy := ComputeClingRisk(r, 38, 36, 1.5)

	// 62 - 26*0.2 = 56.8; 62 - 26*1.5 = 23, floored at 10
	assert.InDelta(t, 56.8, flat.BaseThreshold, 0.001)
	assert.InDelta(t, 23.0, curvy.BaseThreshold, 0.001)
}

func TestComputeClingRisk_ThresholdFloor(t *testing.T) {
	r := Resolved{TotalStretchPct: 20}

	result := ComputeClingRisk(r, 38, 36, 2.5)

	assert.InDelta(t, 10.0, result.BaseThreshold, 0.001)
}

func TestComputeClingRisk_SeverityCapped(t *testing.T) {
	// Garment 2" under the zone with almost no stretch: demand far over
	// threshold, severity must cap at 1.0.
	r := Resolved{TotalStretchPct: 1}

	result := ComputeClingRisk(r, 38, 36, 1.0)

	assert.True(t, result.ExceedsThreshold)
	assert.InDelta(t, 1.0, result.Severity, 0.001)
}

func TestComputeClingRisk_DemandMath(t *testing.T) {
	r := Resolved{TotalStretchPct: 25}

	// Stretch range 36*0.25 = 9"; demand (38-36)/9 = 22.2%
	result := ComputeClingRisk(r, 38, 36, 0.5)

	assert.InDelta(t, 22.22, result.StretchDemandPct, 0.01)
	assert.False(t, result.ExceedsThreshold)
}
