package translate

import (
	"testing"

	"github.com/kridha/fit-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHemline_KneeLandsInKneeDanger(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	b := types.NewBodyProfile()

	h := ComputeHemline(&g, &b, nil)

	// Knee at 18" sits inside the [17, 19.5] knee danger band
	assert.Equal(t, types.ZoneKneeDanger, h.Zone)
	assert.InDelta(t, 18.0, h.HemFromFloor, 0.001)
}

func TestComputeHemline_MiniIsAboveKnee(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "mini"
	b := types.NewBodyProfile()

	h := ComputeHemline(&g, &b, nil)

	assert.Equal(t, types.ZoneAboveKnee, h.Zone)
}

func TestComputeHemline_MidiHitsCalfDanger(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "midi"
	b := types.NewBodyProfile()

	h := ComputeHemline(&g, &b, nil)

	// Midi lands at the widest calf, the worst place to cut the leg
	assert.Equal(t, types.ZoneCalfDanger, h.Zone)
}

func TestComputeHemline_AnkleAndFloor(t *testing.T) {
	b := types.NewBodyProfile()

	g := types.NewGarmentProfile()
	g.HemPosition = "ankle"
	assert.Equal(t, types.ZoneAnkle, ComputeHemline(&g, &b, nil).Zone)

	g.HemPosition = "floor"
	assert.Equal(t, types.ZoneFloor, ComputeHemline(&g, &b, nil).Zone)
}

func TestComputeHemline_ExplicitLengthOverridesLabel(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "floor"
	length := 40.0
	g.GarmentLengthInches = &length
	b := types.NewBodyProfile()

	h := ComputeHemline(&g, &b, nil)

	// 66 - 40*(66/66) = 26" from floor, well above the knee
	assert.InDelta(t, 26.0, h.HemFromFloor, 0.001)
	assert.Equal(t, types.ZoneAboveKnee, h.Zone)
}

func TestComputeHemline_ProminentCalvesCollapseSafeZone(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "below_knee"
	b := types.NewBodyProfile()
	b.CCalfMax = 16.5
	b.CCalfMin = 9.0

	h := ComputeHemline(&g, &b, nil)

	// Calf radius 1+(16.5/9-1)*3 = 3.5 pushes the calf band past the knee
	// band: no safe zone left, and the below-knee hem lands on the calf.
	require.Nil(t, h.SafeZone)
	assert.Equal(t, types.ZoneCalfDanger, h.Zone)
}

func TestComputeHemline_FittedLightFabricRises(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	g.Silhouette = types.SilhouetteFitted
	b := types.NewBodyProfile()
	gsm := 100.0

	h := ComputeHemline(&g, &b, &gsm)

	// 0.5 base rise * 1.3 light-fabric multiplier
	assert.InDelta(t, 0.65, h.FabricRiseAdjustment, 0.001)
	assert.InDelta(t, 18.65, h.HemFromFloor, 0.001)
}

func TestComputeHemline_ALineWideHipsRise(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "below_knee"
	g.Silhouette = types.SilhouetteALine
	b := types.NewBodyProfile()
	b.Hip = 44

	h := ComputeHemline(&g, &b, nil)

	assert.InDelta(t, 1.0, h.FabricRiseAdjustment, 0.001)
}

func TestComputeHemline_NarrowPointBonus(t *testing.T) {
	b := types.NewBodyProfile()

	g := types.NewGarmentProfile()
	g.HemPosition = "ankle" // ankle+2 is the narrowest leg point
	assert.InDelta(t, 2.0, ComputeHemline(&g, &b, nil).NarrowPointBonus, 0.001)

	g.HemPosition = "below_calf" // h_calf_min
	assert.InDelta(t, 1.0, ComputeHemline(&g, &b, nil).NarrowPointBonus, 0.001)

	g.HemPosition = "knee"
	assert.InDelta(t, 0.0, ComputeHemline(&g, &b, nil).NarrowPointBonus, 0.001)
}

func TestComputeHemline_CutRatio(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	b := types.NewBodyProfile()

	h := ComputeHemline(&g, &b, nil)

	assert.InDelta(t, 18.0/66.0, h.CutRatio, 0.001)
}
