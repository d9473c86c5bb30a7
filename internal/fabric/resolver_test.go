package fabric

import (
	"testing"

	"github.com/kridha/fit-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ElastaneStretchByConstruction(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ElastanePct = 5.0
	g.Construction = types.ConstructionKnit

	r := Resolve(&g)

	// 5% elastane in a knit stretches 4x
	assert.InDelta(t, 20.0, r.TotalStretchPct, 0.001)
}

func TestResolve_NamedFabricTypicalStretch(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ElastanePct = 0
	name := "ponte"
	g.FabricName = &name

	r := Resolve(&g)

	// No elastane info: the lookup's typical stretch stands in
	assert.InDelta(t, 20.0, r.TotalStretchPct, 0.001)
}

func TestResolve_EffectiveGSMUsesFiberMultiplier(t *testing.T) {
	g := types.NewGarmentProfile()
	gsm := 200.0
	g.GSMEstimated = &gsm
	g.PrimaryFiber = "cotton"

	r := Resolve(&g)

	require.NotNil(t, r.EffectiveGSM)
	assert.InDelta(t, 230.0, *r.EffectiveGSM, 0.001)
}

func TestResolve_UnknownFiberPropagatesNil(t *testing.T) {
	g := types.NewGarmentProfile()
	g.PrimaryFiber = "unobtainium"

	r := Resolve(&g)

	assert.Nil(t, r.EffectiveGSM)
	assert.Nil(t, r.ClingRiskBase)
}

func TestResolve_MissingGSMPropagatesNil(t *testing.T) {
	g := types.NewGarmentProfile()
	g.GSMEstimated = nil

	r := Resolve(&g)

	assert.Nil(t, r.EffectiveGSM)
	assert.Nil(t, r.ClingRiskBase)
}

func TestResolve_MissingDrapePropagatesNil(t *testing.T) {
	g := types.NewGarmentProfile()
	g.Drape = nil

	r := Resolve(&g)

	assert.Nil(t, r.DrapeCoefficient)
}

func TestResolve_ClingRiskBaseBounds(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ElastanePct = 20
	g.Construction = types.ConstructionKnitRib
	gsm := 40.0
	g.GSMEstimated = &gsm
	g.SurfaceFriction = 0.0

	r := Resolve(&g)

	require.NotNil(t, r.ClingRiskBase)
	assert.LessOrEqual(t, *r.ClingRiskBase, 1.0)
	assert.GreaterOrEqual(t, *r.ClingRiskBase, 0.0)
}

func TestResolve_StructuredFlagFromLining(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HasLining = true

	r := Resolve(&g)

	assert.True(t, r.IsStructured)
}
