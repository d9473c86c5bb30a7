package contextmod

import (
	"testing"

	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

func TestApplySymbolism_RedBrideIndia(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ColorName = "red"
	b := types.NewBodyProfile()
	b.CountryCode = "IN"
	b.Occasion = "wedding_bride"

	adj, trail := Apply(&g, &b, nil)

	assert.InDelta(t, 0.95, adj, 0.0001)
	assert.Len(t, trail, 1)
	assert.Equal(t, "color_symbolism", trail[0].RuleID)
}

func TestApplySymbolism_WhiteGuestUS(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ColorName = "white"
	b := types.NewBodyProfile()
	b.CountryCode = "us"
	b.Occasion = "wedding_guest"

	adj, _ := Apply(&g, &b, nil)

	assert.InDelta(t, -0.50, adj, 0.0001)
}

func TestApplySymbolism_UnknownCountrySilent(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ColorName = "red"
	b := types.NewBodyProfile()
	b.CountryCode = "fr"
	b.Occasion = "wedding_guest"

	adj, trail := Apply(&g, &b, nil)

	assert.Zero(t, adj)
	assert.Empty(t, trail)
}

func TestApplyOccasion_HemTooShort(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "mini"
	b := types.NewBodyProfile()
	b.Occasion = "interview"

	adj, trail := Apply(&g, &b, nil)

	assert.InDelta(t, -0.20, adj, 0.0001)
	assert.Equal(t, "occasion_hem", trail[0].RuleID)
}

func TestApplyOccasion_HemAtNormPasses(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	b := types.NewBodyProfile()
	b.Occasion = "formal"

	adj, _ := Apply(&g, &b, nil)

	assert.Zero(t, adj)
}

func TestApplyOccasion_LongerThanNormPasses(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "midi"
	b := types.NewBodyProfile()
	b.Occasion = "business"

	adj, _ := Apply(&g, &b, nil)

	assert.Zero(t, adj)
}

func TestApplyOccasion_NecklineTooDeep(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	g.NecklineDepth = fptr(6.0)
	b := types.NewBodyProfile()
	b.Occasion = "interview"

	adj, trail := Apply(&g, &b, nil)

	assert.InDelta(t, -0.15, adj, 0.0001)
	assert.Equal(t, "occasion_neckline", trail[0].RuleID)
}

func TestApplyOccasion_VDepthCmFallback(t *testing.T) {
	g := types.NewGarmentProfile()
	g.HemPosition = "knee"
	g.VDepthCm = 13.0 // about 5.1 inches, over the 4.0 formal limit
	b := types.NewBodyProfile()
	b.Occasion = "formal"

	adj, _ := Apply(&g, &b, nil)

	assert.InDelta(t, -0.15, adj, 0.0001)
}

func TestApplyClimate_HeavyFabricHotHumid(t *testing.T) {
	g := types.NewGarmentProfile()
	g.GSMEstimated = fptr(300)
	g.PrimaryFiber = "cotton"
	b := types.NewBodyProfile()
	b.Climate = types.ClimateHotHumid

	adj, _ := Apply(&g, &b, nil)

	assert.InDelta(t, -0.10, adj, 0.0001)
}

func TestApplyClimate_NonBreathableStacksWithWeight(t *testing.T) {
	g := types.NewGarmentProfile()
	g.GSMEstimated = fptr(300)
	g.PrimaryFiber = "polyester"
	b := types.NewBodyProfile()
	b.Climate = types.ClimateHotHumid

	adj, trail := Apply(&g, &b, nil)

	assert.InDelta(t, -0.15, adj, 0.0001)
	assert.Len(t, trail, 2)
}

func TestApplyClimate_LightFabricCold(t *testing.T) {
	g := types.NewGarmentProfile()
	g.GSMEstimated = fptr(100)
	b := types.NewBodyProfile()
	b.Climate = types.ClimateCold

	adj, _ := Apply(&g, &b, nil)

	assert.InDelta(t, -0.10, adj, 0.0001)
}

func TestApplyClimate_TemperateNeutral(t *testing.T) {
	g := types.NewGarmentProfile()
	g.GSMEstimated = fptr(100)
	g.PrimaryFiber = "polyester"
	b := types.NewBodyProfile()
	b.Climate = types.ClimateTemperate

	adj, _ := Apply(&g, &b, nil)

	assert.Zero(t, adj)
}

func TestApplyAge_BodyconOverFifty(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()
	b.Age = 55
	results := []types.PrincipleResult{
		{Name: principles.NameBodycon, Score: 0.30, Applicable: true},
	}

	adj, trail := Apply(&g, &b, results)

	assert.InDelta(t, -0.05, adj, 0.0001)
	assert.Equal(t, "age_bodycon", trail[0].RuleID)
}

func TestApplyAge_OversizedYoung(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()
	b.Age = 22
	results := []types.PrincipleResult{
		{Name: principles.NameTent, Score: -0.30, Applicable: true},
	}

	adj, _ := Apply(&g, &b, results)

	assert.InDelta(t, 0.05, adj, 0.0001)
}

func TestApplyAge_UnsetAgeNoAdjustment(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()
	results := []types.PrincipleResult{
		{Name: principles.NameBodycon, Score: 0.50, Applicable: true},
	}

	adj, _ := Apply(&g, &b, results)

	assert.Zero(t, adj)
}

func TestApplyAge_InapplicableResultIgnored(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()
	b.Age = 60
	results := []types.PrincipleResult{
		{Name: principles.NameBodycon, Score: 0.50, Applicable: false},
	}

	adj, _ := Apply(&g, &b, results)

	assert.Zero(t, adj)
}
