package engine

import (
	"strings"
	"testing"

	"github.com/kridha/fit-engine/internal/fabric"
	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sptr(s string) *string { return &s }

func TestScoreGarment_DressEndToEnd(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()

	res := ScoreGarment(&g, &b)

	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.OverallScore, 0.0)
	assert.LessOrEqual(t, res.OverallScore, 10.0)
	assert.GreaterOrEqual(t, res.CompositeRaw, -1.0)
	assert.LessOrEqual(t, res.CompositeRaw, 1.0)
	// Mean of per-rule evidence confidence over the applicable scorers
	assert.Greater(t, res.Confidence, 0.55)
	assert.Less(t, res.Confidence, 0.90)

	assert.Greater(t, len(res.PrincipleScores), 10)
	require.NotNil(t, res.BodyAdjusted)
	assert.Equal(t, types.ZoneKneeDanger, res.BodyAdjusted.HemZone)
	assert.Contains(t, res.ZoneScores, "waist")
	assert.NotEmpty(t, res.ReasoningChain)
}

func TestScoreGarment_Deterministic(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()

	a := ScoreGarment(&g, &b)
	c := ScoreGarment(&g, &b)

	assert.Equal(t, a.OverallScore, c.OverallScore)
	assert.Equal(t, a.CompositeRaw, c.CompositeRaw)
	assert.Equal(t, len(a.PrincipleScores), len(c.PrincipleScores))
}

func TestScoreGarment_PantsSkipDressScorers(t *testing.T) {
	g := types.NewGarmentProfile()
	g.Category = types.CategoryBottomPants
	g.Rise = sptr("high")
	g.LegShape = sptr("straight")
	b := types.NewBodyProfile()

	res := ScoreGarment(&g, &b)

	names := map[string]bool{}
	for _, r := range res.PrincipleScores {
		names[r.Name] = true
	}
	assert.False(t, names[principles.NameHemline])
	assert.False(t, names[principles.NameVNeck])
	assert.True(t, names[principles.NamePantRise])
	assert.True(t, names[principles.NameLegShape])
}

func TestScoreGarment_StructuredGarmentScoresNoWorse(t *testing.T) {
	plain := types.NewGarmentProfile()
	structured := plain
	structured.IsStructured = true
	b := types.NewBodyProfile()

	plainRes := ScoreGarment(&plain, &b)
	structRes := ScoreGarment(&structured, &b)

	ids := make([]string, 0, len(structRes.Exceptions))
	for _, ex := range structRes.Exceptions {
		ids = append(ids, ex.ExceptionID)
	}
	assert.Contains(t, ids, fabric.GateStructured)
	assert.GreaterOrEqual(t, structRes.OverallScore, plainRes.OverallScore)
}

func TestScoreGarment_ContextLowersScore(t *testing.T) {
	g := types.NewGarmentProfile()
	g.ColorName = "white"
	b := types.NewBodyProfile()
	plain := ScoreGarment(&g, &b)

	b.CountryCode = "us"
	b.Occasion = "wedding_guest"
	faux := ScoreGarment(&g, &b)

	assert.Less(t, faux.OverallScore, plain.OverallScore)
	joined := strings.Join(faux.ReasoningChain, " | ")
	assert.Contains(t, joined, "context:")
}

func TestScoreGarment_JacketProducesLayerOutput(t *testing.T) {
	g := types.NewGarmentProfile()
	g.Category = types.CategoryJacket
	g.IsStructured = true
	g.JacketClosure = sptr("open_front")
	b := types.NewBodyProfile()

	res := ScoreGarment(&g, &b)

	aspects := map[string]bool{}
	for _, m := range res.LayerModifications {
		aspects[m.Aspect] = true
	}
	assert.True(t, aspects["cling_neutralization"])
	assert.True(t, aspects["vertical_line_creation"])
	assert.NotEmpty(t, res.StylingNotes)
}

func TestScoreGarment_VerdictBandMatchesScore(t *testing.T) {
	g := types.NewGarmentProfile()
	b := types.NewBodyProfile()

	res := ScoreGarment(&g, &b)

	band := res.VerdictBand()
	switch {
	case res.OverallScore >= 7.5:
		assert.Equal(t, "this_is_it", band)
	case res.OverallScore >= 5.0:
		assert.Equal(t, "smart_pick", band)
	default:
		assert.Equal(t, "not_this_one", band)
	}
}

func TestRunScorer_PanicRecovered(t *testing.T) {
	s := principles.Scorer{
		Name: "boom",
		Score: func(principles.Input) types.PrincipleResult {
			panic("division by zero in band lookup")
		},
	}

	out := runScorer(s, principles.Input{}, 1.0)

	// The errored scorer dilutes the composite at zero instead of
	// dropping out of it.
	assert.Equal(t, "boom", out.Name)
	assert.True(t, out.Applicable)
	assert.Zero(t, out.Score)
	assert.Greater(t, out.Weight, 0.0)
	assert.InDelta(t, 0.70, out.Confidence, 0.001)
	require.NotEmpty(t, out.Trail)
	assert.Contains(t, out.Trail[0].Note, "ERROR:")
}

func TestRunScorer_PenaltyReductionOnNegatives(t *testing.T) {
	s := principles.Scorer{
		Name: "neg",
		Score: func(principles.Input) types.PrincipleResult {
			return types.PrincipleResult{Name: "neg", Score: -0.40, Weight: 0.1, Applicable: true, Confidence: 0.70}
		},
	}

	out := runScorer(s, principles.Input{}, 0.30)

	assert.InDelta(t, -0.12, out.Score, 0.0001)
	require.NotEmpty(t, out.Trail)
	assert.Equal(t, "structured_reduction", out.Trail[len(out.Trail)-1].RuleID)

	// Positive scores pass through untouched.
	s.Score = func(principles.Input) types.PrincipleResult {
		return types.PrincipleResult{Name: "pos", Score: 0.40, Applicable: true}
	}
	out = runScorer(s, principles.Input{}, 0.30)
	assert.InDelta(t, 0.40, out.Score, 0.0001)
}
