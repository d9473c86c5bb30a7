package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenResult_AddsVerdictBand(t *testing.T) {
	r := &ScoreResult{OverallScore: 8.1, CompositeRaw: 0.2, Confidence: 0.7}

	m, err := FlattenResult(r)
	require.NoError(t, err)

	assert.Equal(t, "this_is_it", m["verdict_band"])
	assert.Equal(t, 8.1, m["overall_score"])
}

func TestFlattenUnflatten_RoundTrip(t *testing.T) {
	r := &ScoreResult{
		OverallScore: 6.3,
		CompositeRaw: 0.0512,
		Confidence:   0.70,
		PrincipleScores: []PrincipleResult{
			{Name: "hemline", Score: 0.3, Weight: 1.3, Applicable: true, Confidence: 0.7,
				Trail: Trail{{RuleID: "hem_safe", Delta: 0.3, Note: "safe zone"}}},
		},
		GoalVerdicts:   []GoalVerdict{{Goal: GoalSlimming, Verdict: VerdictPass, Score: 0.1}},
		ZoneScores:     map[string]ZoneScore{"waist": {Zone: "waist", Score: 0.2}},
		ReasoningChain: []string{"scored 16 principles, 1 applicable"},
	}

	m, err := FlattenResult(r)
	require.NoError(t, err)

	back, err := UnflattenResult(m)
	require.NoError(t, err)

	assert.Equal(t, r.OverallScore, back.OverallScore)
	assert.Equal(t, r.CompositeRaw, back.CompositeRaw)
	require.Len(t, back.PrincipleScores, 1)
	assert.Equal(t, r.PrincipleScores[0].Trail, back.PrincipleScores[0].Trail)
	assert.Equal(t, r.GoalVerdicts, back.GoalVerdicts)
	assert.Equal(t, r.ZoneScores, back.ZoneScores)
	assert.Equal(t, r.ReasoningChain, back.ReasoningChain)
}
