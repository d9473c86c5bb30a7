package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kridha/fit-engine/internal/types"
)

// Unit tests cover the artifact payload decode paths the typed getters
// rely on. Query behavior is covered against a live database.

func TestScoreResultArtifact_Decodes(t *testing.T) {
	stored := &types.ScoreResult{
		OverallScore: 7.8,
		CompositeRaw: 0.1842,
		Confidence:   0.72,
		PrincipleScores: []types.PrincipleResult{
			{Name: "hemline", Score: 0.3, Weight: 1.3, Applicable: true, Confidence: 0.82},
		},
		ReasoningChain: []string{"fabric gates passed"},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	var back types.ScoreResult
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, stored.OverallScore, back.OverallScore)
	assert.Equal(t, stored.CompositeRaw, back.CompositeRaw)
	require.Len(t, back.PrincipleScores, 1)
	assert.Equal(t, "hemline", back.PrincipleScores[0].Name)
}

func TestGarmentProfileArtifact_Decodes(t *testing.T) {
	stored := types.NewGarmentProfile()
	stored.PrimaryFiber = "silk"
	stored.Category = types.CategoryDress
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	var back types.GarmentProfile
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "silk", back.PrimaryFiber)
	assert.Equal(t, types.CategoryDress, back.Category)
}

func TestBodyProfileArtifact_Decodes(t *testing.T) {
	stored := types.NewBodyProfile()
	stored.Height = 61
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	var back types.BodyProfile
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 61.0, back.Height)
	assert.True(t, back.IsPetite())
}

func TestArtifactKinds_AreDistinct(t *testing.T) {
	kinds := map[string]bool{KindBodyProfile: true, KindGarmentProfile: true, KindScoreResult: true}
	assert.Len(t, kinds, 3)
}
