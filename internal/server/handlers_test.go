package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kridha/fit-engine/internal/types"
)

func scoreBody(t *testing.T, req any) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	s := &Server{}
	r := httptest.NewRequest("POST", "/score", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.handleScore(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScore_ReturnsResult(t *testing.T) {
	s := &Server{}
	req := types.ScoreRequest{
		Body:    types.NewBodyProfile(),
		Garment: types.NewGarmentProfile(),
	}
	r := httptest.NewRequest("POST", "/score", scoreBody(t, req))
	w := httptest.NewRecorder()

	s.handleScore(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ScoreResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.RunID)
	assert.GreaterOrEqual(t, resp.Result.OverallScore, 0.0)
	assert.LessOrEqual(t, resp.Result.OverallScore, 10.0)
	assert.NotEmpty(t, resp.Result.ReasoningChain)
}

func TestHandleScoreBatch_ReturnsPerGarmentResults(t *testing.T) {
	s := &Server{}

	shiny := types.NewGarmentProfile()
	shiny.Surface = types.SurfaceHighShine

	req := types.BatchScoreRequest{
		Body:     types.NewBodyProfile(),
		Garments: []types.GarmentProfile{types.NewGarmentProfile(), shiny},
	}
	r := httptest.NewRequest("POST", "/score/batch", scoreBody(t, req))
	w := httptest.NewRecorder()

	s.handleScoreBatch(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.BatchScoreResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Results, 2)
	for _, res := range resp.Results {
		require.NotNil(t, res)
		assert.NotEmpty(t, res.ReasoningChain)
	}
}

func TestHandleScoreBatch_RejectsEmptyGarments(t *testing.T) {
	s := &Server{}
	req := types.BatchScoreRequest{
		Body:     types.NewBodyProfile(),
		Garments: []types.GarmentProfile{},
	}
	r := httptest.NewRequest("POST", "/score/batch", scoreBody(t, req))
	w := httptest.NewRecorder()

	s.handleScoreBatch(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScoreBatchStream_EmitsEvents(t *testing.T) {
	s := &Server{}
	req := types.BatchScoreRequest{
		Body:     types.NewBodyProfile(),
		Garments: []types.GarmentProfile{types.NewGarmentProfile(), types.NewGarmentProfile()},
	}
	r := httptest.NewRequest("POST", "/score/batch/stream", scoreBody(t, req))
	w := httptest.NewRecorder()

	s.handleScoreBatchStream(w, r)

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(body, "event: result"))
	assert.Contains(t, body, "event: complete")
}

func TestParseIDParam_Invalid(t *testing.T) {
	s := &Server{}
	r := httptest.NewRequest("GET", "/runs/not-a-uuid", nil)
	r.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	_, ok := s.parseIDParam(w, r, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealth(t *testing.T) {
	s := &Server{}
	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
