package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kridha/fit-engine/internal/db"
	"github.com/kridha/fit-engine/internal/engine"
	"github.com/kridha/fit-engine/internal/types"
)

// handleScore scores one garment against one body
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result := engine.ScoreGarment(&req.Garment, &req.Body)

	resp := types.ScoreResponse{Result: result}
	if req.Persist {
		runID, err := s.persistRun(r.Context(), &req.Body, []types.GarmentProfile{req.Garment}, []*types.ScoreResult{result})
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist run: "+err.Error())
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScoreBatch scores several garments against one body
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	results := make([]*types.ScoreResult, len(req.Garments))
	for i := range req.Garments {
		results[i] = engine.ScoreGarment(&req.Garments[i], &req.Body)
	}

	resp := types.BatchScoreResponse{Results: results}
	if req.Persist {
		runID, err := s.persistRun(r.Context(), &req.Body, req.Garments, results)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist run: "+err.Error())
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScoreBatchStream scores a batch and streams each result as an SSE event
func (s *Server) handleScoreBatchStream(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	stream, err := newResultStream(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Streaming batch score of %d garments", len(req.Garments))

	results := make([]*types.ScoreResult, len(req.Garments))
	for i := range req.Garments {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		result := engine.ScoreGarment(&req.Garments[i], &req.Body)
		results[i] = result
		if err := stream.Result(i, result); err != nil {
			log.Printf("Error writing SSE event: %v", err)
			return
		}
	}

	runID := ""
	if req.Persist {
		id, err := s.persistRun(r.Context(), &req.Body, req.Garments, results)
		if err != nil {
			stream.Fail("Failed to persist run: " + err.Error())
			return
		}
		runID = id.String()
	}

	stream.Complete(runID, "completed")
}

// persistRun stores the inputs and results of a scoring call. The body is
// stored once at seq 0; garments and results are stored per sequence.
func (s *Server) persistRun(ctx context.Context, body *types.BodyProfile, garments []types.GarmentProfile, results []*types.ScoreResult) (uuid.UUID, error) {
	runID, err := s.db.CreateRun(ctx, nil, len(garments))
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.db.SaveArtifact(ctx, runID, db.KindBodyProfile, 0, body); err != nil {
		s.db.CompleteRun(ctx, runID, db.RunStatusFailed) //nolint:errcheck
		return uuid.Nil, err
	}
	for i := range garments {
		if err := s.db.SaveArtifact(ctx, runID, db.KindGarmentProfile, i, garments[i]); err != nil {
			s.db.CompleteRun(ctx, runID, db.RunStatusFailed) //nolint:errcheck
			return uuid.Nil, err
		}
		if err := s.db.SaveArtifact(ctx, runID, db.KindScoreResult, i, results[i]); err != nil {
			s.db.CompleteRun(ctx, runID, db.RunStatusFailed) //nolint:errcheck
			return uuid.Nil, err
		}
	}

	if err := s.db.CompleteRun(ctx, runID, db.RunStatusCompleted); err != nil {
		return uuid.Nil, err
	}
	return runID, nil
}

// handleListRuns returns recent scoring runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	filters := db.RunFilters{}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = status
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]types.RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, types.RunSummary{
			ID:           run.ID,
			Status:       run.Status,
			GarmentCount: run.GarmentCount,
			CreatedAt:    run.CreatedAt,
			CompletedAt:  run.CompletedAt,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": summaries})
}

// handleGetRun returns one scoring run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteRun deletes a scoring run and its artifacts
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleRunArtifacts lists the artifacts stored for a run
func (s *Server) handleRunArtifacts(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"run_id": runID, "artifacts": artifacts})
}

// handleRunResult returns the persisted score result for one garment of a run
func (s *Server) handleRunResult(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	seq, err := strconv.Atoi(r.PathValue("seq"))
	if err != nil || seq < 0 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid sequence number")
		return
	}

	result, err := s.db.GetScoreResult(r.Context(), runID, seq)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Result not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleArtifact returns an artifact by ID
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	artifactID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	artifact, err := s.db.GetArtifactByID(r.Context(), artifactID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if artifact == nil {
		s.errorResponse(w, http.StatusNotFound, "Artifact not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, artifact)
}

// parseIDParam parses a UUID path parameter, writing an error response on failure
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
