package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kridha/fit-engine/internal/types"
)

// SaveArtifact stores a JSON artifact for a scoring run. Seq distinguishes
// per-garment artifacts within a batch run; single-garment runs use seq 0.
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, kind string, seq int, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO scoring_artifacts (run_id, kind, seq, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, kind, seq) DO UPDATE SET content = $4, created_at = NOW()`,
		runID, kind, seq, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", kind, err)
	}
	return nil
}

// GetArtifact retrieves the raw JSON content of one artifact
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, kind string, seq int) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM scoring_artifacts WHERE run_id = $1 AND kind = $2 AND seq = $3`,
		runID, kind, seq,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", kind, err)
	}
	return content, nil
}

// GetArtifactByID retrieves an artifact by its UUID
func (db *DB) GetArtifactByID(ctx context.Context, artifactID uuid.UUID) (*Artifact, error) {
	var artifact Artifact
	var contentBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, run_id, kind, seq, content, created_at
		 FROM scoring_artifacts WHERE id = $1`,
		artifactID,
	).Scan(&artifact.ID, &artifact.RunID, &artifact.Kind, &artifact.Seq, &contentBytes, &artifact.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	if len(contentBytes) > 0 {
		var content any
		if err := json.Unmarshal(contentBytes, &content); err == nil {
			artifact.Content = content
		}
	}

	return &artifact, nil
}

// ListArtifacts retrieves the artifact summaries for a run in store order
func (db *DB) ListArtifacts(ctx context.Context, runID uuid.UUID) ([]ArtifactSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, kind, seq, created_at
		 FROM scoring_artifacts WHERE run_id = $1
		 ORDER BY seq ASC, created_at ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []ArtifactSummary
	for rows.Next() {
		var a ArtifactSummary
		if err := rows.Scan(&a.ID, &a.Kind, &a.Seq, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// GetScoreResult loads the persisted score result for one garment of a run
func (db *DB) GetScoreResult(ctx context.Context, runID uuid.UUID, seq int) (*types.ScoreResult, error) {
	content, err := db.GetArtifact(ctx, runID, KindScoreResult, seq)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.ScoreResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
	}
	return &result, nil
}

// GetGarmentProfile loads the persisted garment input for one garment of a run
func (db *DB) GetGarmentProfile(ctx context.Context, runID uuid.UUID, seq int) (*types.GarmentProfile, error) {
	content, err := db.GetArtifact(ctx, runID, KindGarmentProfile, seq)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var garment types.GarmentProfile
	if err := json.Unmarshal(content, &garment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal garment profile: %w", err)
	}
	return &garment, nil
}

// GetBodyProfile loads the persisted body input for a run
func (db *DB) GetBodyProfile(ctx context.Context, runID uuid.UUID) (*types.BodyProfile, error) {
	content, err := db.GetArtifact(ctx, runID, KindBodyProfile, 0)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var body types.BodyProfile
	if err := json.Unmarshal(content, &body); err != nil {
		return nil, fmt.Errorf("failed to unmarshal body profile: %w", err)
	}
	return &body, nil
}
