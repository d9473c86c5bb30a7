package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScoreRequest represents the request to score one garment against one body.
type ScoreRequest struct {
	Body    BodyProfile    `json:"body" validate:"required"`
	Garment GarmentProfile `json:"garment" validate:"required"`
	Persist bool           `json:"persist,omitempty"`
}

// BatchScoreRequest represents the request to score several garments
// against one body in a single call.
type BatchScoreRequest struct {
	Body     BodyProfile      `json:"body" validate:"required"`
	Garments []GarmentProfile `json:"garments" validate:"required,min=1,max=100"`
	Persist  bool             `json:"persist,omitempty"`
}

// ScoreResponse wraps a score result with its optional persisted run ID.
type ScoreResponse struct {
	RunID  *uuid.UUID   `json:"run_id,omitempty"`
	Result *ScoreResult `json:"result"`
}

// BatchScoreResponse is the per-garment result list for a batch request.
type BatchScoreResponse struct {
	RunID   *uuid.UUID     `json:"run_id,omitempty"`
	Results []*ScoreResult `json:"results"`
}

// RunSummary represents a persisted scoring run for API responses (avoids
// import cycle with db package).
type RunSummary struct {
	ID           uuid.UUID  `json:"id"`
	Status       string     `json:"status"`
	GarmentCount int        `json:"garment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchScoreRequest using the validator.
func (r *BatchScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
