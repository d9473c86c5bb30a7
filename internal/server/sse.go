package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kridha/fit-engine/internal/types"
)

// resultStream pushes batch scoring results to the client as
// Server-Sent Events, one event per garment as it finishes.
type resultStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newResultStream(w http.ResponseWriter) (*resultStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("Access-Control-Allow-Origin", "*")
	return &resultStream{w: w, flusher: flusher}, nil
}

func (s *resultStream) event(name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Result emits one scored garment, tagged with its batch position.
func (s *resultStream) Result(seq int, result *types.ScoreResult) error {
	return s.event("result", map[string]any{"seq": seq, "result": result})
}

// Fail tells the client the run broke mid-stream.
func (s *resultStream) Fail(message string) {
	s.event("error", map[string]string{"error": message}) //nolint:errcheck
}

// Complete closes the stream with the run's final status.
func (s *resultStream) Complete(runID, status string) {
	s.event("complete", map[string]string{ //nolint:errcheck
		"run_id": runID,
		"status": status,
	})
}
