package types

import (
	"encoding/json"
	"fmt"
)

// FlattenResult projects a ScoreResult into a display map for the
// communication layer. The projection is lossless: every field of the
// result survives the round trip through UnflattenResult.
func FlattenResult(r *ScoreResult) (map[string]any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("flatten score result: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("flatten score result: %w", err)
	}
	out["verdict_band"] = r.VerdictBand()
	return out, nil
}

// UnflattenResult rebuilds a ScoreResult from a display map produced by
// FlattenResult.
func UnflattenResult(m map[string]any) (*ScoreResult, error) {
	delete(m, "verdict_band")
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("unflatten score result: %w", err)
	}
	var r ScoreResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("unflatten score result: %w", err)
	}
	return &r, nil
}
