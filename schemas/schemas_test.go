package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/kridha/fit-engine/internal/schemas"
)

var schemaFiles = []string{
	"body_profile.schema.json",
	"garment_profile.schema.json",
	"score_request.schema.json",
	"batch_score_request.schema.json",
	"score_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + absPath)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestGarmentProfileSchema_AcceptsMinimalGarment(t *testing.T) {
	data, err := os.ReadFile("garment_profile.schema.json")
	require.NoError(t, err)

	doc := `{"primary_fiber": "cotton", "category": "dress"}`
	err = schemas.ValidateJSONString(string(data), doc)
	assert.NoError(t, err)
}

func TestGarmentProfileSchema_RejectsUnknownCategory(t *testing.T) {
	data, err := os.ReadFile("garment_profile.schema.json")
	require.NoError(t, err)

	doc := `{"primary_fiber": "cotton", "category": "spacesuit"}`
	err = schemas.ValidateJSONString(string(data), doc)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestBodyProfileSchema_RequiresCoreMeasurements(t *testing.T) {
	data, err := os.ReadFile("body_profile.schema.json")
	require.NoError(t, err)

	doc := `{"height": 66, "bust": 36}`
	err = schemas.ValidateJSONString(string(data), doc)
	require.Error(t, err)
}

func TestBodyProfileSchema_AcceptsFullProfile(t *testing.T) {
	data, err := os.ReadFile("body_profile.schema.json")
	require.NoError(t, err)

	doc := `{
		"height": 66, "bust": 36, "underbust": 32, "waist": 30, "hip": 38,
		"styling_goals": [{"goal": "look_taller", "weight": 1.0}],
		"climate": "hot_humid", "age": 32
	}`
	err = schemas.ValidateJSONString(string(data), doc)
	assert.NoError(t, err)
}

func TestScoreResultSchema_ValidatesRoundedResult(t *testing.T) {
	data, err := os.ReadFile("score_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"overall_score": 7.8,
		"composite_raw": 0.1234,
		"confidence": 0.70,
		"principle_scores": [
			{"name": "hemline", "score": 0.3, "weight": 1.3, "applicable": true, "confidence": 0.7,
			 "trail": [{"rule_id": "hem_safe", "delta": 0.3, "note": "hem lands in safe zone"}]}
		],
		"goal_verdicts": [{"goal": "slimming", "verdict": "pass", "score": 0.12}],
		"reasoning_chain": ["scored 16 principles, 1 applicable"]
	}`
	err = schemas.ValidateJSONString(string(data), doc)
	assert.NoError(t, err)
}

func TestScoreResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	data, err := os.ReadFile("score_result.schema.json")
	require.NoError(t, err)

	doc := `{"overall_score": 11, "composite_raw": 0, "confidence": 0.5, "principle_scores": []}`
	err = schemas.ValidateJSONString(string(data), doc)
	require.Error(t, err)
}
