package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrail_AddAndRender(t *testing.T) {
	trail := Trail{}.
		Add("hem_safe", 0.30, "hem lands in safe zone").
		Add("observed", 0, "woven fabric")

	assert.Len(t, trail, 2)

	rendered := trail.Render()
	assert.Contains(t, rendered, "hem lands in safe zone (+0.30)")
	assert.Contains(t, rendered, "woven fabric")
	assert.NotContains(t, rendered, "woven fabric (")
}

func TestTrail_RenderEmpty(t *testing.T) {
	assert.Equal(t, "", Trail{}.Render())
}

func TestNotApplicable(t *testing.T) {
	r := NotApplicable("v_neck", "no v-neckline")

	assert.Equal(t, "v_neck", r.Name)
	assert.False(t, r.Applicable)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Weight)
	assert.Contains(t, r.Trail.Render(), "no v-neckline")
}

func TestVerdictBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.2, "this_is_it"},
		{7.5, "this_is_it"},
		{7.4, "smart_pick"},
		{5.0, "smart_pick"},
		{4.9, "not_this_one"},
		{0.0, "not_this_one"},
	}

	for _, tt := range tests {
		r := &ScoreResult{OverallScore: tt.score}
		assert.Equal(t, tt.want, r.VerdictBand(), "score %.1f", tt.score)
	}
}

func TestScoreToTen(t *testing.T) {
	assert.Equal(t, 0.0, ScoreToTen(-1.0))
	assert.Equal(t, 5.0, ScoreToTen(0.0))
	assert.Equal(t, 10.0, ScoreToTen(1.0))
	// Out-of-range raw scores clamp
	assert.Equal(t, 10.0, ScoreToTen(1.7))
}

func TestRescaleDisplay_Breakpoints(t *testing.T) {
	assert.InDelta(t, 0.0, RescaleDisplay(0.0), 1e-9)
	assert.InDelta(t, 5.5, RescaleDisplay(5.0), 1e-9)
	assert.InDelta(t, 7.0, RescaleDisplay(5.5), 1e-9)
	assert.InDelta(t, 9.5, RescaleDisplay(6.3), 1e-9)
	assert.InDelta(t, 10.0, RescaleDisplay(10.0), 1e-9)
}

func TestRescaleDisplay_Monotonic(t *testing.T) {
	prev := RescaleDisplay(0.0)
	for raw := 0.05; raw <= 10.0; raw += 0.05 {
		cur := RescaleDisplay(raw)
		assert.GreaterOrEqual(t, cur, prev, "raw %.2f", raw)
		prev = cur
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Lo: 14.0, Hi: 18.0}

	assert.Equal(t, 4.0, iv.Width())
	assert.True(t, iv.Contains(16.0))
	assert.True(t, iv.Contains(14.0))
	assert.False(t, iv.Contains(18.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, ClampUnit(1.3))
	assert.Equal(t, -1.0, ClampUnit(-2.0))
	assert.Equal(t, 0.5, ClampUnit(0.5))
	assert.Equal(t, 3.0, Clamp(2.0, 3.0, 5.0))
}
