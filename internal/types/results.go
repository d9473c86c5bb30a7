package types

import (
	"fmt"
	"math"
	"strings"
)

// ReasonStep is one structured entry in a scorer's reasoning trail. Delta
// is the score contribution the step describes (0 for observations).
type ReasonStep struct {
	RuleID string  `json:"rule_id"`
	Delta  float64 `json:"delta"`
	Note   string  `json:"note"`
}

// Trail is an append-only list of reason steps. Text rendering happens only
// at the presentation boundary.
type Trail []ReasonStep

// Add appends a step and returns the extended trail.
func (t Trail) Add(ruleID string, delta float64, note string) Trail {
	return append(t, ReasonStep{RuleID: ruleID, Delta: delta, Note: note})
}

// Render joins the trail into a single human-readable line.
func (t Trail) Render() string {
	if len(t) == 0 {
		return ""
	}
	parts := make([]string, 0, len(t))
	for _, s := range t {
		if s.Delta != 0 {
			parts = append(parts, fmt.Sprintf("%s (%+.2f)", s.Note, s.Delta))
		} else {
			parts = append(parts, s.Note)
		}
	}
	return strings.Join(parts, "; ")
}

// PrincipleResult is the outcome of a single principle scorer. An
// inapplicable result carries score 0 and weight 0 and never contributes
// to aggregation.
type PrincipleResult struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"` // -1.0 to +1.0
	Trail      Trail   `json:"trail"`
	Weight     float64 `json:"weight"`
	Applicable bool    `json:"applicable"`
	Confidence float64 `json:"confidence"`
}

// NotApplicable builds the canonical inapplicable result for a scorer.
func NotApplicable(name, why string) PrincipleResult {
	return PrincipleResult{
		Name:       name,
		Score:      0,
		Trail:      Trail{{RuleID: "n/a", Note: why}},
		Weight:     0,
		Applicable: false,
		Confidence: 0,
	}
}

// GoalVerdict reports whether a garment helps or hurts one styling goal.
type GoalVerdict struct {
	Goal                 StylingGoal `json:"goal"`
	Verdict              Verdict     `json:"verdict"`
	Score                float64     `json:"score"` // weighted sum of mapped principles
	SupportingPrinciples []string    `json:"supporting_principles"`
	Trail                Trail       `json:"trail"`
}

// ZoneScore is the rolled-up score for one body zone.
type ZoneScore struct {
	Zone  string   `json:"zone"` // bust | waist | hip | thigh | knee | calf | ankle | shoulder | upper_arm
	Score float64  `json:"score"`
	Flags []string `json:"flags,omitempty"`
}

// ExceptionTriggered is the audit record of a fired fabric gate.
type ExceptionTriggered struct {
	ExceptionID    string  `json:"exception_id"`
	RuleOverridden string  `json:"rule_overridden"`
	Reason         string  `json:"reason"`
	Confidence     float64 `json:"confidence"`
}

// Fix is a suggested change that would improve the score.
type Fix struct {
	WhatToChange        string  `json:"what_to_change"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Priority            int     `json:"priority"` // 1=high, 3=low
}

// Interval is a closed [Lo, Hi] range along the leg, in inches from floor.
type Interval struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Width returns the interval width (negative when collapsed).
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v float64) bool { return v >= iv.Lo && v <= iv.Hi }

// BodyAdjustedGarment holds the geometric projection of the garment onto
// the body: hemline landing, sleeve endpoint math, waistline shift, and
// resolved fabric behavior.
type BodyAdjustedGarment struct {
	// Hemline.
	HemFromFloor         float64    `json:"hem_from_floor"` // inches
	HemZone              HemZone    `json:"hem_zone"`
	HemlineDangerZones   []Interval `json:"hemline_danger_zones"`
	HemlineSafeZone      *Interval  `json:"hemline_safe_zone,omitempty"`
	FabricRiseAdjustment float64    `json:"fabric_rise_adjustment"` // inches hemline rises from stated

	// Sleeve.
	SleeveEndpointPosition float64 `json:"sleeve_endpoint_position"` // inches from shoulder
	PerceivedArmWidth      float64 `json:"perceived_arm_width"`
	ArmWidthDelta          float64 `json:"arm_width_delta"` // vs actual
	ArmProminenceSeverity  float64 `json:"arm_prominence_severity"`

	// Waist.
	VisualWaistHeight     float64 `json:"visual_waist_height"`
	VisualLegRatio        float64 `json:"visual_leg_ratio"`
	ProportionImprovement float64 `json:"proportion_improvement"`

	// Fabric behavior.
	TotalStretchPct      float64 `json:"total_stretch_pct"`
	EffectiveGSM         float64 `json:"effective_gsm"`
	SheenScore           float64 `json:"sheen_score"`
	PhotoRealityDiscount float64 `json:"photo_reality_discount"`
}

// LayerModification records how an outer layer changes the read of what is
// underneath it.
type LayerModification struct {
	Aspect string  `json:"aspect"`
	Effect float64 `json:"effect"`
	Note   string  `json:"note"`
}

// ScoreResult is the complete output of the scoring pipeline.
type ScoreResult struct {
	OverallScore float64 `json:"overall_score"` // 0-10 display scale
	CompositeRaw float64 `json:"composite_raw"` // -1 to +1 internal scale
	Confidence   float64 `json:"confidence"`

	PrincipleScores []PrincipleResult    `json:"principle_scores"`
	GoalVerdicts    []GoalVerdict        `json:"goal_verdicts"`
	ZoneScores      map[string]ZoneScore `json:"zone_scores"`

	Exceptions []ExceptionTriggered `json:"exceptions"`
	Fixes      []Fix                `json:"fixes"`

	BodyAdjusted *BodyAdjustedGarment `json:"body_adjusted,omitempty"`

	// Append-only diagnostic log of stage summaries.
	ReasoningChain []string `json:"reasoning_chain"`

	// Layer interaction, populated for jackets/coats/cardigans/vests.
	LayerModifications []LayerModification `json:"layer_modifications,omitempty"`
	StylingNotes       []string            `json:"styling_notes,omitempty"`
}

// VerdictBand maps the display score onto the recommendation band consumed
// by the communication layer.
func (r *ScoreResult) VerdictBand() string {
	switch {
	case r.OverallScore >= 7.5:
		return "this_is_it"
	case r.OverallScore >= 5.0:
		return "smart_pick"
	default:
		return "not_this_one"
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampUnit bounds v to the scorer range [-1, 1].
func ClampUnit(v float64) float64 { return Clamp(v, -1.0, 1.0) }

// ScoreToTen converts a -1..+1 raw score to the 0..10 engine scale:
// -1 maps to 0, 0 to 5, +1 to 10.
func ScoreToTen(raw float64) float64 {
	return ClampUnit(raw)*5.0 + 5.0
}

// The weighted-confidence averaging compresses engine output to roughly
// the 4.0-6.3 band on the 0-10 scale. rescaleBreakpoints stretches that
// band across the full intuitive range, calibrated to the observed output
// distribution, so 8.0+ reads clearly great and <5.0 reads as a skip.
var rescaleBreakpoints = [][4]float64{
	// {raw_lo, raw_hi, display_lo, display_hi}
	{0.0, 3.5, 0.0, 0.5},
	{3.5, 4.0, 0.5, 1.0},
	{4.0, 4.4, 1.0, 4.0},
	{4.4, 5.0, 4.0, 5.5},
	{5.0, 5.5, 5.5, 7.0},
	{5.5, 5.8, 7.0, 8.0},
	{5.8, 6.3, 8.0, 9.5},
	{6.3, 10.0, 9.5, 10.0},
}

// RescaleDisplay applies the piecewise linear stretch of an engine 0-10
// score to the display 0-10 scale. Monotonic; preserves ordering.
func RescaleDisplay(rawTen float64) float64 {
	for _, bp := range rescaleBreakpoints {
		rawLo, rawHi, dispLo, dispHi := bp[0], bp[1], bp[2], bp[3]
		if rawTen <= rawHi {
			if rawHi == rawLo {
				return dispLo
			}
			t := (rawTen - rawLo) / (rawHi - rawLo)
			return dispLo + t*(dispHi-dispLo)
		}
	}
	return 10.0
}
