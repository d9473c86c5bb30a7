// Package engine orchestrates the scoring pipeline: fabric resolution
// and gates, garment classification and projection onto the body, the
// principle scorers, goal calibration, context adjustment, and the final
// composite with its dominance overrides.
package engine

import (
	"fmt"
	"math"

	"github.com/kridha/fit-engine/internal/calibrate"
	"github.com/kridha/fit-engine/internal/composite"
	"github.com/kridha/fit-engine/internal/contextmod"
	"github.com/kridha/fit-engine/internal/fabric"
	"github.com/kridha/fit-engine/internal/goals"
	"github.com/kridha/fit-engine/internal/principles"
	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/translate"
	"github.com/kridha/fit-engine/internal/types"
)

// ScoreGarment runs the full pipeline for one garment on one body and
// returns the complete result. It never panics: a scorer that blows up
// is recorded as an error result and the rest of the pipeline proceeds.
func ScoreGarment(g *types.GarmentProfile, b *types.BodyProfile) *types.ScoreResult {
	var chain []string

	// Stage 1: fabric behavior and gate exceptions.
	resolved := fabric.Resolve(g)
	exceptions := fabric.RunGates(g, b, resolved)
	penaltyReduction := fabric.StructuredPenaltyReduction(exceptions)
	chain = append(chain, fmt.Sprintf(
		"fabric: stretch %.1f%%, sheen %.2f, %d gate(s) fired",
		resolved.TotalStretchPct, resolved.SheenScore, len(exceptions)))

	// Stage 2: classification. The classifier may correct a stated
	// category from the title or attributes; score against the corrected
	// one without mutating the caller's profile.
	gc := *g
	gc.Category = principles.Classify(g)
	if gc.Category != g.Category {
		chain = append(chain, fmt.Sprintf("reclassified %s as %s", g.Category, gc.Category))
	} else {
		chain = append(chain, fmt.Sprintf("classified as %s", gc.Category))
	}

	// Stage 3: project the garment onto the body.
	proj := translate.GarmentToBody(&gc, b, resolved)

	// Stage 4: run the scorers.
	in := principles.Input{G: &gc, B: b, Fabric: resolved, Proj: &proj}
	var results []types.PrincipleResult
	for _, s := range principles.BaseScorers() {
		if principles.SkipsScorer(gc.Category, s.Name) {
			continue
		}
		results = append(results, runScorer(s, in, penaltyReduction))
	}
	typeScorers := principles.TypeScorers()
	for _, name := range principles.ExtraScorersFor(gc.Category) {
		if s, ok := typeScorers[name]; ok {
			results = append(results, runScorer(s, in, penaltyReduction))
		}
	}
	applicable := 0
	for _, r := range results {
		if r.Applicable {
			applicable++
		}
	}
	chain = append(chain, fmt.Sprintf("scored %d principles, %d applicable", len(results), applicable))

	// Stage 5: goals and weight calibration.
	weighted := goals.Resolve(b)
	calibrated := calibrate.AdjustWeights(results, weighted)
	verdicts := goals.ScoreAll(weighted, calibrated)
	chain = append(chain, fmt.Sprintf("goals: %d active, %d verdicts", len(weighted), len(verdicts)))

	result := &types.ScoreResult{
		PrincipleScores: calibrated,
		GoalVerdicts:    verdicts,
		ZoneScores:      principles.ZoneRollup(calibrated, principles.ZonesFor),
		Exceptions:      exceptions,
		Fixes:           principles.SuggestFixes(calibrated),
		BodyAdjusted:    &proj.Adjusted,
	}

	// Stage 6: composite with context adjustment and dominance.
	raw, ok := composite.Aggregate(calibrated)
	if !ok {
		result.OverallScore = 5.0
		result.CompositeRaw = 0.0
		result.Confidence = 0.50
		chain = append(chain, "no applicable principles, neutral verdict")
		result.ReasoningChain = chain
		return result
	}

	ctxAdj, ctxTrail := contextmod.Apply(&gc, b, calibrated)
	if ctxAdj != 0 {
		raw = types.ClampUnit(raw + ctxAdj)
		chain = append(chain, fmt.Sprintf("context: %+.2f (%s)", ctxAdj, ctxTrail.Render()))
	}

	raw, domTrail := composite.ApplyDominance(raw, calibrated, weighted)
	for _, step := range domTrail {
		chain = append(chain, step.Note)
	}

	result.CompositeRaw = roundTo(raw, 4)
	result.Confidence = roundTo(composite.MeanConfidence(calibrated), 2)
	result.OverallScore = roundTo(composite.DisplayScore(raw), 1)
	chain = append(chain, fmt.Sprintf(
		"composite %.4f -> %.1f/10 (%s)", result.CompositeRaw, result.OverallScore, result.VerdictBand()))
	result.ReasoningChain = chain

	// Stage 7: layer interaction for over-layers.
	if principles.IsLayerCategory(gc.Category) {
		result.LayerModifications = principles.LayerModifications(&gc, b)
		result.StylingNotes = principles.LayerStylingNotes(&gc, b)
	}

	return result
}

// runScorer executes one scorer with panic recovery and applies the
// structured-garment penalty reduction to negative scores.
func runScorer(s principles.Scorer, in principles.Input, penaltyReduction float64) (out types.PrincipleResult) {
	defer func() {
		if r := recover(); r != nil {
			// An errored scorer stays in the composite at zero with its
			// base weight rather than silently dropping out.
			out = types.PrincipleResult{
				Name:       s.Name,
				Trail:      types.Trail{{RuleID: "scorer_panic", Note: fmt.Sprintf("ERROR: %v", r)}},
				Weight:     principles.WeightFor(s.Name),
				Applicable: true,
				Confidence: rules.DefaultConfidence,
			}
		}
	}()
	out = s.Score(in)
	if out.Applicable && out.Score < 0 && penaltyReduction < 1.0 {
		reduced := out.Score * penaltyReduction
		out.Trail = out.Trail.Add("structured_reduction", reduced-out.Score,
			"structured construction absorbs most of this penalty")
		out.Score = reduced
	}
	return out
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
