package principles

import (
	"math"

	"github.com/kridha/fit-engine/internal/types"
)

// scoreHemline rates where the hemline lands against this body's leg
// danger zones.
func scoreHemline(in Input) types.PrincipleResult {
	g, b := in.G, in.B
	var trail types.Trail

	if in.Proj == nil || in.Proj.Hemline == nil {
		return types.NotApplicable(NameHemline, "garment has no leg hemline")
	}
	h := in.Proj.Hemline

	var score float64
	switch h.Zone {
	case types.ZoneAboveKnee, types.ZoneAboveKneeNear:
		inchesAbove := h.HemFromFloor - b.HKnee
		elong := math.Min(inchesAbove*0.20, 0.60)
		if b.IsPetite() {
			elong = math.Min(elong+(63-b.Height)/50, 0.80)
		}
		if b.IsTall() && b.LegRatio() > 0.62 {
			elong *= 0.65
		}
		trail = trail.Add("hem_leg_exposure", elong, "exposed leg elongates the line")

		penalty := 0.0
		switch {
		case b.CThighMax > 27:
			penalty = -0.35
		case b.CThighMax > 24:
			penalty = -0.20
		case b.CThighMax > 22:
			penalty = -0.10
		}
		if penalty != 0 {
			if b.GoalLegs != nil && *b.GoalLegs == "showcase" {
				penalty *= 0.5
			}
			if b.GoalHip != nil && *b.GoalHip == "narrower" {
				penalty *= 1.2
			}
			trail = trail.Add("hem_thigh_exposure", penalty, "hem ends at the fuller thigh")
		}

		bonus := 0.0
		if b.Shape() == types.ShapeApple {
			switch {
			case b.CThighMax < 22:
				bonus = 0.15
				trail = trail.Add("hem_apple_legs", 0.15, "showing slim legs shifts attention from the midsection")
			case b.CThighMax < 24:
				bonus = 0.08
			}
		}
		score = elong + penalty + bonus

	case types.ZoneKneeDanger:
		score = -0.30
		if b.IsPetite() {
			score = -0.40
		}
		trail = trail.Add("hemline_zone_collision_petite", score, "hem cuts through the knee, the leg's widest joint zone")

	case types.ZoneSafe:
		score = 0.15
		if h.SafeZone != nil && h.SafeZone.Width() > 0 {
			position := (h.SafeZone.Hi - h.HemFromFloor) / h.SafeZone.Width()
			if position >= 0.25 && position <= 0.75 {
				score = 0.30
			}
		}
		if b.IsTall() {
			score += 0.10
		}
		trail = trail.Add("hem_safe_zone", score, "hem lands between knee and calf danger zones")

	case types.ZoneCollapsed:
		score = -0.20
		trail = trail.Add("hem_collapsed", -0.20, "no good landing exists between knee and calf on this leg")

	case types.ZoneCalfDanger:
		switch {
		case b.CalfProminence() > 1.3:
			score = -0.50
		case b.CalfProminence() > 1.2:
			score = -0.42
		default:
			score = -0.35
		}
		if b.IsPetite() {
			score *= 1.15
		}
		trail = trail.Add("hem_calf_danger", score, "hem ends at the widest calf point")

	case types.ZoneBelowCalf:
		score = 0.15
		trail = trail.Add("hem_below_calf", 0.15, "hem clears the calf to the narrowing leg")

	case types.ZoneAnkle:
		switch {
		case b.IsPetite():
			switch {
			case g.Silhouette == types.SilhouetteOversized || g.Silhouette == types.SilhouetteShift:
				score = -0.15
			case g.Silhouette == types.SilhouetteFitted && g.HasWaistDefinition:
				score = 0.40
			case g.Silhouette == types.SilhouetteFitted:
				score = 0.15
			default:
				score = 0.10
			}
		case b.IsTall():
			score = 0.45
		default:
			score = 0.25
		}
		if b.Shape() == types.ShapeHourglass && !g.HasWaistDefinition {
			score -= 0.15
		}
		trail = trail.Add("hem_ankle", score, "hem at the ankle, the leg's narrowest point")

	case types.ZoneFloor:
		switch {
		case b.IsTall():
			score = 0.15
		case b.IsPetite():
			score = -0.10
		default:
			score = 0.05
		}
		if b.Shape() == types.ShapeHourglass && !g.HasWaistDefinition {
			score -= 0.15
		}
		trail = trail.Add("hem_floor", score, "floor length")
	}

	return result(NameHemline, score, trail)
}

// sleeveDeltaScore converts a perceived-vs-actual arm width delta, in
// inches, to a raw -5..+5 band.
func sleeveDeltaScore(delta float64) float64 {
	switch {
	case delta > 0.30:
		return -4
	case delta > 0.15:
		return -2
	case delta > 0:
		return -1
	case delta > -0.30:
		return 1
	case delta > -0.60:
		return 3
	default:
		return 5
	}
}

// scoreSleeve rates the sleeve-arm interaction using the projected
// endpoint and perceived width.
func scoreSleeve(in Input) types.PrincipleResult {
	g := in.G
	var trail types.Trail

	if in.Proj == nil || in.Proj.Sleeve == nil || !in.Proj.Sleeve.Applicable {
		return types.NotApplicable(NameSleeve, "sleeveless, no sleeve-arm interaction")
	}
	s := in.Proj.Sleeve

	raw := sleeveDeltaScore(s.Delta)
	trail = trail.Add("hemline_sleeve_anatomical", raw/5, "sleeve endpoint vs widest arm point")

	// Arm prominence scales the stakes: penalties fully, benefits at half
	// the rate past the baseline.
	if raw < 0 {
		raw *= s.Severity
	} else {
		raw *= 1 + (s.Severity-1)*0.5
	}

	if g.SleeveType == types.SleeveFlutter {
		raw += 2
		trail = trail.Add("flutter_skim", 0.4, "flutter edge floats off the arm instead of gripping it")
	}

	return result(NameSleeve, raw/5, trail)
}
