// Package translate projects garment geometry onto a specific body:
// where the hemline actually lands, how the sleeve endpoint reads against
// the arm, and how the waistline placement shifts perceived proportions.
package translate

import (
	"math"

	"github.com/kridha/fit-engine/internal/types"
)

// HemlineResult is the computed hemline landing for one body.
type HemlineResult struct {
	HemFromFloor         float64
	Zone                 types.HemZone
	DangerZones          []types.Interval // thigh, knee, calf
	SafeZone             *types.Interval
	FabricRiseAdjustment float64
	CutRatio             float64
	NarrowPointBonus     float64
}

// hemFromFloor converts the stated hem position to inches from the floor
// on this body. An explicit garment length wins over the label, scaled by
// the body's height against the sizing-standard 66".
func hemFromFloor(g *types.GarmentProfile, b *types.BodyProfile) float64 {
	if g.GarmentLengthInches != nil {
		return b.Height - *g.GarmentLengthInches*(b.Height/66.0)
	}
	switch g.HemPosition {
	case "mini":
		return b.HKnee + 6
	case "above_knee":
		return b.HKnee + 3
	case "knee":
		return b.HKnee
	case "below_knee":
		return b.HKnee - 3
	case "midi":
		return b.HCalfMax
	case "below_calf":
		return b.HCalfMin
	case "ankle":
		return b.HAnkle + 2
	case "floor":
		return 1.0
	default:
		return b.HKnee
	}
}

// fabricRise estimates how many inches the real hemline sits above the
// flat-lay hem once the fabric travels over the body's curves.
func fabricRise(g *types.GarmentProfile, b *types.BodyProfile, effectiveGSM *float64) float64 {
	rise := 0.0
	if g.Silhouette == types.SilhouetteALine || g.Silhouette == types.SilhouetteFitAndFlare {
		if b.Hip > 40 {
			rise += 1.0
		}
		if b.BellyProjection > 2 {
			rise += 0.5
		}
	}
	if g.Silhouette == types.SilhouetteFitted {
		rise += 0.5
	}
	if effectiveGSM != nil {
		if *effectiveGSM < 120 {
			rise *= 1.3 // light fabric lifts easily
		} else if *effectiveGSM > 280 {
			rise *= 0.7 // heavy fabric hangs
		}
	}
	return rise
}

// ComputeHemline locates the hemline relative to this body's leg danger
// zones. effectiveGSM may be nil when fabric weight is unknown.
func ComputeHemline(g *types.GarmentProfile, b *types.BodyProfile, effectiveGSM *float64) HemlineResult {
	rise := fabricRise(g, b, effectiveGSM)
	hem := hemFromFloor(g, b) + rise

	thighDanger := types.Interval{Lo: b.HKnee + 5, Hi: b.HKnee + 7}
	kneeDanger := types.Interval{Lo: b.HKnee - 1.0, Hi: b.HKnee + 1.5}
	calfRadius := 1.0 + (b.CalfProminence()-1.0)*3.0
	calfDanger := types.Interval{Lo: b.HCalfMax - calfRadius, Hi: b.HCalfMax + calfRadius}

	// The safe zone is the gap between the knee and calf danger zones.
	// Prominent calves can swallow it entirely.
	var safeZone *types.Interval
	safeSize := kneeDanger.Lo - calfDanger.Hi
	if safeSize > 0 {
		safeZone = &types.Interval{Lo: calfDanger.Hi, Hi: kneeDanger.Lo}
	}

	var zone types.HemZone
	switch {
	case hem > b.HKnee+2.5:
		zone = types.ZoneAboveKnee
	case hem > kneeDanger.Hi:
		zone = types.ZoneAboveKneeNear
	case hem >= kneeDanger.Lo:
		zone = types.ZoneKneeDanger
	case safeSize > 0 && hem > calfDanger.Hi:
		zone = types.ZoneSafe
	case safeSize <= 0 && hem > calfDanger.Hi:
		zone = types.ZoneCollapsed
	case hem >= calfDanger.Lo:
		zone = types.ZoneCalfDanger
	case hem > b.HAnkle+2:
		zone = types.ZoneBelowCalf
	case hem > b.HAnkle-1:
		zone = types.ZoneAnkle
	default:
		zone = types.ZoneFloor
	}

	cutRatio := 0.0
	if b.Height > 0 {
		cutRatio = hem / b.Height
	}

	return HemlineResult{
		HemFromFloor:         hem,
		Zone:                 zone,
		DangerZones:          []types.Interval{thighDanger, kneeDanger, calfDanger},
		SafeZone:             safeZone,
		FabricRiseAdjustment: rise,
		CutRatio:             cutRatio,
		NarrowPointBonus:     narrowPointBonus(hem, b),
	}
}

// narrowPointBonus rewards a hemline that ends at one of the leg's
// narrowest points, which reads as slimming.
func narrowPointBonus(hem float64, b *types.BodyProfile) float64 {
	if math.Abs(hem-(b.HAnkle+2)) <= 1.5 {
		return 2.0
	}
	if math.Abs(hem-b.HCalfMin) <= 1.5 {
		return 1.0
	}
	return 0
}
