package translate

import (
	"math"
	"sort"

	"github.com/kridha/fit-engine/internal/rules"
	"github.com/kridha/fit-engine/internal/types"
)

// SleeveResult is the sleeve-arm interaction for one body. Widths are
// silhouette widths in inches, circumference over pi.
type SleeveResult struct {
	EndpointPosition  float64 // inches below shoulder
	ActualArmWidth    float64 // arm width at the endpoint
	PerceivedArmWidth float64
	Delta             float64 // perceived minus actual width
	Severity          float64
	Applicable        bool
}

type armLandmark struct {
	position float64
	circ     float64
}

// armLandmarks builds the piecewise-linear arm circumference profile,
// shoulder to wrist.
func armLandmarks(b *types.BodyProfile) []armLandmark {
	marks := []armLandmark{
		{0, b.ShoulderWidth / 2 * math.Pi / 2},
		{b.CUpperArmMaxPosition, b.CUpperArmMax},
		{b.ArmLength * 0.52, b.CElbow},
		{b.ArmLength * 0.65, b.CForearmMax},
		{b.CForearmMinPosition, b.CForearmMin},
		{b.ArmLength, b.CWrist},
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].position < marks[j].position })
	return marks
}

// armCircAt interpolates the arm circumference at a position below the
// shoulder, clamped to the landmark range.
func armCircAt(marks []armLandmark, pos float64) float64 {
	if pos <= marks[0].position {
		return marks[0].circ
	}
	last := marks[len(marks)-1]
	if pos >= last.position {
		return last.circ
	}
	for i := 1; i < len(marks); i++ {
		if pos <= marks[i].position {
			lo, hi := marks[i-1], marks[i]
			span := hi.position - lo.position
			if span <= 0 {
				return hi.circ
			}
			t := (pos - lo.position) / span
			return lo.circ + t*(hi.circ-lo.circ)
		}
	}
	return last.circ
}

// sleeveGeometry is the endpoint, ease, and hem edge each sleeve type
// implies when the garment does not state them.
type sleeveGeometry struct {
	endpoint func(armLength float64) float64
	easeIn   float64
	hemType  string
}

var sleeveGeometries = map[types.SleeveType]sleeveGeometry{
	types.SleeveSleeveless:   {func(a float64) float64 { return 0 }, 0, "clean_hem"},
	types.SleeveCap:          {func(a float64) float64 { return 2.5 }, -0.5, "clean_hem"},
	types.SleeveShort:        {func(a float64) float64 { return 6 }, 1, "clean_hem"},
	types.SleeveThreeQuarter: {func(a float64) float64 { return 17 }, 0.5, "clean_hem"},
	types.SleeveLong:         {func(a float64) float64 { return a }, 0, "clean_hem"},
	types.SleeveRaglan:       {func(a float64) float64 { return a }, 1, "clean_hem"},
	types.SleeveDolman:       {func(a float64) float64 { return a }, 12, "clean_hem"},
	types.SleevePuff:         {func(a float64) float64 { return 4 }, 6, "elastic"},
	types.SleeveFlutter:      {func(a float64) float64 { return 3 }, 3, "flutter"},
	types.SleeveBell:         {func(a float64) float64 { return a * 0.7 }, 8, "clean_hem"},
	types.SleeveSetIn:        {func(a float64) float64 { return a }, 1, "clean_hem"},
}

// ComputeSleeve computes where the sleeve ends on this arm and how wide
// the arm reads at that point. Sleeveless garments return Applicable=false:
// there is no sleeve-arm interaction to score.
func ComputeSleeve(g *types.GarmentProfile, b *types.BodyProfile) SleeveResult {
	if g.SleeveType == types.SleeveSleeveless {
		return SleeveResult{Severity: 0.5}
	}

	var endpoint, ease float64
	hemType := "clean_hem"
	if g.SleeveLengthInches != nil {
		endpoint = math.Min(*g.SleeveLengthInches, b.ArmLength)
		ease = g.SleeveEaseInches
	} else {
		geom, ok := sleeveGeometries[g.SleeveType]
		if !ok {
			geom = sleeveGeometries[types.SleeveSetIn]
		}
		endpoint = geom.endpoint(b.ArmLength)
		ease = geom.easeIn
		hemType = geom.hemType
	}

	marks := armLandmarks(b)
	actual := armCircAt(marks, endpoint) / math.Pi

	// The sleeve edge frames the arm at the cut line. Positive ease adds
	// visible volume. Negative ease compresses, but a compressed sleeve
	// still reveals the arm contour it digs into.
	frame := actual
	switch {
	case ease >= 0:
		frame += ease / math.Pi
	case ease > -1:
		frame += math.Abs(ease) * 0.3
	default:
		frame += math.Abs(ease) * 0.5
	}
	frame += rules.HemTypeModifiers[hemType]

	// The bare arm below the cut line contributes 40% of the read. A
	// sleeve ending above a narrower stretch borrows that taper.
	perceived := frame
	if endpoint < b.ArmLength {
		mid := (endpoint + b.ArmLength) / 2
		visible := armCircAt(marks, mid) / math.Pi
		perceived += (visible - frame) * 0.4
	}

	delta := perceived - actual

	// Cap-length sleeves end at or near the widest part of the upper arm.
	// The cut line frames that widest point directly, so the delta never
	// reads better than the frame held against it.
	if endpoint <= b.CUpperArmMaxPosition+1.5 {
		widest := b.CUpperArmMax / math.Pi
		delta = math.Max(delta, frame-widest+0.20)
	}

	return SleeveResult{
		EndpointPosition:  endpoint,
		ActualArmWidth:    actual,
		PerceivedArmWidth: perceived,
		Delta:             delta,
		Severity:          armSeverity(b),
		Applicable:        true,
	}
}

// armSeverityTiers maps combined arm prominence to (base, concern)
// severity multipliers. The concern value applies when the wearer has
// flagged arms as a zone to minimize.
var armSeverityTiers = []struct {
	maxProminence float64
	base, concern float64
}{
	{1.35, 0.3, 0.5},
	{1.50, 0.5, 0.75},
	{1.65, 0.75, 1.0},
	{1.80, 1.0, 1.5},
	{2.00, 1.3, 2.0},
	{2.20, 1.6, 2.5},
	{math.Inf(1), 2.0, 3.0},
}

func armSeverity(b *types.BodyProfile) float64 {
	prominence := b.ArmProminenceCombined()
	concerned := b.UpperArmZone > 0.5 ||
		(b.GoalArm != nil && *b.GoalArm == "slimmer")
	for _, tier := range armSeverityTiers {
		if prominence < tier.maxProminence {
			if concerned {
				return tier.concern
			}
			return tier.base
		}
	}
	return 0.5
}
