package fabric

import "math"

// ClingResult reports per-zone cling risk: how hard the fabric has to
// stretch over a zone relative to what that zone's curvature tolerates.
type ClingResult struct {
	StretchDemandPct float64
	BaseThreshold    float64
	ExceedsThreshold bool
	Severity         float64 // 0-1, how far over threshold
}

// ComputeClingRisk evaluates one body zone against the garment's resting
// circumference. The threshold drops with curvature: curvier zones
// tolerate less stretch demand before visible cling.
func ComputeClingRisk(r Resolved, zoneCirc, garmentRestCirc, curvatureRate float64) ClingResult {
	stretchRange := garmentRestCirc * (r.TotalStretchPct / 100.0)
	if stretchRange <= 0 {
		stretchRange = 0.01
	}

	stretchDemand := ((zoneCirc - garmentRestCirc) / stretchRange) * 100.0
	stretchDemand = math.Max(0, stretchDemand)

	baseThreshold := math.Max(10, 62-26*curvatureRate)
	exceeds := stretchDemand > baseThreshold

	severity := 0.0
	if exceeds && baseThreshold > 0 {
		severity = math.Min(1.0, (stretchDemand-baseThreshold)/baseThreshold)
	}

	return ClingResult{
		StretchDemandPct: stretchDemand,
		BaseThreshold:    baseThreshold,
		ExceedsThreshold: exceeds,
		Severity:         severity,
	}
}
