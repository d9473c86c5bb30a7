package principles

import (
	"sort"

	"github.com/kridha/fit-engine/internal/types"
)

// SuggestFixes returns up to three actionable changes for the worst
// penalized principles, most damaging first.
func SuggestFixes(results []types.PrincipleResult) []types.Fix {
	var candidates []types.PrincipleResult
	for _, r := range results {
		if r.Applicable && r.Score < -0.15 {
			if _, known := fixTable[r.Name]; known {
				candidates = append(candidates, r)
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	fixes := make([]types.Fix, 0, len(candidates))
	for _, c := range candidates {
		entry := fixTable[c.Name]
		priority := 2
		if c.Score < -0.30 {
			priority = 1
		}
		fixes = append(fixes, types.Fix{
			WhatToChange:        entry.suggestion,
			ExpectedImprovement: entry.improvement,
			Priority:            priority,
		})
	}
	return fixes
}

// ZoneRollup averages applicable principle scores into per-zone scores,
// flagging zones dragged down by a strongly negative principle.
func ZoneRollup(results []types.PrincipleResult, zonesFor func(name string) []string) map[string]types.ZoneScore {
	sums := map[string]float64{}
	counts := map[string]int{}
	flags := map[string][]string{}

	for _, r := range results {
		if !r.Applicable {
			continue
		}
		for _, zone := range zonesFor(r.Name) {
			sums[zone] += r.Score
			counts[zone]++
			if r.Score < -0.20 {
				flags[zone] = append(flags[zone], r.Name)
			}
		}
	}

	out := make(map[string]types.ZoneScore, len(sums))
	for zone, sum := range sums {
		avg := sum / float64(counts[zone])
		out[zone] = types.ZoneScore{
			Zone:  zone,
			Score: round3(avg),
			Flags: flags[zone],
		}
	}
	return out
}

func round3(v float64) float64 {
	if v >= 0 {
		return float64(int(v*1000+0.5)) / 1000
	}
	return float64(int(v*1000-0.5)) / 1000
}
