// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"math"

	"github.com/danielhkuo/neurocare/models"
)

// ComputeStats returns the most common mood and the rounded mean
// confidence. On a count tie the mood seen later in list order wins.
func ComputeStats(entries []models.MoodEntry) models.MoodStats {
	if len(entries) == 0 {
		return models.MoodStats{MostCommon: "None"}
	}

	counts := make(map[string]int)
	var order []string
	total := 0
	for _, e := range entries {
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
		total += e.Confidence
	}

	best := order[0]
	for _, m := range order[1:] {
		if counts[best] <= counts[m] {
			best = m
		}
	}

	return models.MoodStats{
		MostCommon:        best,
		AverageConfidence: int(math.Floor(float64(total)/float64(len(entries)) + 0.5)),
		Total:             len(entries),
	}
}
