package aggregate

import (
	"sort"

	"github.com/athlosfit/athlos/internal/analytics/facts"
)

type CategoryStats struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	AvgLoadKg float64 `json:"avgLoadKg"`
}

// CategoryDistribution groups performed sets by exercise category,
// descending by count with category name as tiebreak so equal counts
// always render in the same order.
func CategoryDistribution(sets []facts.PerformedSet) []CategoryStats {
	counts := make(map[string]int)
	loadSums := make(map[string]float64)
	for _, ps := range sets {
		category := ps.Category
		if category == "" {
			category = "outros"
		}
		counts[category]++
		loadSums[category] += ps.LoadKg
	}

	stats := make([]CategoryStats, 0, len(counts))
	for category, count := range counts {
		stats = append(stats, CategoryStats{
			Category:  category,
			Count:     count,
			AvgLoadKg: Round1(loadSums[category] / float64(count)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}
