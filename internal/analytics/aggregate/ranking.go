package aggregate

import "sort"

// RankEntry is one candidate in a top-N ranking: any dimension
// (exercise, plan, gym, trainer) by any measure (usage count, student
// count, session count).
type RankEntry struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Measure float64 `json:"measure"`
}

// TopN orders entries strictly descending by measure, breaking ties by
// lower id first so identical inputs always rank identically, and
// truncates to n. A non-positive n returns an empty slice.
func TopN(entries []RankEntry, n int) []RankEntry {
	if n <= 0 {
		return []RankEntry{}
	}

	ranked := make([]RankEntry, len(entries))
	copy(ranked, entries)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Measure != ranked[j].Measure {
			return ranked[i].Measure > ranked[j].Measure
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CountByID folds id→(label, count) pairs into rank entries. Handy for
// the usual "count rows per dimension value" rankings.
func CountByID(ids []string, labels map[string]string) []RankEntry {
	counts := make(map[string]int)
	for _, id := range ids {
		counts[id]++
	}

	entries := make([]RankEntry, 0, len(counts))
	for id, count := range counts {
		entries = append(entries, RankEntry{
			ID:      id,
			Label:   labels[id],
			Measure: float64(count),
		})
	}
	return entries
}
