package aggregate

import (
	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

type GrowthPoint struct {
	Bucket     string `json:"bucket"`
	Students   int    `json:"students"`
	Trainers   int    `json:"trainers"`
	GymAdmins  int    `json:"gymAdmins"`
	Total      int    `json:"total"`
	Cumulative int    `json:"cumulative"`
}

type GrowthResult struct {
	Points        []GrowthPoint `json:"points"`
	CurrentTotal  int           `json:"currentTotal"`
	PreviousTotal int           `json:"previousTotal"`
	GrowthPct     float64       `json:"growthPct"`
}

// Growth buckets signups by role over the window and compares the
// current total against the previous period: a previous total of 0
// pins growthPct to 0 instead of blowing up to infinity.
func Growth(w period.Window, current, previous []facts.Signup) GrowthResult {
	pointIdx := make(map[string]int, len(w.Buckets))
	points := make([]GrowthPoint, len(w.Buckets))
	for i, b := range w.Buckets {
		points[i] = GrowthPoint{Bucket: b.Key}
		pointIdx[b.Key] = i
	}

	for _, su := range current {
		key, ok := w.BucketKeyFor(su.OccurredAt)
		if !ok {
			continue
		}
		i := pointIdx[key]
		switch su.Role {
		case facts.RoleStudent:
			points[i].Students++
		case facts.RoleTrainer:
			points[i].Trainers++
		case facts.RoleGymAdmin:
			points[i].GymAdmins++
		}
		points[i].Total++
	}

	cumulative := 0
	for i := range points {
		cumulative += points[i].Total
		points[i].Cumulative = cumulative
	}

	return GrowthResult{
		Points:        points,
		CurrentTotal:  len(current),
		PreviousTotal: len(previous),
		GrowthPct:     PercentChange(float64(len(current)), float64(len(previous))),
	}
}
