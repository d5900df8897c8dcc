package aggregate

import (
	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

type ProgressionPoint struct {
	Bucket    string  `json:"bucket"`
	MaxLoadKg float64 `json:"maxLoadKg"`
}

type ProgressionSeries struct {
	ExerciseID   string             `json:"exerciseId"`
	ExerciseName string             `json:"exerciseName"`
	Points       []ProgressionPoint `json:"points"`
	ProgressPct  float64            `json:"progressPct"`
}

// LoadProgression builds one load time series per exercise for a
// student. The representative value per bucket is the maximum load
// lifted in it; training progress is judged by peak, not mean.
// progressPct compares the last non-empty bucket against the first,
// with the usual zero-denominator-to-zero rule. When the student has
// more than topK exercises in range, only the topK most frequent (ties
// broken by exercise id) are returned, to bound response size.
func LoadProgression(w period.Window, sets []facts.PerformedSet, topK int) []ProgressionSeries {
	byExercise := make(map[string][]facts.PerformedSet)
	names := make(map[string]string)
	for _, ps := range sets {
		byExercise[ps.ExerciseID] = append(byExercise[ps.ExerciseID], ps)
		names[ps.ExerciseID] = ps.ExerciseName
	}

	frequency := make([]RankEntry, 0, len(byExercise))
	for exerciseID, exerciseSets := range byExercise {
		frequency = append(frequency, RankEntry{
			ID:      exerciseID,
			Label:   names[exerciseID],
			Measure: float64(len(exerciseSets)),
		})
	}

	series := make([]ProgressionSeries, 0, topK)
	for _, entry := range TopN(frequency, topK) {
		series = append(series, exerciseProgression(w, entry.ID, names[entry.ID], byExercise[entry.ID]))
	}
	return series
}

func exerciseProgression(w period.Window, exerciseID, exerciseName string, sets []facts.PerformedSet) ProgressionSeries {
	maxPerBucket := make(map[string]float64)
	for _, ps := range sets {
		key, ok := w.BucketKeyFor(ps.PerformedAt)
		if !ok {
			continue
		}
		if ps.LoadKg > maxPerBucket[key] {
			maxPerBucket[key] = ps.LoadKg
		}
	}

	points := make([]ProgressionPoint, 0, len(maxPerBucket))
	for _, b := range w.Buckets {
		if load, ok := maxPerBucket[b.Key]; ok {
			points = append(points, ProgressionPoint{Bucket: b.Key, MaxLoadKg: load})
		}
	}

	progressPct := 0.0
	if len(points) > 0 {
		first := points[0].MaxLoadKg
		last := points[len(points)-1].MaxLoadKg
		progressPct = PercentChange(last, first)
	}

	return ProgressionSeries{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		Points:       points,
		ProgressPct:  progressPct,
	}
}
