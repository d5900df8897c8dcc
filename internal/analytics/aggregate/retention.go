package aggregate

import (
	"github.com/athlosfit/athlos/internal/analytics/facts"
)

type RetentionResult struct {
	ActivePrevious int     `json:"activePrevious"`
	ActiveCurrent  int     `json:"activeCurrent"`
	Retained       int     `json:"retained"`
	Rate           float64 `json:"rate"`
}

// Retention: a student counts as retained when they trained at least
// once in the current period AND at least once in the previous one.
// The rate is retained over previously-active, in percent; when nobody
// was active in the previous period the rate is 0, not an error.
func Retention(current, previous []facts.PerformedSet) RetentionResult {
	activeCurrent := activeStudents(current)
	activePrevious := activeStudents(previous)

	retained := 0
	for studentID := range activePrevious {
		if activeCurrent[studentID] {
			retained++
		}
	}

	rate := 0.0
	if len(activePrevious) > 0 {
		rate = Round1(float64(retained) / float64(len(activePrevious)) * 100)
	}

	return RetentionResult{
		ActivePrevious: len(activePrevious),
		ActiveCurrent:  len(activeCurrent),
		Retained:       retained,
		Rate:           rate,
	}
}

func activeStudents(sets []facts.PerformedSet) map[string]bool {
	active := make(map[string]bool)
	for _, ps := range sets {
		active[ps.StudentID] = true
	}
	return active
}
