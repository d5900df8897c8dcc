package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/athlosfit/athlos/internal/analytics/facts"
)

var testSetSeq int

// testSet builds a performed set with a unique id; only the fields the
// aggregators look at are settable.
func testSet(studentID, planID, exerciseID string, loadKg float64, performedAt time.Time) facts.PerformedSet {
	testSetSeq++
	return facts.PerformedSet{
		ID:           fmt.Sprintf("set-%d", testSetSeq),
		PlanID:       planID,
		StudentID:    studentID,
		ExerciseID:   exerciseID,
		ExerciseName: "exercise " + exerciseID,
		Category:     "peito",
		Reps:         10,
		LoadKg:       loadKg,
		PerformedAt:  performedAt,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, Round1(33.333333))
	assert.Equal(t, 33.4, Round1(33.35))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, -12.5, Round1(-12.49999))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 50.0, PercentChange(150, 100))
	assert.Equal(t, -25.0, PercentChange(75, 100))
	assert.Equal(t, 0.0, PercentChange(100, 100))

	// zero previous never divides by zero
	assert.Equal(t, 0.0, PercentChange(5, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}
