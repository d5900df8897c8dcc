package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

func TestSessions_GroupByStudentPlanAndDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 7, 30, 0, 0, time.UTC)

	sessions := Sessions([]facts.PerformedSet{
		// same student, same plan, same day: one session, even hours apart
		testSet("aluno1", "plano1", "supino", 60, morning),
		testSet("aluno1", "plano1", "supino", 62.5, evening),
		// same day, other plan: separate session
		testSet("aluno1", "plano2", "agachamento", 80, morning),
		// other student
		testSet("aluno2", "plano3", "supino", 40, morning),
		// next day
		testSet("aluno1", "plano1", "supino", 65, nextDay),
	})

	require.Len(t, sessions, 4)

	// ordered by day, student, plan
	assert.Equal(t, "2025-03-10", sessions[0].Day)
	assert.Equal(t, "aluno1", sessions[0].StudentID)
	assert.Equal(t, "plano1", sessions[0].PlanID)
	assert.Len(t, sessions[0].Sets, 2)
	assert.Equal(t, "plano2", sessions[1].PlanID)
	assert.Equal(t, "aluno2", sessions[2].StudentID)
	assert.Equal(t, "2025-03-11", sessions[3].Day)

	// sets within a session are chronological
	assert.True(t, sessions[0].Sets[0].PerformedAt.Before(sessions[0].Sets[1].PerformedAt))
}

func TestSessions_MidnightBoundary(t *testing.T) {
	justBefore := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	justAfter := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)

	sessions := Sessions([]facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, justBefore),
		testSet("aluno1", "plano1", "supino", 60, justAfter),
	})

	// two minutes apart, but on either side of UTC midnight
	assert.Len(t, sessions, 2)
}

func TestVolume(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	result := Volume(w, []facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 10)),
		testSet("aluno1", "plano1", "supino", 62.5, day(2025, 3, 10)), // same session
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 12)),
		testSet("aluno2", "plano2", "remada", 40, day(2025, 3, 12)),
	})

	assert.Equal(t, 3, result.TotalSessions)
	assert.Equal(t, Round1(3.0/7.0), result.AvgSessionsPerDay)

	require.Len(t, result.PerBucket, 7)
	perDay := make(map[string]int)
	for _, b := range result.PerBucket {
		perDay[b.Bucket] = b.Sessions
	}
	assert.Equal(t, 1, perDay["2025-03-10"])
	assert.Equal(t, 0, perDay["2025-03-11"])
	assert.Equal(t, 2, perDay["2025-03-12"])
}

func TestVolume_Empty(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	result := Volume(w, nil)
	assert.Equal(t, 0, result.TotalSessions)
	assert.Equal(t, 0.0, result.AvgSessionsPerDay)
	assert.Len(t, result.PerBucket, 7)
}

func TestWeekdayDistribution(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-16 a Sunday
	distribution := WeekdayDistribution([]facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 10)),
		testSet("aluno2", "plano2", "remada", 40, day(2025, 3, 10)),
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 16)),
	})

	require.Len(t, distribution, 7)
	assert.Equal(t, 1, distribution[0].Weekday)
	assert.Equal(t, 2, distribution[0].Sessions) // Monday
	assert.Equal(t, 0, distribution[2].Sessions) // Wednesday
	assert.Equal(t, 7, distribution[6].Weekday)
	assert.Equal(t, 1, distribution[6].Sessions) // Sunday
}

func TestStreak(t *testing.T) {
	today := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	sets := []facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 1)),
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 2)),
		// gap on the 3rd
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 4)),
	}

	// the gap cuts the streak: only today counts
	assert.Equal(t, 1, Streak(sets, "aluno1", today))

	// no session today at all
	assert.Equal(t, 0, Streak(sets, "aluno1", day(2025, 3, 6)))

	// contiguous run ending today
	assert.Equal(t, 2, Streak(sets, "aluno1", day(2025, 3, 2)))

	// other students' sessions never count
	assert.Equal(t, 0, Streak(sets, "aluno2", today))
}
