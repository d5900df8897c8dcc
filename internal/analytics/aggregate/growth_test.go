package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

func signup(id string, role facts.Role, occurredAt time.Time) facts.Signup {
	return facts.Signup{ID: id, Role: role, OccurredAt: occurredAt}
}

func TestGrowth(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	current := []facts.Signup{
		signup("u1", facts.RoleStudent, day(2025, 3, 10)),
		signup("u2", facts.RoleStudent, day(2025, 3, 10)),
		signup("u3", facts.RoleTrainer, day(2025, 3, 10)),
		signup("u4", facts.RoleStudent, day(2025, 3, 13)),
	}
	previous := []facts.Signup{
		signup("u0", facts.RoleStudent, day(2025, 3, 3)),
	}

	result := Growth(w, current, previous)

	assert.Equal(t, 4, result.CurrentTotal)
	assert.Equal(t, 1, result.PreviousTotal)
	assert.Equal(t, 300.0, result.GrowthPct)

	require.Len(t, result.Points, 7)
	byBucket := make(map[string]GrowthPoint)
	for _, p := range result.Points {
		byBucket[p.Bucket] = p
	}
	assert.Equal(t, 2, byBucket["2025-03-10"].Students)
	assert.Equal(t, 1, byBucket["2025-03-10"].Trainers)
	assert.Equal(t, 3, byBucket["2025-03-10"].Total)
	assert.Equal(t, 1, byBucket["2025-03-13"].Total)

	// cumulative is monotonically non-decreasing and ends at the total
	assert.Equal(t, 4, result.Points[len(result.Points)-1].Cumulative)
}

func TestGrowth_ZeroPrevious(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	result := Growth(w, []facts.Signup{
		signup("u1", facts.RoleStudent, day(2025, 3, 10)),
		signup("u2", facts.RoleStudent, day(2025, 3, 11)),
		signup("u3", facts.RoleStudent, day(2025, 3, 12)),
		signup("u4", facts.RoleStudent, day(2025, 3, 13)),
		signup("u5", facts.RoleStudent, day(2025, 3, 14)),
	}, nil)

	assert.Equal(t, 5, result.CurrentTotal)
	assert.Equal(t, 0, result.PreviousTotal)
	assert.Equal(t, 0.0, result.GrowthPct)
}
