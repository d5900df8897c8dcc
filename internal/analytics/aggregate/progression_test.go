package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
)

func TestLoadProgression(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sets := []facts.PerformedSet{
		// max load per day: 60, 60, 70, 80 => +33.3% from first to last
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 9)),
		testSet("aluno1", "plano1", "supino", 57.5, day(2025, 3, 9)),
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 11)),
		testSet("aluno1", "plano1", "supino", 70, day(2025, 3, 13)),
		testSet("aluno1", "plano1", "supino", 80, day(2025, 3, 15)),
	}

	series := LoadProgression(w, sets, 5)
	require.Len(t, series, 1)

	supino := series[0]
	assert.Equal(t, "supino", supino.ExerciseID)
	require.Len(t, supino.Points, 4) // empty days produce no points
	assert.Equal(t, 60.0, supino.Points[0].MaxLoadKg)
	assert.Equal(t, 80.0, supino.Points[3].MaxLoadKg)
	assert.Equal(t, 33.3, supino.ProgressPct)
}

func TestLoadProgression_TopKByFrequency(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sets := []facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 10)),
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 11)),
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 12)),
		testSet("aluno1", "plano1", "remada", 40, day(2025, 3, 10)),
		testSet("aluno1", "plano1", "remada", 40, day(2025, 3, 11)),
		testSet("aluno1", "plano1", "agachamento", 100, day(2025, 3, 10)),
	}

	series := LoadProgression(w, sets, 2)
	require.Len(t, series, 2)
	assert.Equal(t, "supino", series[0].ExerciseID)
	assert.Equal(t, "remada", series[1].ExerciseID)
}

func TestLoadProgression_SingleBucket(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	series := LoadProgression(w, []facts.PerformedSet{
		testSet("aluno1", "plano1", "supino", 60, day(2025, 3, 10)),
	}, 5)

	require.Len(t, series, 1)
	// first and last point coincide: no progress, not an error
	assert.Equal(t, 0.0, series[0].ProgressPct)
}

func TestLoadProgression_Empty(t *testing.T) {
	w, err := period.Resolve(period.Week, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Empty(t, LoadProgression(w, nil, 5))
}
