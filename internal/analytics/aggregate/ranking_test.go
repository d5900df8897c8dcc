package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopN(t *testing.T) {
	entries := []RankEntry{
		{ID: "c", Label: "C", Measure: 5},
		{ID: "a", Label: "A", Measure: 10},
		{ID: "d", Label: "D", Measure: 5},
		{ID: "b", Label: "B", Measure: 7},
	}

	top := TopN(entries, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].ID)
	assert.Equal(t, "b", top[1].ID)
	// equal measures rank by id, ascending
	assert.Equal(t, "c", top[2].ID)

	// input order never matters
	reversed := []RankEntry{entries[3], entries[2], entries[1], entries[0]}
	assert.Equal(t, top, TopN(reversed, 3))

	// input is not mutated
	assert.Equal(t, "c", entries[0].ID)
}

func TestTopN_Bounds(t *testing.T) {
	entries := []RankEntry{{ID: "a", Measure: 1}}

	assert.Empty(t, TopN(entries, 0))
	assert.Empty(t, TopN(entries, -1))
	assert.Len(t, TopN(entries, 10), 1)
	assert.Empty(t, TopN(nil, 5))
}

func TestCountByID(t *testing.T) {
	labels := map[string]string{"supino": "Supino Reto", "remada": "Remada Curvada"}
	entries := CountByID([]string{"supino", "remada", "supino", "supino"}, labels)

	top := TopN(entries, 2)
	require.Len(t, top, 2)
	assert.Equal(t, RankEntry{ID: "supino", Label: "Supino Reto", Measure: 3}, top[0])
	assert.Equal(t, RankEntry{ID: "remada", Label: "Remada Curvada", Measure: 1}, top[1])
}
