package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlosfit/athlos/internal/analytics/aggregate"
)

func TestComposeAdmin(t *testing.T) {
	rep := ComposeAdmin(AdminInput{
		Growth: aggregate.GrowthResult{
			Points:        []aggregate.GrowthPoint{{Bucket: "2025-03-10", Students: 2, Trainers: 1, Total: 3, Cumulative: 3}},
			CurrentTotal:  3,
			PreviousTotal: 2,
			GrowthPct:     50,
		},
		Volume: aggregate.VolumeResult{
			TotalSessions:     12,
			PerBucket:         []aggregate.BucketSessions{{Bucket: "2025-03-10", Sessions: 12}},
			AvgSessionsPerDay: 1.7142,
		},
		Retention:       aggregate.RetentionResult{Rate: 66.666},
		TotalAcademias:  4,
		TotalPersonais:  10,
		TotalAlunos:     90,
		TotalExercicios: 35,
		SkippedRecords:  1,
	})

	assert.Equal(t, 100, rep.TotalUsuarios)
	assert.Equal(t, 12, rep.TotalTreinos)
	assert.Equal(t, 50.0, rep.CrescimentoPct)
	assert.Equal(t, 1.7, rep.TreinosPorDia)
	assert.Equal(t, 66.7, rep.TaxaRetencao)
	assert.Equal(t, 1, rep.RegistrosIgnorados)

	require.Len(t, rep.CrescimentoUsuarios, 1)
	assert.Equal(t, "2025-03-10", rep.CrescimentoUsuarios[0].Periodo)
	assert.Equal(t, 2, rep.CrescimentoUsuarios[0].Alunos)

	require.Len(t, rep.DistribuicaoUsuarios, 2)
	assert.Equal(t, "alunos", rep.DistribuicaoUsuarios[0].Tipo)
	assert.Equal(t, 90, rep.DistribuicaoUsuarios[0].Total)

	// arrays are always arrays in the payload, never null
	assert.NotNil(t, rep.TopAcademias)
	assert.NotNil(t, rep.ExerciciosPopulares)
}

func TestComposeTrainer(t *testing.T) {
	rep := ComposeTrainer(TrainerInput{
		Series: []aggregate.ProgressionSeries{
			{ExerciseID: "supino", ExerciseName: "Supino Reto", ProgressPct: 20, Points: []aggregate.ProgressionPoint{{Bucket: "2025-03-10", MaxLoadKg: 60}}},
			{ExerciseID: "remada", ExerciseName: "Remada", ProgressPct: 10},
		},
		PlansCreated:         6,
		PlansCreatedPrevious: 4,
		Frequency:            72.4,
		FrequencyPrevious:    68.1,
		ActiveStudents:       7,
		TotalStudents:        9,
	})

	assert.Equal(t, 6, rep.TreinosCriados)
	assert.Equal(t, 50.0, rep.VariacaoTreinos)
	assert.Equal(t, 72.4, rep.TaxaFrequencia)
	// frequency variation is in percentage points, not relative
	assert.Equal(t, 4.3, rep.VariacaoFrequencia)
	assert.Equal(t, 15.0, rep.MediaProgresso)

	require.Len(t, rep.ProgressoCarga, 2)
	assert.Equal(t, "Supino Reto", rep.ProgressoCarga[0].Exercicio)
	require.Len(t, rep.ProgressoCarga[0].Dados, 1)
	assert.Equal(t, 60.0, rep.ProgressoCarga[0].Dados[0].Carga)

	assert.NotNil(t, rep.TopExercicios)
	assert.NotNil(t, rep.Alunos)
}

func TestComposeTrainer_NoSeries(t *testing.T) {
	rep := ComposeTrainer(TrainerInput{})
	assert.Equal(t, 0.0, rep.MediaProgresso)
	assert.Equal(t, 0.0, rep.VariacaoTreinos)
}

func TestComposeStudent(t *testing.T) {
	rep := ComposeStudent(StudentInput{
		Sessions:    8,
		ActivePlans: 2,
		StreakDays:  3,
		TotalSets:   40,
	})

	assert.Equal(t, 8, rep.TotalTreinos)
	assert.Equal(t, 2, rep.TreinosAtivos)
	assert.Equal(t, 3, rep.SequenciaDias)
	// 3 estimated minutes per set
	assert.Equal(t, 120, rep.TempoTotalMinutos)

	assert.NotNil(t, rep.EvolucaoCarga)
	assert.NotNil(t, rep.ProgressoCategoria)
	assert.NotNil(t, rep.Historico)
}

func TestReportJSONKeys(t *testing.T) {
	raw, err := json.Marshal(ComposeStudent(StudentInput{Sessions: 1, TotalSets: 5}))
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	for _, key := range []string{
		"total_treinos", "treinos_ativos", "sequencia_dias", "tempo_total_minutos",
		"evolucao_carga", "progresso_categoria", "historico", "registros_ignorados",
	} {
		assert.Contains(t, payload, key)
	}
}
