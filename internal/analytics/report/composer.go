package report

import (
	"github.com/athlosfit/athlos/internal/analytics/aggregate"
)

// minutesPerSet is the session time estimate used for the student
// tempo_total_minutos KPI. The mobile app uses the same constant.
const minutesPerSet = 3

// AdminInput carries everything the admin payload is shaped from.
// All fields are precomputed aggregates, composing is side-effect free.
type AdminInput struct {
	Growth    aggregate.GrowthResult
	Volume    aggregate.VolumeResult
	Retention aggregate.RetentionResult

	TotalAcademias  int
	TotalPersonais  int
	TotalAlunos     int
	TotalExercicios int

	TopAcademias        []AcademiaRank
	ExerciciosPopulares []ExercicioRank

	SkippedRecords int
}

func ComposeAdmin(in AdminInput) *AdminReport {
	r := &AdminReport{
		TotalUsuarios:       in.TotalAlunos + in.TotalPersonais,
		TotalAcademias:      in.TotalAcademias,
		TotalPersonais:      in.TotalPersonais,
		TotalAlunos:         in.TotalAlunos,
		TotalTreinos:        in.Volume.TotalSessions,
		TotalExercicios:     in.TotalExercicios,
		CrescimentoPct:      aggregate.Round1(in.Growth.GrowthPct),
		TreinosPorDia:       aggregate.Round1(in.Volume.AvgSessionsPerDay),
		TaxaRetencao:        aggregate.Round1(in.Retention.Rate),
		CrescimentoUsuarios: crescimentoSerie(in.Growth),
		VolumeTreinos:       volumeSerie(in.Volume),
		DistribuicaoUsuarios: []TipoUsuarioTotal{
			{Tipo: "alunos", Total: in.TotalAlunos},
			{Tipo: "personais", Total: in.TotalPersonais},
		},
		TopAcademias:        in.TopAcademias,
		ExerciciosPopulares: in.ExerciciosPopulares,
		RegistrosIgnorados:  in.SkippedRecords,
	}
	if r.TopAcademias == nil {
		r.TopAcademias = []AcademiaRank{}
	}
	if r.ExerciciosPopulares == nil {
		r.ExerciciosPopulares = []ExercicioRank{}
	}
	return r
}

// GymInput carries the gym-admin aggregates.
type GymInput struct {
	Growth     aggregate.GrowthResult
	Volume     aggregate.VolumeResult
	Retention  aggregate.RetentionResult
	Weekdays   []aggregate.WeekdaySessions
	Categories []aggregate.CategoryStats

	TotalAlunos    int
	TotalPersonais int

	TreinosRanking  []TreinoRank
	PersonaisAtivos []PersonalAtivo

	SkippedRecords int
}

func ComposeGym(in GymInput) *GymReport {
	r := &GymReport{
		TotalAlunos:        in.TotalAlunos,
		TotalPersonais:     in.TotalPersonais,
		TotalTreinos:       in.Volume.TotalSessions,
		MediaTreinosDia:    aggregate.Round1(in.Volume.AvgSessionsPerDay),
		TaxaRetencao:       aggregate.Round1(in.Retention.Rate),
		CrescimentoPct:     aggregate.Round1(in.Growth.GrowthPct),
		Crescimento:        crescimentoSerie(in.Growth),
		VolumeTreinos:      volumeSerie(in.Volume),
		TreinosRanking:     in.TreinosRanking,
		CategoriasRanking:  categoriasSerie(in.Categories),
		FrequenciaSemanal:  frequenciaSerie(in.Weekdays),
		PersonaisAtivos:    in.PersonaisAtivos,
		RegistrosIgnorados: in.SkippedRecords,
	}
	if r.TreinosRanking == nil {
		r.TreinosRanking = []TreinoRank{}
	}
	if r.PersonaisAtivos == nil {
		r.PersonaisAtivos = []PersonalAtivo{}
	}
	return r
}

// TrainerInput carries the trainer aggregates.
type TrainerInput struct {
	Volume     aggregate.VolumeResult
	Weekdays   []aggregate.WeekdaySessions
	Categories []aggregate.CategoryStats
	Series     []aggregate.ProgressionSeries

	PlansCreated         int
	PlansCreatedPrevious int
	Frequency            float64
	FrequencyPrevious    float64
	ActiveStudents       int
	TotalStudents        int

	TopExercicios []ExercicioRank
	Alunos        []AlunoStat

	SkippedRecords int
}

func ComposeTrainer(in TrainerInput) *TrainerReport {
	avgProgress := 0.0
	for _, s := range in.Series {
		avgProgress += s.ProgressPct
	}
	if n := len(in.Series); n > 0 {
		avgProgress /= float64(n)
	}

	r := &TrainerReport{
		TreinosCriados:         in.PlansCreated,
		VariacaoTreinos:        aggregate.Round1(aggregate.PercentChange(float64(in.PlansCreated), float64(in.PlansCreatedPrevious))),
		TaxaFrequencia:         aggregate.Round1(in.Frequency),
		VariacaoFrequencia:     aggregate.Round1(in.Frequency - in.FrequencyPrevious),
		AlunosAtivos:           in.ActiveStudents,
		AlunosTotal:            in.TotalStudents,
		MediaProgresso:         aggregate.Round1(avgProgress),
		TreinosPorMes:          volumeSerie(in.Volume),
		ProgressoCarga:         evolucaoSerie(in.Series),
		DistribuicaoExercicios: categoriasSerie(in.Categories),
		FrequenciaSemanal:      frequenciaSerie(in.Weekdays),
		TopExercicios:          in.TopExercicios,
		Alunos:                 in.Alunos,
		RegistrosIgnorados:     in.SkippedRecords,
	}
	if r.TopExercicios == nil {
		r.TopExercicios = []ExercicioRank{}
	}
	if r.Alunos == nil {
		r.Alunos = []AlunoStat{}
	}
	return r
}

// StudentInput carries the student aggregates.
type StudentInput struct {
	Sessions    int
	ActivePlans int
	StreakDays  int
	TotalSets   int

	Series     []aggregate.ProgressionSeries
	Categories []ProgressoCategoria
	Historico  []SessaoHistorico

	SkippedRecords int
}

func ComposeStudent(in StudentInput) *StudentReport {
	r := &StudentReport{
		TotalTreinos:       in.Sessions,
		TreinosAtivos:      in.ActivePlans,
		SequenciaDias:      in.StreakDays,
		TempoTotalMinutos:  in.TotalSets * minutesPerSet,
		EvolucaoCarga:      evolucaoSerie(in.Series),
		ProgressoCategoria: in.Categories,
		Historico:          in.Historico,
		RegistrosIgnorados: in.SkippedRecords,
	}
	if r.ProgressoCategoria == nil {
		r.ProgressoCategoria = []ProgressoCategoria{}
	}
	if r.Historico == nil {
		r.Historico = []SessaoHistorico{}
	}
	return r
}

func crescimentoSerie(g aggregate.GrowthResult) []CrescimentoPonto {
	out := make([]CrescimentoPonto, 0, len(g.Points))
	for _, p := range g.Points {
		out = append(out, CrescimentoPonto{
			Periodo:   p.Bucket,
			Alunos:    p.Students,
			Personais: p.Trainers,
			Total:     p.Total,
			Acumulado: p.Cumulative,
		})
	}
	return out
}

func volumeSerie(v aggregate.VolumeResult) []SeriePonto {
	out := make([]SeriePonto, 0, len(v.PerBucket))
	for _, b := range v.PerBucket {
		out = append(out, SeriePonto{Periodo: b.Bucket, Valor: b.Sessions})
	}
	return out
}

func categoriasSerie(stats []aggregate.CategoryStats) []CategoriaStats {
	out := make([]CategoriaStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, CategoriaStats{
			Categoria:  s.Category,
			Total:      s.Count,
			MediaCarga: aggregate.Round1(s.AvgLoadKg),
		})
	}
	return out
}

func frequenciaSerie(days []aggregate.WeekdaySessions) []FrequenciaDia {
	out := make([]FrequenciaDia, 0, len(days))
	for _, d := range days {
		out = append(out, FrequenciaDia{Dia: d.Weekday, Sessoes: d.Sessions})
	}
	return out
}

func evolucaoSerie(series []aggregate.ProgressionSeries) []EvolucaoCarga {
	out := make([]EvolucaoCarga, 0, len(series))
	for _, s := range series {
		dados := make([]CargaPonto, 0, len(s.Points))
		for _, p := range s.Points {
			dados = append(dados, CargaPonto{Periodo: p.Bucket, Carga: p.MaxLoadKg})
		}
		out = append(out, EvolucaoCarga{
			Exercicio:    s.ExerciseName,
			Dados:        dados,
			ProgressoPct: aggregate.Round1(s.ProgressPct),
		})
	}
	return out
}
