// Package report holds the role-tagged response payloads the
// dashboards consume. Field names are the literal JSON contract with
// the presentation layer and must not drift: every percentage is a
// plain number rounded to one decimal (12.5 means 12.5%), counts are
// integers, and series are always arrays, never null.
package report

// Report is the tagged variant returned by the query facade: exactly
// one of the four role shapes.
type Report interface {
	reportRole() string
}

func (r *AdminReport) reportRole() string   { return "admin" }
func (r *GymReport) reportRole() string     { return "academia" }
func (r *TrainerReport) reportRole() string { return "personal" }
func (r *StudentReport) reportRole() string { return "aluno" }

// SeriePonto is one chart point keyed by its bucket (ISO day or month).
type SeriePonto struct {
	Periodo string `json:"periodo"`
	Valor   int    `json:"valor"`
}

type CrescimentoPonto struct {
	Periodo   string `json:"periodo"`
	Alunos    int    `json:"alunos"`
	Personais int    `json:"personais"`
	Total     int    `json:"total"`
	Acumulado int    `json:"acumulado"`
}

type TipoUsuarioTotal struct {
	Tipo  string `json:"tipo"`
	Total int    `json:"total"`
}

type AcademiaRank struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Alunos    int    `json:"alunos"`
	Personais int    `json:"personais"`
	Treinos   int    `json:"treinos"`
}

type ExercicioRank struct {
	Exercicio string `json:"exercicio"`
	Categoria string `json:"categoria"`
	Usos      int    `json:"usos"`
}

type CategoriaStats struct {
	Categoria  string  `json:"categoria"`
	Total      int     `json:"total"`
	MediaCarga float64 `json:"media_carga"`
}

type FrequenciaDia struct {
	Dia     int `json:"dia"` // ISO weekday, 1=segunda .. 7=domingo
	Sessoes int `json:"sessoes"`
}

type CargaPonto struct {
	Periodo string  `json:"periodo"`
	Carga   float64 `json:"carga"`
}

type EvolucaoCarga struct {
	Exercicio    string       `json:"exercicio"`
	Dados        []CargaPonto `json:"dados"`
	ProgressoPct float64      `json:"progresso_pct"`
}

type PersonalAtivo struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Treinos int    `json:"treinos"`
	Alunos  int    `json:"alunos"`
}

type AlunoStat struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	Treinos      int     `json:"treinos"`
	Frequencia   float64 `json:"frequencia"`
	UltimoTreino string  `json:"ultimo_treino,omitempty"` // ISO date of last session
}

type TreinoRank struct {
	Nome  string `json:"nome"`
	Total int    `json:"total"`
}

type SessaoDetalhe struct {
	Exercicio string  `json:"exercicio"`
	Reps      int     `json:"reps"`
	Carga     float64 `json:"carga"`
}

type SessaoHistorico struct {
	Data       string          `json:"data"`
	Plano      string          `json:"plano"`
	Categoria  string          `json:"categoria"`
	Exercicios int             `json:"exercicios"`
	Detalhes   []SessaoDetalhe `json:"detalhes"`
}

type ProgressoCategoria struct {
	Categoria   string  `json:"categoria"`
	Exercicios  int     `json:"exercicios"`
	MediaCarga  float64 `json:"media_carga"`
	TotalSeries int     `json:"total_series"`
	TotalReps   int     `json:"total_reps"`
}

// AdminReport is the platform-admin payload.
type AdminReport struct {
	TotalUsuarios   int `json:"total_usuarios"`
	TotalAcademias  int `json:"total_academias"`
	TotalPersonais  int `json:"total_personais"`
	TotalAlunos     int `json:"total_alunos"`
	TotalTreinos    int `json:"total_treinos"`
	TotalExercicios int `json:"total_exercicios"`

	CrescimentoPct float64 `json:"crescimento_pct"`
	TreinosPorDia  float64 `json:"treinos_por_dia"`
	TaxaRetencao   float64 `json:"taxa_retencao"`

	CrescimentoUsuarios  []CrescimentoPonto `json:"crescimento_usuarios"`
	VolumeTreinos        []SeriePonto       `json:"volume_treinos"`
	DistribuicaoUsuarios []TipoUsuarioTotal `json:"distribuicao_usuarios"`
	TopAcademias         []AcademiaRank     `json:"top_academias"`
	ExerciciosPopulares  []ExercicioRank    `json:"exercicios_populares"`

	RegistrosIgnorados int `json:"registros_ignorados"`
}

// GymReport is the gym-admin payload.
type GymReport struct {
	TotalAlunos     int     `json:"total_alunos"`
	TotalPersonais  int     `json:"total_personais"`
	TotalTreinos    int     `json:"total_treinos"`
	MediaTreinosDia float64 `json:"media_treinos_dia"`
	TaxaRetencao    float64 `json:"taxa_retencao"`
	CrescimentoPct  float64 `json:"crescimento_pct"`

	Crescimento       []CrescimentoPonto `json:"crescimento"`
	VolumeTreinos     []SeriePonto       `json:"volume_treinos"`
	TreinosRanking    []TreinoRank       `json:"treinos_ranking"`
	CategoriasRanking []CategoriaStats   `json:"categorias_ranking"`
	FrequenciaSemanal []FrequenciaDia    `json:"frequencia_semanal"`
	PersonaisAtivos   []PersonalAtivo    `json:"personais_ativos"`

	RegistrosIgnorados int `json:"registros_ignorados"`
}

// TrainerReport is the personal-trainer payload.
type TrainerReport struct {
	TreinosCriados     int     `json:"treinos_criados"`
	VariacaoTreinos    float64 `json:"variacao_treinos"`
	TaxaFrequencia     float64 `json:"taxa_frequencia"`
	VariacaoFrequencia float64 `json:"variacao_frequencia"`
	AlunosAtivos       int     `json:"alunos_ativos"`
	AlunosTotal        int     `json:"alunos_total"`
	MediaProgresso     float64 `json:"media_progresso"`

	TreinosPorMes          []SeriePonto     `json:"treinos_por_mes"`
	ProgressoCarga         []EvolucaoCarga  `json:"progresso_carga"`
	DistribuicaoExercicios []CategoriaStats `json:"distribuicao_exercicios"`
	FrequenciaSemanal      []FrequenciaDia  `json:"frequencia_semanal"`
	TopExercicios          []ExercicioRank  `json:"top_exercicios"`
	Alunos                 []AlunoStat      `json:"alunos"`

	RegistrosIgnorados int `json:"registros_ignorados"`
}

// StudentReport is the student payload.
type StudentReport struct {
	TotalTreinos      int `json:"total_treinos"`
	TreinosAtivos     int `json:"treinos_ativos"`
	SequenciaDias     int `json:"sequencia_dias"`
	TempoTotalMinutos int `json:"tempo_total_minutos"`

	EvolucaoCarga      []EvolucaoCarga      `json:"evolucao_carga"`
	ProgressoCategoria []ProgressoCategoria `json:"progresso_categoria"`
	Historico          []SessaoHistorico    `json:"historico"`

	RegistrosIgnorados int `json:"registros_ignorados"`
}
