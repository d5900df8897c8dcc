// Package analytics is the read side of the reporting pipeline. The
// engine validates the requested period, resolves the caller's scope,
// reads the fact store once, runs the pure aggregators and composes
// the role payload. Given the same store contents and the same clock
// it always produces the same bytes.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/athlosfit/athlos/internal/analytics/aggregate"
	"github.com/athlosfit/athlos/internal/analytics/facts"
	"github.com/athlosfit/athlos/internal/analytics/period"
	"github.com/athlosfit/athlos/internal/analytics/report"
	"github.com/athlosfit/athlos/internal/auth"
	"github.com/athlosfit/athlos/internal/telemetry/metrics"
	"github.com/athlosfit/athlos/internal/telemetry/tracing"
)

const (
	topGyms           = 5
	topTrainers       = 5
	topPlans          = 5
	topExercisesAdmin = 10
	topExercises      = 5
	progressionSeries = 3
	studentSeries     = 5
	historyLimit      = 20

	// weeklySessionTarget is the "5 treinos per week" attendance goal
	// the frequency rate is measured against.
	weeklySessionTarget = 5
)

// Query is one report request as it arrives from the HTTP layer.
// StudentID is the optional drill-down: trainers, gym admins and
// platform admins may narrow any report to a single student.
type Query struct {
	Caller    auth.Caller
	Periodo   string
	StudentID string
}

type Engine struct {
	store   facts.Store
	metrics *metrics.Manager
	now     func() time.Time
}

type Option func(*Engine)

// WithNow fixes the engine clock, used by tests to pin "today".
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(store facts.Store, metricsManager *metrics.Manager, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		metrics: metricsManager,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report runs the full request pipeline and returns the payload for
// the caller's role, or a student payload when drilling down.
func (e *Engine) Report(ctx context.Context, q Query) (_ report.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := period.FromKeyword(q.Periodo)
	if err != nil {
		return nil, err
	}
	w, err := period.Resolve(p, e.now().UTC())
	if err != nil {
		return nil, err
	}

	scope, err := e.resolveScope(ctx, q)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		rep  report.Report
		role string
	)
	switch {
	case scope.Kind == facts.ScopeStudent:
		role = "aluno"
		rep, err = e.studentReport(ctx, w, scope)
	case q.Caller.Role == auth.RoleTrainer:
		role = "personal"
		rep, err = e.trainerReport(ctx, w, scope)
	case q.Caller.Role == auth.RoleGymAdmin:
		role = "academia"
		rep, err = e.gymReport(ctx, w, scope)
	default:
		role = "admin"
		rep, err = e.adminReport(ctx, w)
	}
	if err != nil {
		return nil, err
	}

	e.metrics.CounterReports.WithLabelValues(role, string(p)).Inc()
	e.metrics.HistogramReportDuration.WithLabelValues(role).Observe(time.Since(start).Seconds())

	return rep, nil
}

// resolveScope maps the caller's role onto a fact store scope and,
// when a drill-down student is requested, verifies that the student
// actually belongs to the caller.
func (e *Engine) resolveScope(ctx context.Context, q Query) (facts.Scope, error) {
	c := q.Caller
	if !c.Valid() {
		return facts.Scope{}, ErrInvalidScope
	}

	var base facts.Scope
	switch c.Role {
	case auth.RolePlatformAdmin:
		base = facts.AllScope()
	case auth.RoleGymAdmin:
		base = facts.GymScope(c.GymID)
	case auth.RoleTrainer:
		base = facts.TrainerScope(c.TrainerID)
	case auth.RoleStudent:
		if q.StudentID != "" && q.StudentID != c.StudentID {
			return facts.Scope{}, fmt.Errorf("%w: students can only query themselves", ErrInvalidScope)
		}
		return facts.StudentScope(c.StudentID), nil
	default:
		return facts.Scope{}, ErrInvalidScope
	}

	if q.StudentID == "" {
		return base, nil
	}

	students, err := e.store.Students(ctx, base)
	if err != nil {
		return facts.Scope{}, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}
	for _, s := range students {
		if s.ID == q.StudentID {
			return facts.StudentScope(s.ID), nil
		}
	}
	return facts.Scope{}, fmt.Errorf("%w: student %s is not visible to caller %s", ErrInvalidScope, q.StudentID, c.ID)
}

func (e *Engine) adminReport(ctx context.Context, w period.Window) (_ *report.AdminReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.report.admin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	scope := facts.AllScope()
	var (
		signupsCur  []facts.Signup
		signupsPrev []facts.Signup
		setsCur     []facts.PerformedSet
		setsPrev    []facts.PerformedSet
		plans       []facts.WorkoutPlan
		gyms        []facts.Gym
		trainers    []facts.Trainer
		students    []facts.Student
		exercises   []facts.Exercise
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		signupsCur, err = e.store.Signups(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		signupsPrev, err = e.store.Signups(gctx, scope, w.Previous)
		return err
	})
	eg.Go(func() error {
		var err error
		setsCur, err = e.store.PerformedSets(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		setsPrev, err = e.store.PerformedSets(gctx, scope, w.Previous)
		return err
	})
	eg.Go(func() error {
		var err error
		plans, err = e.store.WorkoutPlans(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		gyms, err = e.store.Gyms(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		trainers, err = e.store.Trainers(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		students, err = e.store.Students(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		exercises, err = e.store.Exercises(gctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}

	setsCur, setsPrev, skipped := e.sanitize(setsCur, setsPrev, plans)

	gymName := make(map[string]string, len(gyms))
	for _, g := range gyms {
		gymName[g.ID] = g.Name
	}
	studentGym := make(map[string]string, len(students))
	alunosPorGym := make(map[string]int)
	for _, s := range students {
		studentGym[s.ID] = s.GymID
		alunosPorGym[s.GymID]++
	}
	personaisPorGym := make(map[string]int)
	for _, t := range trainers {
		personaisPorGym[t.GymID]++
	}
	treinosPorGym := make(map[string]int)
	for _, s := range aggregate.Sessions(setsCur) {
		treinosPorGym[studentGym[s.StudentID]]++
	}

	gymEntries := make([]aggregate.RankEntry, 0, len(gyms))
	for _, g := range gyms {
		gymEntries = append(gymEntries, aggregate.RankEntry{
			ID:      g.ID,
			Label:   g.Name,
			Measure: float64(treinosPorGym[g.ID]),
		})
	}
	topAcademias := make([]report.AcademiaRank, 0, topGyms)
	for _, ent := range aggregate.TopN(gymEntries, topGyms) {
		topAcademias = append(topAcademias, report.AcademiaRank{
			ID:        ent.ID,
			Nome:      ent.Label,
			Alunos:    alunosPorGym[ent.ID],
			Personais: personaisPorGym[ent.ID],
			Treinos:   int(ent.Measure),
		})
	}

	return report.ComposeAdmin(report.AdminInput{
		Growth:              aggregate.Growth(w, signupsCur, signupsPrev),
		Volume:              aggregate.Volume(w, setsCur),
		Retention:           aggregate.Retention(setsCur, setsPrev),
		TotalAcademias:      len(gyms),
		TotalPersonais:      len(trainers),
		TotalAlunos:         len(students),
		TotalExercicios:     len(exercises),
		TopAcademias:        topAcademias,
		ExerciciosPopulares: popularExercises(setsCur, topExercisesAdmin),
		SkippedRecords:      skipped,
	}), nil
}

func (e *Engine) gymReport(ctx context.Context, w period.Window, scope facts.Scope) (_ *report.GymReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.report.gym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		signupsCur  []facts.Signup
		signupsPrev []facts.Signup
		setsCur     []facts.PerformedSet
		setsPrev    []facts.PerformedSet
		plans       []facts.WorkoutPlan
		trainers    []facts.Trainer
		students    []facts.Student
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		signupsCur, err = e.store.Signups(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		signupsPrev, err = e.store.Signups(gctx, scope, w.Previous)
		return err
	})
	eg.Go(func() error {
		var err error
		setsCur, err = e.store.PerformedSets(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		setsPrev, err = e.store.PerformedSets(gctx, scope, w.Previous)
		return err
	})
	eg.Go(func() error {
		var err error
		plans, err = e.store.WorkoutPlans(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		trainers, err = e.store.Trainers(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		students, err = e.store.Students(gctx, scope)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}

	setsCur, setsPrev, skipped := e.sanitize(setsCur, setsPrev, plans)
	sessions := aggregate.Sessions(setsCur)

	planName := make(map[string]string, len(plans))
	for _, p := range plans {
		planName[p.ID] = p.Name
	}
	planIDs := make([]string, 0, len(sessions))
	for _, s := range sessions {
		planIDs = append(planIDs, s.PlanID)
	}
	treinosRanking := make([]report.TreinoRank, 0, topPlans)
	for _, ent := range aggregate.TopN(aggregate.CountByID(planIDs, planName), topPlans) {
		treinosRanking = append(treinosRanking, report.TreinoRank{
			Nome:  ent.Label,
			Total: int(ent.Measure),
		})
	}

	studentTrainer := make(map[string]string, len(students))
	alunosPorTrainer := make(map[string]int)
	for _, s := range students {
		studentTrainer[s.ID] = s.TrainerID
		alunosPorTrainer[s.TrainerID]++
	}
	treinosPorTrainer := make(map[string]int)
	for _, s := range sessions {
		treinosPorTrainer[studentTrainer[s.StudentID]]++
	}
	trainerEntries := make([]aggregate.RankEntry, 0, len(trainers))
	for _, t := range trainers {
		trainerEntries = append(trainerEntries, aggregate.RankEntry{
			ID:      t.ID,
			Label:   t.Name,
			Measure: float64(treinosPorTrainer[t.ID]),
		})
	}
	personaisAtivos := make([]report.PersonalAtivo, 0, topTrainers)
	for _, ent := range aggregate.TopN(trainerEntries, topTrainers) {
		personaisAtivos = append(personaisAtivos, report.PersonalAtivo{
			ID:      ent.ID,
			Nome:    ent.Label,
			Treinos: int(ent.Measure),
			Alunos:  alunosPorTrainer[ent.ID],
		})
	}

	return report.ComposeGym(report.GymInput{
		Growth:          aggregate.Growth(w, signupsCur, signupsPrev),
		Volume:          aggregate.Volume(w, setsCur),
		Retention:       aggregate.Retention(setsCur, setsPrev),
		Weekdays:        aggregate.WeekdayDistribution(setsCur),
		Categories:      aggregate.CategoryDistribution(setsCur),
		TotalAlunos:     len(students),
		TotalPersonais:  len(trainers),
		TreinosRanking:  treinosRanking,
		PersonaisAtivos: personaisAtivos,
		SkippedRecords:  skipped,
	}), nil
}

func (e *Engine) trainerReport(ctx context.Context, w period.Window, scope facts.Scope) (_ *report.TrainerReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.report.trainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		setsCur  []facts.PerformedSet
		setsPrev []facts.PerformedSet
		plans    []facts.WorkoutPlan
		students []facts.Student
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		setsCur, err = e.store.PerformedSets(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		setsPrev, err = e.store.PerformedSets(gctx, scope, w.Previous)
		return err
	})
	eg.Go(func() error {
		var err error
		plans, err = e.store.WorkoutPlans(gctx, scope)
		return err
	})
	eg.Go(func() error {
		var err error
		students, err = e.store.Students(gctx, scope)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}

	setsCur, setsPrev, skipped := e.sanitize(setsCur, setsPrev, plans)
	sessions := aggregate.Sessions(setsCur)

	plansCreated, plansCreatedPrev := 0, 0
	for _, p := range plans {
		switch {
		case w.Current.Contains(p.CreatedAt):
			plansCreated++
		case w.Previous.Contains(p.CreatedAt):
			plansCreatedPrev++
		}
	}

	perStudent := make(map[string]int)
	lastSession := make(map[string]string)
	for _, s := range sessions {
		perStudent[s.StudentID]++
		if s.Day > lastSession[s.StudentID] {
			lastSession[s.StudentID] = s.Day
		}
	}

	alunos := make([]report.AlunoStat, 0, len(students))
	for _, st := range students {
		alunos = append(alunos, report.AlunoStat{
			ID:           st.ID,
			Nome:         st.Name,
			Treinos:      perStudent[st.ID],
			Frequencia:   aggregate.Round1(frequencyRate(perStudent[st.ID], w.Current)),
			UltimoTreino: lastSession[st.ID],
		})
	}
	sort.Slice(alunos, func(i, j int) bool {
		if alunos[i].Treinos != alunos[j].Treinos {
			return alunos[i].Treinos > alunos[j].Treinos
		}
		return alunos[i].ID < alunos[j].ID
	})

	return report.ComposeTrainer(report.TrainerInput{
		Volume:               aggregate.Volume(w, setsCur),
		Weekdays:             aggregate.WeekdayDistribution(setsCur),
		Categories:           aggregate.CategoryDistribution(setsCur),
		Series:               aggregate.LoadProgression(w, setsCur, progressionSeries),
		PlansCreated:         plansCreated,
		PlansCreatedPrevious: plansCreatedPrev,
		Frequency:            avgFrequency(setsCur, students, w.Current),
		FrequencyPrevious:    avgFrequency(setsPrev, students, w.Previous),
		ActiveStudents:       len(perStudent),
		TotalStudents:        len(students),
		TopExercicios:        popularExercises(setsCur, topExercises),
		Alunos:               alunos,
		SkippedRecords:       skipped,
	}), nil
}

func (e *Engine) studentReport(ctx context.Context, w period.Window, scope facts.Scope) (_ *report.StudentReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.report.student")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		sets  []facts.PerformedSet
		plans []facts.WorkoutPlan
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		sets, err = e.store.PerformedSets(gctx, scope, w.Current)
		return err
	})
	eg.Go(func() error {
		var err error
		plans, err = e.store.WorkoutPlans(gctx, scope)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}

	sets, skipped := aggregate.SanitizeSets(sets, plans)
	e.metrics.CounterSkippedRecords.Add(float64(skipped))
	sessions := aggregate.Sessions(sets)

	activePlans := 0
	for _, p := range plans {
		if p.Active {
			activePlans++
		}
	}

	return report.ComposeStudent(report.StudentInput{
		Sessions:       len(sessions),
		ActivePlans:    activePlans,
		StreakDays:     aggregate.Streak(sets, scope.StudentID, e.now().UTC()),
		TotalSets:      len(sets),
		Series:         aggregate.LoadProgression(w, sets, studentSeries),
		Categories:     categoryProgress(sets),
		Historico:      sessionHistory(sessions, sets, plans, historyLimit),
		SkippedRecords: skipped,
	}), nil
}

// sanitize drops malformed rows from both ranges, bumps the skipped
// counter once and returns the clean slices.
func (e *Engine) sanitize(cur, prev []facts.PerformedSet, plans []facts.WorkoutPlan) ([]facts.PerformedSet, []facts.PerformedSet, int) {
	cleanCur, skippedCur := aggregate.SanitizeSets(cur, plans)
	cleanPrev, skippedPrev := aggregate.SanitizeSets(prev, plans)
	skipped := skippedCur + skippedPrev
	e.metrics.CounterSkippedRecords.Add(float64(skipped))
	return cleanCur, cleanPrev, skipped
}

// frequencyRate measures attendance against the weekly session target,
// capped at 100.
func frequencyRate(sessions int, rng period.Range) float64 {
	weeks := float64(rng.Days()) / 7
	if weeks < 1 {
		weeks = 1
	}
	rate := float64(sessions) / (weeks * weeklySessionTarget) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}

// avgFrequency averages the attendance rate over all of a trainer's
// students, zero-session students included.
func avgFrequency(sets []facts.PerformedSet, students []facts.Student, rng period.Range) float64 {
	if len(students) == 0 {
		return 0
	}
	perStudent := make(map[string]int)
	for _, s := range aggregate.Sessions(sets) {
		perStudent[s.StudentID]++
	}
	sum := 0.0
	for _, st := range students {
		sum += frequencyRate(perStudent[st.ID], rng)
	}
	return sum / float64(len(students))
}

func popularExercises(sets []facts.PerformedSet, n int) []report.ExercicioRank {
	labels := make(map[string]string)
	categories := make(map[string]string)
	ids := make([]string, 0, len(sets))
	for _, s := range sets {
		ids = append(ids, s.ExerciseID)
		labels[s.ExerciseID] = s.ExerciseName
		categories[s.ExerciseID] = s.Category
	}
	out := make([]report.ExercicioRank, 0, n)
	for _, ent := range aggregate.TopN(aggregate.CountByID(ids, labels), n) {
		out = append(out, report.ExercicioRank{
			Exercicio: ent.Label,
			Categoria: categories[ent.ID],
			Usos:      int(ent.Measure),
		})
	}
	return out
}

// categoryProgress summarizes a student's work per muscle category.
func categoryProgress(sets []facts.PerformedSet) []report.ProgressoCategoria {
	type acc struct {
		exercises map[string]bool
		loadSum   float64
		series    int
		reps      int
	}
	byCategory := make(map[string]*acc)
	for _, s := range sets {
		category := s.Category
		if category == "" {
			category = "outros"
		}
		a, ok := byCategory[category]
		if !ok {
			a = &acc{exercises: make(map[string]bool)}
			byCategory[category] = a
		}
		a.exercises[s.ExerciseID] = true
		a.loadSum += s.LoadKg
		a.series++
		a.reps += s.Reps
	}

	out := make([]report.ProgressoCategoria, 0, len(byCategory))
	for category, a := range byCategory {
		out = append(out, report.ProgressoCategoria{
			Categoria:   category,
			Exercicios:  len(a.exercises),
			MediaCarga:  aggregate.Round1(a.loadSum / float64(a.series)),
			TotalSeries: a.series,
			TotalReps:   a.reps,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSeries != out[j].TotalSeries {
			return out[i].TotalSeries > out[j].TotalSeries
		}
		return out[i].Categoria < out[j].Categoria
	})
	return out
}

// sessionHistory shapes the student's latest sessions, newest first.
func sessionHistory(sessions []aggregate.Session, sets []facts.PerformedSet, plans []facts.WorkoutPlan, limit int) []report.SessaoHistorico {
	type key struct {
		planID string
		day    string
	}
	details := make(map[key][]report.SessaoDetalhe)
	exercisesPerSession := make(map[key]map[string]bool)
	for _, s := range sets {
		k := key{planID: s.PlanID, day: s.PerformedAt.UTC().Format("2006-01-02")}
		details[k] = append(details[k], report.SessaoDetalhe{
			Exercicio: s.ExerciseName,
			Reps:      s.Reps,
			Carga:     s.LoadKg,
		})
		if exercisesPerSession[k] == nil {
			exercisesPerSession[k] = make(map[string]bool)
		}
		exercisesPerSession[k][s.ExerciseID] = true
	}

	planByID := make(map[string]facts.WorkoutPlan, len(plans))
	for _, p := range plans {
		planByID[p.ID] = p
	}

	ordered := make([]aggregate.Session, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day > ordered[j].Day
		}
		return ordered[i].PlanID < ordered[j].PlanID
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	out := make([]report.SessaoHistorico, 0, len(ordered))
	for _, s := range ordered {
		k := key{planID: s.PlanID, day: s.Day}
		plan := planByID[s.PlanID]
		out = append(out, report.SessaoHistorico{
			Data:       s.Day,
			Plano:      plan.Name,
			Categoria:  plan.Category,
			Exercicios: len(exercisesPerSession[k]),
			Detalhes:   details[k],
		})
	}
	return out
}
