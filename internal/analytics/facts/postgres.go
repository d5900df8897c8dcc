package facts

import (
	"context"
	"fmt"
	"time"

	"github.com/athlosfit/athlos/internal/analytics/period"
	"github.com/athlosfit/athlos/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// PostgresStore reads facts from the transactional database. Scope and
// range filters are pushed into SQL so historical volume never crosses
// the wire unfiltered.
type PostgresStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// scopeParams flattens a Scope into the three optional filter values
// every fact query shares. Empty string means "no filter".
func scopeParams(scope Scope) (gymID, trainerID, studentID string) {
	switch scope.Kind {
	case ScopeGym:
		gymID = scope.GymID
	case ScopeTrainer:
		trainerID = scope.TrainerID
	case ScopeStudent:
		studentID = scope.StudentID
	}
	return gymID, trainerID, studentID
}

func (s *PostgresStore) Signups(ctx context.Context, scope Scope, rng period.Range) (_ []Signup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.signups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("scope", scope.String()))

	gymID, trainerID, studentID := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT sg.id, sg.role, COALESCE(sg.gym_id, ''), sg.occurred_at
			FROM signup sg
				WHERE sg.occurred_at >= $1 AND sg.occurred_at < $2
				AND ($3::text = '' OR sg.gym_id = $3)
				AND ($4::text = '' OR sg.id IN (SELECT st.id FROM student st WHERE st.trainer_id = $4))
				AND ($5::text = '' OR sg.id = $5)
			ORDER BY sg.occurred_at;`,
		rng.From, rng.To, gymID, trainerID, studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query signups: %w", err)
	}
	defer rows.Close()

	signups := make([]Signup, 0)
	for rows.Next() {
		var su Signup
		var role string
		if err := rows.Scan(&su.ID, &role, &su.GymID, &su.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		su.Role = Role(role)
		signups = append(signups, su)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("signup rows: %w", err)
	}
	return signups, nil
}

func (s *PostgresStore) WorkoutPlans(ctx context.Context, scope Scope) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.workoutPlans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("scope", scope.String()))

	gymID, trainerID, studentID := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT p.id, p.student_id, p.trainer_id, COALESCE(p.gym_id, ''), p.name, p.category, p.created_at, p.active
			FROM workout_plan p
				WHERE ($1::text = '' OR p.gym_id = $1)
				AND ($2::text = '' OR p.trainer_id = $2)
				AND ($3::text = '' OR p.student_id = $3)
			ORDER BY p.created_at;`,
		gymID, trainerID, studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout plans: %w", err)
	}
	defer rows.Close()

	plans := make([]WorkoutPlan, 0)
	for rows.Next() {
		var p WorkoutPlan
		if err := rows.Scan(&p.ID, &p.StudentID, &p.TrainerID, &p.GymID, &p.Name, &p.Category, &p.CreatedAt, &p.Active); err != nil {
			return nil, fmt.Errorf("scan workout plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout plan rows: %w", err)
	}
	return plans, nil
}

func (s *PostgresStore) PerformedSets(ctx context.Context, scope Scope, rng period.Range) (_ []PerformedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.performedSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("scope", scope.String()),
		attribute.String("from", rng.From.Format(time.RFC3339)),
		attribute.String("to", rng.To.Format(time.RFC3339)),
	)

	gymID, trainerID, studentID := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT
				ps.id, ps.plan_id, ps.student_id, ps.exercise_id,
				COALESCE(e.name, ''), COALESCE(e.category, ''),
				ps.reps, ps.load_kg, ps.performed_at
			FROM performed_set ps
			LEFT JOIN exercise e ON ps.exercise_id = e.id
			JOIN student st ON ps.student_id = st.id
				WHERE ps.supersedes IS NULL
				AND ps.performed_at >= $1 AND ps.performed_at < $2
				AND ($3::text = '' OR st.gym_id = $3)
				AND ($4::text = '' OR st.trainer_id = $4)
				AND ($5::text = '' OR ps.student_id = $5)
			ORDER BY ps.performed_at;`,
		rng.From, rng.To, gymID, trainerID, studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query performed sets: %w", err)
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return sets, nil
}

func (s *PostgresStore) PlanAssignments(ctx context.Context, scope Scope) (_ []PlanAssignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.planAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("scope", scope.String()))

	gymID, trainerID, studentID := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT a.id, a.plan_id, a.trainer_id, a.student_id, a.assigned_at
			FROM plan_assignment a
			JOIN student st ON a.student_id = st.id
				WHERE ($1::text = '' OR st.gym_id = $1)
				AND ($2::text = '' OR a.trainer_id = $2)
				AND ($3::text = '' OR a.student_id = $3)
			ORDER BY a.assigned_at;`,
		gymID, trainerID, studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]PlanAssignment, 0)
	for rows.Next() {
		var a PlanAssignment
		if err := rows.Scan(&a.ID, &a.PlanID, &a.TrainerID, &a.StudentID, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan plan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan assignment rows: %w", err)
	}
	return assignments, nil
}

func (s *PostgresStore) Gyms(ctx context.Context, scope Scope) (_ []Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.gyms")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gymID, _, _ := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`SELECT g.id, g.name FROM gym g WHERE ($1::text = '' OR g.id = $1) ORDER BY g.id;`,
		gymID,
	)
	if err != nil {
		return nil, fmt.Errorf("query gyms: %w", err)
	}
	defer rows.Close()

	gyms := make([]Gym, 0)
	for rows.Next() {
		var g Gym
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan gym: %w", err)
		}
		gyms = append(gyms, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gym rows: %w", err)
	}
	return gyms, nil
}

func (s *PostgresStore) Trainers(ctx context.Context, scope Scope) (_ []Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.trainers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gymID, trainerID, _ := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT t.id, COALESCE(t.gym_id, ''), t.name
			FROM trainer t
				WHERE ($1::text = '' OR t.gym_id = $1)
				AND ($2::text = '' OR t.id = $2)
			ORDER BY t.id;`,
		gymID, trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query trainers: %w", err)
	}
	defer rows.Close()

	trainers := make([]Trainer, 0)
	for rows.Next() {
		var t Trainer
		if err := rows.Scan(&t.ID, &t.GymID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trainer rows: %w", err)
	}
	return trainers, nil
}

func (s *PostgresStore) Students(ctx context.Context, scope Scope) (_ []Student, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.students")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gymID, trainerID, studentID := scopeParams(scope)
	rows, err := s.db.Query(
		ctx,
		`
			SELECT st.id, COALESCE(st.gym_id, ''), COALESCE(st.trainer_id, ''), st.name, st.joined_at
			FROM student st
				WHERE ($1::text = '' OR st.gym_id = $1)
				AND ($2::text = '' OR st.trainer_id = $2)
				AND ($3::text = '' OR st.id = $3)
			ORDER BY st.id;`,
		gymID, trainerID, studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := make([]Student, 0)
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.GymID, &st.TrainerID, &st.Name, &st.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("student rows: %w", err)
	}
	return students, nil
}

func (s *PostgresStore) Exercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "facts.postgres.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`SELECT e.id, e.name, COALESCE(e.category, '') FROM exercise e ORDER BY e.id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise rows: %w", err)
	}
	return exercises, nil
}

func rows2sets(rows pgx.Rows) ([]PerformedSet, error) {
	sets := make([]PerformedSet, 0)
	for rows.Next() {
		var ps PerformedSet
		if err := rows.Scan(
			&ps.ID, &ps.PlanID, &ps.StudentID, &ps.ExerciseID,
			&ps.ExerciseName, &ps.Category,
			&ps.Reps, &ps.LoadKg, &ps.PerformedAt,
		); err != nil {
			return nil, err
		}
		sets = append(sets, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
