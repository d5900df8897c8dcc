package facts

import (
	"context"
	"sort"

	"github.com/athlosfit/athlos/internal/analytics/period"
)

// TestStore is an in-memory Store used in unit tests and local
// development. It applies the same scope and range semantics as the
// Postgres store, over fixture slices.
type TestStore struct {
	SignupRows     []Signup
	PlanRows       []WorkoutPlan
	SetRows        []PerformedSet
	AssignmentRows []PlanAssignment
	GymRows        []Gym
	TrainerRows    []Trainer
	StudentRows    []Student
	ExerciseRows   []Exercise
}

var _ Store = (*TestStore)(nil)

func NewTestStore() *TestStore {
	return &TestStore{}
}

func (s *TestStore) studentMatches(studentID string, scope Scope) bool {
	switch scope.Kind {
	case ScopeAll:
		return true
	case ScopeStudent:
		return studentID == scope.StudentID
	default:
		for _, st := range s.StudentRows {
			if st.ID != studentID {
				continue
			}
			if scope.Kind == ScopeGym {
				return st.GymID == scope.GymID
			}
			return st.TrainerID == scope.TrainerID
		}
		return false
	}
}

func (s *TestStore) Signups(_ context.Context, scope Scope, rng period.Range) ([]Signup, error) {
	out := make([]Signup, 0)
	for _, su := range s.SignupRows {
		if !rng.Contains(su.OccurredAt) {
			continue
		}
		switch scope.Kind {
		case ScopeGym:
			if su.GymID != scope.GymID {
				continue
			}
		case ScopeTrainer:
			if !s.studentMatches(su.ID, scope) {
				continue
			}
		case ScopeStudent:
			if su.ID != scope.StudentID {
				continue
			}
		}
		out = append(out, su)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

func (s *TestStore) WorkoutPlans(_ context.Context, scope Scope) ([]WorkoutPlan, error) {
	out := make([]WorkoutPlan, 0)
	for _, p := range s.PlanRows {
		switch scope.Kind {
		case ScopeGym:
			if p.GymID != scope.GymID {
				continue
			}
		case ScopeTrainer:
			if p.TrainerID != scope.TrainerID {
				continue
			}
		case ScopeStudent:
			if p.StudentID != scope.StudentID {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *TestStore) PerformedSets(_ context.Context, scope Scope, rng period.Range) ([]PerformedSet, error) {
	out := make([]PerformedSet, 0)
	for _, ps := range s.SetRows {
		if !rng.Contains(ps.PerformedAt) {
			continue
		}
		if !s.studentMatches(ps.StudentID, scope) {
			continue
		}
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PerformedAt.Before(out[j].PerformedAt) })
	return out, nil
}

func (s *TestStore) PlanAssignments(_ context.Context, scope Scope) ([]PlanAssignment, error) {
	out := make([]PlanAssignment, 0)
	for _, a := range s.AssignmentRows {
		switch scope.Kind {
		case ScopeTrainer:
			if a.TrainerID != scope.TrainerID {
				continue
			}
		case ScopeStudent:
			if a.StudentID != scope.StudentID {
				continue
			}
		case ScopeGym:
			if !s.studentMatches(a.StudentID, scope) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *TestStore) Gyms(_ context.Context, scope Scope) ([]Gym, error) {
	out := make([]Gym, 0)
	for _, g := range s.GymRows {
		if scope.Kind == ScopeGym && g.ID != scope.GymID {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *TestStore) Trainers(_ context.Context, scope Scope) ([]Trainer, error) {
	out := make([]Trainer, 0)
	for _, t := range s.TrainerRows {
		switch scope.Kind {
		case ScopeGym:
			if t.GymID != scope.GymID {
				continue
			}
		case ScopeTrainer:
			if t.ID != scope.TrainerID {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TestStore) Students(_ context.Context, scope Scope) ([]Student, error) {
	out := make([]Student, 0)
	for _, st := range s.StudentRows {
		switch scope.Kind {
		case ScopeGym:
			if st.GymID != scope.GymID {
				continue
			}
		case ScopeTrainer:
			if st.TrainerID != scope.TrainerID {
				continue
			}
		case ScopeStudent:
			if st.ID != scope.StudentID {
				continue
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *TestStore) Exercises(_ context.Context) ([]Exercise, error) {
	out := make([]Exercise, 0, len(s.ExerciseRows))
	out = append(out, s.ExerciseRows...)
	return out, nil
}
