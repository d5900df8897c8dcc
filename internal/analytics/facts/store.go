package facts

import (
	"context"
	"fmt"

	"github.com/athlosfit/athlos/internal/analytics/period"
)

type ScopeKind string

const (
	ScopeAll     ScopeKind = "all"
	ScopeGym     ScopeKind = "gym"
	ScopeTrainer ScopeKind = "trainer"
	ScopeStudent ScopeKind = "student"
)

// Scope is the subset of facts a caller may see: the whole platform,
// one gym, one trainer's students, or one student.
type Scope struct {
	Kind      ScopeKind
	GymID     string
	TrainerID string
	StudentID string
}

func AllScope() Scope              { return Scope{Kind: ScopeAll} }
func GymScope(id string) Scope     { return Scope{Kind: ScopeGym, GymID: id} }
func TrainerScope(id string) Scope { return Scope{Kind: ScopeTrainer, TrainerID: id} }
func StudentScope(id string) Scope { return Scope{Kind: ScopeStudent, StudentID: id} }

func (s Scope) String() string {
	switch s.Kind {
	case ScopeGym:
		return fmt.Sprintf("gym=%s", s.GymID)
	case ScopeTrainer:
		return fmt.Sprintf("trainer=%s", s.TrainerID)
	case ScopeStudent:
		return fmt.Sprintf("student=%s", s.StudentID)
	default:
		return string(ScopeAll)
	}
}

//go:generate mockgen -source=$GOFILE -destination=../mocks_test.go -package=analytics_test

// Store is the read-only fact store the engine aggregates over. Every
// implementation must intersect scope and range server side; fetching
// unbounded history and filtering in memory is exactly the performance
// trap this interface exists to prevent.
type Store interface {
	Signups(ctx context.Context, scope Scope, rng period.Range) ([]Signup, error)
	WorkoutPlans(ctx context.Context, scope Scope) ([]WorkoutPlan, error)
	PerformedSets(ctx context.Context, scope Scope, rng period.Range) ([]PerformedSet, error)
	PlanAssignments(ctx context.Context, scope Scope) ([]PlanAssignment, error)

	Gyms(ctx context.Context, scope Scope) ([]Gym, error)
	Trainers(ctx context.Context, scope Scope) ([]Trainer, error)
	Students(ctx context.Context, scope Scope) ([]Student, error)
	Exercises(ctx context.Context) ([]Exercise, error)
}
