package facts

import "time"

// Facts are immutable, append-only records. The analytics engine only
// ever reads them; ingestion happens elsewhere.

type Role string

const (
	RoleStudent  Role = "student"
	RoleTrainer  Role = "trainer"
	RoleGymAdmin Role = "gym_admin"
)

// Signup is recorded once, at registration.
type Signup struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	GymID      string    `json:"gymId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// WorkoutPlan is a plan a trainer authored for a student. Active is
// current state, not a fact stream.
type WorkoutPlan struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	TrainerID string    `json:"trainerId"`
	GymID     string    `json:"gymId,omitempty"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}

// PerformedSet is one completed set, the atomic unit every time
// series metric derives from. Rows are never mutated; corrections are
// new rows with a supersedes back-reference, which aggregation ignores.
type PerformedSet struct {
	ID           string    `json:"id"`
	PlanID       string    `json:"planId"`
	StudentID    string    `json:"studentId"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Category     string    `json:"category"`
	Reps         int       `json:"reps"`
	LoadKg       float64   `json:"loadKg"`
	PerformedAt  time.Time `json:"performedAt"`
}

// PlanAssignment links a trainer, a student and a plan.
type PlanAssignment struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"planId"`
	TrainerID  string    `json:"trainerId"`
	StudentID  string    `json:"studentId"`
	AssignedAt time.Time `json:"assignedAt"`
}

// Exercise is static catalog reference data.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Gym, Trainer and Student are dimension records: used to scope
// queries and label outputs, never aggregated themselves.

type Gym struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Trainer struct {
	ID    string `json:"id"`
	GymID string `json:"gymId,omitempty"`
	Name  string `json:"name"`
}

type Student struct {
	ID        string    `json:"id"`
	GymID     string    `json:"gymId,omitempty"`
	TrainerID string    `json:"trainerId,omitempty"`
	Name      string    `json:"name"`
	JoinedAt  time.Time `json:"joinedAt"`
}
