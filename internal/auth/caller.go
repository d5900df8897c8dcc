package auth

// CallerRole mirrors the user types of the identity service.
type CallerRole string

const (
	RolePlatformAdmin CallerRole = "platform_admin"
	RoleGymAdmin      CallerRole = "gym_admin"
	RoleTrainer       CallerRole = "trainer"
	RoleStudent       CallerRole = "student"
)

// Caller is who is asking and what they may see. It is resolved from
// the session token; the identity service that minted the session is
// external and assumed correct.
type Caller struct {
	ID        string     `json:"id"`
	Role      CallerRole `json:"role"`
	GymID     string     `json:"gymId,omitempty"`
	TrainerID string     `json:"trainerId,omitempty"`
	StudentID string     `json:"studentId,omitempty"`
}

func (c Caller) Valid() bool {
	switch c.Role {
	case RolePlatformAdmin:
		return true
	case RoleGymAdmin:
		return c.GymID != ""
	case RoleTrainer:
		return c.TrainerID != ""
	case RoleStudent:
		return c.StudentID != ""
	default:
		return false
	}
}
