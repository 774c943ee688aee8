package models

// User roles. Role is fixed at registration from the auth metadata and
// defaults to STUDENT when absent.
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// User account statuses. Only these two exist.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User is the normalized portal user record mapped from an auth account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	StudentID    string `json:"studentId"`
	Avatar       string `json:"avatar"`
	Email        string `json:"email,omitempty"`
	Status       string `json:"status,omitempty"`
	JoinedDate   string `json:"joinedDate,omitempty"`
	IsAnnualPaid bool   `json:"isAnnualPaid,omitempty"` // teachers only
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher || role == RoleAdmin
}
