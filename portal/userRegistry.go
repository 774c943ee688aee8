package portal

import (
	"errors"
	"strings"

	"lumina/models"
)

// ErrUserNotFound is returned when a user id matches nothing in the registry.
var ErrUserNotFound = errors.New("user not found")

// UserRegistryState backs the admin access-control screen.
type UserRegistryState struct {
	Users []models.User `json:"users"`
}

func NewUserRegistryState() *UserRegistryState {
	return &UserRegistryState{Users: seedRegistryUsers()}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (r *UserRegistryState) snapshot() *UserRegistryState {
	out := &UserRegistryState{Users: make([]models.User, len(r.Users))}
	copy(out.Users, r.Users)
	return out
}

// ToggleStatus flips the account between active and suspended.
func (r *UserRegistryState) ToggleStatus(id string) (*models.User, error) {
	for i := range r.Users {
		if r.Users[i].ID == id {
			if r.Users[i].Status == models.StatusActive {
				r.Users[i].Status = models.StatusSuspended
			} else {
				r.Users[i].Status = models.StatusActive
			}
			return &r.Users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// ChangeRole overwrites the role directly. The institutional id keeps its
// old role prefix, the registry does not regenerate it.
func (r *UserRegistryState) ChangeRole(id, role string) (*models.User, error) {
	for i := range r.Users {
		if r.Users[i].ID == id {
			r.Users[i].Role = role
			return &r.Users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Filter combines a case-insensitive name/id substring match with an exact
// role match. An empty role means all roles. Non-mutating.
func (r *UserRegistryState) Filter(search, role string) []models.User {
	search = strings.ToLower(search)

	out := make([]models.User, 0, len(r.Users))
	for _, u := range r.Users {
		matchesSearch := strings.Contains(strings.ToLower(u.Name), search) ||
			strings.Contains(strings.ToLower(u.StudentID), search)
		matchesRole := role == "" || u.Role == role
		if matchesSearch && matchesRole {
			out = append(out, u)
		}
	}
	return out
}
