package auth

import (
	"errors"

	"lumina/models"
)

// Store errors surfaced by implementations.
var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email is already registered")
)

// Store is the persistence boundary of the auth collaborator. The portal
// itself keeps no durable state, accounts are the only thing written to disk.
type Store interface {
	CreateAccount(acc *models.Account) error
	FindByEmail(email string) (*models.Account, error)
	FindByUID(uid string) (*models.Account, error)
	FindByStudentID(studentID string) (*models.Account, error)
	TrackLogin(accountID uint, ip, userAgent string) error
	ListLogins(accountID uint, limit int) ([]models.LoginTracking, error)
}
