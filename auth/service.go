package auth

import (
	"errors"
	"strings"

	"lumina/config"
	"lumina/models"
	"lumina/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service errors mapped to user-facing messages by the handlers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownStudentID   = errors.New("invalid student id")
)

// Service fronts the auth collaborator: account storage, credential checks
// and session-change notifications.
type Service struct {
	store Store
	hub   *hub
}

// Default is the process-wide service instance, set by Init.
var Default *Service

// Init wires the global service to the given store.
func Init(store Store) {
	Default = NewService(store)
}

func NewService(store Store) *Service {
	return &Service{store: store, hub: newHub()}
}

// SignUpInput carries the registration form. Card fields from the teacher
// payment step are collected client-side and never reach the server.
type SignUpInput struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	Role           string
	Grade          string
	Department     string
	ManagementArea string
}

// SignUp registers an account, assigns the institutional id and emits a
// signed-in event for the new session.
func (s *Service) SignUp(in SignUpInput) (*models.User, error) {
	role := in.Role
	if !models.ValidRole(role) {
		role = models.RoleStudent
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		UID:            utils.NewID(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Password:       string(hashed),
		Role:           role,
		StudentID:      utils.GenerateStudentID(in.Phone, role),
		Grade:          in.Grade,
		Department:     in.Department,
		ManagementArea: in.ManagementArea,
		// Teacher registration runs a payment step client-side; the flow
		// assumes success, so the flag is set on creation.
		IsAnnualPaid: role == models.RoleTeacher,
	}

	if err := s.store.CreateAccount(acc); err != nil {
		return nil, err
	}

	user := mapAccount(acc)
	s.hub.publish(Event{Type: EventSignedIn, User: user})
	return user, nil
}

// SignInWithPassword authenticates by email, or by institutional id for
// students (the id is translated to the account email first).
func (s *Service) SignInWithPassword(identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)

	email := identifier
	if !strings.Contains(identifier, "@") {
		profileEmail, _, err := s.FindProfileByStudentID(identifier)
		if err != nil {
			return nil, ErrUnknownStudentID
		}
		email = profileEmail
	}

	acc, err := s.store.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := mapAccount(acc)
	s.hub.publish(Event{Type: EventSignedIn, User: user})
	return user, nil
}

// SignOut emits the session-ended event. The event fires even when the
// account lookup fails so listeners always clear their state.
func (s *Service) SignOut(uid string) error {
	acc, err := s.store.FindByUID(uid)

	user := &models.User{ID: uid}
	if acc != nil {
		user = mapAccount(acc)
	}
	s.hub.publish(Event{Type: EventSignedOut, User: user})

	return err
}

// CurrentSession maps the account behind a live token back to a portal user.
func (s *Service) CurrentSession(uid string) (*models.User, error) {
	acc, err := s.store.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	return mapAccount(acc), nil
}

// FindProfileByStudentID resolves an institutional id to the login email and
// role. Used only to translate a student's id before password authentication.
func (s *Service) FindProfileByStudentID(studentID string) (email, role string, err error) {
	acc, err := s.store.FindByStudentID(studentID)
	if err != nil {
		return "", "", err
	}
	return acc.Email, acc.Role, nil
}

// TrackLogin records a successful sign-in for the account owning uid.
func (s *Service) TrackLogin(uid, ip, userAgent string) {
	acc, err := s.store.FindByUID(uid)
	if err != nil {
		return
	}
	_ = s.store.TrackLogin(acc.ID, ip, userAgent)
}

// LoginHistory lists recent sign-ins, newest first.
func (s *Service) LoginHistory(uid string, limit int) ([]models.LoginTracking, error) {
	acc, err := s.store.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	return s.store.ListLogins(acc.ID, limit)
}

// Subscribe registers a session-change listener and returns its unsubscribe
// function. Callers must unsubscribe on shutdown.
func (s *Service) Subscribe(fn func(Event)) func() {
	return s.hub.subscribe(fn)
}

// mapAccount normalizes a raw account into the portal user record, applying
// the fixed defaulting rules for missing metadata.
func mapAccount(acc *models.Account) *models.User {
	name := acc.Name
	if name == "" {
		name = "Lumina User"
	}

	studentID := acc.StudentID
	if studentID == "" {
		studentID = "LUM/0000/00000"
	}

	role := acc.Role
	if !models.ValidRole(role) {
		role = models.RoleStudent
	}

	avatarSeed := acc.StudentID
	if avatarSeed == "" {
		avatarSeed = acc.UID
	}

	return &models.User{
		ID:           acc.UID,
		Name:         name,
		Role:         role,
		StudentID:    studentID,
		Avatar:       utils.AvatarURL(avatarSeed),
		Email:        acc.Email,
		Status:       models.StatusActive,
		JoinedDate:   acc.CreatedAt.Format("Jan 02, 2006"),
		IsAnnualPaid: acc.IsAnnualPaid,
	}
}
