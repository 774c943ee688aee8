package database

import (
	"errors"

	"lumina/auth"
	"lumina/models"

	"gorm.io/gorm"
)

// AccountStore implements auth.Store on the configured GORM database.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) CreateAccount(acc *models.Account) error {
	// Check if email already exists
	if err := s.db.Where("email = ? AND is_deleted = ?", acc.Email, false).First(&models.Account{}).Error; err == nil {
		return auth.ErrDuplicateEmail
	}
	return s.db.Create(acc).Error
}

func (s *AccountStore) FindByEmail(email string) (*models.Account, error) {
	var acc models.Account
	err := s.db.Where("email = ? AND is_deleted = ?", email, false).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (s *AccountStore) FindByUID(uid string) (*models.Account, error) {
	var acc models.Account
	err := s.db.Where("uid = ? AND is_deleted = ?", uid, false).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (s *AccountStore) FindByStudentID(studentID string) (*models.Account, error) {
	var acc models.Account
	err := s.db.Where("student_id = ? AND is_deleted = ?", studentID, false).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (s *AccountStore) TrackLogin(accountID uint, ip, userAgent string) error {
	return s.db.Create(&models.LoginTracking{
		AccountID: accountID,
		IP:        ip,
		UserAgent: userAgent,
	}).Error
}

func (s *AccountStore) ListLogins(accountID uint, limit int) ([]models.LoginTracking, error) {
	var logins []models.LoginTracking
	err := s.db.Where("account_id = ?", accountID).
		Order("created_at desc").
		Limit(limit).
		Find(&logins).Error
	return logins, err
}
