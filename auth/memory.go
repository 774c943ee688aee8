package auth

import (
	"strings"
	"sync"
	"time"

	"lumina/models"

	"gorm.io/gorm"
)

// MemoryStore is an in-process Store used when no database is configured and
// by the test suite.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   uint
	accounts []models.Account
	logins   []models.LoginTracking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) CreateAccount(acc *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.accounts {
		if strings.EqualFold(existing.Email, acc.Email) && !existing.IsDeleted {
			return ErrDuplicateEmail
		}
	}

	acc.Model = gorm.Model{ID: m.nextID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.nextID++
	m.accounts = append(m.accounts, *acc)
	return nil
}

func (m *MemoryStore) FindByEmail(email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(a models.Account) bool { return strings.EqualFold(a.Email, email) })
}

func (m *MemoryStore) FindByUID(uid string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(a models.Account) bool { return a.UID == uid })
}

func (m *MemoryStore) FindByStudentID(studentID string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(func(a models.Account) bool { return a.StudentID == studentID })
}

func (m *MemoryStore) TrackLogin(accountID uint, ip, userAgent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins = append(m.logins, models.LoginTracking{
		Model:     gorm.Model{ID: uint(len(m.logins) + 1), CreatedAt: time.Now()},
		AccountID: accountID,
		IP:        ip,
		UserAgent: userAgent,
	})
	return nil
}

func (m *MemoryStore) ListLogins(accountID uint, limit int) ([]models.LoginTracking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.LoginTracking
	for i := len(m.logins) - 1; i >= 0 && len(out) < limit; i-- {
		if m.logins[i].AccountID == accountID {
			out = append(out, m.logins[i])
		}
	}
	return out, nil
}

func (m *MemoryStore) find(match func(models.Account) bool) (*models.Account, error) {
	for i := range m.accounts {
		if match(m.accounts[i]) && !m.accounts[i].IsDeleted {
			acc := m.accounts[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}
