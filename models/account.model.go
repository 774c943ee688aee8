package models

import "gorm.io/gorm"

// Account is the stored auth record backing a portal user. The portal never
// reads it directly, it only sees the mapped User.
type Account struct {
	gorm.Model
	UID            string `gorm:"uniqueIndex;not null"` // identity exposed to the portal
	Name           string `gorm:"default:''"`
	Email          string `gorm:"unique;not null"`
	Phone          string `gorm:"default:''"`
	Password       string `gorm:"not null"`
	Role           string `gorm:"default:'STUDENT'"`
	StudentID      string `gorm:"index;default:''"` // institutional id, alternate login handle
	Grade          string `gorm:"default:''"`       // students
	Department     string `gorm:"default:''"`       // teachers
	ManagementArea string `gorm:"default:''"`       // admins
	IsAnnualPaid   bool   `gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}

// LoginTracking records each successful sign-in.
type LoginTracking struct {
	gorm.Model
	AccountID uint   `gorm:"index;not null"`
	IP        string `gorm:"default:''"`
	UserAgent string `gorm:"default:''"`
}
