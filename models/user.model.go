package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles are fixed at registration and never change afterwards.
const (
	RoleStudent = "STUDENT"
	RoleFaculty = "FACULTY"
	RoleAdmin   = "ADMIN"
)

// Faculty account review states. Only meaningful when Role is FACULTY.
const (
	FacultyPending  = "PENDING"
	FacultyApproved = "APPROVED"
	FacultyRejected = "REJECTED"
)

type User struct {
	gorm.Model
	ProfileImage  string     `gorm:"default:''"`
	Name          string     `gorm:"default:''"`
	Email         string     `gorm:"unique;not null"`
	Mobile        string     `gorm:"default:''"`
	Role          string     `gorm:"default:'STUDENT'"` // STUDENT, FACULTY, ADMIN
	Password      string     `gorm:"not null" json:"-"`
	Bio           string     `gorm:"type:text"`
	Expertise     string     `gorm:"default:''"`
	FacultyStatus string     `gorm:"default:''"` // PENDING, APPROVED, REJECTED (faculty only)
	LastLogin     *time.Time `json:"last_login"`
	IsDeleted     bool       `gorm:"default:false"`
}

// LoginTracking records every successful login for the account history view
type LoginTracking struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	IPAddress string    `json:"ip_address"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
	IsDeleted bool      `gorm:"default:false"`
}
