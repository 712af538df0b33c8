package course

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a faculty-authored course going through admin review
type Course struct {
	gorm.Model
	FacultyID        uint       `json:"faculty_id" gorm:"index;not null"`
	Title            string     `json:"title"`
	Description      string     `json:"description" gorm:"type:text"`
	Category         string     `json:"category"`
	Level            string     `json:"level"` // BEGINNER, INTERMEDIATE, ADVANCED
	Price            float64    `json:"price" gorm:"default:0"`
	Duration         int64      `json:"duration" gorm:"default:0"` // duration in hours
	ThumbnailURL     string     `json:"thumbnail_url"`
	Rating           float64    `json:"rating" gorm:"default:0"`
	EnrolledStudents int64      `json:"enrolled_students" gorm:"default:0"`
	Status           string     `json:"status" gorm:"default:'PENDING'"` // raw; legacy rows hold '' or 'ACTIVE'
	RejectionReason  string     `json:"rejection_reason"`
	ApprovedAt       *time.Time `json:"approved_at"`
	RejectedAt       *time.Time `json:"rejected_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
