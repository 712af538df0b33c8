package course

import (
	"time"

	"gorm.io/gorm"
)

// Video is a lecture video belonging to a course. Its review status is
// independent of the parent course's status: playback requires both the
// course and the video to be approved.
type Video struct {
	gorm.Model
	CourseID        uint       `json:"course_id" gorm:"index;not null"`
	OrderIndex      int        `json:"order_index" gorm:"default:0"` // position within the course
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	VideoURL        string     `json:"video_url"`
	Duration        int64      `json:"duration" gorm:"default:0"` // duration in minutes
	Status          string     `json:"status" gorm:"default:'PENDING'"` // raw; legacy rows hold '' or 'ACTIVE'
	RejectionReason string     `json:"rejection_reason"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectedAt      *time.Time `json:"rejected_at"`
	IsDeleted       bool       `gorm:"default:false"`
}
