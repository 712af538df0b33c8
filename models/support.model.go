package models

import "gorm.io/gorm"

// SupportTicket is a student/faculty help request, optionally tied to a course
type SupportTicket struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index"`
	CourseID    *uint  `json:"course_id" gorm:"index"` // nil for general/account issues
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"default:'open'"` // open, in_progress, resolved, closed
	Priority    string `json:"priority" gorm:"default:'medium'"`
	Category    string `json:"category" gorm:"default:'general'"` // general, payment, content, account
	AdminReply  string `json:"admin_reply" gorm:"type:text"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}
