package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is the flat payment/enrollment log: one row per successful
// payment callback. TransactionID is unique so a replayed gateway callback
// cannot append a duplicate row.
type Enrollment struct {
	gorm.Model
	StudentID     uint      `json:"student_id" gorm:"index;not null"`
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	TransactionID string    `json:"transaction_id" gorm:"uniqueIndex;not null"`
	Amount        float64   `json:"amount" gorm:"default:0"`
	Status        string    `json:"status" gorm:"default:'PAID'"`
	PaidAt        time.Time `json:"paid_at"`
	IsDeleted     bool      `gorm:"default:false"`
}

// StudentCourse is the per-student enrollment index, unique per
// (student, course). It is upserted on every successful payment, so repeated
// callbacks for the same purchase leave exactly one row.
type StudentCourse struct {
	gorm.Model
	StudentID     uint      `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID      uint      `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	TransactionID string    `json:"transaction_id"`
	PaymentAmount float64   `json:"payment_amount" gorm:"default:0"`
	EnrolledAt    time.Time `json:"enrolled_at"`
	IsDeleted     bool      `gorm:"default:false"`
}
