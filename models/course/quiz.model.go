package course

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is an auto-scored assessment attached to a course
type Quiz struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	TotalMarks int    `json:"total_marks" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt records one attempt at a quiz. Every attempt is retained;
// best and average scores are computed by scanning all attempts rather than
// keeping a running aggregate.
type QuizAttempt struct {
	gorm.Model
	StudentID     uint `json:"student_id" gorm:"index;not null"`
	QuizID        uint `json:"quiz_id" gorm:"index;not null"`
	CourseID      uint `json:"course_id" gorm:"index;not null"`
	Score         int  `json:"score"`
	MaxScore      int  `json:"max_score"`
	AttemptNumber int  `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool `gorm:"default:false"`
}

// WrittenExam is a faculty-graded assessment attached to a course
type WrittenExam struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Question   string `json:"question" gorm:"type:text"`
	TotalMarks int    `json:"total_marks" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// WrittenExamSubmission is a student's answer awaiting grading. Marks and
// the graded flag are set exactly once by a faculty grading action.
type WrittenExamSubmission struct {
	gorm.Model
	StudentID   uint      `json:"student_id" gorm:"index;not null"`
	ExamID      uint      `json:"exam_id" gorm:"index;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	AnswerText  string    `json:"answer_text" gorm:"type:text"`
	Marks       int       `json:"marks" gorm:"default:0"`
	Graded      bool      `json:"graded" gorm:"default:false"`
	SubmittedAt time.Time `json:"submitted_at"`
	IsDeleted   bool      `gorm:"default:false"`
}
