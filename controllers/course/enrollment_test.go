package controllers

import (
	courseModels "coursehub/models/course"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&courseModels.Enrollment{},
		&courseModels.StudentCourse{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestRecordEnrollmentRejectsBadInput(t *testing.T) {
	db := newTestDb(t)

	cases := []struct {
		name      string
		studentID uint
		courseID  uint
		tranID    string
		amount    float64
	}{
		{"zero student", 0, 1, "TXN-1", 10},
		{"zero course", 1, 0, "TXN-1", 10},
		{"blank transaction", 1, 1, "   ", 10},
		{"zero amount", 1, 1, "TXN-1", 0},
		{"negative amount", 1, 1, "TXN-1", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordEnrollment(db, tc.studentID, tc.courseID, tc.tranID, tc.amount)
			if !errors.Is(err, ErrEnrollmentInput) {
				t.Fatalf("got err %v, want ErrEnrollmentInput", err)
			}
		})
	}

	if n := countRows(t, db, &courseModels.Enrollment{}); n != 0 {
		t.Errorf("enrollment log has %d rows after rejected inputs, want 0", n)
	}
	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 0 {
		t.Errorf("enrollment index has %d rows after rejected inputs, want 0", n)
	}
}

func TestRecordEnrollmentCreatesLogAndIndex(t *testing.T) {
	db := newTestDb(t)

	index, err := RecordEnrollment(db, 7, 3, "TXN-100", 49.99)
	if err != nil {
		t.Fatalf("RecordEnrollment failed: %v", err)
	}

	if index.StudentID != 7 || index.CourseID != 3 {
		t.Errorf("index row = (%d, %d), want (7, 3)", index.StudentID, index.CourseID)
	}
	if index.TransactionID != "TXN-100" {
		t.Errorf("index transaction id = %q, want TXN-100", index.TransactionID)
	}
	if index.PaymentAmount != 49.99 {
		t.Errorf("index payment amount = %v, want 49.99", index.PaymentAmount)
	}

	if n := countRows(t, db, &courseModels.Enrollment{}); n != 1 {
		t.Errorf("enrollment log rows = %d, want 1", n)
	}
	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 1 {
		t.Errorf("enrollment index rows = %d, want 1", n)
	}
}

// A replayed gateway callback carries the same transaction id. Recording it
// again must leave exactly one log row and one index row.
func TestRecordEnrollmentReplayIsIdempotent(t *testing.T) {
	db := newTestDb(t)

	if _, err := RecordEnrollment(db, 7, 3, "TXN-200", 25); err != nil {
		t.Fatalf("first RecordEnrollment failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := RecordEnrollment(db, 7, 3, "TXN-200", 25); err != nil {
			t.Fatalf("replay %d failed: %v", i, err)
		}
	}

	if n := countRows(t, db, &courseModels.Enrollment{}); n != 1 {
		t.Errorf("enrollment log rows after replays = %d, want 1", n)
	}
	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 1 {
		t.Errorf("enrollment index rows after replays = %d, want 1", n)
	}
}

// A second purchase of the same course under a new transaction id appends to
// the log but overwrites the single index row.
func TestRecordEnrollmentRepurchaseOverwritesIndex(t *testing.T) {
	db := newTestDb(t)

	if _, err := RecordEnrollment(db, 7, 3, "TXN-300", 25); err != nil {
		t.Fatalf("first RecordEnrollment failed: %v", err)
	}
	index, err := RecordEnrollment(db, 7, 3, "TXN-301", 30)
	if err != nil {
		t.Fatalf("second RecordEnrollment failed: %v", err)
	}

	if n := countRows(t, db, &courseModels.Enrollment{}); n != 2 {
		t.Errorf("enrollment log rows = %d, want 2", n)
	}
	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 1 {
		t.Errorf("enrollment index rows = %d, want 1", n)
	}
	if index.TransactionID != "TXN-301" {
		t.Errorf("index transaction id = %q, want latest TXN-301", index.TransactionID)
	}
	if index.PaymentAmount != 30 {
		t.Errorf("index payment amount = %v, want 30", index.PaymentAmount)
	}
}

func TestRecordEnrollmentSeparateStudents(t *testing.T) {
	db := newTestDb(t)

	if _, err := RecordEnrollment(db, 1, 3, "TXN-400", 10); err != nil {
		t.Fatalf("student 1 enrollment failed: %v", err)
	}
	if _, err := RecordEnrollment(db, 2, 3, "TXN-401", 10); err != nil {
		t.Fatalf("student 2 enrollment failed: %v", err)
	}

	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 2 {
		t.Errorf("enrollment index rows = %d, want one per student", n)
	}
}

// A soft-deleted index row is revived by a fresh purchase.
func TestRecordEnrollmentRevivesSoftDeletedIndex(t *testing.T) {
	db := newTestDb(t)

	if _, err := RecordEnrollment(db, 7, 3, "TXN-500", 15); err != nil {
		t.Fatalf("RecordEnrollment failed: %v", err)
	}
	if err := db.Model(&courseModels.StudentCourse{}).
		Where("student_id = ? AND course_id = ?", 7, 3).
		Update("is_deleted", true).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	index, err := RecordEnrollment(db, 7, 3, "TXN-501", 15)
	if err != nil {
		t.Fatalf("re-enrollment failed: %v", err)
	}
	if index.IsDeleted {
		t.Error("index row still soft-deleted after re-enrollment")
	}
	if n := countRows(t, db, &courseModels.StudentCourse{}); n != 1 {
		t.Errorf("enrollment index rows = %d, want 1", n)
	}
}
