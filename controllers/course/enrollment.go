package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	// ErrEnrollmentInput marks a precondition failure on enrollment recording
	ErrEnrollmentInput = errors.New("invalid enrollment input")
)

// RecordEnrollment appends a row to the flat enrollment log and upserts the
// per-student enrollment index, in one transaction. It is called from the
// payment success callback and is idempotent on transaction id: a replayed
// callback leaves exactly one log row and one index row.
func RecordEnrollment(db *gorm.DB, studentID, courseID uint, transactionID string, amount float64) (*courseModels.StudentCourse, error) {
	transactionID = strings.TrimSpace(transactionID)
	if studentID == 0 || courseID == 0 || transactionID == "" {
		return nil, ErrEnrollmentInput
	}
	// A zero or negative amount means the gateway callback was malformed;
	// refuse to enroll rather than record a free purchase.
	if amount <= 0 {
		return nil, ErrEnrollmentInput
	}

	now := time.Now()
	var index courseModels.StudentCourse

	err := db.Transaction(func(tx *gorm.DB) error {
		// Log append, deduplicated on transaction id
		var existing courseModels.Enrollment
		err := tx.Where("transaction_id = ?", transactionID).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			logRow := courseModels.Enrollment{
				StudentID:     studentID,
				CourseID:      courseID,
				TransactionID: transactionID,
				Amount:        amount,
				Status:        "PAID",
				PaidAt:        now,
			}
			if err := tx.Create(&logRow).Error; err != nil {
				return err
			}
		}

		// Index upsert, keyed (student, course): create or overwrite
		err = tx.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&index).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			index = courseModels.StudentCourse{
				StudentID:     studentID,
				CourseID:      courseID,
				TransactionID: transactionID,
				PaymentAmount: amount,
				EnrolledAt:    now,
			}
			return tx.Create(&index).Error
		}

		index.TransactionID = transactionID
		index.PaymentAmount = amount
		index.IsDeleted = false
		return tx.Save(&index).Error
	})
	if err != nil {
		return nil, err
	}

	return &index, nil
}

// GetMyCourses lists the current student's enrolled courses from the
// per-student enrollment index
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []courseModels.StudentCourse
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrolledCourse struct {
		courseModels.StudentCourse
		CourseTitle  string  `json:"course_title"`
		Category     string  `json:"category"`
		Level        string  `json:"level"`
		ThumbnailURL string  `json:"thumbnail_url"`
		Rating       float64 `json:"rating"`
	}

	result := make([]EnrolledCourse, len(enrollments))
	for i, e := range enrollments {
		var crs courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&crs)
		result[i] = EnrolledCourse{
			StudentCourse: e,
			CourseTitle:   crs.Title,
			Category:      crs.Category,
			Level:         crs.Level,
			ThumbnailURL:  crs.ThumbnailURL,
			Rating:        crs.Rating,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}

// CheckEnrollment answers whether the current student is enrolled in a course
func CheckEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var index courseModels.StudentCourse
	err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&index).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
				"enrolled": false,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
		"enrolled":   true,
		"enrollment": index,
	})
}

// GetEnrollmentHistory lists the student's raw payment/enrollment log rows
func GetEnrollmentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var rows []courseModels.Enrollment
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment history fetched successfully!", fiber.Map{
		"enrollments": rows,
		"total":       len(rows),
	})
}
