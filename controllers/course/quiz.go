package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FacultyCreateQuiz attaches a quiz to an owned course
func FacultyCreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND faculty_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title      string `json:"title"`
		TotalMarks int    `json:"total_marks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		CourseID:   uint(courseID),
		Title:      reqData.Title,
		TotalMarks: reqData.TotalMarks,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// SubmitQuizAttempt records one more attempt for the calling student. All
// attempts are kept; nothing is overwritten.
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	// Quiz submission requires enrollment in the course
	var index courseModels.StudentCourse
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, quiz.CourseID, false).
		First(&index).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	reqData, ok := c.Locals("validatedAttempt").(*struct {
		Score int `json:"score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Score < 0 || reqData.Score > quiz.TotalMarks {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Score out of range!", nil)
	}

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("student_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		StudentID:     userID,
		QuizID:        uint(quizID),
		CourseID:      quiz.CourseID,
		Score:         reqData.Score,
		MaxScore:      quiz.TotalMarks,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt recorded successfully!", attempt)
}

// GetQuizResults returns the student's attempts for a quiz with best and
// average scores computed by scanning all attempts
func GetQuizResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("student_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).
		Order("attempt_number asc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	best := 0
	sum := 0
	for _, a := range attempts {
		if a.Score > best {
			best = a.Score
		}
		sum += a.Score
	}

	average := 0.0
	if len(attempts) > 0 {
		average = float64(sum) / float64(len(attempts))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", fiber.Map{
		"attempts":      attempts,
		"total":         len(attempts),
		"best_score":    best,
		"average_score": average,
	})
}

// FacultyCreateExam attaches a written exam to an owned course
func FacultyCreateExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND faculty_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedExam").(*struct {
		Title      string `json:"title"`
		Question   string `json:"question"`
		TotalMarks int    `json:"total_marks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	exam := courseModels.WrittenExam{
		CourseID:   uint(courseID),
		Title:      reqData.Title,
		Question:   reqData.Question,
		TotalMarks: reqData.TotalMarks,
	}

	if err := database.Database.Db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam created successfully!", exam)
}

// SubmitWrittenExam records a student's answer for later grading
func SubmitWrittenExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID := c.Locals("examID").(int)

	var exam courseModels.WrittenExam
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", examID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	var index courseModels.StudentCourse
	if err := database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, exam.CourseID, false).
		First(&index).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	reqData, ok := c.Locals("validatedExamAnswer").(*struct {
		AnswerText string `json:"answer_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission := courseModels.WrittenExamSubmission{
		StudentID:   userID,
		ExamID:      uint(examID),
		CourseID:    exam.CourseID,
		AnswerText:  reqData.AnswerText,
		SubmittedAt: time.Now(),
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam submitted successfully!", submission)
}

// FacultyGradeSubmission assigns marks to a written submission. A submission
// can be graded exactly once; repeated grading is rejected.
func FacultyGradeSubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := c.Locals("submissionID").(int)

	var submission courseModels.WrittenExamSubmission
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	// Only the course owner may grade
	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND faculty_id = ? AND is_deleted = ?", submission.CourseID, userID, false).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not the owner of this course!", nil)
	}

	if submission.Graded {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission already graded!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Marks int `json:"marks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var exam courseModels.WrittenExam
	if err := database.Database.Db.Where("id = ?", submission.ExamID).First(&exam).Error; err == nil {
		if reqData.Marks < 0 || reqData.Marks > exam.TotalMarks {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Marks out of range!", nil)
		}
	}

	submission.Marks = reqData.Marks
	submission.Graded = true

	if err := database.Database.Db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}

// GetMyExamSubmissions lists the student's written submissions with marks
func GetMyExamSubmissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var submissions []courseModels.WrittenExamSubmission
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": submissions,
		"total":       len(submissions),
	})
}
