package controllers

import (
	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type quizFixture struct {
	app     *fiber.App
	db      *gorm.DB
	faculty models.User
	student models.User
	course  courseModels.Course
}

func setupQuizApp(t *testing.T) *quizFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
		&courseModels.StudentCourse{},
		&courseModels.Quiz{},
		&courseModels.QuizAttempt{},
		&courseModels.WrittenExam{},
		&courseModels.WrittenExamSubmission{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = prev })

	f := &quizFixture{db: db}
	f.faculty = models.User{Name: "Teach", Email: "f@test.local", Role: models.RoleFaculty, FacultyStatus: models.FacultyApproved}
	f.student = models.User{Name: "Learner", Email: "s@test.local", Role: models.RoleStudent}
	for _, u := range []*models.User{&f.faculty, &f.student} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	f.course = courseModels.Course{FacultyID: f.faculty.ID, Title: "Go Basics", Status: courseModels.StatusApproved}
	if err := db.Create(&f.course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}

	asUser := func(id uint) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals("userId", id)
			return c.Next()
		}
	}

	f.app = fiber.New()
	f.app.Post("/faculty/course/:courseId/quiz", asUser(f.faculty.ID), courseValidator.CourseID(), courseValidator.CreateQuiz(), FacultyCreateQuiz)
	f.app.Post("/faculty/course/:courseId/exam", asUser(f.faculty.ID), courseValidator.CourseID(), courseValidator.CreateExam(), FacultyCreateExam)
	f.app.Put("/faculty/submission/:submissionId/grade", asUser(f.faculty.ID), courseValidator.SubmissionID(), courseValidator.GradeSubmission(), FacultyGradeSubmission)
	f.app.Post("/student/quiz/:quizId/attempt", asUser(f.student.ID), courseValidator.QuizID(), courseValidator.QuizAttempt(), SubmitQuizAttempt)
	f.app.Get("/student/quiz/:quizId/results", asUser(f.student.ID), courseValidator.QuizID(), GetQuizResults)
	f.app.Post("/student/exam/:examId/submit", asUser(f.student.ID), courseValidator.ExamID(), courseValidator.ExamAnswer(), SubmitWrittenExam)

	return f
}

func (f *quizFixture) enrollStudent(t *testing.T) {
	t.Helper()
	if _, err := RecordEnrollment(f.db, f.student.ID, f.course.ID, "TXN-QUIZ", 10); err != nil {
		t.Fatalf("failed to enroll student: %v", err)
	}
}

func TestQuizAttemptRequiresEnrollment(t *testing.T) {
	f := setupQuizApp(t)

	quiz := courseModels.Quiz{CourseID: f.course.ID, Title: "Syntax Quiz", TotalMarks: 10}
	if err := f.db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}

	resp := doJSON(t, f.app, "POST", "/student/quiz/1/attempt", fiber.Map{"score": 7})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("unenrolled attempt status = %d, want 403", resp.StatusCode)
	}
}

// Every attempt is kept; attempt numbers count up and results report best
// and average over the full history.
func TestQuizAttemptHistoryAndResults(t *testing.T) {
	f := setupQuizApp(t)
	f.enrollStudent(t)

	quiz := courseModels.Quiz{CourseID: f.course.ID, Title: "Syntax Quiz", TotalMarks: 10}
	if err := f.db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}

	for _, score := range []int{4, 9, 5} {
		resp := doJSON(t, f.app, "POST", "/student/quiz/1/attempt", fiber.Map{"score": score})
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("attempt with score %d: status = %d, want 201", score, resp.StatusCode)
		}
	}

	// Out-of-range score is refused and not recorded
	if resp := doJSON(t, f.app, "POST", "/student/quiz/1/attempt", fiber.Map{"score": 11}); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("over-max attempt status = %d, want 400", resp.StatusCode)
	}

	resp := doJSON(t, f.app, "GET", "/student/quiz/1/results", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("results status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Total        int                        `json:"total"`
			BestScore    int                        `json:"best_score"`
			AverageScore float64                    `json:"average_score"`
			Attempts     []courseModels.QuizAttempt `json:"attempts"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode results: %v", err)
	}
	if body.Data.Total != 3 {
		t.Errorf("total attempts = %d, want 3", body.Data.Total)
	}
	if body.Data.BestScore != 9 {
		t.Errorf("best score = %d, want 9", body.Data.BestScore)
	}
	if body.Data.AverageScore != 6 {
		t.Errorf("average score = %v, want 6", body.Data.AverageScore)
	}
	for i, a := range body.Data.Attempts {
		if a.AttemptNumber != i+1 {
			t.Errorf("attempt %d has number %d, want %d", i, a.AttemptNumber, i+1)
		}
	}
}

// A written submission is graded exactly once.
func TestWrittenExamGradeOnce(t *testing.T) {
	f := setupQuizApp(t)
	f.enrollStudent(t)

	exam := courseModels.WrittenExam{CourseID: f.course.ID, Title: "Final", Question: "Explain interfaces.", TotalMarks: 20}
	if err := f.db.Create(&exam).Error; err != nil {
		t.Fatalf("failed to create exam: %v", err)
	}

	resp := doJSON(t, f.app, "POST", "/student/exam/1/submit", fiber.Map{"answer_text": "Interfaces describe behavior."})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("submit status = %d, want 201", resp.StatusCode)
	}

	if resp := doJSON(t, f.app, "PUT", "/faculty/submission/1/grade", fiber.Map{"marks": 18}); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("grade status = %d, want 200", resp.StatusCode)
	}

	// Second grading attempt is refused and the stored marks survive
	if resp := doJSON(t, f.app, "PUT", "/faculty/submission/1/grade", fiber.Map{"marks": 2}); resp.StatusCode != fiber.StatusConflict {
		t.Errorf("regrade status = %d, want 409", resp.StatusCode)
	}

	var got courseModels.WrittenExamSubmission
	if err := f.db.First(&got).Error; err != nil {
		t.Fatalf("failed to load submission: %v", err)
	}
	if !got.Graded || got.Marks != 18 {
		t.Errorf("submission = (graded=%v, marks=%d), want (true, 18)", got.Graded, got.Marks)
	}
}

func TestGradeMarksOutOfRange(t *testing.T) {
	f := setupQuizApp(t)
	f.enrollStudent(t)

	exam := courseModels.WrittenExam{CourseID: f.course.ID, Title: "Final", Question: "Explain channels.", TotalMarks: 20}
	if err := f.db.Create(&exam).Error; err != nil {
		t.Fatalf("failed to create exam: %v", err)
	}
	if resp := doJSON(t, f.app, "POST", "/student/exam/1/submit", fiber.Map{"answer_text": "Channels move values."}); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("submit status = %d, want 201", resp.StatusCode)
	}

	if resp := doJSON(t, f.app, "PUT", "/faculty/submission/1/grade", fiber.Map{"marks": 21}); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("over-max grade status = %d, want 400", resp.StatusCode)
	}

	var got courseModels.WrittenExamSubmission
	if err := f.db.First(&got).Error; err != nil {
		t.Fatalf("failed to load submission: %v", err)
	}
	if got.Graded {
		t.Error("submission marked graded by refused grade")
	}
}

func TestFacultyCreateQuizOwnershipCheck(t *testing.T) {
	f := setupQuizApp(t)

	other := models.User{Name: "Other", Email: "o@test.local", Role: models.RoleFaculty, FacultyStatus: models.FacultyApproved}
	if err := f.db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create faculty: %v", err)
	}

	app := fiber.New()
	app.Post("/faculty/course/:courseId/quiz", func(c *fiber.Ctx) error {
		c.Locals("userId", other.ID)
		return c.Next()
	}, courseValidator.CourseID(), courseValidator.CreateQuiz(), FacultyCreateQuiz)

	resp := doJSON(t, app, "POST", "/faculty/course/1/quiz", fiber.Map{"title": "Hijack Quiz", "total_marks": 5})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("non-owner quiz creation status = %d, want 404", resp.StatusCode)
	}
}
