package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog, student enrollment and
// faculty authoring routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog: approved courses only
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId/details", validators.CourseID(), controllers.GetCourseDetails)

	// Student routes
	studentGroup := app.Group("/student", middleware.JWTMiddleware)
	studentGroup.Get("/courses", controllers.GetMyCourses)
	studentGroup.Get("/course/:courseId/enrolled", validators.CourseID(), controllers.CheckEnrollment)
	studentGroup.Get("/enrollments", controllers.GetEnrollmentHistory)
	studentGroup.Post("/quiz/:quizId/attempt", validators.QuizID(), validators.QuizAttempt(), controllers.SubmitQuizAttempt)
	studentGroup.Get("/quiz/:quizId/results", validators.QuizID(), controllers.GetQuizResults)
	studentGroup.Post("/exam/:examId/submit", validators.ExamID(), validators.ExamAnswer(), controllers.SubmitWrittenExam)
	studentGroup.Get("/exam/submissions", controllers.GetMyExamSubmissions)

	// Faculty routes: approved faculty accounts only
	facultyGroup := app.Group("/faculty", middleware.JWTMiddleware, middleware.RequireApprovedFaculty())
	facultyGroup.Post("/course", validators.CreateCourse(), controllers.FacultyCreateCourse)
	facultyGroup.Put("/course/:courseId", validators.CourseID(), validators.UpdateCourse(), controllers.FacultyUpdateCourse)
	facultyGroup.Get("/courses", controllers.FacultyListCourses)
	facultyGroup.Post("/course/:courseId/video", validators.CourseID(), validators.AddVideo(), controllers.FacultyAddVideo)
	facultyGroup.Put("/course/:courseId/video/:videoId", validators.CourseID(), validators.VideoID(), validators.UpdateVideo(), controllers.FacultyUpdateVideo)
	facultyGroup.Delete("/course/:courseId/video/:videoId", validators.CourseID(), validators.VideoID(), controllers.FacultyDeleteVideo)
	facultyGroup.Post("/course/:courseId/quiz", validators.CourseID(), validators.CreateQuiz(), controllers.FacultyCreateQuiz)
	facultyGroup.Post("/course/:courseId/exam", validators.CourseID(), validators.CreateExam(), controllers.FacultyCreateExam)
	facultyGroup.Put("/submission/:submissionId/grade", validators.SubmissionID(), validators.GradeSubmission(), controllers.FacultyGradeSubmission)
	facultyGroup.Post("/media/upload", controllers.UploadMedia)
	facultyGroup.Get("/dashboard", controllers.FacultyDashboard)
}
