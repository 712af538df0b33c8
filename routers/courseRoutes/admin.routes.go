package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin moderation routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin())

	// Review queues
	adminGroup.Get("/courses/:bucket", validators.ReviewBucket(), validators.AdminList(), controllers.AdminListCoursesForReview)
	adminGroup.Get("/videos/:bucket", validators.ReviewBucket(), validators.AdminList(), controllers.AdminListVideosForReview)

	// Course moderation
	adminGroup.Put("/course/:courseId/approve", validators.CourseID(), controllers.AdminApproveCourse)
	adminGroup.Put("/course/:courseId/reject", validators.CourseID(), validators.RejectReason(), controllers.AdminRejectCourse)

	// Video moderation
	adminGroup.Put("/video/:videoId/approve", validators.VideoID(), controllers.AdminApproveVideo)
	adminGroup.Put("/video/:videoId/reject", validators.VideoID(), validators.RejectReason(), controllers.AdminRejectVideo)

	// User management
	adminGroup.Get("/users", validators.UserList(), controllers.AdminListUsers)
	adminGroup.Get("/faculty/pending", validators.AdminList(), controllers.AdminListPendingFaculty)
	adminGroup.Put("/faculty/:facultyId/status", validators.FacultyID(), validators.FacultyStatus(), controllers.AdminSetFacultyStatus)
	adminGroup.Delete("/faculty/:facultyId", validators.FacultyID(), controllers.AdminDeleteFaculty)

	adminGroup.Get("/dashboard", controllers.AdminDashboardStats)
}
