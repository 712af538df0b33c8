package controllers

import (
	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"
	courseValidator "coursehub/validators/course"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupFacultyApp(t *testing.T) (*fiber.App, *gorm.DB, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &courseModels.Course{}, &courseModels.Video{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	prev := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = prev })

	faculty := &models.User{Name: "Teach", Email: "f@test.local", Role: models.RoleFaculty, FacultyStatus: models.FacultyApproved}
	if err := db.Create(faculty).Error; err != nil {
		t.Fatalf("failed to create faculty: %v", err)
	}

	app := fiber.New()
	asFaculty := func(c *fiber.Ctx) error {
		c.Locals("userId", faculty.ID)
		return c.Next()
	}
	app.Post("/faculty/course", asFaculty, courseValidator.CreateCourse(), FacultyCreateCourse)
	app.Put("/faculty/course/:courseId", asFaculty, courseValidator.CourseID(), courseValidator.UpdateCourse(), FacultyUpdateCourse)
	app.Post("/faculty/course/:courseId/video", asFaculty, courseValidator.CourseID(), courseValidator.AddVideo(), FacultyAddVideo)
	app.Put("/faculty/course/:courseId/video/:videoId", asFaculty, courseValidator.CourseID(), courseValidator.VideoID(), courseValidator.UpdateVideo(), FacultyUpdateVideo)

	return app, db, faculty
}

func TestFacultyCreateCourseStartsPending(t *testing.T) {
	app, db, faculty := setupFacultyApp(t)

	resp := doJSON(t, app, "POST", "/faculty/course", fiber.Map{
		"title":    "Go Basics",
		"category": "programming",
		"price":    49.99,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	var crs courseModels.Course
	if err := db.Where("faculty_id = ?", faculty.ID).First(&crs).Error; err != nil {
		t.Fatalf("course not created: %v", err)
	}
	if crs.Status != courseModels.StatusPending {
		t.Errorf("new course status = %q, want PENDING", crs.Status)
	}
}

// Editing a rejected course clears the rejection and re-enters review, even
// when the course had been approved before being taken down.
func TestFacultyEditRejectedCourseRePends(t *testing.T) {
	app, db, faculty := setupFacultyApp(t)

	wasLive := time.Now().Add(-48 * time.Hour)
	crs := courseModels.Course{
		FacultyID:       faculty.ID,
		Title:           "Go Basics",
		Status:          courseModels.StatusRejected,
		RejectionReason: "too short",
		ApprovedAt:      &wasLive,
	}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	resp := doJSON(t, app, "PUT", "/faculty/course/1", fiber.Map{"title": "Go Basics, Extended"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}

	var got courseModels.Course
	if err := db.First(&got, crs.ID).Error; err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	if got.Status != courseModels.StatusPending {
		t.Errorf("status after edit = %q, want PENDING", got.Status)
	}
	if got.RejectionReason != "" {
		t.Errorf("rejection reason = %q, want cleared", got.RejectionReason)
	}
	if got.Title != "Go Basics, Extended" {
		t.Errorf("title = %q, edit not applied", got.Title)
	}
}

// Published courses (approved or legacy) are locked against edits.
func TestFacultyCannotEditPublishedCourse(t *testing.T) {
	app, db, faculty := setupFacultyApp(t)

	for i, status := range []string{courseModels.StatusApproved, "ACTIVE"} {
		crs := courseModels.Course{FacultyID: faculty.ID, Title: "Published", Status: status}
		if err := db.Create(&crs).Error; err != nil {
			t.Fatalf("failed to seed course: %v", err)
		}

		path := "/faculty/course/" + string(rune('1'+i))
		resp := doJSON(t, app, "PUT", path, fiber.Map{"title": "Sneaky Edit"})
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("edit of %q course status = %d, want 403", status, resp.StatusCode)
		}
	}
}

// New videos start pending even under an already approved course.
func TestFacultyAddVideoStartsPending(t *testing.T) {
	app, db, faculty := setupFacultyApp(t)

	crs := courseModels.Course{FacultyID: faculty.ID, Title: "Go Basics", Status: courseModels.StatusApproved}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}

	resp := doJSON(t, app, "POST", "/faculty/course/1/video", fiber.Map{
		"title":     "Intro Lecture",
		"video_url": "/uploads/intro.mp4",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add video status = %d, want 201", resp.StatusCode)
	}

	var video courseModels.Video
	if err := db.Where("course_id = ?", crs.ID).First(&video).Error; err != nil {
		t.Fatalf("video not created: %v", err)
	}
	if video.Status != courseModels.StatusPending {
		t.Errorf("new video status = %q, want PENDING", video.Status)
	}
	if video.OrderIndex < 1 {
		t.Errorf("order index = %d, want assigned position", video.OrderIndex)
	}
}

// Editing a rejected video clears the rejection and re-enters review;
// an approved video is locked.
func TestFacultyUpdateVideo(t *testing.T) {
	app, db, faculty := setupFacultyApp(t)

	crs := courseModels.Course{FacultyID: faculty.ID, Title: "Go Basics", Status: courseModels.StatusApproved}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	rejected := courseModels.Video{CourseID: crs.ID, Title: "Old Take", Status: courseModels.StatusRejected, RejectionReason: "bad audio"}
	approved := courseModels.Video{CourseID: crs.ID, Title: "Live One", Status: courseModels.StatusApproved}
	if err := db.Create(&rejected).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	if err := db.Create(&approved).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}

	resp := doJSON(t, app, "PUT", "/faculty/course/1/video/1", fiber.Map{"title": "New Take"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}

	var got courseModels.Video
	if err := db.First(&got, rejected.ID).Error; err != nil {
		t.Fatalf("failed to reload video: %v", err)
	}
	if got.Status != courseModels.StatusPending {
		t.Errorf("status after edit = %q, want PENDING", got.Status)
	}
	if got.RejectionReason != "" {
		t.Errorf("rejection reason = %q, want cleared", got.RejectionReason)
	}
	if got.Title != "New Take" {
		t.Errorf("title = %q, edit not applied", got.Title)
	}

	resp = doJSON(t, app, "PUT", "/faculty/course/1/video/2", fiber.Map{"title": "Sneaky Edit"})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("edit of approved video status = %d, want 403", resp.StatusCode)
	}
}
