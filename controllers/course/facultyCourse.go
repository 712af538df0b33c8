package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// FacultyCreateCourse creates a new course owned by the calling faculty.
// Every new course enters the review queue as PENDING.
func FacultyCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Category     string  `json:"category"`
		Level        string  `json:"level"`
		Price        float64 `json:"price"`
		Duration     int64   `json:"duration"`
		ThumbnailURL string  `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	crs := courseModels.Course{
		FacultyID:    userID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		Status:       courseModels.StatusPending,
	}

	if err := database.Database.Db.Create(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course submitted for review!", crs)
}

// FacultyUpdateCourse updates an owned course. Editing is only allowed while
// the course is not publicly visible; a live course cannot change under
// enrolled students. A rejected course becomes editable and re-enters review.
func FacultyUpdateCourse(c *fiber.Ctx) error {
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

	if courseModels.PubliclyVisible(crs.Status) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Published courses cannot be edited!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Category     string  `json:"category"`
		Level        string  `json:"level"`
		Price        *float64 `json:"price"`
		Duration     int64   `json:"duration"`
		ThumbnailURL string  `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		crs.Title = reqData.Title
	}
	if reqData.Description != "" {
		crs.Description = reqData.Description
	}
	if reqData.Category != "" {
		crs.Category = reqData.Category
	}
	if reqData.Level != "" {
		crs.Level = reqData.Level
	}
	if reqData.Price != nil && *reqData.Price >= 0 {
		crs.Price = *reqData.Price
	}
	if reqData.Duration > 0 {
		crs.Duration = reqData.Duration
	}
	if reqData.ThumbnailURL != "" {
		crs.ThumbnailURL = reqData.ThumbnailURL
	}

	// A rejected course re-enters the review queue after edits
	if courseModels.NormalizeForReview(crs.Status) == courseModels.StatusRejected {
		crs.Status = courseModels.StatusPending
		crs.RejectionReason = ""
		crs.RejectedAt = nil
	}

	if err := database.Database.Db.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", crs)
}

// FacultyListCourses lists the calling faculty's own courses with their
// review statuses and rejection reasons
func FacultyListCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("faculty_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// FacultyAddVideo appends a video to an owned course. New videos always
// start PENDING regardless of the course status.
func FacultyAddVideo(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedVideo").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Duration    int64  `json:"duration"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Get the next order index if not provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Video{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	video := courseModels.Video{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
		OrderIndex:  orderIndex,
		Status:      courseModels.StatusPending,
	}

	if err := database.Database.Db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video submitted for review!", video)
}

// FacultyUpdateVideo updates a video on an owned course. Like courses, a
// publicly visible video is locked; a rejected video re-enters review.
func FacultyUpdateVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	videoID := c.Locals("videoID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND faculty_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var video courseModels.Video
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", videoID, courseID, false).
		First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if courseModels.PubliclyVisible(video.Status) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Published videos cannot be edited!", nil)
	}

	reqData, ok := c.Locals("validatedVideoUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Duration    int64  `json:"duration"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		video.Title = reqData.Title
	}
	if reqData.Description != "" {
		video.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		video.VideoURL = reqData.VideoURL
	}
	if reqData.Duration > 0 {
		video.Duration = reqData.Duration
	}
	if reqData.OrderIndex > 0 {
		video.OrderIndex = reqData.OrderIndex
	}

	if courseModels.NormalizeForReview(video.Status) == courseModels.StatusRejected {
		video.Status = courseModels.StatusPending
		video.RejectionReason = ""
		video.RejectedAt = nil
	}

	if err := database.Database.Db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// FacultyDeleteVideo soft deletes a video from an owned course
func FacultyDeleteVideo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	videoID := c.Locals("videoID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND faculty_id = ? AND is_deleted = ?", courseID, userID, false).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var video courseModels.Video
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", videoID, courseID, false).
		First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	video.IsDeleted = true
	if err := database.Database.Db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

// FacultyDashboard aggregates the faculty's courses by review bucket along
// with enrollment and earnings totals
func FacultyDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var totalCourses, pendingCourses, approvedCourses, rejectedCourses int64
	db.Model(&courseModels.Course{}).Where("faculty_id = ? AND is_deleted = ?", userID, false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("faculty_id = ? AND is_deleted = ? AND status IN ?", userID, false, courseModels.ReviewBucketStatuses(courseModels.StatusPending)).Count(&pendingCourses)
	db.Model(&courseModels.Course{}).Where("faculty_id = ? AND is_deleted = ? AND status IN ?", userID, false, courseModels.ReviewBucketStatuses(courseModels.StatusApproved)).Count(&approvedCourses)
	db.Model(&courseModels.Course{}).Where("faculty_id = ? AND is_deleted = ? AND status IN ?", userID, false, courseModels.ReviewBucketStatuses(courseModels.StatusRejected)).Count(&rejectedCourses)

	var courseIDs []uint
	db.Model(&courseModels.Course{}).Where("faculty_id = ? AND is_deleted = ?", userID, false).Pluck("id", &courseIDs)

	var totalStudents int64
	var totalEarnings float64
	if len(courseIDs) > 0 {
		db.Model(&courseModels.StudentCourse{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Count(&totalStudents)
		db.Model(&courseModels.Enrollment{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Select("COALESCE(SUM(amount), 0)").Scan(&totalEarnings)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Faculty dashboard fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_courses":    totalCourses,
			"pending_courses":  pendingCourses,
			"approved_courses": approvedCourses,
			"rejected_courses": rejectedCourses,
			"total_students":   totalStudents,
			"total_earnings":   totalEarnings,
		},
	})
}
