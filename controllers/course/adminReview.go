package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminListCoursesForReview lists courses in a review bucket. The pending
// bucket includes legacy rows (blank or ACTIVE status); the approved and
// rejected buckets match exactly.
func AdminListCoursesForReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	bucket := c.Locals("reviewBucket").(string)

	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var courses []courseModels.Course
	var total int64

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ?", false).
		Where("status IN ?", courseModels.ReviewBucketStatuses(bucket))
	db.Count(&total)

	// Newest first; rows without a creation timestamp end up last
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminListVideosForReview lists videos in a review bucket across all courses
func AdminListVideosForReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	bucket := c.Locals("reviewBucket").(string)

	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var videos []courseModels.Video
	var total int64

	db := database.Database.Db.Model(&courseModels.Video{}).
		Where("is_deleted = ?", false).
		Where("status IN ?", courseModels.ReviewBucketStatuses(bucket))
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	type VideoWithCourse struct {
		courseModels.Video
		CourseTitle string `json:"course_title"`
	}

	result := make([]VideoWithCourse, len(videos))
	for i, v := range videos {
		var crs courseModels.Course
		database.Database.Db.Select("title").Where("id = ?", v.CourseID).First(&crs)
		result[i] = VideoWithCourse{Video: v, CourseTitle: crs.Title}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminApproveCourse approves a course. The write is a plain field set, so
// repeating it after a failed response is safe.
func AdminApproveCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           courseModels.StatusApproved,
		"approved_at":      now,
		"rejected_at":      nil,
		"rejection_reason": "",
	}
	if err := database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", crs.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve course!", nil)
	}

	crs.Status = courseModels.StatusApproved
	crs.ApprovedAt = &now
	crs.RejectedAt = nil
	crs.RejectionReason = ""

	var faculty models.User
	if err := database.Database.Db.Where("id = ?", crs.FacultyID).First(&faculty).Error; err == nil {
		go utils.SendCourseStatusEmail(faculty.Email, faculty.Name, crs.Title, courseModels.StatusApproved, "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course approved successfully!", crs)
}

// AdminRejectCourse rejects a course with a mandatory reason
func AdminRejectCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	reason := c.Locals("rejectionReason").(string)

	var crs courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           courseModels.StatusRejected,
		"rejected_at":      now,
		"rejection_reason": reason,
	}
	if err := database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", crs.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject course!", nil)
	}

	crs.Status = courseModels.StatusRejected
	crs.RejectedAt = &now
	crs.RejectionReason = reason

	var faculty models.User
	if err := database.Database.Db.Where("id = ?", crs.FacultyID).First(&faculty).Error; err == nil {
		go utils.SendCourseStatusEmail(faculty.Email, faculty.Name, crs.Title, courseModels.StatusRejected, reason)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course rejected!", crs)
}

// AdminApproveVideo approves a single video independently of its course
func AdminApproveVideo(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	videoID := c.Locals("videoID").(int)

	var video courseModels.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           courseModels.StatusApproved,
		"approved_at":      now,
		"rejected_at":      nil,
		"rejection_reason": "",
	}
	if err := database.Database.Db.Model(&courseModels.Video{}).Where("id = ?", video.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve video!", nil)
	}

	video.Status = courseModels.StatusApproved
	video.ApprovedAt = &now
	video.RejectedAt = nil
	video.RejectionReason = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video approved successfully!", video)
}

// AdminRejectVideo rejects a single video with a mandatory reason
func AdminRejectVideo(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	videoID := c.Locals("videoID").(int)
	reason := c.Locals("rejectionReason").(string)

	var video courseModels.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           courseModels.StatusRejected,
		"rejected_at":      now,
		"rejection_reason": reason,
	}
	if err := database.Database.Db.Model(&courseModels.Video{}).Where("id = ?", video.ID).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject video!", nil)
	}

	video.Status = courseModels.StatusRejected
	video.RejectedAt = &now
	video.RejectionReason = reason

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video rejected!", video)
}
