package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses is the student-facing catalog: approved courses plus legacy
// rows that predate the review workflow.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Category *string `query:"category"`
		Level    *string `query:"level"`
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

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ?", false).
		Where("status IN ?", courseModels.ListingStatuses())

	if ok && reqData.Category != nil && *reqData.Category != "" {
		db = db.Where("category = ?", *reqData.Category)
	}
	if ok && reqData.Level != nil && *reqData.Level != "" {
		db = db.Where("level = ?", *reqData.Level)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
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

// GetCourseDetails returns one publicly visible course with its videos.
// Every video carries a playable flag; a video is playable only when both
// the course and the video itself are approved.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var crs courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		Where("status IN ?", courseModels.ListingStatuses()).
		First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var videos []courseModels.Video
	database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").
		Find(&videos)

	type VideoView struct {
		courseModels.Video
		Playable bool `json:"playable"`
	}

	videoViews := make([]VideoView, len(videos))
	for i, v := range videos {
		videoViews[i] = VideoView{
			Video:    v,
			Playable: courseModels.VideoPlayable(crs.Status, v.Status),
		}
	}

	var quizzes []courseModels.Quiz
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&quizzes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  crs,
		"videos":  videoViews,
		"quizzes": quizzes,
	})
}
