package statsController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetPlatformStats returns public aggregate counts for the landing page
func GetPlatformStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var students, instructors, courses int64

	if err := db.Model(&models.User{}).
		Where("is_deleted = ? AND role = ?", false, models.RoleStudent).
		Count(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	if err := db.Model(&models.User{}).
		Where("is_deleted = ? AND role = ? AND faculty_status = ?", false, models.RoleFaculty, models.FacultyApproved).
		Count(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	if err := db.Model(&courseModels.Course{}).
		Where("is_deleted = ?", false).
		Where("status IN ?", courseModels.ListingStatuses()).
		Count(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Platform stats fetched successfully!", fiber.Map{
		"students":    students,
		"instructors": instructors,
		"courses":     courses,
	})
}
