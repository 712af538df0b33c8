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

// AdminListUsers lists platform accounts, optionally filtered by role
func AdminListUsers(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page  *int    `json:"page"`
		Limit *int    `json:"limit"`
		Role  *string `json:"role"`
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

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ? AND role != ?", false, models.RoleAdmin)
	if ok && reqData.Role != nil && *reqData.Role != "" {
		db = db.Where("role = ?", *reqData.Role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminListPendingFaculty lists faculty accounts awaiting review
func AdminListPendingFaculty(c *fiber.Ctx) error {
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

	var faculty []models.User
	if err := database.Database.Db.
		Where("is_deleted = ? AND role = ? AND faculty_status = ?", false, models.RoleFaculty, models.FacultyPending).
		Order("created_at desc").
		Find(&faculty).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch faculty list!", nil)
	}

	for i := range faculty {
		faculty[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending faculty fetched successfully!", fiber.Map{
		"faculty": faculty,
		"total":   len(faculty),
	})
}

// AdminSetFacultyStatus approves or rejects a faculty account. This is a
// single-field overwrite; it does not touch courses the faculty already
// created, which stay subject to their own review status.
func AdminSetFacultyStatus(c *fiber.Ctx) error {
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

	facultyID := c.Locals("facultyID").(int)
	newStatus := c.Locals("facultyStatus").(string)

	var faculty models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND role = ?", facultyID, false, models.RoleFaculty).
		First(&faculty).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Faculty account not found!", nil)
	}

	if err := database.Database.Db.Model(&models.User{}).Where("id = ?", faculty.ID).Update("faculty_status", newStatus).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update faculty status!", nil)
	}

	faculty.FacultyStatus = newStatus
	faculty.Password = ""

	go utils.SendFacultyStatusEmail(faculty.Email, faculty.Name, newStatus)

	message := "Faculty account approved!"
	if newStatus == models.FacultyRejected {
		message = "Faculty account rejected!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, faculty)
}

// AdminDeleteFaculty permanently removes a faculty account. Unlike rejection
// this is destructive and cannot be undone.
func AdminDeleteFaculty(c *fiber.Ctx) error {
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

	facultyID := c.Locals("facultyID").(int)

	var faculty models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ?", facultyID, models.RoleFaculty).
		First(&faculty).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Faculty account not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&models.User{}, faculty.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete faculty account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Faculty account deleted permanently!", nil)
}

// AdminDashboardStats gets dashboard statistics
func AdminDashboardStats(c *fiber.Ctx) error {
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

	db := database.Database.Db

	var totalStudents, totalFaculty, pendingFaculty int64
	var totalCourses, pendingCourses, pendingVideos, totalEnrollments int64

	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleStudent).Count(&totalStudents)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleFaculty).Count(&totalFaculty)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ? AND faculty_status = ?", false, models.RoleFaculty, models.FacultyPending).Count(&pendingFaculty)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND status IN ?", false, courseModels.ReviewBucketStatuses(courseModels.StatusPending)).Count(&pendingCourses)
	db.Model(&courseModels.Video{}).Where("is_deleted = ? AND status IN ?", false, courseModels.ReviewBucketStatuses(courseModels.StatusPending)).Count(&pendingVideos)
	db.Model(&courseModels.StudentCourse{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	// Get recent enrollments
	type RecentEnrollment struct {
		StudentName string    `json:"student_name"`
		CourseTitle string    `json:"course_title"`
		Amount      float64   `json:"amount"`
		EnrolledAt  time.Time `json:"enrolled_at"`
	}

	var recentRows []courseModels.StudentCourse
	db.Where("is_deleted = ?", false).Order("created_at desc").Limit(5).Find(&recentRows)

	recent := make([]RecentEnrollment, len(recentRows))
	for i, e := range recentRows {
		var student models.User
		var crs courseModels.Course
		db.Select("name").Where("id = ?", e.StudentID).First(&student)
		db.Select("title").Where("id = ?", e.CourseID).First(&crs)
		recent[i] = RecentEnrollment{
			StudentName: student.Name,
			CourseTitle: crs.Title,
			Amount:      e.PaymentAmount,
			EnrolledAt:  e.EnrolledAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_students":    totalStudents,
			"total_faculty":     totalFaculty,
			"pending_faculty":   pendingFaculty,
			"total_courses":     totalCourses,
			"pending_courses":   pendingCourses,
			"pending_videos":    pendingVideos,
			"total_enrollments": totalEnrollments,
		},
		"recent_enrollments": recent,
	})
}
