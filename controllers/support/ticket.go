package supportControllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateSupportTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Get validated data
	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		CourseID    *uint   `json:"course_id"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:      userId,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      "open",
		Priority:    "medium",
		Category:    "general",
	}

	if reqData.CourseID != nil && *reqData.CourseID > 0 {
		var crs courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.CourseID, false).First(&crs).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referenced course not found!", nil)
		}
		ticket.CourseID = reqData.CourseID
	}
	if reqData.Priority != nil {
		ticket.Priority = strings.ToLower(*reqData.Priority)
	}
	if reqData.Category != nil {
		ticket.Category = strings.ToLower(*reqData.Category)
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket)
}

func TicketList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})

	// Pagination setup
	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ? AND is_deleted = false", userId)
	if ok && reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", strings.ToLower(*reqData.Status))
	}

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func AdminTicketList(c *fiber.Ctx) error {
	// Check if user is admin
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, models.RoleAdmin).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access denied!", nil)
	}

	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Status   *string `query:"status"`
		Priority *string `query:"priority"`
		Category *string `query:"category"`
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

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = false")

	// Apply filters
	if ok && reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", strings.ToLower(*reqData.Status))
	}
	if ok && reqData.Priority != nil && *reqData.Priority != "" {
		db = db.Where("priority = ?", strings.ToLower(*reqData.Priority))
	}
	if ok && reqData.Category != nil && *reqData.Category != "" {
		db = db.Where("category = ?", strings.ToLower(*reqData.Category))
	}

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// AdminReplyTicket stores the admin reply and moves the ticket along
func AdminReplyTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, models.RoleAdmin).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access denied!", nil)
	}

	reqData, ok := c.Locals("validatedAdminReply").(*struct {
		TicketID uint   `json:"ticketId"`
		Message  string `json:"message"`
		Resolve  bool   `json:"resolve"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.TicketID).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	ticket.AdminReply = reqData.Message
	if reqData.Resolve {
		ticket.Status = "resolved"
	} else {
		ticket.Status = "in_progress"
	}

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket updated successfully!", ticket)
}
