package supportValidators

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowedPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "urgent": true,
}

var allowedTicketStatuses = map[string]bool{
	"open": true, "in_progress": true, "resolved": true, "closed": true,
}

// CreateTicket validator middleware
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			CourseID    *uint   `json:"course_id"`
			Priority    *string `json:"priority"`
			Category    *string `json:"category"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Priority != nil {
			p := strings.ToLower(strings.TrimSpace(*reqData.Priority))
			if !allowedPriorities[p] {
				errors["priority"] = "Priority must be low, medium, high or urgent!"
			} else {
				reqData.Priority = &p
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

// TicketList validator middleware
func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if reqData.Status != nil && !allowedTicketStatuses[*reqData.Status] {
			errors["status"] = "Status must be open, in_progress, resolved or closed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// AdminTicketList validator middleware
func AdminTicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Status   *string `query:"status"`
			Priority *string `query:"priority"`
			Category *string `query:"category"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if reqData.Status != nil && !allowedTicketStatuses[*reqData.Status] {
			errors["status"] = "Status must be open, in_progress, resolved or closed!"
		}

		if reqData.Priority != nil && !allowedPriorities[*reqData.Priority] {
			errors["priority"] = "Priority must be low, medium, high or urgent!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// AdminReply validator middleware
func AdminReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID uint   `json:"ticketId"`
			Message  string `json:"message"`
			Resolve  bool   `json:"resolve"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TicketID == 0 {
			errors["ticketId"] = "Ticket id is required!"
		}

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminReply", reqData)
		return c.Next()
	}
}
