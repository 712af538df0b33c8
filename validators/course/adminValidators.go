package courseValidator

import (
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ReviewBucket validates the :bucket route parameter for review listings
func ReviewBucket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bucket := strings.ToLower(strings.TrimSpace(c.Params("bucket")))
		if !courseModels.ValidReviewBucket(bucket) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"bucket": "Bucket must be pending, approved or rejected!",
			})
		}
		c.Locals("reviewBucket", bucket)
		return c.Next()
	}
}

// RejectReason requires a non-blank reason before a rejection is recorded
func RejectReason() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reason := strings.TrimSpace(reqData.Reason)
		if reason == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"reason": "Rejection reason is required!",
			})
		}

		c.Locals("rejectionReason", reason)
		return c.Next()
	}
}

// AdminList validator middleware for review listing pagination
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// UserList validator middleware for the admin user listing
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int    `json:"page"`
			Limit *int    `json:"limit"`
			Role  *string `json:"role"`
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

		if reqData.Role != nil {
			role := strings.ToUpper(strings.TrimSpace(*reqData.Role))
			if role != models.RoleStudent && role != models.RoleFaculty && role != models.RoleAdmin {
				errors["role"] = "Role must be STUDENT, FACULTY or ADMIN!"
			} else {
				reqData.Role = &role
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

// FacultyID parses and validates the :facultyId route parameter
func FacultyID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("facultyId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"facultyId": "Faculty id must be a positive integer!",
			})
		}
		c.Locals("facultyID", id)
		return c.Next()
	}
}

// FacultyStatus validates the approval decision for a faculty account
func FacultyStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		status := strings.ToUpper(strings.TrimSpace(reqData.Status))
		if status != models.FacultyApproved && status != models.FacultyRejected {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be APPROVED or REJECTED!",
			})
		}

		c.Locals("facultyStatus", status)
		return c.Next()
	}
}
