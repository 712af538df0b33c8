package middleware

import (
	"coursehub/database"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireApprovedFaculty returns a middleware that only lets approved faculty
// accounts through. Pending faculty get a "wait for review" message; rejected
// faculty are blocked outright. Approval only gates dashboard access - it
// does not cascade to the visibility of courses the faculty already created.
func RequireApprovedFaculty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.Role != models.RoleFaculty {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Faculty only.", nil)
		}

		switch user.FacultyStatus {
		case models.FacultyApproved:
			return c.Next()
		case models.FacultyRejected:
			return JsonResponse(c, fiber.StatusForbidden, false, "Your faculty account has been rejected.", nil)
		default:
			return JsonResponse(c, fiber.StatusForbidden, false, "Your faculty account is pending admin approval.", nil)
		}
	}
}

// RequireAdmin returns a middleware that only lets admin accounts through
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.Role != models.RoleAdmin {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}

		return c.Next()
	}
}
