package userValidator

import (
	"coursehub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var mobilePattern = regexp.MustCompile(`^\d{10,15}$`)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Mobile       string `json:"mobile"`
			Bio          string `json:"bio"`
			Expertise    string `json:"expertise"`
			ProfileImage string `json:"profile_image"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Mobile != "" && !mobilePattern.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
