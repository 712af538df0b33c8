package paymentValidator

import (
	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// InitiatePayment validator middleware
func InitiatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id" validate:"required,gt=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "A valid course id is required!",
			})
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
