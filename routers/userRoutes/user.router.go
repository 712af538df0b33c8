package userRoutes

import (
	userControllers "coursehub/controllers/userControllers"
	"coursehub/middleware"
	userValidators "coursehub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userControllers.GetProfile)
	userGroup.Put("/profile", userValidators.UpdateProfile(), userControllers.UpdateProfile)
}
