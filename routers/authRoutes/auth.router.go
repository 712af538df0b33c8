package authRoutes

import (
	authControllers "coursehub/controllers/auth"
	"coursehub/middleware"
	authValidators "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authValidators.LoginHistoryList(), authControllers.LoginHistoryList)
	authGroup.Put("/change/login/password", middleware.JWTMiddleware, authValidators.ChangeLoginPassword(), authControllers.ChangeLoginPassword)
}
