package paymentRoutes

import (
	paymentControllers "coursehub/controllers/payment"
	"coursehub/middleware"
	paymentValidators "coursehub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the gateway checkout and callback routes.
// The callback endpoints are hit by the gateway itself, not by a logged
// in user, so they carry no JWT middleware.
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payment")

	paymentGroup.Post("/initiate", middleware.JWTMiddleware, paymentValidators.InitiatePayment(), paymentControllers.InitiatePayment)
	paymentGroup.Post("/success", paymentControllers.PaymentSuccess)
	paymentGroup.Post("/fail", paymentControllers.PaymentFail)
	paymentGroup.Post("/cancel", paymentControllers.PaymentCancel)
	paymentGroup.Post("/ipn", paymentControllers.PaymentIPN)
}
