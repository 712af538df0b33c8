package supportRoutes

import (
	controller "coursehub/controllers/support"
	"coursehub/middleware"
	validator "coursehub/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support", middleware.JWTMiddleware)

	support.Post("/create", validator.CreateTicket(), controller.CreateSupportTicket)
	support.Get("/list", validator.TicketList(), controller.TicketList)
	support.Get("/admin-list", middleware.RequireAdmin(), validator.AdminTicketList(), controller.AdminTicketList)
	support.Post("/admin-reply", middleware.RequireAdmin(), validator.AdminReply(), controller.AdminReplyTicket)
}
