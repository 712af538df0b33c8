package statsRoutes

import (
	statsControllers "coursehub/controllers/stats"

	"github.com/gofiber/fiber/v2"
)

// SetupStatsRoutes sets up the public platform counters endpoint
func SetupStatsRoutes(app *fiber.App) {
	app.Get("/api/stats", statsControllers.GetPlatformStats)
}
