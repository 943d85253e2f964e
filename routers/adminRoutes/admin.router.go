package adminRoutes

import (
	adminControllers "admission/controllers/admin"
	notificationControllers "admission/controllers/notification"
	"admission/middleware"
	validators "admission/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin data-loading routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin")

	group.Post("/login", validators.Login(), adminControllers.Login)

	group.Post("/programs", middleware.JWTMiddleware, validators.CreateProgram(), adminControllers.CreateProgram)
	group.Post("/seed-dates", middleware.JWTMiddleware, validators.SeedDates(), adminControllers.SeedDates)
	group.Post("/send-reminders", middleware.JWTMiddleware, notificationControllers.RunReminders)
}
