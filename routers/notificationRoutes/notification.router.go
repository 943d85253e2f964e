package notificationRoutes

import (
	controllers "admission/controllers/notification"
	validators "admission/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the deadline reminder subscription routes
func SetupNotificationRoutes(app *fiber.App) {
	group := app.Group("/notifications")

	group.Post("/subscribe", validators.Subscribe(), controllers.Subscribe)
	group.Post("/unsubscribe", validators.Unsubscribe(), controllers.Unsubscribe)
}
