package chatbotRoutes

import (
	controllers "admission/controllers/chatbot"
	validators "admission/validators/chatbot"

	"github.com/gofiber/fiber/v2"
)

// SetupChatbotRoutes sets up the chatbot and Dialogflow webhook routes
func SetupChatbotRoutes(app *fiber.App) {
	chatbotGroup := app.Group("/chatbot")

	chatbotGroup.Post("/message", validators.Message(), controllers.HandleMessage)
	chatbotGroup.Get("/session", controllers.GetSession)

	// Dialogflow calls this directly; it expects a bare fulfillment response
	app.Post("/dialogflow-webhook", controllers.DialogflowWebhook)
}
