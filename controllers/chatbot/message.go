package controllers

import (
	"admission/chatbot"
	"admission/database"
	"admission/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HandleMessage processes one chatbot message and returns the bot reply
func HandleMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMessage").(*struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sessionID := reqData.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	handler := chatbot.NewHandler(database.Database.Db)
	response := handler.ProcessMessage(reqData.Message, sessionID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message processed successfully!", fiber.Map{
		"response":    response.Message,
		"session_id":  sessionID,
		"suggestions": response.Suggestions,
		"intent":      response.Intent,
	})
}

// GetSession issues a fresh chatbot session ID
func GetSession(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session created successfully!", fiber.Map{
		"session_id": uuid.NewString(),
	})
}
