package chatbotValidator

import (
	"admission/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Message validates an incoming chatbot message
func Message() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message   string `json:"message"`
			SessionID string `json:"session_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No message provided!", nil)
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
