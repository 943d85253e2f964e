package controllers

import (
	"admission/database"
	"admission/middleware"
	"admission/models"
	"admission/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Subscribe registers a deadline reminder subscription for an email address
func Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscription").(*struct {
		Email      string `json:"email"`
		ProgramID  uint   `json:"program_id"`
		DaysBefore int    `json:"days_before"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var program models.Program
	if err := database.Database.Db.Where("id = ?", reqData.ProgramID).First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	// One subscription per (email, program, type); re-subscribing updates it
	var subscription models.EmailNotification
	err := database.Database.Db.
		Where("email = ? AND program_id = ? AND notification_type = ?", reqData.Email, reqData.ProgramID, "Deadline Reminder").
		First(&subscription).Error

	if err == gorm.ErrRecordNotFound {
		subscription = models.EmailNotification{
			Email:            reqData.Email,
			ProgramID:        reqData.ProgramID,
			NotificationType: "Deadline Reminder",
			DaysBefore:       reqData.DaysBefore,
			IsActive:         true,
		}
		if err := database.Database.Db.Create(&subscription).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subscription!", nil)
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check subscription!", nil)
	} else {
		subscription.DaysBefore = reqData.DaysBefore
		subscription.IsActive = true
		if err := database.Database.Db.Save(&subscription).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subscription!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribed to deadline reminders!", fiber.Map{
		"subscription": subscription,
		"program_name": program.ProgramName,
	})
}

// Unsubscribe deactivates reminder subscriptions for an email address,
// optionally scoped to one program
func Unsubscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUnsubscribe").(*struct {
		Email     string `json:"email"`
		ProgramID uint   `json:"program_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.EmailNotification{}).Where("email = ?", reqData.Email)
	if reqData.ProgramID > 0 {
		db = db.Where("program_id = ?", reqData.ProgramID)
	}

	result := db.Update("is_active", false)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unsubscribe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unsubscribed from deadline reminders!", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// RunReminders triggers the reminder check on demand (admin only)
func RunReminders(c *fiber.Ctx) error {
	sent := utils.CheckAndSendReminders()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminder check completed!", fiber.Map{
		"sent": sent,
	})
}
