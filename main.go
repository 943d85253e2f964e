package main

import (
	"admission/config"
	"admission/database"
	adminRoutes "admission/routers/adminRoutes"
	admissionRoutes "admission/routers/admissionRoutes"
	chatbotRoutes "admission/routers/chatbotRoutes"
	notificationRoutes "admission/routers/notificationRoutes"
	"admission/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	admissionRoutes.SetupAdmissionRoutes(app)
	chatbotRoutes.SetupChatbotRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Daily deadline reminder emails
	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
