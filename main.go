package main

import (
	"techverse/config"
	"techverse/database"
	adminRoutes "techverse/routers/adminRoutes"
	authRoutes "techverse/routers/authRoutes"
	courseRoutes "techverse/routers/courseRoutes"
	inquiryRoutes "techverse/routers/inquiryRoutes"
	"techverse/utils"

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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",   // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization",  // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static marketing assets from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	inquiryRoutes.SetupInquiryRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializePaymentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
