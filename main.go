package main

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/routes"
)

func main() {
	lib.LoadConfig()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Connect to MongoDB and create the unique indexes the handlers rely on
	lib.ConnectDB()
	lib.EnsureIndexes()

	// Register routes
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.RequestRoutes(app)
	routes.UserRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(lib.MessageResponse("ok"))
	})

	port := strconv.Itoa(lib.GetConfig().Server.Port)

	fmt.Println("Server is running on http://localhost:" + port)
	app.Listen(":" + port)
}
