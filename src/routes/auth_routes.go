package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Match/src/controllers"
)

// AuthRoutes sets up the public authentication routes
func AuthRoutes(app *fiber.App) {
	app.Post("/signup", controllers.Signup)
	app.Post("/login", controllers.Login)
	app.Post("/logout", controllers.Logout)
}
