package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Match/src/controllers"
	"github.com/theleywin/Backend-Dev-Match/src/middleware"
)

// ProfileRoutes sets up routes for viewing and editing the caller's own profile
func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.ProtectRoute)

	profile.Get("/view", controllers.ViewProfile)
	profile.Patch("/edit", controllers.EditProfile)
	profile.Patch("/password", controllers.ChangePassword)
}
