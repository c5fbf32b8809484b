package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Match/src/controllers"
	"github.com/theleywin/Backend-Dev-Match/src/middleware"
)

// UserRoutes sets up routes for pending requests, connections and the feed
func UserRoutes(app *fiber.App) {
	user := app.Group("/user", middleware.ProtectRoute)
	user.Get("/request/received", controllers.GetReceivedRequests)
	user.Get("/connections", controllers.GetConnections)

	app.Get("/feed", middleware.ProtectRoute, controllers.GetFeed)
}
