package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Match/src/controllers"
	"github.com/theleywin/Backend-Dev-Match/src/middleware"
)

// RequestRoutes sets up routes for sending and reviewing connection requests
func RequestRoutes(app *fiber.App) {
	request := app.Group("/request", middleware.ProtectRoute)

	request.Post("/send/:status/:toUserId", controllers.SendConnectionRequest)
	request.Post("/review/:status/:requestId", controllers.ReviewConnectionRequest)
}
