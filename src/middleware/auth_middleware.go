package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// ProtectRoute checks for a valid JWT in the token cookie, loads the user and
// attaches it to the request context
func ProtectRoute(c *fiber.Ctx) error {

	// Obtener token de la cookie
	token := c.Cookies(lib.TokenCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - No token provided"))
	}

	userID, err := lib.VerifyJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - Invalid token"))
	}

	userCollection := lib.DB.Collection("users")
	var user models.User
	err = userCollection.FindOne(c.Context(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized - User not found"))
	}

	c.Locals("user", user)

	return c.Next()
}
