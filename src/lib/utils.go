package lib

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Returns a map with a message key for API responses
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// TokenCookieName is the cookie the auth middleware reads the JWT from.
const TokenCookieName = "token"

// GenerateJWT generates a signed token for the given user ID, valid for the
// configured TTL. Signup and login both use this single policy.
func GenerateJWT(userID primitive.ObjectID) (string, error) {
	cfg := GetConfig()

	claims := jwt.MapClaims{
		"userId": userID.Hex(),
		"exp":    time.Now().Add(time.Duration(cfg.JWT.TTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(cfg.JWT.Secret))
}

// VerifyJWT verifies and decodes a token, returning the user ID it carries.
func VerifyJWT(tokenString string) (primitive.ObjectID, error) {
	cfg := GetConfig()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, AuthError("Invalid signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})

	if err != nil {
		return primitive.NilObjectID, AuthError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, AuthError("Invalid token")
	}

	userID, ok := claims["userId"].(string)
	if !ok {
		return primitive.NilObjectID, AuthError("Invalid token")
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, AuthError("Invalid token")
	}

	return objectID, nil
}

// TokenCookie builds the auth cookie set at signup and login. One policy for
// both call sites: httpOnly, secure, SameSite=None, lifetime equal to the JWT TTL.
func TokenCookie(token string) *fiber.Cookie {
	cfg := GetConfig()

	return &fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(cfg.JWT.TTLHours) * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	}
}

// ExpiredTokenCookie builds the cookie that logs a client out.
func ExpiredTokenCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	}
}
