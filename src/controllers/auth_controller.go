package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// Signup handles user registration: validates input, hashes the password,
// creates the user and sets the auth token cookie
func Signup(c *fiber.Ctx) error {

	var userData struct {
		FirstName string        `json:"firstName"`
		LastName  string        `json:"lastName"`
		Email     string        `json:"email"`
		Password  string        `json:"password"`
		Age       int           `json:"age"`
		Gender    models.Gender `json:"gender"`
		PhotoUrl  string        `json:"photoUrl"`
		About     string        `json:"about"`
		Skills    []string      `json:"skills"`
	}

	if err := c.BodyParser(&userData); err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid request body"))
	}

	now := time.Now()
	newUser := models.User{
		FirstName: userData.FirstName,
		LastName:  userData.LastName,
		Email:     strings.ToLower(userData.Email),
		Age:       userData.Age,
		Gender:    userData.Gender,
		PhotoUrl:  userData.PhotoUrl,
		About:     userData.About,
		Skills:    userData.Skills,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lib.ValidateSignUp(&newUser, userData.Password); err != nil {
		return lib.HandleError(c, err)
	}

	hashedPassword, err := lib.HashPassword(userData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return lib.HandleError(c, err)
	}
	newUser.Password = hashedPassword

	usersCollection := lib.DB.Collection("users")
	result, err := usersCollection.InsertOne(c.Context(), newUser)
	if err != nil {
		// El índice único sobre email convierte el duplicado en un error de clave
		if mongo.IsDuplicateKeyError(err) {
			return lib.HandleError(c, lib.ConflictError("Email already exists"))
		}
		log.Printf("Error creating user: %v", err)
		return lib.HandleError(c, err)
	}
	newUser.Id = result.InsertedID.(primitive.ObjectID)

	token, err := lib.GenerateJWT(newUser.Id)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return lib.HandleError(c, err)
	}

	c.Cookie(lib.TokenCookie(token))

	lib.SendWelcomeEmail(newUser.Email, newUser.FirstName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"data":    newUser.Safe(),
	})
}

// Login authenticates a user by email and password and sets the token cookie
func Login(c *fiber.Ctx) error {

	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&loginData); err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid request body"))
	}

	if loginData.Email == "" || loginData.Password == "" {
		return lib.HandleError(c, lib.ValidationError("Email and password are required"))
	}

	usersCollection := lib.DB.Collection("users")
	var user models.User
	err := usersCollection.FindOne(c.Context(), bson.M{"email": strings.ToLower(loginData.Email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return lib.HandleError(c, lib.AuthError("Invalid credentials"))
		}
		log.Printf("Error finding user: %v", err)
		return lib.HandleError(c, err)
	}

	if !lib.CheckPasswordHash(loginData.Password, user.Password) {
		return lib.HandleError(c, lib.AuthError("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(user.Id)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return lib.HandleError(c, err)
	}

	c.Cookie(lib.TokenCookie(token))

	user.Password = ""

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data":    user,
	})
}

// Logout clears the authentication cookie
func Logout(c *fiber.Ctx) error {
	c.Cookie(lib.ExpiredTokenCookie())
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Logout successful"))
}
