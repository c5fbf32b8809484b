package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// ViewProfile returns the authenticated user's own document
func ViewProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	user.Password = ""
	return c.JSON(fiber.Map{
		"data": user,
	})
}

// EditProfile updates allow-listed profile fields of the authenticated user.
// A patch containing any non-editable key is rejected as a whole.
func EditProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid request body"))
	}

	if err := lib.ValidateEditPatch(patch); err != nil {
		return lib.HandleError(c, err)
	}

	patch["updatedAt"] = time.Now()

	usersCollection := lib.DB.Collection("users")
	var updatedUser models.User
	err := usersCollection.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updatedUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return lib.HandleError(c, lib.NotFoundError("User not found"))
		}
		log.Printf("Error updating profile: %v", err)
		return lib.HandleError(c, err)
	}

	updatedUser.Password = ""

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s, your profile was updated successfully.", updatedUser.FirstName),
		"data":    updatedUser,
	})
}

// ChangePassword replaces the authenticated user's password after verifying
// the old one
func ChangePassword(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var passwordData struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	if err := c.BodyParser(&passwordData); err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid request body"))
	}

	if passwordData.OldPassword == "" || passwordData.NewPassword == "" {
		return lib.HandleError(c, lib.ValidationError("Both old and new passwords are required"))
	}

	if !lib.CheckPasswordHash(passwordData.OldPassword, user.Password) {
		return lib.HandleError(c, lib.AuthError("Old password is incorrect"))
	}

	if err := lib.ValidatePasswordStrength(passwordData.NewPassword); err != nil {
		return lib.HandleError(c, err)
	}

	newHash, err := lib.HashPassword(passwordData.NewPassword)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return lib.HandleError(c, err)
	}

	usersCollection := lib.DB.Collection("users")
	_, err = usersCollection.UpdateOne(
		c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"password": newHash, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Error updating password: %v", err)
		return lib.HandleError(c, err)
	}

	return c.JSON(lib.MessageResponse("Password updated successfully"))
}
