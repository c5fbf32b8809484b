package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// SendConnectionRequest creates a connection request from the authenticated
// user to another user with status interested or ignored. The unique index on
// the pair key makes the insert the duplicate check: no other request may
// exist between the two users in either direction, whatever its status.
func SendConnectionRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	status := models.ConnectionStatus(strings.ToLower(c.Params("status")))
	if !status.IsSendStatus() {
		return lib.HandleError(c, lib.ValidationError("Invalid status"))
	}

	toUserID, err := primitive.ObjectIDFromHex(c.Params("toUserId"))
	if err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid user ID format"))
	}

	// Validar que no se envíe solicitud a uno mismo
	if user.Id == toUserID {
		return lib.HandleError(c, lib.ValidationError("You can't send a connection request to yourself"))
	}

	usersCollection := lib.DB.Collection("users")
	var toUser models.User
	err = usersCollection.FindOne(c.Context(), bson.M{"_id": toUserID}).Decode(&toUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return lib.HandleError(c, lib.NotFoundError("User not found"))
		}
		log.Printf("Error finding target user: %v", err)
		return lib.HandleError(c, err)
	}

	now := time.Now()
	newRequest := models.ConnectionRequest{
		Id:         primitive.NewObjectID(),
		FromUserId: user.Id,
		ToUserId:   toUserID,
		PairKey:    models.PairKeyFor(user.Id, toUserID),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	requestsCollection := lib.DB.Collection("connection_requests")
	_, err = requestsCollection.InsertOne(c.Context(), newRequest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return lib.HandleError(c, lib.ConflictError("Connection request already exists"))
		}
		log.Printf("Error creating connection request: %v", err)
		return lib.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%s is %s in %s", user.FirstName, status, toUser.FirstName),
		"data":    newRequest,
	})
}

// ReviewConnectionRequest lets the recipient of a pending request accept or
// reject it. The lookup filter folds authorization and the state guard into a
// single atomic update: only the recipient can match, only a request still in
// interested can match, and once resolved a request can never match again.
func ReviewConnectionRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	status := models.ConnectionStatus(strings.ToLower(c.Params("status")))
	if !status.IsReviewStatus() {
		return lib.HandleError(c, lib.ValidationError("Status not allowed"))
	}

	requestID, err := primitive.ObjectIDFromHex(c.Params("requestId"))
	if err != nil {
		return lib.HandleError(c, lib.ValidationError("Invalid request ID format"))
	}

	requestsCollection := lib.DB.Collection("connection_requests")
	filter := bson.M{
		"_id":      requestID,
		"toUserId": user.Id,
		"status":   models.StatusInterested,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}

	var updatedRequest models.ConnectionRequest
	err = requestsCollection.FindOneAndUpdate(
		c.Context(),
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updatedRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return lib.HandleError(c, lib.NotFoundError("Connection request not found"))
		}
		log.Printf("Error reviewing connection request: %v", err)
		return lib.HandleError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Connection request " + string(status),
		"data":    updatedRequest,
	})
}
