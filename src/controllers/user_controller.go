package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/Backend-Dev-Match/src/lib"
	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// safeUserProjection limits user lookups to the fields other users may see.
var safeUserProjection = bson.M{
	"firstName": 1,
	"lastName":  1,
	"age":       1,
	"gender":    1,
	"photoUrl":  1,
	"about":     1,
	"skills":    1,
}

// ReceivedRequestResponse pairs a pending request ID with the sender's safe
// profile, so the client can accept or reject it later.
type ReceivedRequestResponse struct {
	RequestId primitive.ObjectID `json:"requestId"`
	User      models.SafeUser    `json:"user"`
}

// GetReceivedRequests returns all pending connection requests sent to the
// authenticated user, newest first
func GetReceivedRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	requestsCollection := lib.DB.Collection("connection_requests")
	filter := bson.M{
		"toUserId": user.Id,
		"status":   models.StatusInterested,
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := requestsCollection.Find(c.Context(), filter, opts)
	if err != nil {
		log.Printf("Error finding connection requests: %v", err)
		return lib.HandleError(c, err)
	}
	defer cursor.Close(c.Context())

	var requests []models.ConnectionRequest
	if err := cursor.All(c.Context(), &requests); err != nil {
		log.Printf("Error decoding connection requests: %v", err)
		return lib.HandleError(c, err)
	}

	// Popular datos de cada remitente
	usersCollection := lib.DB.Collection("users")
	response := make([]ReceivedRequestResponse, 0, len(requests))
	for _, req := range requests {
		var sender models.SafeUser
		err := usersCollection.FindOne(
			c.Context(),
			bson.M{"_id": req.FromUserId},
			options.FindOne().SetProjection(safeUserProjection),
		).Decode(&sender)

		if err != nil {
			if err != mongo.ErrNoDocuments {
				log.Printf("Error finding sender user: %v", err)
			}
			continue
		}

		response = append(response, ReceivedRequestResponse{
			RequestId: req.Id,
			User:      sender,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Data fetched successfully",
		"data":    response,
	})
}

// GetConnections returns the safe profiles of every user the authenticated
// user shares an accepted request with, whichever side initiated it
func GetConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	requestsCollection := lib.DB.Collection("connection_requests")
	filter := bson.M{
		"$or": []bson.M{
			{"toUserId": user.Id, "status": models.StatusAccepted},
			{"fromUserId": user.Id, "status": models.StatusAccepted},
		},
	}

	cursor, err := requestsCollection.Find(c.Context(), filter)
	if err != nil {
		log.Printf("Error finding connections: %v", err)
		return lib.HandleError(c, err)
	}
	defer cursor.Close(c.Context())

	var requests []models.ConnectionRequest
	if err := cursor.All(c.Context(), &requests); err != nil {
		log.Printf("Error decoding connections: %v", err)
		return lib.HandleError(c, err)
	}

	// Resolver la otra parte de cada conexión
	otherIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, req := range requests {
		if req.FromUserId == user.Id {
			otherIDs = append(otherIDs, req.ToUserId)
		} else {
			otherIDs = append(otherIDs, req.FromUserId)
		}
	}

	connections := make([]models.SafeUser, 0, len(otherIDs))
	if len(otherIDs) > 0 {
		usersCollection := lib.DB.Collection("users")
		userCursor, err := usersCollection.Find(
			c.Context(),
			bson.M{"_id": bson.M{"$in": otherIDs}},
			options.Find().SetProjection(safeUserProjection),
		)
		if err != nil {
			log.Printf("Error finding connected users: %v", err)
			return lib.HandleError(c, err)
		}
		defer userCursor.Close(c.Context())

		if err := userCursor.All(c.Context(), &connections); err != nil {
			log.Printf("Error decoding connected users: %v", err)
			return lib.HandleError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"data": connections,
	})
}

// GetFeed returns a page of users the authenticated user can still discover:
// everyone except the user itself and anyone on either end of any connection
// request involving the user, whatever its status
func GetFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	page, limit := lib.ParsePagination(c.Query("page"), c.Query("limit"))
	skip := (page - 1) * limit

	requestsCollection := lib.DB.Collection("connection_requests")
	filter := bson.M{
		"$or": []bson.M{
			{"fromUserId": user.Id},
			{"toUserId": user.Id},
		},
	}
	opts := options.Find().SetProjection(bson.M{"fromUserId": 1, "toUserId": 1})

	cursor, err := requestsCollection.Find(c.Context(), filter, opts)
	if err != nil {
		log.Printf("Error finding connection requests: %v", err)
		return lib.HandleError(c, err)
	}
	defer cursor.Close(c.Context())

	var requests []models.ConnectionRequest
	if err := cursor.All(c.Context(), &requests); err != nil {
		log.Printf("Error decoding connection requests: %v", err)
		return lib.HandleError(c, err)
	}

	hidden := lib.FeedExclusions(user.Id, requests)

	usersCollection := lib.DB.Collection("users")
	userCursor, err := usersCollection.Find(
		c.Context(),
		bson.M{"_id": bson.M{"$nin": hidden}},
		options.Find().
			SetProjection(safeUserProjection).
			SetSkip(int64(skip)).
			SetLimit(int64(limit)),
	)
	if err != nil {
		log.Printf("Error finding feed users: %v", err)
		return lib.HandleError(c, err)
	}
	defer userCursor.Close(c.Context())

	feed := make([]models.SafeUser, 0, limit)
	if err := userCursor.All(c.Context(), &feed); err != nil {
		log.Printf("Error decoding feed users: %v", err)
		return lib.HandleError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": feed,
	})
}
