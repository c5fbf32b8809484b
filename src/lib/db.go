package lib

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

// ConnectDB connects to MongoDB and sets the global DB variable
func ConnectDB() {
	cfg := GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic("Failed to ping database: " + err.Error())
	}

	DB = client.Database(cfg.Database.Name)

	log.Println("Connected to MongoDB!")
}

// EnsureIndexes creates the unique indexes the handlers rely on: one per email
// so signup cannot race itself, and one per unordered user pair so a duplicate
// connection request is rejected by the store rather than by a check-then-insert.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic("Failed to create email index: " + err.Error())
	}

	_, err = DB.Collection("connection_requests").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pairKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic("Failed to create pairKey index: " + err.Error())
	}
}
