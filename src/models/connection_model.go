package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConnectionRequest struct {
	Id         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FromUserId primitive.ObjectID `json:"fromUserId" bson:"fromUserId"`
	ToUserId   primitive.ObjectID `json:"toUserId" bson:"toUserId"`
	// PairKey identifies the unordered user pair. It carries a unique index so
	// that at most one request can ever exist between two users, regardless of
	// direction or status.
	PairKey   string           `json:"-" bson:"pairKey"`
	Status    ConnectionStatus `json:"status" bson:"status"` // interested, ignored, accepted, rejected
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type ConnectionStatus string

const (
	StatusInterested ConnectionStatus = "interested"
	StatusIgnored    ConnectionStatus = "ignored"
	StatusAccepted   ConnectionStatus = "accepted"
	StatusRejected   ConnectionStatus = "rejected"
)

// IsSendStatus reports whether s is a status a sender may create a request with.
func (s ConnectionStatus) IsSendStatus() bool {
	return s == StatusInterested || s == StatusIgnored
}

// IsReviewStatus reports whether s is a status a recipient may resolve a
// pending request to. Accepted and rejected are terminal.
func (s ConnectionStatus) IsReviewStatus() bool {
	return s == StatusAccepted || s == StatusRejected
}

// PairKeyFor builds the canonical key for the unordered pair {a, b}. Both
// directions of the same pair produce the same key.
func PairKeyFor(a, b primitive.ObjectID) string {
	x, y := a.Hex(), b.Hex()
	if strings.Compare(x, y) > 0 {
		x, y = y, x
	}
	return x + ":" + y
}
