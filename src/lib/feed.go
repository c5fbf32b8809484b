package lib

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Match/src/models"
)

// FeedExclusions builds the set of user IDs hidden from a viewer's feed: the
// viewer itself plus every user on either end of any request involving the
// viewer, regardless of status. Once any request exists between two users,
// neither appears in the other's feed again.
func FeedExclusions(viewerID primitive.ObjectID, requests []models.ConnectionRequest) []primitive.ObjectID {
	seen := map[primitive.ObjectID]bool{viewerID: true}
	hidden := []primitive.ObjectID{viewerID}

	for _, req := range requests {
		for _, id := range []primitive.ObjectID{req.FromUserId, req.ToUserId} {
			if !seen[id] {
				seen[id] = true
				hidden = append(hidden, id)
			}
		}
	}

	return hidden
}
