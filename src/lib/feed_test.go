package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Match/src/models"
)

func TestFeedExclusions_AlwaysHidesViewer(t *testing.T) {
	viewer := primitive.NewObjectID()

	hidden := FeedExclusions(viewer, nil)

	assert.Equal(t, []primitive.ObjectID{viewer}, hidden)
}

func TestFeedExclusions_HidesBothEndpointsAnyStatus(t *testing.T) {
	viewer := primitive.NewObjectID()
	other1 := primitive.NewObjectID()
	other2 := primitive.NewObjectID()

	requests := []models.ConnectionRequest{
		{FromUserId: viewer, ToUserId: other1, Status: models.StatusIgnored},
		{FromUserId: other2, ToUserId: viewer, Status: models.StatusRejected},
	}

	hidden := FeedExclusions(viewer, requests)

	assert.Len(t, hidden, 3)
	assert.Contains(t, hidden, viewer)
	assert.Contains(t, hidden, other1)
	assert.Contains(t, hidden, other2)
}

func TestFeedExclusions_Deduplicates(t *testing.T) {
	viewer := primitive.NewObjectID()
	other := primitive.NewObjectID()

	requests := []models.ConnectionRequest{
		{FromUserId: viewer, ToUserId: other, Status: models.StatusInterested},
		{FromUserId: viewer, ToUserId: other, Status: models.StatusAccepted},
	}

	hidden := FeedExclusions(viewer, requests)

	assert.Len(t, hidden, 2)
}
