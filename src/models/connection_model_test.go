package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestConnectionStatusGuards(t *testing.T) {
	assert.True(t, StatusInterested.IsSendStatus())
	assert.True(t, StatusIgnored.IsSendStatus())
	assert.False(t, StatusAccepted.IsSendStatus())
	assert.False(t, StatusRejected.IsSendStatus())

	assert.True(t, StatusAccepted.IsReviewStatus())
	assert.True(t, StatusRejected.IsReviewStatus())
	assert.False(t, StatusInterested.IsReviewStatus())
	assert.False(t, StatusIgnored.IsReviewStatus())

	// Arbitrary strings never pass either guard
	assert.False(t, ConnectionStatus("pending").IsSendStatus())
	assert.False(t, ConnectionStatus("pending").IsReviewStatus())
	assert.False(t, ConnectionStatus("").IsSendStatus())
}

func TestPairKeyFor_DirectionIndependent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	assert.Equal(t, PairKeyFor(a, b), PairKeyFor(b, a))
	assert.NotEqual(t, PairKeyFor(a, b), PairKeyFor(a, primitive.NewObjectID()))
}
