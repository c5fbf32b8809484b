package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSafe_StripsEmailAndPassword(t *testing.T) {
	user := User{
		Id:        primitive.NewObjectID(),
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
		Password:  "$2a$10$somethinghashed",
		Age:       28,
		Gender:    GenderMale,
		Skills:    []string{"go", "mongodb"},
	}

	safe := user.Safe()
	assert.Equal(t, user.Id, safe.Id)
	assert.Equal(t, "John", safe.FirstName)
	assert.Equal(t, 28, safe.Age)

	raw, err := json.Marshal(safe)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "john@example.com")
	assert.NotContains(t, string(raw), "somethinghashed")
}

func TestGenderIsValid(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderOther.IsValid())
	assert.False(t, Gender("robot").IsValid())
	assert.False(t, Gender("").IsValid())
}
