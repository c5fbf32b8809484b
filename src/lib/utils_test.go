package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateJWT(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID, decoded)
}

func TestVerifyJWT_Garbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindAuth, appErr.Kind)
}

func TestVerifyJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	assert.Error(t, err)
}

func TestTokenCookie_Policy(t *testing.T) {
	cookie := TokenCookie("abc")

	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Equal(t, "abc", cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "None", cookie.SameSite)
}

func TestExpiredTokenCookie_ClearsToken(t *testing.T) {
	cookie := ExpiredTokenCookie()

	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
}
