package lib

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.StatusCode())
	assert.Equal(t, http.StatusConflict, KindConflict.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, KindAuth.StatusCode())
	assert.Equal(t, http.StatusNotFound, KindNotFound.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.StatusCode())
}

func TestHandleError_MapsKindAndMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return HandleError(c, ConflictError("Connection request already exists"))
	})

	req := httptest.NewRequest(http.MethodGet, "/conflict", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Connection request already exists")
}

func TestHandleError_HidesInternalErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return HandleError(c, errors.New("connection refused: 10.0.0.3:27017"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "10.0.0.3")
	assert.Contains(t, string(body), "Server error")
}
