package lib

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind is the closed set of failure categories the API can report.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindAuth
	KindNotFound
	KindInternal
)

// AppError carries a failure category plus a client-facing message. Handlers
// build one of these and hand it to HandleError; the kind-to-status mapping
// lives in exactly one place.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func AuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// StatusCode maps an error kind to its HTTP status.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes err as a JSON message response. Errors that are not an
// AppError are reported as a generic server error so internals never leak.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Kind.StatusCode()).JSON(MessageResponse(appErr.Message))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse("Server error"))
}
