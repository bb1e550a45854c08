// Package common provides the shared transport toolkit: the success envelope,
// RFC 9457 problem details, and request binding with validation.
package common

import (
	"errors"

	"github.com/amirasaad/cashcard/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
}

// SuccessResponseJSON writes the standard success envelope. Resource reads
// return the bare record instead, so no current handler wraps its payload;
// the envelope stays as the shared shape for any non-resource endpoint.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is taken
// from the optional override, otherwise derived from the error.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, statusOverride ...int) error {
	status := ErrorToStatusCode(err)
	if len(statusOverride) > 0 {
		status = statusOverride[0]
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}

	if err := c.Status(status).JSON(pd); err != nil {
		return err
	}
	// Set after JSON, which stamps application/json on the response.
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes an error
// response and returns the parse/validation error. The public API is
// read-only and carries no request bodies, so only body-accepting endpoints
// added behind this surface go through it.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		return nil, err
	}
	if err := validator.New().Struct(input); err != nil {
		_ = ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
		return nil, err
	}
	return &input, nil
}
