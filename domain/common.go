package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidRecipeID = errors.New("invalid recipe id")
)

// FieldError is a single validation failure, keyed by the submitted field
// name so forms and API clients can attach it to the right input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
