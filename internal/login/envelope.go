package login

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is one validation failure returned by the backend. Entries
// whose Field has no feedback slot, including an empty one, are dropped one by
// one when routed.
type ErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type successEnvelope struct {
	Data *struct {
		Message string `json:"message"`
	} `json:"data" validate:"required"`
}

type errorEnvelope struct {
	Errors []ErrorResponse `json:"errors" validate:"required"`
}

// ErrMalformedPayload is returned when a backend body does not have the
// expected envelope shape.
var ErrMalformedPayload = errors.New("login: malformed response payload")

var validate = validator.New()

// decodeSuccess extracts data.message from a success body.
func decodeSuccess(body []byte) (string, error) {
	var env successEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := validate.Struct(env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return env.Data.Message, nil
}

// decodeErrors extracts the field errors from an error body.
func decodeErrors(body []byte) ([]ErrorResponse, error) {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := validate.Struct(env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return env.Errors, nil
}
