package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the login form submission. Values are forwarded to the
// backend unchecked; the backend owns validation.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// FieldEditRequest identifies the input the user is editing.
type FieldEditRequest struct {
	Field string `param:"field" validate:"required,oneof=email password"`
	// Value is the new field value when the client sends it.
	Value string
}

func bindFieldEdit(c echo.Context) (FieldEditRequest, error) {
	var req FieldEditRequest
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "unknown field").SetInternal(err)
	}
	req.Value = c.FormValue(req.Field)
	return req, nil
}
