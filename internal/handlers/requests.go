package handlers

import (
	"github.com/go-playground/validator/v10"
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

// RevealRequest identifies the section reported by the viewport hook.
type RevealRequest struct {
	ViewID  string `param:"view" validate:"required,uuid4"`
	Section string `param:"section" validate:"required,oneof=skills education projects contact"`
}
