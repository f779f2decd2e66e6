package gateway

import "github.com/go-playground/validator/v10"

// CustomValidator plugs go-playground/validator into echo's binding.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate runs struct-tag validation.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
