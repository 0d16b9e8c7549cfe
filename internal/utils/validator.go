// internal/utils/validator.go
package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("order_status", validateOrderStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateOrderStatus accepts the five order lifecycle states.
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "processing", "shipped", "delivered", "cancelled":
		return true
	}
	return false
}
