package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("dateformat", validateDateFormat)
}

// validateDateFormat checks if string is valid YYYY-MM-DD format
func validateDateFormat(fl validator.FieldLevel) bool {
	dateStr := fl.Field().String()
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "oneof":
				messages = append(messages, field+" must be one of: "+fe.Param())
			case "dateformat":
				messages = append(messages, field+" must be in YYYY-MM-DD format (e.g., 2024-01-31)")
			case "dive":
				messages = append(messages, field+" contains an invalid entry")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
