package validator

import (
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// message converts the first validation error into a human readable
// sentence that the HTTP layer can hand back to the caller verbatim.
func message(err error) string {
	validationErrors, ok := err.(val.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "staydate":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s may be at most %s characters", field, fieldError.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	case "e164":
		return fmt.Sprintf("%s must be a valid phone number in E.164 format", field)
	default:
		return fmt.Sprintf("%s is invalid on the %s rule", field, fieldError.Tag())
	}
}
