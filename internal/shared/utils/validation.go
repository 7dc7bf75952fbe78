package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskdesk/internal/shared/errors"
)

var validate *validator.Validate

// Cell shapes accepted by the form fields. Values are shape-checked
// here; calendar validity is the parser's concern.
var (
	dateCellRegex  = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`)
	clockTimeRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("datecell", DateCellValidation)
	mustRegister("clocktime", ClockTimeValidation)
}

// DateCellValidation accepts an empty field or a yyyy/mm/dd calendar
// date. Exported so the HTTP layer can register the same rule as a
// binding tag.
func DateCellValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || dateCellRegex.MatchString(s)
}

// ClockTimeValidation accepts an empty field or an HH:MM clock value.
func ClockTimeValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || clockTimeRegex.MatchString(s)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(
		"Validation failed",
		strings.Join(errorMessages, "; "),
	)
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "datecell":
		return fmt.Sprintf("%s must be a yyyy/mm/dd date", field)
	case "clocktime":
		return fmt.Sprintf("%s must be an HH:MM time", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
