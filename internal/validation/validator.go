package validation

import (
	"reflect"
	"strings"
	"time"

	"spendtrack/internal/period"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("period_kind", validatePeriodKind)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateISODate validates a YYYY-MM-DD calendar date
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := time.Parse(period.DateLayout, value)
	return err == nil
}

// validatePeriodKind validates a period query parameter
func validatePeriodKind(fl validator.FieldLevel) bool {
	_, err := period.ParseKind(fl.Field().String())
	return err == nil
}

// validateDecimalAmount validates that a string amount parses as a
// positive decimal with at most 2 fractional digits
func validateDecimalAmount(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return amount.Exponent() >= -2
}

// FormatValidationErrors converts validator errors into per-field
// human readable messages keyed by the json field name.
func FormatValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fieldError := range validationErrors {
		details[fieldError.Field()] = messageForTag(fieldError)
	}
	return details
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "iso_date":
		return "Must be a valid date in YYYY-MM-DD format"
	case "period_kind":
		return "Must be one of: weekly, monthly, all, explicit"
	case "decimal_amount":
		return "Must be a positive amount with at most 2 decimal places"
	case "min":
		return "Value is too short or too small"
	case "max":
		return "Value is too long or too large"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "uuid":
		return "Must be a valid UUID"
	default:
		return "Invalid value"
	}
}
