package validation

import (
	"errors"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom timezone validator
	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		_, err := time.LoadLocation(tz)
		return err == nil
	})
	validate.RegisterValidation("signal_kind", func(fl validator.FieldLevel) bool {
		return domain.SignalKind(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("sleep_stage", func(fl validator.FieldLevel) bool {
		return domain.SleepStage(fl.Field().String()).Valid()
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []problem.FieldError{{Field: "body", Message: err.Error()}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range verrs {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// fieldPath renders nested fields such as "quantities[3].kind".
func fieldPath(err validator.FieldError) string {
	ns := err.StructNamespace()
	// drop the root struct name
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			ns = ns[i+1:]
			break
		}
	}

	var result []byte
	for i := 0; i < len(ns); i++ {
		c := ns[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if i > 0 && ns[i-1] != '.' && ns[i-1] != '[' && !isUpper(ns[i-1]) {
				result = append(result, '_')
			}
			result = append(result, c+'a'-'A')
		default:
			result = append(result, c)
		}
	}
	return string(result)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "gte":
		return "must be at least " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "gtfield":
		return "must be after " + toSnakeCase(err.Param())
	case "timezone":
		return "must be a valid IANA timezone"
	case "signal_kind":
		return "must be one of: hrv, heart_rate, resting_heart_rate, respiratory_rate, step_count"
	case "sleep_stage":
		return "must be one of: in_bed, asleep_core, asleep_deep, asleep_rem, asleep_unspecified, awake"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
