package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"church-admin/internal/models"

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

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("movement_kind", validateMovementKind)
	_ = v.RegisterValidation("decimal_positive", validateDecimalPositive)
	_ = v.RegisterValidation("church_role", validateChurchRole)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors converts a validation error into json field name -> message.
// It returns nil when err is not a validator.ValidationErrors.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "currency":
		return "must be ARS or USD"
	case "movement_kind":
		return "must be INCOME or EXPENSE"
	case "decimal_positive":
		if fe.Param() != "" {
			return fmt.Sprintf("must be a positive decimal number with at most %s decimal places", fe.Param())
		}
		return "must be a positive decimal number with at most 2 decimal places"
	case "church_role":
		return "must be one of admin, treasurer, secretary, viewer"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// validateCurrency accepts the supported ledger currencies in any letter
// case. Empty values pass so optional fields can default to ARS.
func validateCurrency(fl validator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	if code == "" {
		return true
	}
	return models.IsSupportedCurrency(models.NormalizeCurrency(code))
}

func validateMovementKind(fl validator.FieldLevel) bool {
	_, err := models.ParseMovementKind(fl.Field().String())
	return err == nil
}

// validateDecimalPositive checks a decimal string is greater than zero.
// The optional param caps the decimal places, 2 by default.
func validateDecimalPositive(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return false
	}

	places := int32(2)
	if p := fl.Param(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		places = int32(n)
	}
	return d.Equal(d.Round(places))
}

func validateChurchRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(fl.Field().String())
}
