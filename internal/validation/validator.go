package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxRawInputLength bounds every form field accepted from a client
const MaxRawInputLength = 64

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

	_ = v.RegisterValidation("raw_input", validateRawInput)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a request struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateRawInput accepts any form value the session can parse itself, including an empty one.
// Only overlong values and control characters are refused.
func validateRawInput(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !utf8.ValidString(value) || utf8.RuneCountInString(value) > MaxRawInputLength {
		return false
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
