package validation

import (
	"reflect"
	"strings"
	"unicode"

	"expense-analyzer/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_label", validateCategoryLabel)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateCategoryLabel accepts predefined category names and printable
// custom labels up to 50 characters. Corrections may target user-defined
// labels, so membership in the predefined set is not required.
func validateCategoryLabel(fl validator.FieldLevel) bool {
	label := strings.TrimSpace(fl.Field().String())
	if label == "" || len(label) > 50 {
		return false
	}
	if models.IsPredefinedCategory(label) {
		return true
	}
	for _, r := range label {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
