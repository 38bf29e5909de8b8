package validation

import (
	"reflect"
	"strings"

	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Validator validates request payloads using struct tags and reports
// failures with their JSON field names.
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a validator that names fields after their json tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: v}
}

// ValidateStruct returns nil or an errors.Invalid carrying one field error per
// failed constraint. message becomes the error's user-facing text.
func (v *Validator) ValidateStruct(s interface{}, message string) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	validationErr := errors.Invalid.Explain("%s", message)
	var fieldsError validator.ValidationErrors
	if errors.As(err, &fieldsError) {
		for _, fieldErr := range fieldsError {
			validationErr = validationErr.WithField(fieldErr.Tag(), fieldErr.Field(), fieldMessage(fieldErr))
		}
		return validationErr
	}
	return validationErr.Wrap(err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
