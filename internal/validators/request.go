package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/asset-management/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs by their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	registerTags(v)

	// a zero Date must fail `required`
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok && !d.IsZero() {
			return d.String()
		}
		return nil
	}, models.Date{})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		for _, f := range fields {
			if _, ok := value.Type().FieldByName(f); !ok {
				return ErrUnknownField
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return formatValidationErrors(err)
}

func formatValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := make(map[string]string, len(errs))
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return &FieldErrors{Fields: details}
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "alpha":
		return "must contain letters only"
	case tagNotBlank:
		return "must not be blank"
	case tagPersonName:
		return "must contain letters and spaces only"
	}
	return "is invalid"
}
