package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/internship-tracker/models"
)

// TagInternshipStatus is the custom tag accepting only [models.Status] values.
const TagInternshipStatus = "internship_status"

// StructValidator validates models through their `validate` struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a validator that reports JSON field names and
// knows the internship status rule.
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(TagInternshipStatus, func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})

	return &StructValidator{validate: v}
}

func (v *StructValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Type)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &FieldError{
			Field:  fe.Field(),
			Tag:    fe.Tag(),
			Reason: reason(fe),
		}
	}

	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case TagInternshipStatus:
		names := make([]string, len(models.Statuses))
		for i, s := range models.Statuses {
			names[i] = string(s)
		}
		return "must be one of " + strings.Join(names, ", ")
	}
	return "is invalid"
}
