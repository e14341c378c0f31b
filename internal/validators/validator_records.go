package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/ai-one-api/internal/crypto"
	"github.com/MKhiriev/ai-one-api/models"
)

// tagSealable checks that a plaintext still fits its column after sealing.
// Usage: `validate:"sealable=512"`.
const tagSealable = "sealable"

// RecordValidator validates the record payloads of the API with struct tags
// evaluated by go-playground/validator. Errors name fields by their JSON key.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator builds a [RecordValidator] with the custom rules
// registered.
func NewRecordValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(tagSealable, isSealable)

	return &RecordValidator{validate: v}
}

// isSealable reports whether the sealed token of the field fits in the
// number of characters given as the tag parameter.
func isSealable(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return crypto.SealedLen(len(fl.Field().String())) <= limit
}

// Validate implements [Validator]. When fields are given only those struct
// fields (Go names) are checked.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactCreate, models.NoteCreate, models.CredentialCreate, models.TaskCreate, models.Page:
		return v.validateStruct(ctx, value, fields...)

	case models.ContactUpdate:
		if value == (models.ContactUpdate{}) {
			return ErrNoFieldsToUpdate
		}
		return v.validateStruct(ctx, value, fields...)
	case models.NoteUpdate:
		if value == (models.NoteUpdate{}) {
			return ErrNoFieldsToUpdate
		}
		return v.validateStruct(ctx, value, fields...)
	case models.CredentialUpdate:
		if value == (models.CredentialUpdate{}) {
			return ErrNoFieldsToUpdate
		}
		return v.validateStruct(ctx, value, fields...)
	case models.TaskUpdate:
		if value == (models.TaskUpdate{}) {
			return ErrNoFieldsToUpdate
		}
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(msgs, "; "))
}

// describe turns a field error into a client-facing message.
func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must be at most " + fe.Param() + " characters"
		}
		return field + " must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must be at least " + fe.Param() + " characters"
		}
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gtefield":
		return field + " must not be before " + fe.Param()
	case tagSealable:
		return field + " is too long to be stored encrypted"
	default:
		return field + " failed the " + fe.Tag() + " rule"
	}
}
