package services

import (
	"errors"
	"reflect"
	"strings"

	"dashboard/internal/domain"

	"github.com/go-playground/validator/v10"
)

// payloadValidator reads the same `binding` tags gin checks, so services called outside
// HTTP (CLI, tests) enforce identical rules.
var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JSONFieldName)
	return v
}

// JSONFieldName reports struct fields by their json name in validation errors.
func JSONFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validatePayload(v any) error {
	err := payloadValidator.Struct(v)
	if err == nil {
		return nil
	}
	return ValidationFromError(err)
}

// ValidationFromError turns validator output into a domain.ValidationError with per-field details.
func ValidationFromError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ValidationError{Msg: err.Error(), Err: err}
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field: fieldPath(fe.Namespace()),
			Error: describe(fe),
		})
	}
	return domain.ValidationError{Msg: "invalid payload", Fields: fields, Err: err}
}

// fieldPath drops the struct name validator puts in front of the namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "nefield":
		return "must differ from " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
