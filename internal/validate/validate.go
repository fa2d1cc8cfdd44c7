package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"tillkeeper/internal/domain"
)

var v = validator.New()

// Struct runs tag validation and converts the first failure into a
// domain.ValidationError the shell can show to the operator. The core
// re-validates everything itself; it never trusts upstream input checks.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &domain.ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: reason(fe),
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must not be less than " + fe.Param()
	default:
		return "failed rule " + fe.Tag()
	}
}
