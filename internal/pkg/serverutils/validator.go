package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"synapsex-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct validation on a parsed request body and
// converts the first failure into a ValidationError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if ok := isValidationErrors(err, &invalid); ok && len(invalid) > 0 {
			fe := invalid[0]
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			return apperror.NewValidation(fmt.Sprintf("%s is %s", field, tagMessage(fe.Tag())))
		}
		return apperror.NewValidation("Invalid request body")
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "oneof":
		return "not one of the allowed values"
	case "url":
		return "not a valid URL"
	default:
		return "invalid"
	}
}
