// Package validate runs the declarative per-route validation rules.
//
// Rules are expressed as struct tags on the route input types. Format rules
// use omitempty so an absent field is not a validation failure here; the
// handlers own the missing-field check and its distinct error message.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"worko/internal/pkg/errs"
	"worko/internal/pkg/logx"
)

// zipCodeRegex accepts 3 to 10 characters of letters, digits, spaces, and
// hyphens, beginning and ending with a letter or digit. Loose on purpose:
// the service takes postal codes from any country.
var zipCodeRegex = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z -]{1,8}[0-9A-Za-z]$`)

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New()

	if err := validate.RegisterValidation("zipcode", isZipCode); err != nil {
		panic(err)
	}

	return validate
}

func isZipCode(fl validator.FieldLevel) bool {
	return zipCodeRegex.MatchString(fl.Field().String())
}

// Struct checks input against its validation tags and returns the uniform
// validation error when any rule fails.
func Struct(input any) *errs.CustomError {
	if err := v.Struct(input); err != nil {
		logx.Warn("request validation failed", "error", err.Error())
		return errs.NewError(errs.ErrValidation)
	}

	return nil
}
