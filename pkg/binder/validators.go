package binder

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

// imageURLValidator ensures the value parses as an absolute http(s) URL or is
// the empty string. The empty string is allowed so this validator can be used
// on optional fields; pair it with `required` when the value must be present.
func imageURLValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
