package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is shared by the request middlewares and the services. Field
// errors carry json tag names.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
