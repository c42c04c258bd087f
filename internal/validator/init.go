package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the key the user wrote (yaml or json) instead of the Go name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

func GetValidator() *validator.Validate {
	return validate
}

// Describe flattens validation errors into "field failed 'tag'" phrases.
// Other errors are returned as their message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		part := field + " failed '" + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part+"'")
	}
	return strings.Join(parts, "; ")
}
