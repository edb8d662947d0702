package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidation configures the shared validator so binding errors
// report the json field name clients actually sent.
func RegisterValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ValidationMessages maps validator tags to client-facing messages.
func ValidationMessages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			messages = append(messages, e.Field()+" is required")
		case "email":
			messages = append(messages, e.Field()+" must be a valid email address")
		case "datetime":
			messages = append(messages, e.Field()+" has an invalid date or time format")
		case "oneof":
			messages = append(messages, e.Field()+" must be one of: "+e.Param())
		default:
			messages = append(messages, e.Field()+" is invalid")
		}
	}
	return messages
}
