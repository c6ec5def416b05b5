package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Custom binding validations for prefixed IDs arriving in request bodies.
// URL parameters go through utils.ParseSIDParam instead.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("client_sid", sidValidator(id.PrefixClient))
	v.RegisterValidation("package_sid", sidValidator(id.PrefixPackage))
	v.RegisterValidation("software_sid", sidValidator(id.PrefixSoftware))
}

func sidValidator(prefix string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return id.ValidatePrefix(fl.Field().String(), prefix) == nil
	}
}
