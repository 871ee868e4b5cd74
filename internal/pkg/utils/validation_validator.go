package utils

import (
	"reflect"
	"spectrumconnect-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidRole(role string) bool {
	return role == constvars.RoleUser || role == constvars.RoleTherapist
}

func validateRole(fl validator.FieldLevel) bool {
	return IsValidRole(fl.Field().String())
}
