package validator

import (
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string `json:"failed_field"`
	Tag         string `json:"tag"`
	Value       string `json:"value"`
}

var validate = validator.New()

func init() {
	// Horários de turno chegam como "HH:mm"
	validate.RegisterValidation("hora", func(fl validator.FieldLevel) bool {
		v, ok := fl.Field().Interface().(string)
		if !ok || len(v) != 5 || v[2] != ':' {
			return false
		}
		hh := v[:2]
		mm := v[3:]
		for _, c := range hh + mm {
			if c < '0' || c > '9' {
				return false
			}
		}
		return hh <= "23" && mm <= "59"
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
