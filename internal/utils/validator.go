package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"recipe-catalog/domain"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("ingredient_type", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseIngredientType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("recipe_category", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCategory(fl.Field().String())
		return ok
	})

	return v
}
