package utils

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	contactNoPattern = regexp.MustCompile(`^\d{10}$`)
)

func InitValidator() {
	Validate = validator.New()
	if err := Validate.RegisterValidation("contact_no", validateContactNo); err != nil {
		panic(fmt.Sprintf("register contact_no validation: %v", err))
	}
}

// validateContactNo accepts exactly ten ASCII digits.
func validateContactNo(fl validator.FieldLevel) bool {
	return contactNoPattern.MatchString(fl.Field().String())
}
