package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var digitsRegex = regexp.MustCompile(`^\d+$`)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("counterparty_type", isCounterpartyType); err != nil {
		return err
	}
	if err := v.RegisterValidation("digits", isDigits); err != nil {
		return err
	}
	return nil
}

// isCounterpartyType - только LLC, IP, PHYSIC
func isCounterpartyType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "LLC", "IP", "PHYSIC":
		return true
	}
	return false
}

// isDigits - ИНН и ОГРН(ИП)
func isDigits(fl validator.FieldLevel) bool {
	return digitsRegex.MatchString(fl.Field().String())
}
