package validator

import (
	"log"

	"barberia_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': the value is one of the closed role set.
	mustRegister("is-user-role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.UserRole(fl.Field().String()))
	})

	// 'is-user-status': the value is a known account status.
	mustRegister("is-user-status", func(fl validator.FieldLevel) bool {
		return models.ValidStatus(models.UserStatus(fl.Field().String()))
	})
}
