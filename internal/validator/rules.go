package validator

import (
	"log"

	"skillswap_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags on the validator
// instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failures are a startup misconfiguration; the
			// application must not run with missing rules.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("swap_status", func(fl validator.FieldLevel) bool {
		return models.ValidSwapStatus(models.SwapRequestStatus(fl.Field().String()))
	})

	mustRegister("admin_message_type", func(fl validator.FieldLevel) bool {
		return models.ValidAdminMessageType(models.AdminMessageType(fl.Field().String()))
	})

	// Validates a single availability slot value; apply with "dive" on the
	// slice field.
	mustRegister("availability_slot", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, slot := range models.AvailabilitySlots {
			if value == slot {
				return true
			}
		}
		return false
	})
}
