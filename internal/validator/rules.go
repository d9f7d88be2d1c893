package validator

import (
	"log"

	"tunzacare_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. A registration
// failure is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-plan-type", validatePlanType)
	mustRegister("is-specialization", validateSpecialization)
	mustRegister("is-availability", validateAvailability)
}

// Empty values pass every custom rule; 'required' owns presence checks.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleClient, models.UserRoleCaregiver, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validatePlanType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.PlanByType(models.PlanType(value))
	return ok
}

func validateSpecialization(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Specialization(value) {
	case models.SpecializationChildcare, models.SpecializationElderly,
		models.SpecializationDisability, models.SpecializationSpecialNeeds,
		models.SpecializationGeneral:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityFullTime, models.AvailabilityPartTime, models.AvailabilityOnCall:
		return true
	default:
		return false
	}
}
