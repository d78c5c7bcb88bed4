package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// timeslot accepts H:MM or HH:MM, hour 0-23, minute 0-59. The business-hours
// window is checked later by the schedule package, not here.
var timeSlotRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("timeslot", validateTimeSlot); err != nil {
		return err
	}
	return v.RegisterValidation("datefield", validateDateField)
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeSlotRe.MatchString(fl.Field().String())
}

func validateDateField(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
