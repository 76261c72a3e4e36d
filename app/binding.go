package app

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ginmongo/dates"
)

// RegisterValidators adds the "weekday" and "datetime_any" tags to gin's
// validator. Both apply to string fields.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("weekday", validateWeekday); err != nil {
		return fmt.Errorf("failed to register weekday validator: %w", err)
	}
	if err := v.RegisterValidation("datetime_any", validateDatetimeAny); err != nil {
		return fmt.Errorf("failed to register datetime_any validator: %w", err)
	}
	return nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := dates.ResolveDayOfWeek(dates.DayText(fl.Field().String()))
	return err == nil
}

func validateDatetimeAny(fl validator.FieldLevel) bool {
	_, err := dates.ParseString(fl.Field().String())
	return err == nil
}
