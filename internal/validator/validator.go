// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"summit/internal/models"
	"summit/internal/period"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("goal_type", validateGoalType)
	_ = v.RegisterValidation("goal_priority", validateGoalPriority)
	_ = v.RegisterValidation("habit_frequency", validateHabitFrequency)
	_ = v.RegisterValidation("reflection_kind", validateReflectionKind)
	_ = v.RegisterValidation("iso_date", validateISODate)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateGoalType(fl validator.FieldLevel) bool {
	return models.GoalType(fl.Field().String()).Valid()
}

func validateGoalPriority(fl validator.FieldLevel) bool {
	return models.GoalPriority(fl.Field().String()).Valid()
}

func validateHabitFrequency(fl validator.FieldLevel) bool {
	return models.HabitFrequency(fl.Field().String()).Valid()
}

func validateReflectionKind(fl validator.FieldLevel) bool {
	return models.ReflectionKind(fl.Field().String()).Valid()
}

// validateISODate accepts calendar dates in YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := period.ParseDate(fl.Field().String())
	return err == nil
}
