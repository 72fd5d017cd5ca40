package handlers

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/pkg/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("hhmm", validateTimeString)
	validate.RegisterValidation("isodate", validateDate)
	validate.RegisterValidation("weekend", validateWeekendDay)
}

// ValidateStruct проверяет тело запроса по тегам validate
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ParseDate разбирает дату "YYYY-MM-DD" из пути или query
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, strings.TrimSpace(s))
}

func validateTimeString(fl validator.FieldLevel) bool {
	_, err := types.NewTimeStringFromString(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateWeekendDay(fl validator.FieldLevel) bool {
	day, err := domain.ParseWeekday(fl.Field().String())
	if err != nil {
		return false
	}
	return day == time.Saturday || day == time.Sunday
}
