package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %w", ErrInvalidInput, err)
	}

	if err := validateText("clientName", req.ClientName, domain.MaxClientNameLength, true); err != nil {
		return err
	}

	if err := validateText("clientContact", req.ClientContact, domain.MaxClientContactLength, true); err != nil {
		return err
	}

	if err := validateText("procedureId", req.ProcedureID, domain.MaxProcedureLength, true); err != nil {
		return err
	}

	if err := validateText("procedureName", req.ProcedureName, domain.MaxProcedureLength, true); err != nil {
		return err
	}

	if req.Notes != nil {
		if err := validateText("notes", *req.Notes, domain.MaxNotesLength, false); err != nil {
			return err
		}
	}

	return nil
}

func validateText(field, value string, maxLen int, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxLen)
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваются календарные даты, часовой пояс значения не имеет
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
