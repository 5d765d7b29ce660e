package create_booking

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// validateRequest проверяет входные данные запроса на создание бронирования
func validateRequest(req *Request) error {
	if !domain.IsValidBuilding(req.Building) {
		return ErrInvalidBuilding
	}
	if !domain.IsValidDay(req.Day) {
		return ErrInvalidDay
	}
	if !domain.IsValidTime(req.Time) {
		return ErrInvalidTime
	}

	// 0 означает "не указано" и превращается в значение по умолчанию
	if req.Machines != 0 && (req.Machines < domain.MinMachines || req.Machines > domain.MaxMachines) {
		return ErrInvalidMachines
	}

	if req.Comment != nil && utf8.RuneCountInString(*req.Comment) > domain.MaxCommentLength {
		return ErrCommentTooLong
	}

	return nil
}

// normalizeOptional обрезает пробелы и превращает пустые строки в nil
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
