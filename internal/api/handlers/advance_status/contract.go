package advance_status

import (
	"context"

	bookingModels "github.com/m04kA/WashE-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	AdvanceStatus(ctx context.Context, ownerID string, bookingID string) (*bookingModels.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
