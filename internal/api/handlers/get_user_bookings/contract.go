package get_user_bookings

import (
	"context"

	bookingModels "github.com/m04kA/WashE-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	List(ctx context.Context, ownerID string) (*bookingModels.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
