package admin_delete_booking

import (
	"context"

	adminModels "github.com/m04kA/WashE-BookingService/internal/service/admin/models"
)

// AdminService интерфейс сервиса агрегатора
type AdminService interface {
	Remove(ctx context.Context, ownerID, bookingID string) (*adminModels.AggregateListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
