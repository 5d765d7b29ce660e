package update_admin_comment

import (
	"context"

	adminModels "github.com/m04kA/WashE-BookingService/internal/service/admin/models"
)

// AdminService интерфейс сервиса агрегатора
type AdminService interface {
	SetAdminComment(ctx context.Context, ownerID, bookingID, comment string) (*adminModels.AggregateListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
