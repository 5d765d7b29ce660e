package get_notifications

import "github.com/m04kA/WashE-BookingService/internal/domain"

// NotificationListResponse ответ со списком накопленных уведомлений
type NotificationListResponse struct {
	Notifications []domain.StatusNotification `json:"notifications"`
}
