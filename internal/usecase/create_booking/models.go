package create_booking

import (
	"time"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID  string  // Идентичность владельца (email)
	Building string  // Корпус ("Building 36")
	Day      string  // День недели ("Monday")
	Time     string  // Слот времени ("10:00 AM")
	Machines int     // Количество машин, 1-3 (0 = по умолчанию 1)
	Weight   *string // Вес белья, отображаемая строка (опционально)
	Comment  *string // Комментарий владельца (опционально, до 200 символов)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	Building     string
	Day          string
	Time         string
	Machines     int
	Weight       *string
	Comment      *string
	AdminComment *string
	Status       string
	StatusLabel  string
	CreatedAt    time.Time
}

// fromDomain конвертирует domain модель в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		Building:     b.Building,
		Day:          b.Day,
		Time:         b.Time,
		Machines:     b.Machines,
		Weight:       b.Weight,
		Comment:      b.Comment,
		AdminComment: b.AdminComment,
		Status:       string(b.Status),
		StatusLabel:  b.Status.Label(),
		CreatedAt:    b.CreatedAt,
	}
}
