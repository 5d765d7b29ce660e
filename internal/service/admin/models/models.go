package models

import (
	"time"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// ListAllRequest параметры агрегированного списка бронирований
type ListAllRequest struct {
	Status   *string // Фильтр по статусу (опционально)
	Building *string // Фильтр по корпусу (опционально)
}

// OwnedBookingResponse бронирование, помеченное идентичностью владельца
type OwnedBookingResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Building     string    `json:"building"`
	Day          string    `json:"day"`
	Time         string    `json:"time"`
	Machines     int       `json:"machines"`
	Weight       *string   `json:"weight,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	AdminComment *string   `json:"adminComment,omitempty"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"statusLabel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AggregateListResponse агрегированный список по всем владельцам
type AggregateListResponse struct {
	Bookings []OwnedBookingResponse `json:"bookings"`
}

// FromOwnedBooking конвертирует domain модель в DTO
func FromOwnedBooking(b *domain.OwnedBooking) OwnedBookingResponse {
	return OwnedBookingResponse{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
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

// FromOwnedBookingList конвертирует список domain моделей в DTO
func FromOwnedBookingList(list []domain.OwnedBooking) *AggregateListResponse {
	resp := &AggregateListResponse{
		Bookings: make([]OwnedBookingResponse, 0, len(list)),
	}
	for i := range list {
		resp.Bookings = append(resp.Bookings, FromOwnedBooking(&list[i]))
	}
	return resp
}
