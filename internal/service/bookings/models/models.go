package models

import (
	"time"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string    `json:"id"`
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

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
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

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(list []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list)),
	}
	for i := range list {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&list[i]))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", false
	}
	return s, true
}
