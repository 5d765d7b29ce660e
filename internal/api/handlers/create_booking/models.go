package create_booking

import (
	"time"

	createBooking "github.com/m04kA/WashE-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Building string  `json:"building"` // "Building 36"
	Day      string  `json:"day"`      // "Monday"
	Time     string  `json:"time"`     // "10:00 AM"
	Machines int     `json:"machines,omitempty"`
	Weight   *string `json:"weight,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string  `json:"id"`
	Building     string  `json:"building"`
	Day          string  `json:"day"`
	Time         string  `json:"time"`
	Machines     int     `json:"machines"`
	Weight       *string `json:"weight,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	AdminComment *string `json:"adminComment,omitempty"`
	Status       string  `json:"status"`
	StatusLabel  string  `json:"statusLabel"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID string) *createBooking.Request {
	return &createBooking.Request{
		OwnerID:  ownerID,
		Building: r.Building,
		Day:      r.Day,
		Time:     r.Time,
		Machines: r.Machines,
		Weight:   r.Weight,
		Comment:  r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		Building:     resp.Building,
		Day:          resp.Day,
		Time:         resp.Time,
		Machines:     resp.Machines,
		Weight:       resp.Weight,
		Comment:      resp.Comment,
		AdminComment: resp.AdminComment,
		Status:       resp.Status,
		StatusLabel:  resp.StatusLabel,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
