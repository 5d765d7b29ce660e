package domain

import "time"

// BookingStatus represents the status of a laundry booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
)

// Booking represents a laundry slot reservation.
// The struct is marshalled as-is into the per-owner storage list,
// so the json tags define the persisted layout.
type Booking struct {
	ID           string        `json:"id"`
	Building     string        `json:"building"`
	Day          string        `json:"day"`
	Time         string        `json:"time"`
	Machines     int           `json:"machines"`
	Weight       *string       `json:"weight,omitempty"`
	Comment      *string       `json:"comment,omitempty"`
	AdminComment *string       `json:"adminComment,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// SameSlot returns true if both bookings occupy the same (building, day, time) triple
func (b *Booking) SameSlot(other *Booking) bool {
	return b.Building == other.Building && b.Day == other.Day && b.Time == other.Time
}

// IsPending returns true if the booking has not been started yet
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsCompleted returns true if the laundry run has finished
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// Next returns the next status in the self-service cycle:
// pending -> in-progress -> completed -> pending
func (s BookingStatus) Next() BookingStatus {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		return StatusPending
	default:
		return StatusPending
	}
}

// Label returns the human-readable display label for the status
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// OwnedBooking is a booking tagged with the identity of the owner whose
// list it was loaded from. Used only by the aggregate (admin) view; the
// booking itself is stored without the owner, the storage key carries it.
type OwnedBooking struct {
	Booking
	OwnerID string `json:"ownerId"`
}

// AggregateFilter фильтр для агрегированного (админского) списка бронирований
type AggregateFilter struct {
	Status   *BookingStatus // nil - все статусы
	Building *string        // nil - все корпуса
}

// Matches returns true if the booking passes the filter
func (f AggregateFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Building != nil && b.Building != *f.Building {
		return false
	}
	return true
}
