package models

import "github.com/m04kA/WashE-BookingService/internal/domain"

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		UID:     s.UID,
		Email:   s.Email,
		IsAdmin: s.IsAdmin,
	}
}
