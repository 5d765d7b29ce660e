package advance_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	bookingsSvc "github.com/m04kA/WashE-BookingService/internal/service/bookings"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{ownerId}/bookings/{bookingId}/advance
// Бронирование, исчезнувшее между чтением и записью, не считается ошибкой
// клиента: отвечаем 204 без тела вместо 404.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	bookingID := vars["bookingId"]

	result, err := h.service.AdvanceStatus(r.Context(), ownerID, bookingID)
	if err != nil {
		if errors.Is(err, bookingsSvc.ErrBookingNotFound) {
			h.logger.Warn("PATCH /users/{ownerId}/bookings/{bookingId}/advance - not found: owner=%s, id=%s",
				ownerID, bookingID)
			handlers.RespondNoContent(w)
			return
		}
		h.logger.Error("PATCH /users/{ownerId}/bookings/{bookingId}/advance - failed: owner=%s, id=%s, error=%v",
			ownerID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
