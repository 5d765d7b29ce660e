package delete_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/users/{ownerId}/bookings/{bookingId}
// Удаление отсутствующего бронирования отвечает 204 так же, как успешное.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	bookingID := vars["bookingId"]

	if err := h.service.Delete(r.Context(), ownerID, bookingID); err != nil {
		h.logger.Error("DELETE /users/{ownerId}/bookings/{bookingId} - failed: owner=%s, id=%s, error=%v",
			ownerID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
