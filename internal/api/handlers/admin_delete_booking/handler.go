package admin_delete_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/users/{ownerId}/bookings/{bookingId}
// Отвечает 200 с пересобранным агрегатом, а не 204: админскому UI
// нужен обновленный список сразу после удаления.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	bookingID := vars["bookingId"]

	result, err := h.service.Remove(r.Context(), ownerID, bookingID)
	if err != nil {
		h.logger.Error("DELETE /admin/users/{ownerId}/bookings/{bookingId} - failed: owner=%s, id=%s, error=%v",
			ownerID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
