package update_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	adminSvc "github.com/m04kA/WashE-BookingService/internal/service/admin"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "status must be pending, in-progress or completed"
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

// Handle PATCH /api/v1/admin/users/{ownerId}/bookings/{bookingId}/status
// Ответ содержит пересобранный агрегат по всем владельцам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	bookingID := vars["bookingId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/.../status - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), ownerID, bookingID, req.Status)
	if err != nil {
		if errors.Is(err, adminSvc.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("PATCH /admin/.../status - failed: owner=%s, id=%s, error=%v", ownerID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
