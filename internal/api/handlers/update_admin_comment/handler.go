package update_admin_comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle PATCH /api/v1/admin/users/{ownerId}/bookings/{bookingId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	bookingID := vars["bookingId"]

	var req UpdateAdminCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/.../comment - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetAdminComment(r.Context(), ownerID, bookingID, req.AdminComment)
	if err != nil {
		h.logger.Error("PATCH /admin/.../comment - failed: owner=%s, id=%s, error=%v", ownerID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
