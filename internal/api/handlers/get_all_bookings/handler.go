package get_all_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	adminSvc "github.com/m04kA/WashE-BookingService/internal/service/admin"
	adminModels "github.com/m04kA/WashE-BookingService/internal/service/admin/models"
)

const msgInvalidFilter = "invalid filter value"

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

// Handle GET /api/v1/admin/bookings?status=&building=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &adminModels.ListAllRequest{}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if building := query.Get("building"); building != "" {
		req.Building = &building
	}

	result, err := h.service.LoadAll(r.Context(), req)
	if err != nil {
		if errors.Is(err, adminSvc.ErrInvalidFilter) {
			h.logger.Warn("GET /admin/bookings - invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
