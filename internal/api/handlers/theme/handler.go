package theme

import (
	"errors"
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	sessionRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTheme       = "theme must be \"dark\" or \"light\""
)

type Handler struct {
	sessions SessionRepository
	logger   Logger
}

func NewHandler(sessions SessionRepository, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// HandleGet GET /api/v1/preferences/theme
// Отсутствующая или нечитаемая настройка отдается как светлая тема.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	current, err := h.sessions.GetTheme(r.Context())
	if err != nil {
		h.logger.Error("GET /preferences/theme - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ThemeResponse{Theme: current})
}

// HandleSet PUT /api/v1/preferences/theme
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/theme - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.sessions.SetTheme(r.Context(), req.Theme); err != nil {
		if errors.Is(err, sessionRepo.ErrInvalidTheme) {
			handlers.RespondBadRequest(w, msgInvalidTheme)
			return
		}
		h.logger.Error("PUT /preferences/theme - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /preferences/theme - set to %s", req.Theme)
	handlers.RespondJSON(w, http.StatusOK, &ThemeResponse{Theme: req.Theme})
}
