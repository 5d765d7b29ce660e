package sign_out

import (
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context()); err != nil {
		h.logger.Error("POST /auth/sign-out - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - session cleared")
	handlers.RespondNoContent(w)
}
