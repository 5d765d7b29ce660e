package guest_sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	authSvc "github.com/m04kA/WashE-BookingService/internal/service/auth"
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

// Handle POST /api/v1/auth/guest
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.SignInAsGuest(r.Context())
	if err != nil {
		if errors.Is(err, authSvc.ErrInternal) {
			h.logger.Error("POST /auth/guest - internal error: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /auth/guest - guest sign-in failed: %v", err)
		handlers.RespondUnauthorized(w, err.Error())
		return
	}

	h.logger.Info("POST /auth/guest - guest session created for %s", session.Email)
	handlers.RespondJSON(w, http.StatusOK, session)
}
