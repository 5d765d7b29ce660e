package get_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	authSvc "github.com/m04kA/WashE-BookingService/internal/service/auth"
)

const msgNotSignedIn = "not signed in"

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

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.Current(r.Context())
	if err != nil {
		if errors.Is(err, authSvc.ErrNotSignedIn) {
			handlers.RespondUnauthorized(w, msgNotSignedIn)
			return
		}
		h.logger.Error("GET /auth/session - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
