package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	"github.com/m04kA/WashE-BookingService/internal/integrations/authservice"
	authSvc "github.com/m04kA/WashE-BookingService/internal/service/auth"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmptyCredentials):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, authservice.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, err.Error())

		case errors.Is(err, authSvc.ErrInternal):
			h.logger.Error("POST /auth/sign-in - internal error: %v", err)
			handlers.RespondInternalError(w)

		default:
			// Прочие ошибки провайдера отдаются как есть - сообщение уже
			// очищено от провайдерских префиксов, пользователь может
			// повторить попытку сразу
			h.logger.Warn("POST /auth/sign-in - sign-in failed: %v", err)
			handlers.RespondUnauthorized(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /auth/sign-in - signed in: email=%s, admin=%t", session.Email, session.IsAdmin)
	handlers.RespondJSON(w, http.StatusOK, session)
}
