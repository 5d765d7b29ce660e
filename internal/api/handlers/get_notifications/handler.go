package get_notifications

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
)

type Handler struct {
	watcher StatusWatcher
	logger  Logger
}

func NewHandler(watcher StatusWatcher, logger Logger) *Handler {
	return &Handler{
		watcher: watcher,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{ownerId}/notifications
// Первый вызов регистрирует владельца на опрос; каждый вызов забирает
// и очищает накопленную очередь.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	if err := h.watcher.Watch(r.Context(), ownerID); err != nil {
		h.logger.Error("GET /users/{ownerId}/notifications - watch failed: owner=%s, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &NotificationListResponse{
		Notifications: h.watcher.Drain(ownerID),
	})
}
