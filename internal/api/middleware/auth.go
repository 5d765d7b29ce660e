package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
)

// HeaderUserEmail заголовок с идентичностью вызывающего.
// Идентичность устанавливает фронтенд после входа; сервис доверяет
// заголовку без дополнительной проверки подписи.
const HeaderUserEmail = "X-User-Email"

// Auth требует наличия идентичности и, для маршрутов с {ownerId},
// её совпадения с владельцем из пути: чужой список недоступен.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderUserEmail)
		if email == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserEmail+" header")
			return
		}

		if ownerID, ok := mux.Vars(r)["ownerId"]; ok && ownerID != email {
			handlers.RespondForbidden(w, "access denied")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly пропускает только настроенного администратора
func AdminOnly(adminEmail string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get(HeaderUserEmail)
			if email == "" {
				handlers.RespondUnauthorized(w, "missing "+HeaderUserEmail+" header")
				return
			}
			if email != adminEmail {
				handlers.RespondForbidden(w, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
