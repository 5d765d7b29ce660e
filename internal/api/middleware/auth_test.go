package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newProtectedRouter() *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(Auth)
	protected.HandleFunc("/users/{ownerId}/bookings", okHandler).Methods(http.MethodGet)
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice@example.com/bookings", nil)
	rec := httptest.NewRecorder()

	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_OwnerMismatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice@example.com/bookings", nil)
	req.Header.Set(HeaderUserEmail, "bob@example.com")
	rec := httptest.NewRecorder()

	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_OwnerMatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice@example.com/bookings", nil)
	req.Header.Set(HeaderUserEmail, "alice@example.com")
	rec := httptest.NewRecorder()

	newProtectedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	r := mux.NewRouter()
	admin := r.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(AdminOnly("admin@wash-e.com"))
	admin.HandleFunc("/bookings", okHandler).Methods(http.MethodGet)

	tests := []struct {
		name     string
		email    string
		wantCode int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"regular user", "alice@example.com", http.StatusForbidden},
		{"admin", "admin@wash-e.com", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.email != "" {
				req.Header.Set(HeaderUserEmail, tt.email)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
