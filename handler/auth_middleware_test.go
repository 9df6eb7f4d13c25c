package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrew-chang-dewitt/hoops/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	var seenUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value(UserIDKey).(uuid.UUID)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(next)

	t.Run("missing header is a 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/envelope", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header is a 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/envelope", nil)
		req.Header.Set("Authorization", "Token abc123")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token is a 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/envelope", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token reaches the handler with the user id", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateJWT(userID)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/envelope", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID, seenUserID)
	})
}
