// handler/main_test.go
package handler

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/andrew-chang-dewitt/hoops/config"
	"github.com/andrew-chang-dewitt/hoops/logger"

	"github.com/google/uuid"
)

// TestMain configures logging and a signing key for the handler package.
func TestMain(m *testing.M) {
	logger.Init()
	config.AppConfig.JWT.SecretKey = "test-secret"

	os.Exit(m.Run())
}

// authenticated stamps a user id onto the request context the same way
// AuthMiddleware does.
func authenticated(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
}
