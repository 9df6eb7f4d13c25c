package router

import (
	"net/http"

	"github.com/andrew-chang-dewitt/hoops/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/andrew-chang-dewitt/hoops/docs"
)

// NewRouter mounts every route. Protected routes are wrapped by
// AuthMiddleware so the token is resolved before any handler runs.
func NewRouter(
	userHandler *handler.UserHandler,
	envelopeHandler *handler.EnvelopeHandler,
	transactionHandler *handler.TransactionHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Index)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(userHandler.Login))

	mux.Handle("POST /envelope", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(envelopeHandler.CreateEnvelope)))
	mux.Handle("GET /envelope", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(envelopeHandler.ListEnvelopes)))
	mux.Handle("GET /envelope/{id}", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(envelopeHandler.GetEnvelope)))
	mux.Handle("PUT /envelope/{id}", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(envelopeHandler.UpdateEnvelope)))
	mux.Handle("DELETE /envelope/{id}", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(envelopeHandler.DeleteEnvelope)))

	mux.Handle("POST /transaction", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction)))
	mux.Handle("GET /transaction", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions)))

	return mux
}
