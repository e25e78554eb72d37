// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cardledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(userHandler *handler.UserHandler, merchantHandler *handler.MerchantHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// User API routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/{userID}/balance", userHandler.GetBalance)
		r.Get("/{userID}/transactions", userHandler.GetTransactions)
		r.Get("/{userID}/transactions/summarize", userHandler.Summarize)
		r.Get("/{userID}/transactions/merchant/{merchantID}", userHandler.GetTransactionsByMerchant)
		r.Post("/{userID}/transactions/authorize", userHandler.Authorize)
		r.Put("/{userID}/update/email", userHandler.UpdateEmail)
		r.Put("/{userID}/update/name", userHandler.UpdateName)
		r.Put("/{userID}/update/password", userHandler.UpdatePassword)
	})

	// Merchant API routes
	r.Get("/merchants/{merchantID}", merchantHandler.GetMerchant)

	return r
}
