// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardledger/internal/api/types"
	"cardledger/internal/domain"
	"cardledger/internal/service"
	"cardledger/internal/util"
)

// UserHandler handles HTTP requests for user records and their ledger views.
type UserHandler struct {
	users        service.UserService
	transactions service.TransactionService
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, transactions service.TransactionService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:        users,
		transactions: transactions,
		logger:       logger,
	}
}

// CreateUserRequest represents the request body for signup.
type CreateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// CreateUser handles the signup request.
// POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	userID, err := h.users.Create(r.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]string{"userId": userID})
}

// UpdateEmailRequest represents the request body for an email change.
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// UpdateEmail handles the email change request.
// PUT /users/{userID}/update/email
func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Email == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.users.UpdateEmail(r.Context(), userID, req.Email); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"userId": userID})
}

// UpdateNameRequest represents the request body for a name change.
type UpdateNameRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UpdateName handles the name change request.
// PUT /users/{userID}/update/name
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.users.UpdateName(r.Context(), userID, req.FirstName, req.LastName); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"userId": userID})
}

// UpdatePasswordRequest represents the request body for a password change.
type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword handles the password change request.
// PUT /users/{userID}/update/password
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Password == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.users.UpdatePassword(r.Context(), userID, req.Password); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"userId": userID})
}

// GetBalance handles the cached balance read.
// GET /users/{userID}/balance
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	balance, err := h.transactions.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"userId":         userID,
		"balanceInCents": balance,
	})
}

// AuthorizeRequest represents a spend-authorization request.
type AuthorizeRequest struct {
	AmountInCents *int64 `json:"amountInCents"`
}

// Authorize handles the spend-authorization request. The proposed
// transaction is checked against the cached balance, never persisted.
// POST /users/{userID}/transactions/authorize
func (h *UserHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.AmountInCents == nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	decision, err := h.transactions.Authorize(r.Context(), userID, *req.AmountInCents)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]domain.AuthorizationDecision{"decision": decision})
}

// GetTransactions handles the time-range ledger read.
// GET /users/{userID}/transactions?start=yyyy-MM-dd&end=yyyy-MM-dd
func (h *UserHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if start == "" || end == "" {
		respondWithError(w, h.logger, util.ErrInvalidPeriod)
		return
	}

	transactions, err := h.transactions.GetByTimeRange(r.Context(), userID, start, end)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.ListResponse[domain.Transaction]{Data: transactions})
}

// GetTransactionsByMerchant handles the per-merchant ledger read.
// GET /users/{userID}/transactions/merchant/{merchantID}
func (h *UserHandler) GetTransactionsByMerchant(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	merchantID := chi.URLParam(r, "merchantID")

	transactions, err := h.transactions.GetByMerchant(r.Context(), userID, merchantID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.ListResponse[domain.Transaction]{Data: transactions})
}

// Summarize handles the per-merchant spend summary.
// GET /users/{userID}/transactions/summarize
func (h *UserHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	summary, err := h.transactions.Summarize(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, summary)
}
