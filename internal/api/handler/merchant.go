// internal/api/handler/merchant.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardledger/internal/service"
)

// MerchantHandler handles HTTP requests for merchant records.
type MerchantHandler struct {
	merchants service.MerchantService
	logger    *slog.Logger
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(merchants service.MerchantService, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		merchants: merchants,
		logger:    logger,
	}
}

// GetMerchant handles the merchant read request.
// GET /merchants/{merchantID}
func (h *MerchantHandler) GetMerchant(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")

	merchant, err := h.merchants.GetMerchant(r.Context(), merchantID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, merchant)
}
