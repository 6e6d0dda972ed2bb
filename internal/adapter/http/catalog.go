package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

func (h *Handler) handleObjectives(w http.ResponseWriter, r *http.Request) {
	objectives, err := h.wizard.Objectives(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, objectives)
}

func (h *Handler) handleCreatives(w http.ResponseWriter, r *http.Request) {
	creatives, err := h.wizard.Creatives(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, creatives)
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.wizard.Campaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

type walletResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"is_active"`
	Available decimal.Decimal `json:"available"`
}

func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.wallet.Wallet(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, walletResponse{
		Balance:   wallet.Balance,
		IsActive:  wallet.IsActive,
		Available: wallet.Available(),
	})
}

type rechargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Card   domain.Card     `json:"card"`
}

// handleRecharge credits the wallet by card. It answers 204 once the
// gateway confirmed the payment.
func (h *Handler) handleRecharge(w http.ResponseWriter, r *http.Request) {
	var req rechargeRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	if err := h.wallet.Recharge(r.Context(), req.Amount, req.Card); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
