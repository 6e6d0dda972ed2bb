package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leadfunnel/internal/core/domain"
)

func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.wizard.Quote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, quote)
}

type checkoutRequest struct {
	Card domain.Card `json:"card"`
}

type checkoutResponse struct {
	Checkout domain.CheckoutStatus `json:"checkout"`
	Error    string                `json:"error,omitempty"`
}

// handleCheckout runs one checkout attempt. Failed attempts still report
// the machine state next to the error so the form can offer a retry.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	status, err := h.wizard.Checkout(r.Context(), chi.URLParam(r, "id"), req.Card)
	if err != nil {
		code, body := errorBody(err)
		if code == http.StatusInternalServerError {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, code, checkoutResponse{Checkout: status, Error: body.Error})
		return
	}
	h.writeJSON(w, http.StatusOK, checkoutResponse{Checkout: status})
}

func (h *Handler) handleCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.wizard.CheckoutStatus(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, checkoutResponse{Checkout: status})
}

// handleAttempts lists journaled checkout attempts. The optional limit
// query parameter is clamped by the use case.
func (h *Handler) handleAttempts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'limit'"})
			return
		}
		limit = n
	}
	attempts, err := h.wizard.Attempts(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, attempts)
}
