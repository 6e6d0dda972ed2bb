package httpadapter

import (
	"errors"
	"net/http"
	"strings"
)

type tokenRequest struct {
	Token string `json:"token"`
}

// handleSetToken stores the bearer token obtained at login. The token is
// used for every platform API call until cleared or rejected.
func (h *Handler) handleSetToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	tok := strings.TrimSpace(req.Token)
	if tok == "" {
		h.badRequest(w, errors.New("token is required"))
		return
	}
	h.tokens.Set(tok)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClearToken(w http.ResponseWriter, _ *http.Request) {
	h.tokens.Clear()
	w.WriteHeader(http.StatusNoContent)
}
