package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"leadfunnel/internal/core/domain"
)

const maxBody = 8 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto a status code and a message fit for the user.
// Unclassified errors are logged and reported as internal errors.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorBody(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	h.writeJSON(w, status, body)
}

func errorBody(err error) (int, errorResponse) {
	var (
		valErr  *domain.ValidationError
		initErr *domain.GatewayInitializationError
		icErr   *domain.IntentCreationError
		rejErr  *domain.GatewayRejectionError
		apiErr  *domain.APIError
	)
	switch {
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, errorResponse{Error: valErr.Error(), Fields: valErr.Fields}
	case errors.As(err, &initErr):
		return http.StatusUnprocessableEntity, errorResponse{Error: "card payments are currently unavailable"}
	case errors.Is(err, domain.ErrDraftNotFound), errors.Is(err, domain.ErrObjectiveNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrCheckoutInFlight), errors.Is(err, domain.ErrCheckoutCompleted),
		errors.Is(err, domain.ErrDraftLocked), errors.Is(err, domain.ErrRechargeInFlight):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.As(err, &icErr):
		return http.StatusBadGateway, errorResponse{Error: domain.UserMessage(err)}
	case errors.As(err, &rejErr):
		return http.StatusPaymentRequired, errorResponse{Error: domain.UserMessage(err)}
	case errors.Is(err, domain.ErrUnknownObjectiveCode), errors.Is(err, domain.ErrUnknownCreativeCode):
		return http.StatusBadGateway, errorResponse{Error: "the platform catalog is temporarily unavailable"}
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized:
		return http.StatusUnauthorized, errorResponse{Error: "session expired, please log in again"}
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, errorResponse{Error: apiErr.Message}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal error"}
	}
}

// decodeBody reads a single JSON value into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
