package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"leadfunnel/internal/core/port"
)

// Handler is the inbound HTTP adapter of the dashboard backend. It exposes
// the catalog and wallet reads, the wizard draft steps, checkout and the
// token session on a chi.Router.
type Handler struct {
	wizard port.WizardUseCase
	wallet port.WalletUseCase
	tokens port.TokenProvider
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(wizard port.WizardUseCase, wallet port.WalletUseCase, tokens port.TokenProvider, logger *slog.Logger) *Handler {
	h := &Handler{wizard: wizard, wallet: wallet, tokens: tokens, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/objectives", h.handleObjectives)
		r.Get("/creatives", h.handleCreatives)
		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/wallet", h.handleWallet)
		r.Post("/wallet/recharge", h.handleRecharge)

		r.Post("/drafts", h.handleNewDraft)
		r.Route("/drafts/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetDraft)
			r.Put("/", h.handleUpdateDraft)
			r.Delete("/", h.handleDiscardDraft)
			r.Put("/objective", h.handleSelectObjective)
			r.Put("/budget", h.handleSetBudget)
			r.Put("/creatives", h.handleSetCreatives)
			r.Get("/quote", h.handleQuote)
			r.Post("/checkout", h.handleCheckout)
			r.Get("/checkout", h.handleCheckoutStatus)
		})
		r.Get("/checkout/attempts", h.handleAttempts)

		r.Put("/session/token", h.handleSetToken)
		r.Delete("/session/token", h.handleClearToken)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
