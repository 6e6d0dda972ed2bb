package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadfunnel/internal/core/domain"
	"leadfunnel/internal/core/port"
)

type draftResponse struct {
	ID    string               `json:"id"`
	Draft domain.CampaignDraft `json:"draft"`
}

func (h *Handler) writeDraft(w http.ResponseWriter, r *http.Request, status int, draft domain.CampaignDraft, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, status, draftResponse{ID: chi.URLParam(r, "id"), Draft: draft})
}

func (h *Handler) handleNewDraft(w http.ResponseWriter, r *http.Request) {
	id := h.wizard.NewDraft()
	draft, err := h.wizard.Draft(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/drafts/"+id)
	h.writeJSON(w, http.StatusCreated, draftResponse{ID: id, Draft: draft})
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.wizard.Draft(chi.URLParam(r, "id"))
	h.writeDraft(w, r, http.StatusOK, draft, err)
}

func (h *Handler) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var upd port.DraftUpdate
	if err := decodeBody(r, &upd); err != nil {
		h.badRequest(w, err)
		return
	}
	draft, err := h.wizard.UpdateDraft(r.Context(), chi.URLParam(r, "id"), upd)
	h.writeDraft(w, r, http.StatusOK, draft, err)
}

func (h *Handler) handleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.DiscardDraft(chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type objectiveRequest struct {
	ObjectiveID string `json:"objective_id"`
}

func (h *Handler) handleSelectObjective(w http.ResponseWriter, r *http.Request) {
	var req objectiveRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	draft, err := h.wizard.SelectObjective(r.Context(), chi.URLParam(r, "id"), req.ObjectiveID)
	h.writeDraft(w, r, http.StatusOK, draft, err)
}

// budgetRequest carries the budget as typed by the user. Input that does
// not parse leaves the previous budget in place.
type budgetRequest struct {
	Budget string `json:"budget"`
}

func (h *Handler) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	draft, err := h.wizard.SetBudget(r.Context(), chi.URLParam(r, "id"), req.Budget)
	h.writeDraft(w, r, http.StatusOK, draft, err)
}

type creativesRequest struct {
	Codes []domain.CreativeCode `json:"selected_creative_codes"`
}

func (h *Handler) handleSetCreatives(w http.ResponseWriter, r *http.Request) {
	var req creativesRequest
	if err := decodeBody(r, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	draft, err := h.wizard.SetCreatives(r.Context(), chi.URLParam(r, "id"), req.Codes)
	h.writeDraft(w, r, http.StatusOK, draft, err)
}
