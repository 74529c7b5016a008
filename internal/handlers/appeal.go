package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"safet-backend/internal/aigen"
	"safet-backend/internal/claims"
	"safet-backend/internal/models"
)

// AppealHandler produces appeal drafts for disputed returns.
// It depends on the aigen.Generator interface, not a specific
// implementation; when the generator is absent or fails, the built-in
// template is the answer, never an error.
type AppealHandler struct {
	generator aigen.Generator
}

// NewAppealHandler creates an AppealHandler with the given generator.
func NewAppealHandler(generator aigen.Generator) *AppealHandler {
	return &AppealHandler{generator: generator}
}

// Draft handles POST /api/appeals.
// Accepts: {"orderId", "reason", "mode"} where mode "ai" requests the
// external generator.
// Returns: the draft plus its source ("template" or "ai").
func (h *AppealHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req models.AppealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	// Identifier and reason problems come back as readable rejection
	// drafts from the template layer; surface them as 422s here so API
	// clients can tell them from a usable draft.
	if !claims.ValidOrderID(req.OrderID) {
		JSONError(w, http.StatusUnprocessableEntity, claims.AppealDraft(req.Reason, req.OrderID))
		return
	}
	if !claims.ValidReason(req.Reason) {
		JSONError(w, http.StatusUnprocessableEntity, claims.AppealDraft(req.Reason, req.OrderID))
		return
	}

	resp := models.AppealResponse{
		OrderID: req.OrderID,
		Reason:  req.Reason,
		Source:  "template",
	}

	if req.Mode == "ai" {
		text, err := h.generator.GenerateAppeal(r.Context(), req.Reason, req.OrderID)
		if err == nil {
			resp.Source = "ai"
			resp.Draft = text
			JSON(w, http.StatusOK, resp)
			return
		}
		// Any generator failure falls back to the template.
		log.Printf("AI draft unavailable for %s, using template: %v", req.OrderID, err)
	}

	resp.Draft = claims.AppealDraft(req.Reason, req.OrderID)
	JSON(w, http.StatusOK, resp)
}
