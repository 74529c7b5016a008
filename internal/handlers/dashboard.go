package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"safet-backend/internal/claims"
	"safet-backend/internal/models"
)

// DashboardHandler serves deadline evaluations and aggregate summaries.
// Everything it returns is computed fresh against the clock at request
// time — nothing is cached, nothing is stored.
type DashboardHandler struct {
	watchlist *claims.Watchlist
	now       func() time.Time
}

// NewDashboardHandler creates a DashboardHandler over the given watchlist.
func NewDashboardHandler(watchlist *claims.Watchlist) *DashboardHandler {
	return &DashboardHandler{
		watchlist: watchlist,
		now:       time.Now,
	}
}

// ── CheckClaim ─────────────────────────────────────────────────

// CheckClaim handles POST /api/claims/check — a single deadline
// evaluation. A malformed date is a valid outcome (status ERROR), so it
// still answers 200; only an unreadable body or a bad order ID reject.
func (h *DashboardHandler) CheckClaim(w http.ResponseWriter, r *http.Request) {
	var req models.CheckClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.OrderID != "" && !claims.ValidOrderID(req.OrderID) {
		JSONError(w, http.StatusUnprocessableEntity, "Order ID must match the format 123-4567-890")
		return
	}

	JSON(w, http.StatusOK, claims.CheckDeadline(req.OrderDate, h.now()))
}

// ── GetSummary ─────────────────────────────────────────────────

// GetSummary handles GET /api/dashboard — the aggregate view over the
// tracked claims.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := claims.BuildDashboard(h.watchlist.Snapshot(), h.now())
	JSON(w, http.StatusOK, summary)
}

// ── EvaluateBatch ──────────────────────────────────────────────

// EvaluateBatch handles POST /api/dashboard — a stateless aggregation
// over a posted batch. The batch is not added to the watchlist.
func (h *DashboardHandler) EvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	summary := claims.BuildDashboard(req.Claims, h.now())
	JSON(w, http.StatusOK, summary)
}

// ── AddClaim ───────────────────────────────────────────────────

// AddClaim handles POST /api/claims — registers a claim on the
// watchlist so the dashboard and the deadline watcher keep tracking it.
func (h *DashboardHandler) AddClaim(w http.ResponseWriter, r *http.Request) {
	var claim models.OrderClaim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.watchlist.Add(claim); err != nil {
		JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Return the claim's current evaluation so callers see its tier
	// right away.
	JSON(w, http.StatusCreated, models.ClaimDetail{
		OrderID:        claim.OrderID,
		OrderDate:      claim.OrderDate,
		DeadlineResult: claims.CheckDeadline(claim.OrderDate, h.now()),
	})
}
