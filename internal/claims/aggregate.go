package claims

import (
	"time"

	"safet-backend/internal/models"
)

// DemoBatch is the fixed demonstration set used when no claims have
// been supplied yet (fresh deployments, local smoke runs).
func DemoBatch() []models.OrderClaim {
	return []models.OrderClaim{
		{OrderID: "114-9283-001", OrderDate: "2026-02-10"},
		{OrderID: "207-5511-002", OrderDate: "2026-01-05"},
		{OrderID: "339-0042-003", OrderDate: "2026-02-20"},
	}
}

// BuildDashboard folds a batch of claims into a dashboard summary at
// the given reference instant. A nil or empty batch falls back to the
// demonstration set.
//
// Claims with a malformed order ID are skipped entirely: no counter,
// no detail record. Claims with a valid ID but a malformed date are
// appended as ERROR details and count toward totalOrders only — a bad
// claim never aborts the rest of the batch.
func BuildDashboard(batch []models.OrderClaim, now time.Time) models.DashboardSummary {
	if len(batch) == 0 {
		batch = DemoBatch()
	}

	summary := models.DashboardSummary{
		OrderDetails: []models.ClaimDetail{},
	}

	for _, claim := range batch {
		if !ValidOrderID(claim.OrderID) {
			continue
		}
		summary.TotalOrders++

		result := CheckDeadline(claim.OrderDate, now)
		summary.OrderDetails = append(summary.OrderDetails, models.ClaimDetail{
			OrderID:        claim.OrderID,
			OrderDate:      claim.OrderDate,
			DeadlineResult: result,
		})

		switch result.Status {
		case models.StatusExpired:
			summary.ExpiredOrders++
		case models.StatusUrgent:
			summary.UrgentOrders++
		case models.StatusSafe:
			summary.SafeOrders++
		}
		// ERROR results appear in the details but bump no tier counter.
	}

	return summary
}
