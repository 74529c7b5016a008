package claims

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safet-backend/internal/models"
)

func TestBuildDashboardSkipsInvalidIdentifiers(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	batch := []models.OrderClaim{
		{OrderID: "123456", OrderDate: "2026-02-01"}, // malformed ID: skipped entirely
		{OrderID: "114-9283-001", OrderDate: "2026-02-10"},
		{OrderID: "207-5511-002", OrderDate: "2026-01-05"},
	}

	summary := BuildDashboard(batch, now)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Len(t, summary.OrderDetails, 2)
	assert.Equal(t, 1, summary.SafeOrders)
	assert.Equal(t, 1, summary.ExpiredOrders)
	assert.Equal(t, 0, summary.UrgentOrders)

	for _, d := range summary.OrderDetails {
		assert.NotEqual(t, "123456", d.OrderID)
	}
}

func TestBuildDashboardErrorDateCountsNoTier(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	batch := []models.OrderClaim{
		{OrderID: "114-9283-001", OrderDate: "10/02/2026"}, // bad date, valid ID
	}

	summary := BuildDashboard(batch, now)

	// Valid-format identifier counts toward the total and shows up in
	// the details, but an ERROR result bumps no tier counter.
	assert.Equal(t, 1, summary.TotalOrders)
	require.Len(t, summary.OrderDetails, 1)
	assert.Equal(t, models.StatusError, summary.OrderDetails[0].Status)
	assert.Equal(t, 0, summary.ExpiredOrders+summary.UrgentOrders+summary.SafeOrders)
}

func TestBuildDashboardCounterSumMatchesDetails(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	batch := []models.OrderClaim{
		{OrderID: "100-0000-001", OrderDate: "2026-02-09"}, // safe
		{OrderID: "100-0000-002", OrderDate: "2026-02-07"}, // safe
		{OrderID: "100-0000-003", OrderDate: "2026-01-14"}, // urgent
		{OrderID: "100-0000-004", OrderDate: "2026-01-01"}, // expired
		{OrderID: "100-0000-005", OrderDate: "bogus"},      // error
	}

	summary := BuildDashboard(batch, now)

	assert.Equal(t, 5, summary.TotalOrders)
	assert.Equal(t, 2, summary.SafeOrders)
	assert.Equal(t, 1, summary.UrgentOrders)
	assert.Equal(t, 1, summary.ExpiredOrders)
	assert.Len(t, summary.OrderDetails, 5)
}

func TestBuildDashboardEmptyBatchUsesDemo(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	for _, batch := range [][]models.OrderClaim{nil, {}} {
		summary := BuildDashboard(batch, now)
		assert.Equal(t, len(DemoBatch()), summary.TotalOrders)
		assert.Len(t, summary.OrderDetails, len(DemoBatch()))
	}
}

func TestWatchlist(t *testing.T) {
	t.Run("seeded with the demo batch", func(t *testing.T) {
		w := NewWatchlist()
		assert.Equal(t, len(DemoBatch()), w.Len())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		w := NewWatchlist()
		assert.ErrorIs(t, w.Add(models.OrderClaim{OrderID: "123456", OrderDate: "2026-02-01"}), ErrInvalidOrderID)
		assert.ErrorIs(t, w.Add(models.OrderClaim{OrderID: "100-2000-300", OrderDate: "01.02.2026"}), ErrInvalidOrderDate)
		assert.Equal(t, len(DemoBatch()), w.Len())
	})

	t.Run("re-adding replaces instead of duplicating", func(t *testing.T) {
		w := NewWatchlist()
		require.NoError(t, w.Add(models.OrderClaim{OrderID: "100-2000-300", OrderDate: "2026-02-01"}))
		require.NoError(t, w.Add(models.OrderClaim{OrderID: "100-2000-300", OrderDate: "2026-02-05"}))

		assert.Equal(t, len(DemoBatch())+1, w.Len())
		for _, c := range w.Snapshot() {
			if c.OrderID == "100-2000-300" {
				assert.Equal(t, "2026-02-05", c.OrderDate)
			}
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		w := NewWatchlist()
		snap := w.Snapshot()
		snap[0].OrderDate = "1999-01-01"
		assert.NotEqual(t, "1999-01-01", w.Snapshot()[0].OrderDate)
	})
}
