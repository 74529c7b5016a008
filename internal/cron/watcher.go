package cron

import (
	"log"
	"time"

	"safet-backend/internal/claims"
	"safet-backend/internal/models"
)

// StartDeadlineWatcher launches a background goroutine that sweeps the
// watchlist once immediately and then every 24 h, logging claims whose
// window has expired or is about to. Statuses are recomputed on every
// sweep — the watcher holds no state between runs.
func StartDeadlineWatcher(watchlist *claims.Watchlist) {
	go func() {
		runSweep(watchlist)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			runSweep(watchlist)
		}
	}()

	log.Println("[cron] deadline watcher started – runs every 24 h")
}

// runSweep re-aggregates the watchlist and logs every claim that needs
// seller attention: urgent claims still have an evidence window, expired
// ones are past saving.
func runSweep(watchlist *claims.Watchlist) {
	now := time.Now()
	summary := claims.BuildDashboard(watchlist.Snapshot(), now)

	for _, detail := range summary.OrderDetails {
		switch detail.Status {
		case models.StatusUrgent:
			log.Printf("[cron] 🚨 order %s: %s left before the claim window closes – submit evidence",
				detail.OrderID, detail.TimeLeftEN)
		case models.StatusExpired:
			log.Printf("[cron] ❌ order %s: claim window closed (deadline %s)",
				detail.OrderID, detail.Deadline)
		case models.StatusError:
			log.Printf("[cron] ⚠️ order %s: unreadable order date %q", detail.OrderID, detail.OrderDate)
		}
	}

	log.Printf("[cron] deadline sweep complete – %d tracked, %d expired, %d urgent, %d safe",
		summary.TotalOrders, summary.ExpiredOrders, summary.UrgentOrders, summary.SafeOrders)
}
