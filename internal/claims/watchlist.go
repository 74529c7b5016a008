package claims

import (
	"errors"
	"sync"

	"safet-backend/internal/models"
)

// Watchlist errors surfaced to the API layer.
var (
	ErrInvalidOrderID   = errors.New("order ID does not match the required format")
	ErrInvalidOrderDate = errors.New("order date is not a valid YYYY-MM-DD date")
)

// Watchlist is the in-memory set of claims the dashboard tracks.
// Statuses are never stored here — every read re-evaluates against
// the current clock. A fresh watchlist starts out with the demo batch.
type Watchlist struct {
	mu     sync.Mutex
	claims []models.OrderClaim
}

// NewWatchlist returns a watchlist seeded with the demonstration batch.
func NewWatchlist() *Watchlist {
	return &Watchlist{claims: DemoBatch()}
}

// Add registers a claim for tracking. The identifier and date formats
// are checked up front so the watchlist never accumulates entries the
// aggregator would silently drop. Re-adding an existing order ID
// replaces its date rather than duplicating the claim.
func (w *Watchlist) Add(claim models.OrderClaim) error {
	if !ValidOrderID(claim.OrderID) {
		return ErrInvalidOrderID
	}
	if _, err := ParseOrderDate(claim.OrderDate); err != nil {
		return ErrInvalidOrderDate
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for i, existing := range w.claims {
		if existing.OrderID == claim.OrderID {
			w.claims[i] = claim
			return nil
		}
	}
	w.claims = append(w.claims, claim)
	return nil
}

// Snapshot returns a copy of the tracked claims.
func (w *Watchlist) Snapshot() []models.OrderClaim {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.OrderClaim, len(w.claims))
	copy(out, w.claims)
	return out
}

// Len reports how many claims are tracked.
func (w *Watchlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.claims)
}
