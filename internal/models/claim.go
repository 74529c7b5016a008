package models

// ── Core Claim ───────────────────────────────────────────────────

// OrderClaim is a raw SAFE-T claim as submitted by a seller:
// the marketplace order identifier and the order date without a
// time component.
type OrderClaim struct {
	OrderID   string `json:"orderId"`   // e.g. "114-9283-001"
	OrderDate string `json:"orderDate"` // "YYYY-MM-DD"
}

// ── Deadline Evaluation ──────────────────────────────────────────

// Claim severity tiers. Status is COMPUTED on every read from the
// order date and the reference clock — never stored.
const (
	StatusError   = "ERROR"   // malformed order date (input failure, not a time tier)
	StatusExpired = "EXPIRED" // at or past the 30-day deadline
	StatusUrgent  = "URGENT"  // 5 days or fewer remaining
	StatusSafe    = "SAFE"    // comfortably inside the window
)

// Presentation colors, one per status.
const (
	ColorOrange = "orange" // ERROR
	ColorGray   = "gray"   // EXPIRED
	ColorRed    = "red"    // URGENT
	ColorGreen  = "green"  // SAFE
)

// DeadlineResult is the full evaluation of one claim against the
// 30-day window. It is immutable once computed; callers re-evaluate
// rather than mutate when the reference clock advances.
type DeadlineResult struct {
	Status      string `json:"status"`      // ERROR | EXPIRED | URGENT | SAFE
	Color       string `json:"color"`       // presentation hint tied to Status
	Deadline    string `json:"deadline"`    // RFC 3339 deadline instant, "" on ERROR
	DaysLeft    int    `json:"daysLeft"`    // whole days remaining (raw, may be ≤ 0 when expired)
	HoursLeft   int    `json:"hoursLeft"`   // whole hours past the day component
	DiffSeconds int64  `json:"diffSeconds"` // signed seconds until deadline
	TimeLeftZH  string `json:"timeLeftZh"`  // e.g. "3天 5小时", "" on ERROR/EXPIRED
	TimeLeftEN  string `json:"timeLeftEn"`  // e.g. "3d 5h", "" on ERROR/EXPIRED
	MessageZH   string `json:"messageZh"`
	MessageEN   string `json:"messageEn"`
}

// ── Dashboard Aggregation ────────────────────────────────────────

// ClaimDetail is the per-claim record inside a dashboard summary.
type ClaimDetail struct {
	OrderID   string `json:"orderId"`
	OrderDate string `json:"orderDate"`
	DeadlineResult
}

// DashboardSummary is the aggregate view over a batch of claims.
// Built fresh per aggregation call; not persisted.
type DashboardSummary struct {
	TotalOrders   int           `json:"totalOrders"` // claims with a valid-format order ID
	ExpiredOrders int           `json:"expiredOrders"`
	UrgentOrders  int           `json:"urgentOrders"`
	SafeOrders    int           `json:"safeOrders"`
	OrderDetails  []ClaimDetail `json:"orderDetails"`
}

// ── API Requests ─────────────────────────────────────────────────

// CheckClaimRequest asks for a single deadline evaluation.
type CheckClaimRequest struct {
	OrderID   string `json:"orderId,omitempty"`
	OrderDate string `json:"orderDate"`
}

// BatchRequest carries an ad-hoc batch for stateless aggregation.
type BatchRequest struct {
	Claims []OrderClaim `json:"claims"`
}

// AppealRequest asks for an appeal draft for a disputed return.
// Mode "ai" requests the external generator; anything else (or a
// generator failure) yields the built-in template.
type AppealRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"` // EMPTY_BOX | DAMAGED | SWITCHED
	Mode    string `json:"mode,omitempty"`
}

// AppealResponse returns the draft plus where it came from.
type AppealResponse struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
	Source  string `json:"source"` // "template" | "ai"
	Draft   string `json:"draft"`
}

// Validate checks the appeal request contains the required fields.
func (r *AppealRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.OrderID == "" {
		errors["orderId"] = "Order ID is required"
	}
	if r.Reason == "" {
		errors["reason"] = "Appeal reason is required"
	}
	return errors
}
