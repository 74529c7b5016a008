package claims

import "fmt"

// ── Appeal Reason Codes ──────────────────────────────────────────
// Closed set. Unknown values get a fixed rejection string, never an error.

const (
	ReasonEmptyBox = "EMPTY_BOX" // returned parcel weighs less than what shipped
	ReasonDamaged  = "DAMAGED"   // item came back damaged by the buyer
	ReasonSwitched = "SWITCHED"  // a different item was returned
)

// appealTemplates holds the fixed English drafts, keyed by reason code.
// The %s placeholder receives the order identifier.
var appealTemplates = map[string]string{
	ReasonEmptyBox: "SAFE-T Appeal for order %s: the carrier-recorded shipped weight " +
		"significantly exceeds the returned parcel weight, indicating the item was " +
		"removed before the return was sent. Weight records and package photos are " +
		"attached as evidence. We request full reimbursement.",
	ReasonDamaged: "SAFE-T Appeal for order %s: the item was returned in a damaged, " +
		"unsellable condition that does not match its outbound inspection photos. " +
		"Comparison photos are attached as evidence. We request reimbursement for " +
		"the loss in value.",
	ReasonSwitched: "SAFE-T Appeal for order %s: the returned item is not the item " +
		"we shipped — the serial number and product photos do not match our " +
		"fulfillment records. Evidence of the substitution is attached. We request " +
		"full reimbursement.",
}

// Rejection strings for invalid appeal input. These are user-facing
// values, not errors: a bad request never aborts the caller.
const (
	rejectOrderID = "Cannot draft appeal: order ID must match the format 123-4567-890."
	rejectReason  = "Cannot draft appeal: unsupported reason code %q. " +
		"Supported: EMPTY_BOX, DAMAGED, SWITCHED."
)

// AppealDraft renders the fixed appeal template for a reason code.
// The order identifier is re-validated here — this function does not
// trust that validation happened upstream. Every failure path returns
// a readable rejection string in place of a draft.
func AppealDraft(reason, orderID string) string {
	if !ValidOrderID(orderID) {
		return rejectOrderID
	}
	tmpl, ok := appealTemplates[reason]
	if !ok {
		return fmt.Sprintf(rejectReason, reason)
	}
	return fmt.Sprintf(tmpl, orderID)
}

// ValidReason reports whether the reason code is in the closed set.
func ValidReason(reason string) bool {
	_, ok := appealTemplates[reason]
	return ok
}
