// Package claims provides pure functions for SAFE-T claim deadline
// calculations. These functions have ZERO dependencies on HTTP, storage, or
// any other infrastructure — making them trivially testable and reusable.
package claims

import (
	"fmt"
	"regexp"
	"time"

	"safet-backend/internal/models"
)

// ── Policy Constants ─────────────────────────────────────────────
// Status is always computed from (orderDate, now). It is never stored.

const (
	// ClaimWindowDays is the fixed SAFE-T eligibility window measured
	// from the order date, evaluated in UTC.
	ClaimWindowDays = 30

	// UrgentThresholdDays marks the tier boundary: 5 whole days or
	// fewer remaining is URGENT (inclusive), 6 days is SAFE.
	UrgentThresholdDays = 5
)

const (
	dateLayout     = "2006-01-02"
	secondsPerDay  = 86400
	secondsPerHour = 3600
)

// orderIDPattern is the marketplace order identifier format:
// three digits, four digits, three digits, hyphen-separated, anchored.
var orderIDPattern = regexp.MustCompile(`^\d{3}-\d{4}-\d{3}$`)

// dateOnlyPattern rejects anything that is not a zero-padded
// YYYY-MM-DD before the calendar parse runs.
var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ── Identifier Validation ────────────────────────────────────────

// ValidOrderID reports whether id matches the order identifier format
// exactly. Empty input is false, never an error.
func ValidOrderID(id string) bool {
	return orderIDPattern.MatchString(id)
}

// ── Clock & Deadline Calculation ─────────────────────────────────

// ParseOrderDate strictly parses a YYYY-MM-DD calendar date.
// Out-of-range components ("2026-02-31") and any format deviation fail.
func ParseOrderDate(s string) (time.Time, error) {
	if !dateOnlyPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("order date %q is not in YYYY-MM-DD form", s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse order date %q: %w", s, err)
	}
	return t, nil
}

// ToUTCMidnight pins a calendar date to 00:00:00 UTC. The reference
// clock is captured separately by the caller so the two instants can
// never drift apart within one evaluation.
func ToUTCMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Deadline returns the claim deadline instant for an order date:
// UTC midnight of the order date plus the 30-day window.
func Deadline(orderDate time.Time) time.Time {
	return ToUTCMidnight(orderDate).AddDate(0, 0, ClaimWindowDays)
}

// ── Status Classification ────────────────────────────────────────

// Classify maps the remaining time to a severity tier. It acts on the
// sign of the raw second difference, not the decomposed day count, so
// the expiry boundary cannot oscillate on truncation.
// The boundary is inclusive on the expiry side: diff == 0 is EXPIRED.
func Classify(diffSeconds int64, daysLeft int) string {
	switch {
	case diffSeconds <= 0:
		return models.StatusExpired
	case daysLeft <= UrgentThresholdDays:
		return models.StatusUrgent
	default:
		return models.StatusSafe
	}
}

// colorFor ties each status to its presentation hint.
func colorFor(status string) string {
	switch status {
	case models.StatusExpired:
		return models.ColorGray
	case models.StatusUrgent:
		return models.ColorRed
	case models.StatusSafe:
		return models.ColorGreen
	default:
		return models.ColorOrange
	}
}

// ── Deadline Evaluation ──────────────────────────────────────────

// CheckDeadline evaluates one claim against the 30-day window at the
// given reference instant. A malformed date yields a terminal ERROR
// result rather than an error return; callers never see a failure
// cross this contract. Calling twice with the same inputs yields
// identical results — there is no hidden state.
func CheckDeadline(orderDateStr string, now time.Time) models.DeadlineResult {
	orderDate, err := ParseOrderDate(orderDateStr)
	if err != nil {
		return models.DeadlineResult{
			Status:    models.StatusError,
			Color:     models.ColorOrange,
			MessageZH: msgErrorZH,
			MessageEN: msgErrorEN,
		}
	}

	deadline := Deadline(orderDate)

	// Integer-second arithmetic throughout. Go's integer division
	// truncates toward zero, which is exactly the decomposition the
	// classifier expects on both sides of the boundary.
	diff := int64(deadline.Sub(now.UTC()) / time.Second)
	daysLeft := int(diff / secondsPerDay)
	hoursLeft := int((diff % secondsPerDay) / secondsPerHour)

	status := Classify(diff, daysLeft)

	res := models.DeadlineResult{
		Status:      status,
		Color:       colorFor(status),
		Deadline:    deadline.Format(time.RFC3339),
		DaysLeft:    daysLeft,
		HoursLeft:   hoursLeft,
		DiffSeconds: diff,
	}

	switch status {
	case models.StatusExpired:
		// Raw non-positive difference stays available in DaysLeft /
		// DiffSeconds; there is no remaining time to render.
		res.MessageZH = msgExpiredZH
		res.MessageEN = msgExpiredEN
	case models.StatusUrgent:
		res.TimeLeftZH = durationZH(daysLeft, hoursLeft)
		res.TimeLeftEN = durationEN(daysLeft, hoursLeft)
		res.MessageZH = fmt.Sprintf(msgUrgentZH, res.TimeLeftZH)
		res.MessageEN = fmt.Sprintf(msgUrgentEN, res.TimeLeftEN)
	default: // SAFE
		res.TimeLeftZH = durationZH(daysLeft, hoursLeft)
		res.TimeLeftEN = durationEN(daysLeft, hoursLeft)
		res.MessageZH = fmt.Sprintf(msgSafeZH, res.TimeLeftZH)
		res.MessageEN = fmt.Sprintf(msgSafeEN, res.TimeLeftEN)
	}

	return res
}

// ── Bilingual Rendering ──────────────────────────────────────────

const (
	msgErrorZH   = "⚠️ 日期格式无效，请使用 YYYY-MM-DD。"
	msgErrorEN   = "⚠️ Invalid order date: expected YYYY-MM-DD."
	msgExpiredZH = "❌ 已过期！无法索赔：已触发 30 天自动拒绝规则。"
	msgExpiredEN = "❌ Expired! The claim is past the 30-day auto-rejection window."
	msgUrgentZH  = "🚨 紧急！仅剩 %s，请立即提交证据链（重量对比/照片）。"
	msgUrgentEN  = "🚨 Urgent! Only %s left. Submit the evidence chain (weight comparison / photos) immediately."
	msgSafeZH    = "✅ 安全。剩余 %s 处理窗口。"
	msgSafeEN    = "✅ Safe. %s remaining in the claim window."
)

// durationZH renders remaining time in Chinese; the day component is
// dropped when no whole day remains.
func durationZH(days, hours int) string {
	if days > 0 {
		return fmt.Sprintf("%d天 %d小时", days, hours)
	}
	return fmt.Sprintf("%d小时", hours)
}

// durationEN renders remaining time in English.
func durationEN(days, hours int) string {
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}
