package organization

import "time"

// expiringSoonDays is the bucket boundary: a subscription ending within
// this many days counts as expiring soon.
const expiringSoonDays = 7

// ExpiryBucket derives the subscription lifecycle bucket and the
// days-until-expiration count from a subscription end date. It mirrors
// the server-side computation so list payloads missing the derived
// fields still render consistently.
func ExpiryBucket(endDate *time.Time, activeSubscriptions int, now time.Time) (status string, days *int) {
	if endDate == nil || activeSubscriptions == 0 {
		return "none", nil
	}

	d := int(endDate.Sub(now).Hours() / 24)
	days = &d

	switch {
	case d < 0:
		status = "expired"
	case d <= expiringSoonDays:
		status = "expiring_soon"
	default:
		status = "active"
	}
	return status, days
}
