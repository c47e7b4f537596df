package notification

import "time"

// IsActiveAt reports whether a recipient last seen at lastActiveAt counts as
// active for the given threshold at the reference time. A recipient seen
// exactly threshold ago still counts as active (<= comparison). A nil
// lastActiveAt means no record exists and the recipient is inactive; absence
// is a valid state, never an error.
//
// Timestamps are last-write-wins with no monotonic guard: an out-of-order
// heartbeat that regresses the stored value is accepted silently.
func IsActiveAt(lastActiveAt *time.Time, threshold time.Duration, now time.Time) bool {
	if lastActiveAt == nil {
		return false
	}
	return now.Sub(*lastActiveAt) <= threshold
}
