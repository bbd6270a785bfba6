// Package order implements the ordering-hours gate and the pickup-slot
// generator. The gate is a pure predicate re-derived at every decision
// point; no timer state lives here. Clients that want a live indicator
// re-poll the window field included in API responses.
package order

import "time"

// Ordering hours: orders may be placed from OpenHour up to (not including)
// CloseHour, local time.
const (
	OpenHour  = 9
	CloseHour = 17
)

// IsOpen reports whether the ordering window is open at the given instant.
func IsOpen(now time.Time) bool {
	h := now.Hour()
	return h >= OpenHour && h < CloseHour
}
