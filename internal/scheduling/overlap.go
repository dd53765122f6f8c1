package scheduling

import "time"

// Window is a half-open appointment span [Start, End). The end instant is
// not part of the window, so back-to-back bookings that touch do not clash.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open windows share at least one instant:
// a.Start < b.End && b.Start < a.End.
func Overlaps(a, b Window) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
