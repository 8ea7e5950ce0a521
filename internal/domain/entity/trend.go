package entity

// Trend is the classified direction of change in distance between a convoy
// and the merchant.
type Trend string

const (
	// TrendUnknown is the initial value, emitted only for a convoy's first
	// distance sample. It is never re-entered once a second sample exists.
	TrendUnknown Trend = "unknown"
	// TrendApproaching means the convoy is clearly getting closer.
	TrendApproaching Trend = "approaching"
	// TrendPassed means the convoy came within the proximity floor and is now
	// clearly receding — it went by.
	TrendPassed Trend = "passed"
	// TrendAway means the convoy is clearly receding without having passed.
	TrendAway Trend = "away"
	// TrendStable means the change stayed inside the jitter dead band.
	TrendStable Trend = "stable"
)

// DistanceState is the per-convoy classifier state carried across ticks. It
// is created on the first sample for a convoy, updated every tick the convoy
// has a reconciled position, and discarded when the convoy leaves the active
// set. MinSeenDistanceKm is a monotonically non-increasing floor; it never
// resets for the lifetime of the state.
type DistanceState struct {
	LastDistanceKm    float64 `json:"last_distance_km"`
	MinSeenDistanceKm float64 `json:"min_seen_distance_km"`
	Trend             Trend   `json:"trend"`
}
