package entity

import "time"

// ConvoyView is one convoy as the dashboard sees it: the snapshot plus the
// derived proximity and occupancy data for this tick. Distance, bearing and
// headcount are nil when unknown — never zero-valued stand-ins.
type ConvoyView struct {
	Convoy     *ConvoySnapshot     `json:"convoy"`
	Position   *ReconciledPosition `json:"position,omitempty"`
	DistanceKm *float64            `json:"distance_km,omitempty"`
	BearingDeg *float64            `json:"bearing_deg,omitempty"` // Merchant-relative bearing, 0° = north.
	Trend      Trend               `json:"trend"`
	Headcount  *HeadcountStats     `json:"headcount,omitempty"`
}

// TrackingTick is the immutable snapshot published by the polling loop once
// per cycle. Consumers only ever read a published tick; the loop's mutable
// classifier state is never shared (copy-on-publish, not lock-based).
type TrackingTick struct {
	Ticked time.Time `json:"ticked"`

	// Origin is the merchant's best-known own position. Nil disables the
	// proximity filter and trend classification until a fix is obtained.
	Origin *Coordinate `json:"origin,omitempty"`

	Active  []*ConvoyView `json:"active"`
	Planned []*ConvoyView `json:"planned"`

	// PositionFeedAvailable is false when the convoy source lacks the
	// live-position fields entirely; the rest of the dashboard keeps working
	// while proximity data stays unknown.
	PositionFeedAvailable bool `json:"position_feed_available"`

	// RefreshFailed is set when the tick's primary queries failed and the
	// previously published data was carried over.
	RefreshFailed bool `json:"refresh_failed"`
}
