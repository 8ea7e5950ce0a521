// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// ConvoyStatus classifies a convoy as currently traveling or still planned.
type ConvoyStatus string

const (
	// ConvoyStatusActive marks a convoy that is on the road right now.
	ConvoyStatusActive ConvoyStatus = "active"
	// ConvoyStatusPending marks a convoy that is planned but not yet departed.
	ConvoyStatusPending ConvoyStatus = "pending"
)

// Coordinate is a geographic point. A missing position is always represented
// as a nil *Coordinate, never as the zero value: (0, 0) is a legitimate
// location in the Gulf of Guinea, not a sentinel.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to an orb.Point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// ReconciledPosition is the best-known leader position for a convoy after
// merging the available feeds. ObservedAt is nil when the winning source
// carried no timestamp; such a position is valid but loses every tie-break
// against a timestamped competitor.
type ReconciledPosition struct {
	Position   Coordinate `json:"position"`
	ObservedAt *time.Time `json:"observed_at,omitempty"`
}

// ConvoySnapshot is one convoy's known state at a polling tick. Snapshots are
// replaced wholesale every tick; consumers must not hold references across
// ticks.
type ConvoySnapshot struct {
	ID            string       `json:"id"`   // Opaque, stable for the convoy's lifetime.
	Name          string       `json:"name"` // Display name shown on the dashboard.
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Status        ConvoyStatus `json:"status"`
	StartLocation string       `json:"start_location"` // Free-text origin, e.g. "Şişli Otogarı".
	EndLocation   string       `json:"end_location"`
	StartTime     time.Time    `json:"start_time"`
	LeaderID      string       `json:"leader_id"`
	LeaderName    string       `json:"leader_name"` // Denormalized display name from the convoy source.

	DeclaredCapacity        int `json:"declared_capacity"`
	DeclaredLeaderPartySize int `json:"declared_leader_party_size"`

	// RawLeaderPosition is the convoy-level position pushed directly by the
	// leader's device, before reconciliation against the roster feed.
	RawLeaderPosition *ReconciledPosition `json:"raw_leader_position,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
