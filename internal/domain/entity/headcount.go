package entity

// HeadcountStats is the resolved occupancy of a convoy.
//
// Invariants: ConfirmedHeadcount >= LeaderPartySize >= 1 and
// MaxHeadcount >= 1. AvailableHeadcount is advisory only — it is clamped to
// zero and is not required to equal MaxHeadcount - ConfirmedHeadcount.
type HeadcountStats struct {
	MaxHeadcount       int `json:"max_headcount"`
	LeaderPartySize    int `json:"leader_party_size"`
	ConfirmedHeadcount int `json:"confirmed_headcount"`
	PendingHeadcount   int `json:"pending_headcount"`
	AvailableHeadcount int `json:"available_headcount"`
}

// ConvoyCapacity is the narrow capacity-only projection of a convoy record,
// used as the second fallback when the full record cannot be read.
type ConvoyCapacity struct {
	MaxHeadcount    int `json:"max_headcount"`
	LeaderPartySize int `json:"leader_party_size"`
}
