// Package service defines the interfaces for outbound integrations.
package service

import "context"

// BulkHeadcountRow is one row of the bulk headcount response, keyed by
// convoy ID. Fields are raw numbers as returned by the remote aggregate and
// must go through the floor-and-clamp normalization before use.
type BulkHeadcountRow struct {
	ConvoyID           string  `json:"convoy_id"`
	MaxHeadcount       float64 `json:"max_headcount"`
	LeaderPartySize    float64 `json:"leader_party_size"`
	ConfirmedHeadcount float64 `json:"confirmed_headcount"`
	PendingHeadcount   float64 `json:"pending_headcount"`
	AvailableHeadcount float64 `json:"available_headcount"`
}

// BulkHeadcountClient is the remote aggregate used as the primary headcount
// path. A transport-level error triggers the per-convoy local fallback; an
// empty but successful response does not.
type BulkHeadcountClient interface {
	FetchBulk(ctx context.Context, convoyIDs []string) ([]*BulkHeadcountRow, error)
}
