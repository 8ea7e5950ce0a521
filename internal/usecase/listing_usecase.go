package usecase

import "convoytrack/internal/domain/entity"

// SortMode names the selectable orderings of the dashboard lists.
type SortMode string

const (
	// SortSmart prefers distance for active lists and start time for planned
	// lists; for offers it ranks by status, then recency.
	SortSmart SortMode = "smart"
	// SortClosest orders by ascending distance, unknown distances last.
	SortClosest SortMode = "closest"
	// SortHeadcount orders by descending confirmed headcount.
	SortHeadcount SortMode = "headcount"
	// SortStartTime orders by ascending start time.
	SortStartTime SortMode = "start_time"
	// SortRecent orders by descending creation time.
	SortRecent SortMode = "recent"
)

// ParseSortMode maps a raw query value onto a SortMode, falling back to
// smart for anything unrecognized (user input is clamped, never rejected).
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortClosest, SortHeadcount, SortStartTime, SortRecent:
		return SortMode(raw)
	default:
		return SortSmart
	}
}

// ConvoyListKind selects which convoy list a filter applies to.
type ConvoyListKind string

const (
	ConvoyListActive  ConvoyListKind = "active"
	ConvoyListPlanned ConvoyListKind = "planned"
)

// ConvoyFilter is the merchant-chosen filter configuration for convoy lists.
// Text matching is case- and diacritic-insensitive on both sides.
type ConvoyFilter struct {
	Category string
	Search   string // Matches name, description and leader display name.
	Route    string // Matches start/end location text.

	// RadiusKm enables the proximity filter. Convoys with unknown distance
	// are excluded while it is active. Out-of-range values are clamped.
	RadiusKm *float64
}

// ListingUsecase applies filters and named sort strategies to the convoy
// views of a published tick. It is pure and synchronous: the same tick and
// parameters always produce the same ordered view.
type ListingUsecase interface {
	ListConvoys(tick *entity.TrackingTick, kind ConvoyListKind, filter ConvoyFilter, mode SortMode) []*entity.ConvoyView
}
