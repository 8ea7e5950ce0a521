package usecase

import (
	"context"

	"convoytrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SendOfferInput represents the input for sending a new offer to a convoy
// captain.
type SendOfferInput struct {
	ConvoyID  string  `json:"convoy_id"`
	CaptainID string  `json:"captain_id"`
	Title     string  `json:"title"`
	Details   string  `json:"details"`
	CouponID  *string `json:"coupon_id,omitempty"`
}

// OfferFilter is the merchant-chosen filter configuration for offer lists.
type OfferFilter struct {
	Status          *entity.OfferStatus
	Search          string // Matches title, convoy name and captain name.
	IncludeArchived bool   // Explicit toggle for the derived archive view.
}

// OfferListResult is an ordered, filtered offer view plus the derived
// archive partition sizes for the same business.
type OfferListResult struct {
	Offers        []*entity.OfferRecord `json:"offers"`
	ActiveCount   int                   `json:"active_count"`
	ArchivedCount int                   `json:"archived_count"`
}

// OfferCounts are the dashboard KPI counters. Pending counts only
// non-archived pending offers; Active counts all non-archived offers.
type OfferCounts struct {
	Pending  int                        `json:"pending"`
	Active   int                        `json:"active"`
	Archived int                        `json:"archived"`
	Total    int                        `json:"total"`
	ByStatus map[entity.OfferStatus]int `json:"by_status"`
}

// OfferUsecase manages the offer lifecycle and the derived archive
// partition.
type OfferUsecase interface {
	// SendOffer creates a new pending offer.
	SendOffer(ctx context.Context, businessID uuid.UUID, input *SendOfferInput) (*entity.OfferRecord, error)

	// UpdateOfferStatus normalizes the raw status value and persists it.
	UpdateOfferStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entity.OfferRecord, error)

	// ListOffers returns the filtered, ordered offer view for a business.
	ListOffers(ctx context.Context, businessID uuid.UUID, filter OfferFilter, mode SortMode) (*OfferListResult, error)

	// OfferCounts returns the KPI counters for a business.
	OfferCounts(ctx context.Context, businessID uuid.UUID) (*OfferCounts, error)
}
