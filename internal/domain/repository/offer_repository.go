package repository

import (
	"context"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrDuplicateOffer is returned when an identical offer already exists.
	ErrDuplicateOffer = errors.New("offer already exists")
)

// OfferRepository defines the interface for offer-related database
// operations. Archive membership is never stored — it is derived from the
// full offer list by the offer usecase.
type OfferRepository interface {
	// CreateOffer persists a new offer.
	CreateOffer(ctx context.Context, offer *entity.OfferRecord) error

	// FindOfferByID retrieves an offer by its unique ID.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.OfferRecord, error)

	// FindOffersByBusiness retrieves all offers a business has sent,
	// including the denormalized convoy summary and captain display name.
	FindOffersByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.OfferRecord, error)

	// UpdateOfferStatus updates the status of an offer.
	UpdateOfferStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error
}
