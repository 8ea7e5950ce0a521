// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/errors"
)

// ErrConvoyNotFound is returned when a convoy record does not exist at all.
var ErrConvoyNotFound = errors.New("convoy not found")

// ConvoyRepository defines the read interface over the convoy data source.
type ConvoyRepository interface {
	// FindActiveConvoys returns the convoys currently on the road, including
	// the denormalized leader display name.
	FindActiveConvoys(ctx context.Context) ([]*entity.ConvoySnapshot, error)

	// FindPlannedConvoys returns the convoys that are planned but not yet
	// departed.
	FindPlannedConvoys(ctx context.Context) ([]*entity.ConvoySnapshot, error)

	// FindConvoyByID retrieves a single convoy record. Returns
	// ErrConvoyNotFound when the record does not exist.
	FindConvoyByID(ctx context.Context, id string) (*entity.ConvoySnapshot, error)

	// FindConvoyCapacity retrieves only the capacity fields of a convoy, as a
	// narrower fallback when the full record cannot be read. Returns
	// ErrConvoyNotFound when the record does not exist.
	FindConvoyCapacity(ctx context.Context, id string) (*entity.ConvoyCapacity, error)

	// HasLivePositionFeed reports whether the convoy source carries the
	// live leader-position fields at all. Checked once per session to surface
	// the proximity-unavailable advisory.
	HasLivePositionFeed(ctx context.Context) (bool, error)
}
