package service

import (
	"context"

	"convoytrack/internal/domain/entity"
)

// DeviceLocator is a best-effort single-shot position provider for the
// merchant's own device. Callers bound it with a timeout; a failure or
// timeout degrades to "no merchant-side origin" and must never be fatal.
type DeviceLocator interface {
	Locate(ctx context.Context) (*entity.Coordinate, error)
}
