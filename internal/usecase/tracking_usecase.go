// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"convoytrack/internal/domain/entity"
)

// TrackingUsecase owns the merchant session's polling loop: one tick every
// period reconciles leader positions, classifies distance trends, resolves
// headcounts and publishes an immutable snapshot.
type TrackingUsecase interface {
	// Run drives the polling loop until ctx is canceled or Stop is called.
	// A new tick never starts before the previous one's calls have settled.
	Run(ctx context.Context) error

	// Stop tears the loop down. In-flight remote calls are not aborted;
	// their results are discarded on arrival.
	Stop()

	// Latest returns the most recently published tick, or nil before the
	// first tick completes.
	Latest() *entity.TrackingTick

	// Subscribe registers a tick consumer. Slow consumers miss ticks rather
	// than blocking the loop. The returned function cancels the
	// subscription.
	Subscribe(buffer int) (<-chan *entity.TrackingTick, func())
}
