// Package poller runs the tracking loop as a delivery alongside the HTTP
// server.
package poller

import (
	"context"
	"log/slog"

	"convoytrack/internal/delivery"
	"convoytrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pollerServer struct {
	logger     *slog.Logger
	trackingUC usecase.TrackingUsecase
}

// ServerParams holds dependencies for the poller server
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	TrackingUC usecase.TrackingUsecase
}

// NewServer creates the delivery wrapping the tracking poll loop
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pollerServer{
		logger:     params.Logger,
		trackingUC: params.TrackingUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the polling loop until the loop stops
func (s *pollerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting tracking poller")
	if err := s.trackingUC.Run(ctx); err != nil {
		return errors.Wrap(err, "tracking poller stopped")
	}

	return nil
}

// stop signals the polling loop to exit
func (s *pollerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down tracking poller")
	s.trackingUC.Stop()

	return nil
}
