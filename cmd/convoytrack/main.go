package main

import (
	"context"
	"log/slog"
	"os"

	"convoytrack/config"
	"convoytrack/internal/delivery"
	"convoytrack/internal/delivery/http"
	"convoytrack/internal/delivery/http/router/handler"
	"convoytrack/internal/delivery/poller"
	"convoytrack/internal/domain/service"
	"convoytrack/internal/infra/geolocation"
	"convoytrack/internal/infra/headcount"
	logs "convoytrack/internal/infra/log"
	"convoytrack/internal/infra/persistence/postgres"
	"convoytrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConvoyRepository,
			postgres.NewRosterRepository,
			postgres.NewOfferRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newHeadcountClient,
			newDeviceLocator,
		),
	)
}

// newHeadcountClient creates the bulk headcount client from config
func newHeadcountClient(cfg *config.Config) service.BulkHeadcountClient {
	headcountCfg := cfg.Headcount
	if headcountCfg == nil {
		headcountCfg = &config.HeadcountConfig{}
	}

	return headcount.NewHTTPClient(headcountCfg)
}

// newDeviceLocator creates the merchant device locator from config
func newDeviceLocator(cfg *config.Config) service.DeviceLocator {
	geoCfg := cfg.Geolocation
	if geoCfg == nil {
		geoCfg = &config.GeolocationConfig{}
	}

	return geolocation.NewHTTPLocator(geoCfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHeadcountService,
			impl.NewTrackingService,
			impl.NewListingService,
			impl.NewOfferService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConvoyHandler,
			handler.NewOfferHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
