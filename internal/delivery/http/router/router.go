// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"convoytrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConvoyHandler *handler.ConvoyHandler
	OfferHandler  *handler.OfferHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	convoyHandler *handler.ConvoyHandler
	offerHandler  *handler.OfferHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		convoyHandler: params.ConvoyHandler,
		offerHandler:  params.OfferHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/convoys", r.convoyHandler.ListConvoys)

		api.GET("/offers", r.offerHandler.ListOffers)
		api.GET("/offers/counts", r.offerHandler.OfferCounts)
		api.POST("/offers", r.offerHandler.SendOffer)
		api.PATCH("/offers/:id/status", r.offerHandler.UpdateOfferStatus)
	}
}
