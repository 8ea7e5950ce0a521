package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"convoytrack/internal/delivery/http/response"
	"convoytrack/internal/domain/entity"
	domainerrors "convoytrack/internal/domain/errors"
	"convoytrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConvoyHandlerParams holds dependencies for ConvoyHandler, injected by Fx.
type ConvoyHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	ListingUC  usecase.ListingUsecase
	Logger     *slog.Logger
}

// ConvoyHandler serves the convoy dashboard lists off the latest published
// tracking tick.
type ConvoyHandler struct {
	trackingUC usecase.TrackingUsecase
	listingUC  usecase.ListingUsecase
	logger     *slog.Logger
}

// NewConvoyHandler is the constructor for ConvoyHandler
func NewConvoyHandler(params ConvoyHandlerParams) *ConvoyHandler {
	return &ConvoyHandler{
		trackingUC: params.TrackingUC,
		listingUC:  params.ListingUC,
		logger:     params.Logger,
	}
}

// ConvoyListResponse is the list payload plus the tick metadata the
// dashboard shows alongside it.
type ConvoyListResponse struct {
	Convoys               []*entity.ConvoyView `json:"convoys"`
	Ticked                string               `json:"ticked"`
	RefreshFailed         bool                 `json:"refresh_failed"`
	PositionFeedAvailable bool                 `json:"position_feed_available"`
}

// ListConvoys handles filtering and sorting the convoy lists.
func (h *ConvoyHandler) ListConvoys(c echo.Context) error {
	tick := h.trackingUC.Latest()
	if tick == nil {
		return h.handleAppError(c, domainerrors.ErrTrackingUnavailable)
	}

	kind := usecase.ConvoyListKind(c.QueryParam("kind"))
	if kind != usecase.ConvoyListPlanned {
		kind = usecase.ConvoyListActive
	}

	filter := usecase.ConvoyFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Route:    c.QueryParam("route"),
	}
	if raw := c.QueryParam("radius_km"); raw != "" {
		// Unparseable input still enables the filter; the listing layer clamps
		// non-positive values to the default radius.
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			radius = -1
		}
		filter.RadiusKm = &radius
	}

	mode := usecase.ParseSortMode(c.QueryParam("sort"))
	convoys := h.listingUC.ListConvoys(tick, kind, filter, mode)

	return response.Success(c, http.StatusOK, &ConvoyListResponse{
		Convoys:               convoys,
		Ticked:                tick.Ticked.Format(http.TimeFormat),
		RefreshFailed:         tick.RefreshFailed,
		PositionFeedAvailable: tick.PositionFeedAvailable,
	}, "Convoys retrieved successfully")
}

// handleAppError handles application errors
func (h *ConvoyHandler) handleAppError(c echo.Context, err error) error {
	return handleAppError(c, err)
}
