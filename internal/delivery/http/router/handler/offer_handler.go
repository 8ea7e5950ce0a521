package handler

import (
	"log/slog"
	"net/http"

	"convoytrack/internal/delivery/http/response"
	"convoytrack/internal/domain/entity"
	domainerrors "convoytrack/internal/domain/errors"
	"convoytrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessIDHeader carries the merchant identity until the gateway's auth
// layer is wired in front of this service.
const businessIDHeader = "X-Business-ID"

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// SendOfferRequest represents the request body for sending an offer
type SendOfferRequest struct {
	ConvoyID  string  `json:"convoy_id" validate:"required"`
	CaptainID string  `json:"captain_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Details   string  `json:"details"`
	CouponID  *string `json:"coupon_id,omitempty"`
}

// UpdateOfferStatusRequest represents the request body for a status change
type UpdateOfferStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SendOffer handles creating a new pending offer
func (h *OfferHandler) SendOffer(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	var req SendOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SendOfferInput{
		ConvoyID:  req.ConvoyID,
		CaptainID: req.CaptainID,
		Title:     req.Title,
		Details:   req.Details,
		CouponID:  req.CouponID,
	}

	offer, err := h.offerUC.SendOffer(c.Request().Context(), businessID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer sent successfully")
}

// UpdateOfferStatus handles a raw status transition on an offer
func (h *OfferHandler) UpdateOfferStatus(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req UpdateOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	offer, err := h.offerUC.UpdateOfferStatus(c.Request().Context(), offerID, req.Status)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer status updated successfully")
}

// ListOffers handles retrieving the filtered, ordered offer view
func (h *OfferHandler) ListOffers(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	filter := usecase.OfferFilter{
		Search:          c.QueryParam("search"),
		IncludeArchived: c.QueryParam("include_archived") == "true",
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.NormalizeOfferStatus(raw)
		filter.Status = &status
	}

	mode := usecase.ParseSortMode(c.QueryParam("sort"))

	result, err := h.offerUC.ListOffers(c.Request().Context(), businessID, filter, mode)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Offers retrieved successfully")
}

// OfferCounts handles retrieving the dashboard KPI counters
func (h *OfferHandler) OfferCounts(c echo.Context) error {
	businessID, err := h.getBusinessID(c)
	if err != nil {
		return err
	}

	counts, err := h.offerUC.OfferCounts(c.Request().Context(), businessID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counts, "Offer counts retrieved successfully")
}

// getBusinessID extracts the business ID from the request header
func (h *OfferHandler) getBusinessID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(businessIDHeader)
	if raw == "" {
		return uuid.Nil, response.Unauthorized(c, "MISSING_BUSINESS_ID", "Business ID header is required")
	}

	businessID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_BUSINESS_ID", "Invalid business ID header")
	}

	return businessID, nil
}

// handleAppError handles application errors
func (h *OfferHandler) handleAppError(c echo.Context, err error) error {
	return handleAppError(c, err)
}

func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
