package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/api/metrics"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// PaymentHandler initiates hosted checkout sessions.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentSessionRequest struct {
	BookingID string  `json:"bookingId" validate:"required"`
	Amount    float64 `json:"amount"    validate:"required,gt=0"`
}

type createPaymentSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CreateSession handles POST /create-payment-session — delegates to the
// payment provider and returns the opaque session id for client-side
// redirect. Completion is never verified server-side.
//
// @Summary      Create a hosted checkout session
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentSessionRequest  true  "Booking id and amount"
// @Success      200   {object}  createPaymentSessionResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /create-payment-session [post]
func (h *PaymentHandler) CreateSession(c echo.Context) error {
	var req createPaymentSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sessionID, err := h.service.CreateSession(c.Request().Context(), req.BookingID, req.Amount)
	if err != nil {
		metrics.PaymentSessionsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create payment session"})
	}

	metrics.PaymentSessionsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, createPaymentSessionResponse{SessionID: sessionID})
}
