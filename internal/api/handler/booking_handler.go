package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/api/metrics"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type bookingRequest struct {
	Place          string  `json:"place"          validate:"required"`
	CheckIn        string  `json:"checkIn"        validate:"required"`
	CheckOut       string  `json:"checkOut"       validate:"required"`
	NumberOfGuests int     `json:"numberOfGuests" validate:"required,gt=0"`
	Name           string  `json:"name"           validate:"required"`
	Phone          string  `json:"phone"          validate:"required"`
	Price          float64 `json:"price"          validate:"required,gt=0"`
}

// Create handles POST /bookings — books a listing for the caller.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequest  true  "Booking fields"
// @Success      200   {object}  domain.Booking
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), userID, ports.BookingInput{
		Place:          req.Place,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		NumberOfGuests: req.NumberOfGuests,
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          req.Price,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, booking)
}

// List handles GET /bookings — the caller's bookings with each place
// reference resolved into the full listing record.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.BookingWithPlace
// @Failure      401  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
