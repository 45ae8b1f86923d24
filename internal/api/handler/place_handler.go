package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/api/metrics"
	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// PlaceHandler handles HTTP requests for property listings.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// Create handles POST /places — creates a listing owned by the caller.
//
// @Summary      Create a listing
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        body  body      placeRequest  true  "Listing fields"
// @Success      200   {object}  domain.Place
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	place, err := h.service.Create(c.Request().Context(), userID, toPlaceInput(req))
	if err != nil {
		return err
	}

	metrics.PlacesCreatedTotal.Inc()
	return c.JSON(http.StatusOK, place)
}

// ListOwned handles GET /user-places — listings owned by the caller.
//
// @Summary      List the caller's listings
// @Tags         places
// @Produce      json
// @Success      200  {array}   domain.Place
// @Failure      401  {object}  errorResponse
// @Router       /user-places [get]
func (h *PlaceHandler) ListOwned(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	places, err := h.service.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, places)
}

// Get handles GET /places/:id — public listing lookup. An unknown id yields
// a null body rather than 404, matching what the listing page expects.
//
// @Summary      Get a listing by id
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.Place
// @Router       /places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	place, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}
	return c.JSON(http.StatusOK, place)
}

// ListAll handles GET /places — every listing, no pagination.
//
// @Summary      List all listings
// @Tags         places
// @Produce      json
// @Success      200  {array}  domain.Place
// @Router       /places [get]
func (h *PlaceHandler) ListAll(c echo.Context) error {
	places, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, places)
}

// Update handles PUT /places — owner-checked in-place update.
//
// @Summary      Update a listing
// @Tags         places
// @Accept       json
// @Produce      json
// @Param        body  body      updatePlaceRequest  true  "Listing id and fields"
// @Success      200   {string}  string  "ok"
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /places [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), userID, req.ID, toPlaceInput(req.placeRequest)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, "ok")
}

// toPlaceInput maps the HTTP request to the service DTO.
func toPlaceInput(req placeRequest) ports.PlaceInput {
	return ports.PlaceInput{
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.AddedPhotos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
	}
}
