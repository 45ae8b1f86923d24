package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

type stubBookingService struct {
	createFn func(ctx context.Context, userID string, input ports.BookingInput) (*domain.Booking, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.BookingWithPlace, error)
}

func (s *stubBookingService) Create(ctx context.Context, userID string, input ports.BookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubBookingService) ListForUser(ctx context.Context, userID string) ([]*domain.BookingWithPlace, error) {
	return s.listFn(ctx, userID)
}

const bookingJSON = `{
	"place": "place_1",
	"checkIn": "2026-09-10",
	"checkOut": "2026-09-12",
	"numberOfGuests": 2,
	"name": "Ann",
	"phone": "+1 555 0100",
	"price": 240
}`

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, userID string, input ports.BookingInput) (*domain.Booking, error) {
			if userID != "user_1" {
				t.Fatalf("expected session user, got %s", userID)
			}
			if input.Place != "place_1" || input.CheckIn != "2026-09-10" {
				t.Fatalf("request not mapped: %+v", input)
			}
			return &domain.Booking{ID: "booking_1", User: userID, Place: input.Place}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(bookingJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "booking_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Create_OverlapPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, userID string, input ports.BookingInput) (*domain.Booking, error) {
			return nil, domain.ErrDatesUnavailable
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(bookingJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.Create(c); !errors.Is(err, domain.ErrDatesUnavailable) {
		t.Fatalf("expected ErrDatesUnavailable, got %v", err)
	}
}

func TestBookingHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"place":"place_1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestBookingHandler_List_EmbedsPlace(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		listFn: func(ctx context.Context, userID string) ([]*domain.BookingWithPlace, error) {
			return []*domain.BookingWithPlace{
				{
					Booking: domain.Booking{ID: "booking_1", User: userID, Place: "place_1", CheckIn: "2026-09-10"},
					Place:   &domain.Place{ID: "place_1", Title: "Loft"},
				},
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(resp))
	}
	// The place reference must serialize as the full listing object.
	place, ok := resp[0]["place"].(map[string]any)
	if !ok {
		t.Fatalf("place not embedded as object: %v", resp[0]["place"])
	}
	if place["title"] != "Loft" {
		t.Fatalf("unexpected embedded place: %+v", place)
	}
}
