package ports

import (
	"context"

	"github.com/stayloop/booking-api/internal/core/domain"
)

// BookingInput carries the booking fields supplied by the client.
type BookingInput struct {
	Place          string
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	Name           string
	Phone          string
	Price          float64
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	// Create persists a booking tied to userID. It returns
	// domain.ErrPlaceNotFound when the referenced listing does not exist and
	// domain.ErrDatesUnavailable when the date range overlaps an existing
	// booking for the same place.
	Create(ctx context.Context, userID string, input BookingInput) (*domain.Booking, error)
	// ListForUser returns the user's bookings with each place reference
	// resolved into the full listing record.
	ListForUser(ctx context.Context, userID string) ([]*domain.BookingWithPlace, error)
}
