package ports

import (
	"context"

	"github.com/stayloop/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// FindByUser returns every booking made by the given user id.
	FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	// CountOverlapping counts bookings for placeID whose [checkIn, checkOut)
	// range intersects the given one. Date strings compare lexicographically
	// because they are YYYY-MM-DD.
	CountOverlapping(ctx context.Context, placeID, checkIn, checkOut string) (int64, error)
}
