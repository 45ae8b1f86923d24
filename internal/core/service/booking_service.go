package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// BookingService implements booking creation and retrieval.
type BookingService struct {
	bookings ports.BookingRepository
	places   ports.PlaceRepository
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, places ports.PlaceRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, places: places, logger: logger}
}

// Create persists a booking tied to userID. The referenced place must exist,
// and the requested date range must not overlap an existing booking for the
// same place.
func (s *BookingService) Create(ctx context.Context, userID string, input ports.BookingInput) (*domain.Booking, error) {
	if _, err := s.places.FindByID(ctx, input.Place); err != nil {
		return nil, err
	}

	overlapping, err := s.bookings.CountOverlapping(ctx, input.Place, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		s.logger.Info().
			Str("place", input.Place).
			Str("check_in", input.CheckIn).
			Str("check_out", input.CheckOut).
			Msg("booking rejected: dates unavailable")
		return nil, domain.ErrDatesUnavailable
	}

	booking := &domain.Booking{
		Place:          input.Place,
		User:           userID,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		NumberOfGuests: input.NumberOfGuests,
		Name:           input.Name,
		Phone:          input.Phone,
		Price:          input.Price,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("place", input.Place).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.ID).Str("user", userID).Msg("booking created")
	return created, nil
}

// ListForUser returns the user's bookings with each place reference resolved
// into the full listing record. A booking whose place has vanished keeps a
// nil place rather than failing the whole list.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]*domain.BookingWithPlace, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.BookingWithPlace, 0, len(bookings))
	for _, b := range bookings {
		place, err := s.places.FindByID(ctx, b.Place)
		if err != nil && err != domain.ErrPlaceNotFound {
			return nil, err
		}
		out = append(out, &domain.BookingWithPlace{Booking: *b, Place: place})
	}
	return out, nil
}
