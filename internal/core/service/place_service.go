package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// PlaceService implements listing creation, lookup, and owner-scoped updates.
type PlaceService struct {
	repo   ports.PlaceRepository
	logger zerolog.Logger
}

func NewPlaceService(repo ports.PlaceRepository, logger zerolog.Logger) *PlaceService {
	return &PlaceService{repo: repo, logger: logger}
}

func (s *PlaceService) Create(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error) {
	place := &domain.Place{
		Owner:       ownerID,
		Title:       input.Title,
		Address:     input.Address,
		Photos:      input.Photos,
		Description: input.Description,
		Perks:       input.Perks,
		ExtraInfo:   input.ExtraInfo,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		MaxGuests:   input.MaxGuests,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, place)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", ownerID).Msg("failed to create place")
		return nil, err
	}

	s.logger.Info().Str("place_id", created.ID).Str("owner", ownerID).Msg("place created")
	return created, nil
}

func (s *PlaceService) Get(ctx context.Context, id string) (*domain.Place, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlaceService) ListOwned(ctx context.Context, ownerID string) ([]*domain.Place, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *PlaceService) ListAll(ctx context.Context) ([]*domain.Place, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the client-editable fields of a listing. Only the stored
// owner may update; anyone else gets domain.ErrForbidden and the record is
// left untouched.
func (s *PlaceService) Update(ctx context.Context, requesterID, id string, input ports.PlaceInput) error {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if place.Owner != requesterID {
		s.logger.Warn().
			Str("place_id", id).
			Str("requester", requesterID).
			Str("owner", place.Owner).
			Msg("update rejected: requester is not the owner")
		return domain.ErrForbidden
	}

	place.Title = input.Title
	place.Address = input.Address
	place.Photos = input.Photos
	place.Description = input.Description
	place.Perks = input.Perks
	place.ExtraInfo = input.ExtraInfo
	place.CheckIn = input.CheckIn
	place.CheckOut = input.CheckOut
	place.MaxGuests = input.MaxGuests
	place.Price = input.Price

	if err := s.repo.Update(ctx, place); err != nil {
		s.logger.Error().Err(err).Str("place_id", id).Msg("failed to update place")
		return err
	}

	s.logger.Info().Str("place_id", id).Msg("place updated")
	return nil
}
