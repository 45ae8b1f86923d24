package ports

import (
	"context"

	"github.com/stayloop/booking-api/internal/core/domain"
)

// PlaceRepository defines persistence operations for property listings.
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	// FindByOwner returns every listing owned by the given user id.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error)
	// FindAll returns every listing in store-default order.
	FindAll(ctx context.Context) ([]*domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
}
