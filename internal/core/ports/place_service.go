package ports

import (
	"context"

	"github.com/stayloop/booking-api/internal/core/domain"
)

// PlaceInput carries the listing fields supplied by the client. The owner is
// never part of the input; it always comes from the session identity.
type PlaceInput struct {
	Title       string
	Address     string
	Photos      []string
	Description string
	Perks       []string
	ExtraInfo   string
	CheckIn     string
	CheckOut    string
	MaxGuests   int
	Price       float64
}

// PlaceService defines use-case operations for listings.
type PlaceService interface {
	Create(ctx context.Context, ownerID string, input PlaceInput) (*domain.Place, error)
	Get(ctx context.Context, id string) (*domain.Place, error)
	ListOwned(ctx context.Context, ownerID string) ([]*domain.Place, error)
	ListAll(ctx context.Context) ([]*domain.Place, error)
	// Update overwrites the listing's client-editable fields. It returns
	// domain.ErrForbidden when requesterID does not match the stored owner.
	Update(ctx context.Context, requesterID, id string, input PlaceInput) error
}
