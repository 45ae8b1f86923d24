package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

type stubPlaceRepo struct {
	places map[string]*domain.Place
	nextID int
}

func newStubPlaceRepo() *stubPlaceRepo {
	return &stubPlaceRepo{places: make(map[string]*domain.Place)}
}

func clonePlace(p *domain.Place) *domain.Place {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPlaceRepo) Create(_ context.Context, place *domain.Place) (*domain.Place, error) {
	r.nextID++
	copy := clonePlace(place)
	copy.ID = fmt.Sprintf("place_%d", r.nextID)
	r.places[copy.ID] = clonePlace(copy)
	return clonePlace(copy), nil
}

func (r *stubPlaceRepo) FindByID(_ context.Context, id string) (*domain.Place, error) {
	p, ok := r.places[id]
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}
	return clonePlace(p), nil
}

func (r *stubPlaceRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Place, error) {
	out := make([]*domain.Place, 0)
	for _, p := range r.places {
		if p.Owner == ownerID {
			out = append(out, clonePlace(p))
		}
	}
	return out, nil
}

func (r *stubPlaceRepo) FindAll(_ context.Context) ([]*domain.Place, error) {
	out := make([]*domain.Place, 0, len(r.places))
	for _, p := range r.places {
		out = append(out, clonePlace(p))
	}
	return out, nil
}

func (r *stubPlaceRepo) Update(_ context.Context, place *domain.Place) error {
	if _, ok := r.places[place.ID]; !ok {
		return domain.ErrPlaceNotFound
	}
	r.places[place.ID] = clonePlace(place)
	return nil
}

var discardLogger = zerolog.Nop()

func placeInput(title string) ports.PlaceInput {
	return ports.PlaceInput{
		Title:     title,
		Address:   "1 Main St",
		Photos:    []string{"a.jpg"},
		Perks:     []string{"wifi"},
		CheckIn:   "14:00",
		CheckOut:  "11:00",
		MaxGuests: 2,
		Price:     120,
	}
}

func TestPlaceService_Create_SetsOwnerFromSession(t *testing.T) {
	repo := newStubPlaceRepo()
	svc := NewPlaceService(repo, discardLogger)

	place, err := svc.Create(context.Background(), "user_1", placeInput("Loft"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if place.Owner != "user_1" {
		t.Fatalf("expected owner user_1, got %s", place.Owner)
	}
	if place.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
}

func TestPlaceService_ListOwned_ScopedToOwner(t *testing.T) {
	repo := newStubPlaceRepo()
	svc := NewPlaceService(repo, discardLogger)

	_, _ = svc.Create(context.Background(), "user_1", placeInput("Loft"))
	_, _ = svc.Create(context.Background(), "user_1", placeInput("Cabin"))
	_, _ = svc.Create(context.Background(), "user_2", placeInput("Villa"))

	owned, err := svc.ListOwned(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 places, got %d", len(owned))
	}
	for _, p := range owned {
		if p.Owner != "user_1" {
			t.Fatalf("listing owned by %s leaked into user_1's results", p.Owner)
		}
	}
}

func TestPlaceService_Update_Owner(t *testing.T) {
	repo := newStubPlaceRepo()
	svc := NewPlaceService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), "user_1", placeInput("Loft"))

	input := placeInput("Renamed Loft")
	input.Price = 150
	if err := svc.Update(context.Background(), "user_1", created.ID, input); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Title != "Renamed Loft" || stored.Price != 150 {
		t.Fatalf("update not applied: %+v", stored)
	}
	if stored.Owner != "user_1" {
		t.Fatalf("owner must survive updates, got %s", stored.Owner)
	}
}

func TestPlaceService_Update_NonOwnerForbidden(t *testing.T) {
	repo := newStubPlaceRepo()
	svc := NewPlaceService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), "user_1", placeInput("Loft"))

	err := svc.Update(context.Background(), "user_2", created.ID, placeInput("Hijacked"))
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Title != "Loft" {
		t.Fatalf("record mutated by non-owner: %+v", stored)
	}
}

func TestPlaceService_Update_UnknownPlace(t *testing.T) {
	repo := newStubPlaceRepo()
	svc := NewPlaceService(repo, discardLogger)

	if err := svc.Update(context.Background(), "user_1", "missing", placeInput("X")); err != domain.ErrPlaceNotFound {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}
