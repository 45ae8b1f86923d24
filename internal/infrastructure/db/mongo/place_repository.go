package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayloop/booking-api/internal/core/domain"
)

const placesCollection = "places"

type PlaceRepository struct {
	coll *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{coll: db.Collection(placesCollection)}
}

type mongoPlace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Owner       string             `bson:"owner"`
	Title       string             `bson:"title"`
	Address     string             `bson:"address"`
	Photos      []string           `bson:"photos"`
	Description string             `bson:"description"`
	Perks       []string           `bson:"perks"`
	ExtraInfo   string             `bson:"extra_info"`
	CheckIn     string             `bson:"check_in"`
	CheckOut    string             `bson:"check_out"`
	MaxGuests   int                `bson:"max_guests"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func fromDomainPlace(p *domain.Place) mongoPlace {
	return mongoPlace{
		Owner:       p.Owner,
		Title:       p.Title,
		Address:     p.Address,
		Photos:      p.Photos,
		Description: p.Description,
		Perks:       p.Perks,
		ExtraInfo:   p.ExtraInfo,
		CheckIn:     p.CheckIn,
		CheckOut:    p.CheckOut,
		MaxGuests:   p.MaxGuests,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func (mp mongoPlace) toDomain() *domain.Place {
	return &domain.Place{
		ID:          mp.ID.Hex(),
		Owner:       mp.Owner,
		Title:       mp.Title,
		Address:     mp.Address,
		Photos:      mp.Photos,
		Description: mp.Description,
		Perks:       mp.Perks,
		ExtraInfo:   mp.ExtraInfo,
		CheckIn:     mp.CheckIn,
		CheckOut:    mp.CheckOut,
		MaxGuests:   mp.MaxGuests,
		Price:       mp.Price,
		CreatedAt:   mp.CreatedAt,
	}
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainPlace(place))
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	created := *place
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPlace
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PlaceRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Place, error) {
	return r.find(ctx, bson.M{"owner": ownerID})
}

func (r *PlaceRepository) FindAll(ctx context.Context) ([]*domain.Place, error) {
	return r.find(ctx, bson.M{})
}

func (r *PlaceRepository) find(ctx context.Context, filter bson.M) ([]*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find places: %w", err)
	}
	defer cur.Close(ctx)

	places := make([]*domain.Place, 0)
	for cur.Next(ctx) {
		var mp mongoPlace
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode place: %w", err)
		}
		places = append(places, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	oid, err := primitive.ObjectIDFromHex(place.ID)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomainPlace(place))
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index that backs the user-places listing.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	return err
}
