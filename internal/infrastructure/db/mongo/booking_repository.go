package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayloop/booking-api/internal/core/domain"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Place          string             `bson:"place"`
	User           string             `bson:"user"`
	CheckIn        string             `bson:"check_in"`
	CheckOut       string             `bson:"check_out"`
	NumberOfGuests int                `bson:"number_of_guests"`
	Name           string             `bson:"name"`
	Phone          string             `bson:"phone"`
	Price          float64            `bson:"price"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (mb mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             mb.ID.Hex(),
		Place:          mb.Place,
		User:           mb.User,
		CheckIn:        mb.CheckIn,
		CheckOut:       mb.CheckOut,
		NumberOfGuests: mb.NumberOfGuests,
		Name:           mb.Name,
		Phone:          mb.Phone,
		Price:          mb.Price,
		CreatedAt:      mb.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		Place:          booking.Place,
		User:           booking.User,
		CheckIn:        booking.CheckIn,
		CheckOut:       booking.CheckOut,
		NumberOfGuests: booking.NumberOfGuests,
		Name:           booking.Name,
		Phone:          booking.Phone,
		Price:          booking.Price,
		CreatedAt:      booking.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, mb.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// CountOverlapping counts bookings for placeID whose [check_in, check_out)
// interval intersects the given range. YYYY-MM-DD strings order correctly
// under lexicographic comparison.
func (r *BookingRepository) CountOverlapping(ctx context.Context, placeID, checkIn, checkOut string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"place":     placeID,
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	})
	if err != nil {
		return 0, fmt.Errorf("count overlapping bookings: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes that back per-user listing and the
// overlap query.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "place", Value: 1}, {Key: "check_in", Value: 1}, {Key: "check_out", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
