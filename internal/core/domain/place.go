package domain

import (
	"errors"
	"time"
)

var ErrPlaceNotFound = errors.New("place not found")
var ErrForbidden = errors.New("access forbidden")

// Place is a bookable property listing. Photos holds filenames previously
// returned by the media endpoints, relative to the upload directory.
type Place struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Owner       string    `json:"owner" bson:"owner"`
	Title       string    `json:"title" bson:"title"`
	Address     string    `json:"address" bson:"address"`
	Photos      []string  `json:"photos" bson:"photos"`
	Description string    `json:"description" bson:"description"`
	Perks       []string  `json:"perks" bson:"perks"`
	ExtraInfo   string    `json:"extraInfo" bson:"extra_info"`
	CheckIn     string    `json:"checkIn" bson:"check_in"`
	CheckOut    string    `json:"checkOut" bson:"check_out"`
	MaxGuests   int       `json:"maxGuests" bson:"max_guests"`
	Price       float64   `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
