package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrDatesUnavailable = errors.New("dates unavailable for this place")

// Booking reserves a Place for a date range. CheckIn and CheckOut are
// YYYY-MM-DD date strings, matching what the client sends.
type Booking struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Place          string    `json:"place" bson:"place"`
	User           string    `json:"user" bson:"user"`
	CheckIn        string    `json:"checkIn" bson:"check_in"`
	CheckOut       string    `json:"checkOut" bson:"check_out"`
	NumberOfGuests int       `json:"numberOfGuests" bson:"number_of_guests"`
	Name           string    `json:"name" bson:"name"`
	Phone          string    `json:"phone" bson:"phone"`
	Price          float64   `json:"price" bson:"price"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// BookingWithPlace is a booking with its place reference resolved into the
// full listing record, as returned by the bookings list endpoint. The outer
// Place field shadows the embedded id string when serialized.
type BookingWithPlace struct {
	Booking
	Place *Place `json:"place"`
}
