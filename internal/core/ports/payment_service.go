package ports

import "context"

// CheckoutSessionInput describes a single hosted-checkout line item.
type CheckoutSessionInput struct {
	// AmountCents is the price in minor currency units.
	AmountCents int64
	Currency    string
	ProductName string
	BookingID   string
	SuccessURL  string
	CancelURL   string
}

// PaymentProvider abstracts the external payment API that hosts the
// checkout flow.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (string, error)
}

// PaymentService initiates hosted checkout sessions for bookings. No payment
// state is tracked locally; completion is never verified server-side.
type PaymentService interface {
	// CreateSession returns the provider's opaque session identifier for a
	// checkout priced at amount (major units), tagged with bookingID.
	CreateSession(ctx context.Context, bookingID string, amount float64) (string, error)
}
