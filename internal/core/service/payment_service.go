package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/stayloop/booking-api/internal/core/ports"
)

const checkoutCurrency = "usd"
const checkoutProductName = "Booking Payment"

// PaymentService initiates hosted checkout sessions for bookings. The
// provider hosts the entire flow; no payment state is tracked locally.
type PaymentService struct {
	provider  ports.PaymentProvider
	clientURL string
	logger    zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, clientURL string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, clientURL: clientURL, logger: logger}
}

// CreateSession creates a single-line-item checkout session priced at amount
// (major currency units) and returns the provider's session identifier.
func (s *PaymentService) CreateSession(ctx context.Context, bookingID string, amount float64) (string, error) {
	sessionID, err := s.provider.CreateCheckoutSession(ctx, ports.CheckoutSessionInput{
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    checkoutCurrency,
		ProductName: checkoutProductName,
		BookingID:   bookingID,
		SuccessURL:  s.clientURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.clientURL + "/payment-cancelled",
	})
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", bookingID).Msg("failed to create payment session")
		return "", err
	}

	s.logger.Info().Str("booking_id", bookingID).Str("session_id", sessionID).Msg("payment session created")
	return sessionID, nil
}
