package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway implements Gateway against the Stripe PaymentIntents API.
// Every call carries a bounded timeout so a hung gateway surfaces as
// context.DeadlineExceeded rather than stalling the request handler.
type StripeGateway struct {
	timeout time.Duration
}

// NewStripeGateway creates a StripeGateway. The global stripe.Key must be set
// before the first call.
func NewStripeGateway(timeout time.Duration) *StripeGateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &StripeGateway{timeout: timeout}
}

// CreateIntent registers a payment intent for the given amount. Amount is in
// major currency units and converted to the gateway's minor units.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("payment intent creation timed out: %w", ctxErr)
		}
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ConfirmIntent fetches the intent and reports whether it succeeded. A false
// return with nil error is a definitive gateway rejection, not a failure to
// reach the gateway.
func (g *StripeGateway) ConfirmIntent(ctx context.Context, intentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(intentID, params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, fmt.Errorf("payment intent lookup timed out: %w", ctxErr)
		}
		return false, fmt.Errorf("failed to fetch payment intent %s: %w", intentID, err)
	}
	return pi.Status == stripe.PaymentIntentStatusSucceeded, nil
}
