package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// IntentCreator is the seam between handlers and the payment provider.
// Amounts are in the provider's minor unit (cents).
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// StripeGateway creates PaymentIntents against the live Stripe API.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent returns only the client secret; the rest of the intent object
// never leaves the server.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
