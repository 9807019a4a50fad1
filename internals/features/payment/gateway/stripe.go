package gateway

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/terminal/connectiontoken"
)

const stripeProvider = "stripe"

// StripeGateway: payment intent card_present untuk Stripe Terminal.
type StripeGateway struct {
	intents  *paymentintent.Client
	tokens   *connectiontoken.Client
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return newStripeGatewayWithBackend(stripe.GetBackend(stripe.APIBackend), secretKey, currency)
}

func newStripeGatewayWithBackend(backend stripe.Backend, secretKey, currency string) *StripeGateway {
	return &StripeGateway{
		intents:  &paymentintent.Client{B: backend, Key: secretKey},
		tokens:   &connectiontoken.Client{B: backend, Key: secretKey},
		currency: currency,
	}
}

func (g *StripeGateway) Provider() string { return stripeProvider }

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, idempotencyKey string) (*PaymentHandle, error) {
	params := newStripeIntentParams(amount, g.currency)
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, err
	}
	return &PaymentHandle{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) CreateConnectionToken(ctx context.Context, idempotencyKey string) (*TokenHandle, error) {
	params := &stripe.TerminalConnectionTokenParams{}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)

	tok, err := g.tokens.New(params)
	if err != nil {
		return nil, err
	}
	return &TokenHandle{Secret: tok.Secret}, nil
}

func newStripeIntentParams(amount int64, currency string) *stripe.PaymentIntentParams {
	return &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card_present"}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodAutomatic)),
	}
}
