package gateway

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"donation_terminal_backend/internals/configs"
)

// Nilai yang dikembalikan saat credential gateway tidak diset.
const (
	PlaceholderClientSecret    = "placeholder_client_secret"
	PlaceholderConnectionToken = "placeholder_connection_token"
)

var ErrConnectionTokenUnsupported = errors.New("provider does not issue terminal connection tokens")

// PaymentHandle: hasil create payment intent yang dipakai client untuk menyelesaikan pembayaran.
type PaymentHandle struct {
	ID           string
	ClientSecret string
}

type TokenHandle struct {
	Secret string
}

// PaymentGateway membungkus provider pembayaran eksternal.
// Setiap panggilan diteruskan apa adanya, tanpa retry.
type PaymentGateway interface {
	Provider() string
	CreateIntent(ctx context.Context, amount int64, idempotencyKey string) (*PaymentHandle, error)
	CreateConnectionToken(ctx context.Context, idempotencyKey string) (*TokenHandle, error)
}

// New membangun gateway sesuai config. ok=false bila credential kosong (mode placeholder).
func New(cfg configs.PaymentConfig) (PaymentGateway, bool) {
	if cfg.Credential() == "" {
		return nil, false
	}

	switch cfg.Provider {
	case configs.PaymentProviderMidtrans:
		log.Printf("[INFO] Payment gateway: midtrans (production=%v)", cfg.MidtransUseProd)
		return NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransUseProd), true
	default:
		log.Printf("[INFO] Payment gateway: stripe (currency=%s)", cfg.Currency)
		return NewStripeGateway(cfg.StripeSecretKey, cfg.Currency), true
	}
}

// NewIdempotencyKey: key baru per panggilan bila client tidak mengirim Idempotency-Key.
func NewIdempotencyKey(clientKey string) string {
	if clientKey != "" {
		return clientKey
	}
	return uuid.NewString()
}
