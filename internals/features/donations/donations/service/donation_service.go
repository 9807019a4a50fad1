package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"donation_terminal_backend/internals/features/donations/donations/model"
	"donation_terminal_backend/internals/features/donations/donations/repository"
	settingsRepo "donation_terminal_backend/internals/features/donations/settings/repository"
	settingsService "donation_terminal_backend/internals/features/donations/settings/service"
	"donation_terminal_backend/internals/features/payment/gateway"
)

var (
	ErrInvalidAmount = errors.New("donation amount not allowed")
	ErrGateway       = errors.New("payment gateway failure")
)

// DonationService: validasi nominal → gateway → log donasi.
// gateway nil berarti credential tidak diset dan semua endpoint pembayaran mengembalikan placeholder.
type DonationService struct {
	settings  settingsRepo.SettingsRepository
	donations repository.DonationRepository
	gateway   gateway.PaymentGateway
}

func NewDonationService(
	settings settingsRepo.SettingsRepository,
	donations repository.DonationRepository,
	gw gateway.PaymentGateway,
) *DonationService {
	return &DonationService{settings: settings, donations: donations, gateway: gw}
}

func (s *DonationService) Degraded() bool { return s.gateway == nil }

// CreatePaymentIntent mengembalikan client secret untuk nominal yang diizinkan settings.
// Gagal simpan log tidak membatalkan intent yang sudah dibuat di gateway.
func (s *DonationService) CreatePaymentIntent(ctx context.Context, amount int64, meta model.DonationMeta) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if !settingsService.IsAllowedAmount(amount, settings) {
		return "", ErrInvalidAmount
	}

	if s.Degraded() {
		return gateway.PlaceholderClientSecret, nil
	}

	meta.IdempotencyKey = gateway.NewIdempotencyKey(meta.IdempotencyKey)
	handle, err := s.gateway.CreateIntent(ctx, amount, meta.IdempotencyKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	d := &model.Donation{
		Amount:          amount,
		PaymentIntentID: handle.ID,
		Status:          model.DonationStatusCreated,
		PaymentGateway:  s.gateway.Provider(),
		Metadata:        datatypes.NewJSONType(meta),
	}
	if err := s.donations.Append(ctx, d); err != nil {
		log.Printf("[ERROR] gagal simpan log donasi intent=%s amount=%d: %v", handle.ID, amount, err)
	}

	return handle.ClientSecret, nil
}

func (s *DonationService) CreateConnectionToken(ctx context.Context, clientKey string) (string, error) {
	if s.Degraded() {
		return gateway.PlaceholderConnectionToken, nil
	}

	tok, err := s.gateway.CreateConnectionToken(ctx, gateway.NewIdempotencyKey(clientKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return tok.Secret, nil
}
